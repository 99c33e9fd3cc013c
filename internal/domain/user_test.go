package domain_test

import (
	"testing"

	"blog-community/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRank_SatisfiedBy(t *testing.T) {
	rank := domain.Rank{
		Name:         "trusted",
		Level:        3,
		Requirements: domain.RankRequirements{Comments: 25, Likes: 50},
	}

	tests := []struct {
		name     string
		comments int
		likes    int
		want     bool
	}{
		{"both at threshold", 25, 50, true},
		{"both above threshold", 100, 200, true},
		{"comments one short", 24, 50, false},
		{"likes one short", 25, 49, false},
		{"both short", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rank.SatisfiedBy(tt.comments, tt.likes))
		})
	}
}

func TestRank_SatisfiedBy_ZeroRequirements(t *testing.T) {
	newbie := domain.Rank{Name: "newbie", Level: 1}
	assert.True(t, newbie.SatisfiedBy(0, 0))
}

func TestRankRequirements_Scan(t *testing.T) {
	t.Run("jsonb bytes", func(t *testing.T) {
		var r domain.RankRequirements
		err := r.Scan([]byte(`{"comments": 5, "likes": 10}`))
		assert.NoError(t, err)
		assert.Equal(t, 5, r.Comments)
		assert.Equal(t, 10, r.Likes)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		var r domain.RankRequirements
		err := r.Scan([]byte(`{"comments": 1, "likes": 2, "badges": 3}`))
		assert.NoError(t, err)
		assert.Equal(t, 1, r.Comments)
		assert.Equal(t, 2, r.Likes)
	})

	t.Run("null becomes zero thresholds", func(t *testing.T) {
		r := domain.RankRequirements{Comments: 9, Likes: 9}
		err := r.Scan(nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.RankRequirements{}, r)
	})
}
