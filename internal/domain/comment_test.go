package domain_test

import (
	"testing"
	"time"

	"blog-community/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKnownAuthor(t *testing.T) {
	user := &domain.User{
		ID:       uuid.New(),
		Username: "alice",
		Role: &domain.Role{
			ID:          uuid.New(),
			Name:        "user",
			DisplayName: "User",
			IsStaff:     false,
		},
		Rank: &domain.Rank{
			ID:          uuid.New(),
			Name:        "regular",
			DisplayName: "Regular",
			Level:       2,
		},
	}

	author := domain.KnownAuthor(user)

	assert.False(t, author.Removed)
	assert.Equal(t, "alice", author.Username)
	if assert.NotNil(t, author.ID) {
		assert.Equal(t, user.ID, *author.ID)
	}
	if assert.NotNil(t, author.Role) {
		assert.Equal(t, "user", author.Role.Name)
	}
	if assert.NotNil(t, author.Rank) {
		assert.Equal(t, 2, author.Rank.Level)
	}
}

func TestKnownAuthor_WithoutBadges(t *testing.T) {
	author := domain.KnownAuthor(&domain.User{ID: uuid.New(), Username: "bob"})

	assert.Nil(t, author.Role)
	assert.Nil(t, author.Rank)
}

func TestRemovedAuthor(t *testing.T) {
	author := domain.RemovedAuthor()

	assert.True(t, author.Removed)
	assert.Nil(t, author.ID)
	assert.Equal(t, domain.RemovedUserLabel, author.Username)
	assert.Nil(t, author.Role)
	assert.Nil(t, author.Rank)
}

func TestWithinEditWindow(t *testing.T) {
	created := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately after creation", created, true},
		{"one minute in", created.Add(time.Minute), true},
		{"exactly at the boundary", created.Add(domain.EditWindow), true},
		{"one nanosecond past", created.Add(domain.EditWindow + time.Nanosecond), false},
		{"one minute past", created.Add(domain.EditWindow + time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.WithinEditWindow(created, tt.now))
		})
	}
}

func TestCommentSort_IsValid(t *testing.T) {
	assert.True(t, domain.SortByCreatedAt.IsValid())
	assert.True(t, domain.SortByLikes.IsValid())
	assert.False(t, domain.CommentSort("popularity").IsValid())
}

func TestSortOrder_IsValid(t *testing.T) {
	assert.True(t, domain.OrderAsc.IsValid())
	assert.True(t, domain.OrderDesc.IsValid())
	assert.False(t, domain.SortOrder("random").IsValid())
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := domain.NewPaginatedResponse([]int{1, 2, 3}, 2, 3, 8)

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
}
