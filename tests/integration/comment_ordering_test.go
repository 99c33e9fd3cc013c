//go:build integration
// +build integration

package integration_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blog-community/internal/domain"
	"blog-community/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTopLevel_LikeScoreOrdering(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	commentRepo := repository.NewCommentRepository(env.DB)

	author := env.createUser(t, "author")
	postID := env.createPost(t, true)

	base := time.Now().Add(-time.Hour)

	// Score 1, oldest.
	lowOld := env.createComment(t, postID, author, "low old", base)
	// Score 2.
	high := env.createComment(t, postID, author, "high", base.Add(10*time.Minute))
	// Score 1 again, newest: ties with lowOld on score, differs on created_at.
	lowNew := env.createComment(t, postID, author, "low new", base.Add(20*time.Minute))

	for commentID, votes := range map[uuid.UUID][]bool{
		lowOld: {true, true, false}, // 2 likes, 1 dislike -> score 1
		high:   {true, true},        // score 2
		lowNew: {true},              // score 1
	} {
		for n, isLike := range votes {
			voter := env.createUser(t, fmt.Sprintf("voter-%s-%d", commentID, n))
			env.castVote(t, commentID, voter, isLike)
		}
	}

	params := domain.DefaultPagination()

	t.Run("Descending breaks score ties newest first", func(t *testing.T) {
		comments, total, err := commentRepo.ListTopLevel(ctx, postID, params, domain.SortByLikes, domain.OrderDesc)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, comments, 3)
		assert.Equal(t, high, comments[0].ID)
		assert.Equal(t, lowNew, comments[1].ID)
		assert.Equal(t, lowOld, comments[2].ID)
	})

	t.Run("Ascending breaks score ties oldest first", func(t *testing.T) {
		comments, _, err := commentRepo.ListTopLevel(ctx, postID, params, domain.SortByLikes, domain.OrderAsc)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, lowOld, comments[0].ID)
		assert.Equal(t, lowNew, comments[1].ID)
		assert.Equal(t, high, comments[2].ID)
	})

	t.Run("created_at sort ignores scores", func(t *testing.T) {
		comments, _, err := commentRepo.ListTopLevel(ctx, postID, params, domain.SortByCreatedAt, domain.OrderAsc)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, lowOld, comments[0].ID)
		assert.Equal(t, high, comments[1].ID)
		assert.Equal(t, lowNew, comments[2].ID)
	})
}

func TestCreate_DepthCapUnderTransaction(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	commentRepo := repository.NewCommentRepository(env.DB)

	author := env.createUser(t, "author")
	postID := env.createPost(t, true)
	topID := env.createComment(t, postID, author, "top", time.Now())

	reply := &domain.Comment{
		ID:         uuid.New(),
		PostID:     postID,
		UserID:     &author,
		ParentID:   &topID,
		Content:    "reply",
		IsApproved: true,
	}
	require.NoError(t, commentRepo.Create(ctx, reply))

	deep := &domain.Comment{
		ID:         uuid.New(),
		PostID:     postID,
		UserID:     &author,
		ParentID:   &reply.ID,
		Content:    "too deep",
		IsApproved: true,
	}
	err := commentRepo.Create(ctx, deep)
	assert.ErrorIs(t, err, domain.ErrDepthExceeded)

	// The rejected insert left no row behind.
	var rows int
	require.NoError(t, env.DB.Get(&rows,
		`SELECT COUNT(*) FROM comments WHERE id = $1`, deep.ID))
	assert.Equal(t, 0, rows)
}
