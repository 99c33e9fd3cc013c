package vote

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blog-community/internal/domain"
	"blog-community/internal/repository"
	"blog-community/internal/service/rank"
)

type Service interface {
	Cast(ctx context.Context, commentID, voterID uuid.UUID, input domain.CastVoteInput) (*domain.VoteResult, error)
}

type service struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	userRepo    repository.UserRepository
	rankSvc     rank.Service
	redis       *redis.Client
}

func NewService(commentRepo repository.CommentRepository, voteRepo repository.VoteRepository, userRepo repository.UserRepository, rankSvc rank.Service, redis *redis.Client) Service {
	return &service{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		rankSvc:     rankSvc,
		redis:       redis,
	}
}

// Cast applies the three-way vote toggle to an approved, non-deleted
// comment. When a like lands on someone else's comment, the author's
// like counter is bumped and a rank evaluation runs; neither failure mode
// fails the vote itself.
func (s *service) Cast(ctx context.Context, commentID, voterID uuid.UUID, input domain.CastVoteInput) (*domain.VoteResult, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || !comment.IsApproved || comment.IsDeleted {
		return nil, domain.ErrCommentNotFound
	}

	action, err := s.voteRepo.Toggle(ctx, commentID, voterID, input.IsLike)
	if err != nil {
		return nil, err
	}

	if action == domain.VoteAdded && input.IsLike && comment.UserID != nil && *comment.UserID != voterID {
		if err := s.userRepo.IncrementTotalLikesReceived(ctx, *comment.UserID); err != nil {
			log.Printf("failed to bump like counter for user %s: %v", *comment.UserID, err)
		} else if _, err := s.rankSvc.Evaluate(ctx, *comment.UserID); err != nil {
			log.Printf("rank evaluation failed for user %s: %v", *comment.UserID, err)
		}
	}

	tally, err := s.voteRepo.Tally(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		cachePattern := fmt.Sprintf("comments:%s:*", comment.PostID)
		keys, _ := s.redis.Keys(ctx, cachePattern).Result()
		if len(keys) > 0 {
			_ = s.redis.Del(ctx, keys...).Err()
		}
	}

	return &domain.VoteResult{
		Action:   action,
		Likes:    tally.Likes,
		Dislikes: tally.Dislikes,
	}, nil
}
