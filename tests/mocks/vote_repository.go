package mocks

import (
	"context"

	"blog-community/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type VoteRepository struct {
	mock.Mock
}

func (m *VoteRepository) Toggle(ctx context.Context, commentID, userID uuid.UUID, isLike bool) (domain.VoteAction, error) {
	args := m.Called(ctx, commentID, userID, isLike)
	return args.Get(0).(domain.VoteAction), args.Error(1)
}

func (m *VoteRepository) Tally(ctx context.Context, commentID uuid.UUID) (domain.VoteTally, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(domain.VoteTally), args.Error(1)
}

func (m *VoteRepository) TallyFor(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]domain.VoteTally, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]domain.VoteTally), args.Error(1)
}

func (m *VoteRepository) ViewerVotes(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, commentIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}
