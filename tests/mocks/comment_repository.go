package mocks

import (
	"context"

	"blog-community/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) UpdateContent(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) ListTopLevel(ctx context.Context, postID uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, postID, params, sort, order)
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, parentID, params)
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepository) ApprovedRepliesFor(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]domain.Comment, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]domain.Comment), args.Error(1)
}

func (m *CommentRepository) ReplyCounts(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func (m *CommentRepository) Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentStats), args.Error(1)
}
