package mocks

import (
	"context"

	"blog-community/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Submit(ctx context.Context, postID uuid.UUID, author *domain.User, input domain.CreateCommentInput, ipAddress string) (*domain.CommentResponse, error) {
	args := m.Called(ctx, postID, author, input, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentResponse), args.Error(1)
}

func (m *CommentService) Edit(ctx context.Context, commentID, editorID uuid.UUID, input domain.UpdateCommentInput) (*domain.CommentResponse, error) {
	args := m.Called(ctx, commentID, editorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentResponse), args.Error(1)
}

func (m *CommentService) SoftDelete(ctx context.Context, commentID, requesterID uuid.UUID, requesterIsAdmin bool) error {
	args := m.Called(ctx, commentID, requesterID, requesterIsAdmin)
	return args.Error(0)
}

func (m *CommentService) ListTopLevel(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder, includeReplies bool) (domain.PaginatedResponse[domain.CommentResponse], error) {
	args := m.Called(ctx, postID, viewerID, params, sort, order, includeReplies)
	return args.Get(0).(domain.PaginatedResponse[domain.CommentResponse]), args.Error(1)
}

func (m *CommentService) ListReplies(ctx context.Context, parentID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.CommentResponse], error) {
	args := m.Called(ctx, parentID, viewerID, params)
	return args.Get(0).(domain.PaginatedResponse[domain.CommentResponse]), args.Error(1)
}

func (m *CommentService) Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentStats), args.Error(1)
}
