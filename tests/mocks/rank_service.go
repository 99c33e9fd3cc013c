package mocks

import (
	"context"

	"blog-community/internal/domain"
	"blog-community/internal/service/email"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RankService struct {
	mock.Mock
}

func (m *RankService) Evaluate(ctx context.Context, userID uuid.UUID) (*domain.PromotionResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionResult), args.Error(1)
}

func (m *RankService) ActiveRanks(ctx context.Context) ([]domain.Rank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rank), args.Error(1)
}

func (m *RankService) ActiveRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *RankService) SetEmailService(emailSvc email.Service) {
	m.Called(emailSvc)
}
