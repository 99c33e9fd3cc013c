package mocks

import (
	"context"

	"blog-community/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ActiveRanks(ctx context.Context) ([]domain.Rank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rank), args.Error(1)
}

func (m *CatalogRepository) ActiveRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *CatalogRepository) FindRankByName(ctx context.Context, name string) (*domain.Rank, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rank), args.Error(1)
}

func (m *CatalogRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *CatalogRepository) HighestActiveRank(ctx context.Context) (*domain.Rank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rank), args.Error(1)
}

func (m *CatalogRepository) EnsureRole(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *CatalogRepository) EnsureRank(ctx context.Context, rank *domain.Rank) error {
	args := m.Called(ctx, rank)
	return args.Error(0)
}
