package unit_test

import (
	"context"
	"testing"

	"blog-community/internal/config"
	"blog-community/internal/domain"
	"blog-community/internal/provision"
	"blog-community/internal/repository"
	"blog-community/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProvision_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds catalogs and skips existing admin", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		catalogRepo := new(mocks.CatalogRepository)
		repos := &repository.Repositories{User: userRepo, Catalog: catalogRepo}

		catalogRepo.On("EnsureRole", ctx, mock.AnythingOfType("*domain.Role")).Return(nil).Times(2)
		catalogRepo.On("EnsureRank", ctx, mock.AnythingOfType("*domain.Rank")).Return(nil).Times(4)
		userRepo.On("ExistsAdmin", ctx).Return(true, nil).Once()

		err := provision.Seed(ctx, repos, &config.Config{})

		assert.NoError(t, err)
		catalogRepo.AssertExpectations(t)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bootstraps admin with role and top rank", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		catalogRepo := new(mocks.CatalogRepository)
		repos := &repository.Repositories{User: userRepo, Catalog: catalogRepo}

		adminRole := &domain.Role{ID: uuid.New(), Name: domain.RoleAdmin, IsActive: true}
		topRank := &domain.Rank{ID: uuid.New(), Name: "star", Level: 4, IsActive: true}

		catalogRepo.On("EnsureRole", ctx, mock.Anything).Return(nil).Times(2)
		catalogRepo.On("EnsureRank", ctx, mock.Anything).Return(nil).Times(4)
		userRepo.On("ExistsAdmin", ctx).Return(false, nil).Once()
		catalogRepo.On("FindRoleByName", ctx, domain.RoleAdmin).Return(adminRole, nil).Once()
		catalogRepo.On("HighestActiveRank", ctx).Return(topRank, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "root" && u.IsAdmin && u.IsActive &&
				u.RoleID != nil && *u.RoleID == adminRole.ID &&
				u.RankID != nil && *u.RankID == topRank.ID
		}), mock.AnythingOfType("string")).Return(nil).Once()

		cfg := &config.Config{
			AdminUsername: "root",
			AdminEmail:    "root@example.com",
			AdminPassword: "s3cret",
		}

		err := provision.Seed(ctx, repos, cfg)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Refuses to bootstrap without a password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		catalogRepo := new(mocks.CatalogRepository)
		repos := &repository.Repositories{User: userRepo, Catalog: catalogRepo}

		catalogRepo.On("EnsureRole", ctx, mock.Anything).Return(nil).Times(2)
		catalogRepo.On("EnsureRank", ctx, mock.Anything).Return(nil).Times(4)
		userRepo.On("ExistsAdmin", ctx).Return(false, nil).Once()

		err := provision.Seed(ctx, repos, &config.Config{AdminUsername: "root"})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}
