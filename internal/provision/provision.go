package provision

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-community/internal/config"
	"blog-community/internal/domain"
	"blog-community/internal/repository"
)

// Seed installs the role and rank catalogs and bootstraps the first admin
// account. Every step is idempotent so the command can run on each deploy.
func Seed(ctx context.Context, repos *repository.Repositories, cfg *config.Config) error {
	if err := seedRoles(ctx, repos.Catalog); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := seedRanks(ctx, repos.Catalog); err != nil {
		return fmt.Errorf("seed ranks: %w", err)
	}
	if err := bootstrapAdmin(ctx, repos, cfg); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	return nil
}

func seedRoles(ctx context.Context, catalog repository.CatalogRepository) error {
	roles := []domain.Role{
		{
			ID:          uuid.New(),
			Name:        domain.RoleUser,
			DisplayName: "User",
			Description: "Regular community member",
			Color:       "#6B7280",
			IsStaff:     false,
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Name:        domain.RoleAdmin,
			DisplayName: "Administrator",
			Description: "Full moderation and management access",
			Color:       "#DC2626",
			IsStaff:     true,
			IsActive:    true,
		},
	}

	for i := range roles {
		if err := catalog.EnsureRole(ctx, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedRanks(ctx context.Context, catalog repository.CatalogRepository) error {
	ranks := []domain.Rank{
		{
			ID:           uuid.New(),
			Name:         "newbie",
			DisplayName:  "Newbie",
			Description:  "Just getting started",
			Color:        "#9CA3AF",
			Icon:         "seedling",
			Level:        1,
			Requirements: domain.RankRequirements{Comments: 0, Likes: 0},
			IsActive:     true,
		},
		{
			ID:           uuid.New(),
			Name:         "regular",
			DisplayName:  "Regular",
			Description:  "Active community member",
			Color:        "#60A5FA",
			Icon:         "user",
			Level:        2,
			Requirements: domain.RankRequirements{Comments: 5, Likes: 10},
			IsActive:     true,
		},
		{
			ID:           uuid.New(),
			Name:         "trusted",
			DisplayName:  "Trusted",
			Description:  "Established contributor",
			Color:        "#34D399",
			Icon:         "shield",
			Level:        3,
			Requirements: domain.RankRequirements{Comments: 25, Likes: 50},
			IsActive:     true,
		},
		{
			ID:           uuid.New(),
			Name:         "star",
			DisplayName:  "Star",
			Description:  "Top community contributor",
			Color:        "#FBBF24",
			Icon:         "star",
			Level:        4,
			Requirements: domain.RankRequirements{Comments: 100, Likes: 200},
			IsActive:     true,
		},
	}

	for i := range ranks {
		if err := catalog.EnsureRank(ctx, &ranks[i]); err != nil {
			return err
		}
	}
	return nil
}

func bootstrapAdmin(ctx context.Context, repos *repository.Repositories, cfg *config.Config) error {
	exists, err := repos.User.ExistsAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		log.Println("Admin account already exists, skipping bootstrap")
		return nil
	}

	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required to bootstrap the admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminRole, err := repos.Catalog.FindRoleByName(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if adminRole == nil {
		return domain.ErrRoleNotFound
	}

	topRank, err := repos.Catalog.HighestActiveRank(ctx)
	if err != nil {
		return err
	}
	if topRank == nil {
		return domain.ErrRankNotFound
	}

	admin := &domain.User{
		ID:       uuid.New(),
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		IsActive: true,
		IsAdmin:  true,
		RoleID:   &adminRole.ID,
		RankID:   &topRank.ID,
	}

	if err := repos.User.Create(ctx, admin, string(hash)); err != nil {
		return err
	}

	log.Printf("Admin account %q created", admin.Username)
	return nil
}
