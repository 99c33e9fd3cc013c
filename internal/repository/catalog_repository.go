package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"blog-community/internal/domain"
)

// CatalogRepository serves the rank/role catalog. The records themselves are
// owned by the external catalog subsystem; this core only reads them, plus
// the Ensure upserts used by provisioning.
type CatalogRepository interface {
	ActiveRanks(ctx context.Context) ([]domain.Rank, error)
	ActiveRoles(ctx context.Context) ([]domain.Role, error)
	FindRankByName(ctx context.Context, name string) (*domain.Rank, error)
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)
	HighestActiveRank(ctx context.Context) (*domain.Rank, error)
	EnsureRole(ctx context.Context, role *domain.Role) error
	EnsureRank(ctx context.Context, rank *domain.Rank) error
}

type catalogRepository struct {
	db *sqlx.DB
}

const (
	roleColumns = `id, name, display_name, description, color, is_staff, is_active`
	rankColumns = `id, name, display_name, description, color, icon, level, requirements, is_active`
)

func NewCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ActiveRanks returns the active catalog ordered by ascending level.
func (r *catalogRepository) ActiveRanks(ctx context.Context) ([]domain.Rank, error) {
	var ranks []domain.Rank
	query := `SELECT ` + rankColumns + ` FROM user_ranks WHERE is_active = TRUE ORDER BY level ASC`
	if err := r.db.SelectContext(ctx, &ranks, query); err != nil {
		return nil, err
	}
	return ranks, nil
}

func (r *catalogRepository) ActiveRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	query := `SELECT ` + roleColumns + ` FROM user_roles WHERE is_active = TRUE ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &roles, query); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *catalogRepository) FindRankByName(ctx context.Context, name string) (*domain.Rank, error) {
	var rank domain.Rank
	err := r.db.GetContext(ctx, &rank, `SELECT `+rankColumns+` FROM user_ranks WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rank, nil
}

func (r *catalogRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.GetContext(ctx, &role, `SELECT `+roleColumns+` FROM user_roles WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *catalogRepository) HighestActiveRank(ctx context.Context) (*domain.Rank, error) {
	var rank domain.Rank
	query := `SELECT ` + rankColumns + ` FROM user_ranks WHERE is_active = TRUE ORDER BY level DESC LIMIT 1`
	err := r.db.GetContext(ctx, &rank, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rank, nil
}

func (r *catalogRepository) EnsureRole(ctx context.Context, role *domain.Role) error {
	query := `
		INSERT INTO user_roles (id, name, display_name, description, color, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		role.ID, role.Name, role.DisplayName, role.Description,
		role.Color, role.IsStaff, role.IsActive)
	return err
}

func (r *catalogRepository) EnsureRank(ctx context.Context, rank *domain.Rank) error {
	query := `
		INSERT INTO user_ranks (id, name, display_name, description, color, icon, level, requirements, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		rank.ID, rank.Name, rank.DisplayName, rank.Description,
		rank.Color, rank.Icon, rank.Level, rank.Requirements, rank.IsActive)
	return err
}
