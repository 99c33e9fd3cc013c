package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blog-community/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User, passwordHash string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsAdmin(ctx context.Context) (bool, error)
	IncrementTotalComments(ctx context.Context, id uuid.UUID) error
	IncrementTotalLikesReceived(ctx context.Context, id uuid.UUID) error
	SetRank(ctx context.Context, userID, rankID uuid.UUID) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, is_active, is_admin, total_comments, total_likes_received, role_id, rank_id, created_at, updated_at`

// Create exists for provisioning only; account management belongs to the
// identity subsystem.
func (r *userRepository) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, is_active, is_admin, role_id, rank_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.Username, user.Email, passwordHash,
		user.IsActive, user.IsAdmin, user.RoleID, user.RankID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

// GetByID loads the user together with its role and rank records.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachRoleAndRank(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachRoleAndRank(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) attachRoleAndRank(ctx context.Context, user *domain.User) error {
	if user.RoleID != nil {
		var role domain.Role
		err := r.db.GetContext(ctx, &role,
			`SELECT id, name, display_name, description, color, is_staff, is_active FROM user_roles WHERE id = $1`,
			*user.RoleID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err == nil {
			user.Role = &role
		}
	}
	if user.RankID != nil {
		var rank domain.Rank
		err := r.db.GetContext(ctx, &rank,
			`SELECT id, name, display_name, description, color, icon, level, requirements, is_active FROM user_ranks WHERE id = $1`,
			*user.RankID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err == nil {
			user.Rank = &rank
		}
	}
	return nil
}

func (r *userRepository) ExistsAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE is_admin = TRUE)`)
	return exists, err
}

func (r *userRepository) IncrementTotalComments(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET total_comments = total_comments + 1, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *userRepository) IncrementTotalLikesReceived(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET total_likes_received = total_likes_received + 1, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *userRepository) SetRank(ctx context.Context, userID, rankID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET rank_id = $2, updated_at = NOW() WHERE id = $1`, userID, rankID)
	return err
}
