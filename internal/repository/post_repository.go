package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostRepository is the narrow post-existence contract this subsystem needs.
// Blog post CRUD lives elsewhere.
type PostRepository interface {
	Exists(ctx context.Context, id uuid.UUID, requirePublished bool) (bool, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Exists(ctx context.Context, id uuid.UUID, requirePublished bool) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE id = $1 AND ($2 = FALSE OR is_published = TRUE))`
	err := r.db.GetContext(ctx, &exists, query, id, requirePublished)
	return exists, err
}
