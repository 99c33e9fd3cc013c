package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blog-community/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateContent(ctx context.Context, comment *domain.Comment) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListTopLevel(ctx context.Context, postID uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder) ([]domain.Comment, int64, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error)
	ApprovedRepliesFor(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]domain.Comment, error)
	ReplyCounts(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int, error)
	Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `id, post_id, user_id, parent_id, content, is_approved, is_deleted, ip_address, created_at, updated_at`

// Create inserts a comment. When the comment is a reply, the parent row is
// locked and re-validated in the same transaction as the insert: it must
// belong to the same post, be approved, and be top-level. This closes the
// race where a reply is accepted under a comment that is concurrently
// becoming a reply itself.
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if comment.ParentID != nil {
		var parent struct {
			PostID     uuid.UUID  `db:"post_id"`
			ParentID   *uuid.UUID `db:"parent_id"`
			IsApproved bool       `db:"is_approved"`
		}
		err := tx.GetContext(ctx, &parent,
			`SELECT post_id, parent_id, is_approved FROM comments WHERE id = $1 FOR UPDATE`,
			*comment.ParentID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrParentNotFound
		}
		if err != nil {
			return err
		}
		if parent.PostID != comment.PostID || !parent.IsApproved {
			return domain.ErrParentNotFound
		}
		if parent.ParentID != nil {
			return domain.ErrDepthExceeded
		}
	}

	query := `
		INSERT INTO comments (id, post_id, user_id, parent_id, content, is_approved, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if err := tx.QueryRowxContext(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.ParentID,
		comment.Content, comment.IsApproved, comment.IPAddress,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.Content,
	).Scan(&comment.UpdatedAt)
}

// SoftDelete keeps the row and its tree position; only the content is masked.
func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE comments SET is_deleted = TRUE, content = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, domain.DeletedContentPlaceholder)
	return err
}

func (r *commentRepository) ListTopLevel(ctx context.Context, postID uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder) ([]domain.Comment, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE post_id = $1 AND parent_id IS NULL AND is_approved = TRUE`
	if err := r.db.GetContext(ctx, &total, countQuery, postID); err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if order == domain.OrderDesc {
		dir = "DESC"
	}

	orderBy := fmt.Sprintf("c.created_at %s", dir)
	if sort == domain.SortByLikes {
		// likeScore = likes - dislikes; created_at breaks ties in the same
		// direction as the primary sort.
		orderBy = fmt.Sprintf("like_score %s, c.created_at %s", dir, dir)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.post_id, c.user_id, c.parent_id, c.content, c.is_approved, c.is_deleted,
		       c.ip_address, c.created_at, c.updated_at,
		       COALESCE(SUM(CASE WHEN v.is_like THEN 1 ELSE -1 END), 0) AS like_score
		FROM comments c
		LEFT JOIN comment_votes v ON v.comment_id = c.id
		WHERE c.post_id = $1 AND c.parent_id IS NULL AND c.is_approved = TRUE
		GROUP BY c.id
		ORDER BY %s
		LIMIT $2 OFFSET $3`, orderBy)

	var rows []struct {
		domain.Comment
		LikeScore int `db:"like_score"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, postID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.Comment)
	}
	return comments, total, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE parent_id = $1 AND is_approved = TRUE`
	if err := r.db.GetContext(ctx, &total, countQuery, parentID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_id = $1 AND is_approved = TRUE
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`

	var comments []domain.Comment
	if err := r.db.SelectContext(ctx, &comments, query, parentID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) ApprovedRepliesFor(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]domain.Comment, error) {
	result := make(map[uuid.UUID][]domain.Comment)
	if len(parentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_id = ANY($1) AND is_approved = TRUE
		ORDER BY created_at ASC`

	var replies []domain.Comment
	if err := r.db.SelectContext(ctx, &replies, query, pq.Array(parentIDs)); err != nil {
		return nil, err
	}
	for _, reply := range replies {
		result[*reply.ParentID] = append(result[*reply.ParentID], reply)
	}
	return result, nil
}

// ReplyCounts counts non-deleted children per comment. Approval is
// intentionally not part of the filter: listings gate reply visibility on
// is_approved, but the count arithmetic only looks at is_deleted.
func (r *commentRepository) ReplyCounts(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT parent_id, COUNT(*) AS replies
		FROM comments
		WHERE parent_id = ANY($1) AND is_deleted = FALSE
		GROUP BY parent_id`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(commentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parentID uuid.UUID
		var count int
		if err := rows.Scan(&parentID, &count); err != nil {
			return nil, err
		}
		counts[parentID] = count
	}
	return counts, rows.Err()
}

func (r *commentRepository) Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error) {
	stats := &domain.CommentStats{PostID: postID}

	query := `
		SELECT COUNT(*) AS total,
		       COUNT(parent_id) AS replies
		FROM comments
		WHERE post_id = $1 AND is_approved = TRUE AND is_deleted = FALSE`

	if err := r.db.QueryRowxContext(ctx, query, postID).Scan(&stats.TotalComments, &stats.TotalReplies); err != nil {
		return nil, err
	}
	stats.TotalInteractions = stats.TotalComments
	return stats, nil
}
