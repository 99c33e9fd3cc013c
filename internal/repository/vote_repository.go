package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blog-community/internal/domain"
)

type VoteRepository interface {
	Toggle(ctx context.Context, commentID, userID uuid.UUID, isLike bool) (domain.VoteAction, error)
	Tally(ctx context.Context, commentID uuid.UUID) (domain.VoteTally, error)
	TallyFor(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]domain.VoteTally, error)
	ViewerVotes(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error)
}

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Toggle applies the three-way vote semantics as a single read-modify-write
// transaction keyed on (comment, user): no row inserts one, a row with the
// same polarity is deleted, a row with the opposite polarity is flipped. The
// row lock makes rapid repeated clicks serialize instead of double-counting.
func (r *voteRepository) Toggle(ctx context.Context, commentID, userID uuid.UUID, isLike bool) (domain.VoteAction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var existing domain.Vote
	err = tx.GetContext(ctx, &existing,
		`SELECT comment_id, user_id, is_like, created_at FROM comment_votes WHERE comment_id = $1 AND user_id = $2 FOR UPDATE`,
		commentID, userID)

	var action domain.VoteAction
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO comment_votes (comment_id, user_id, is_like) VALUES ($1, $2, $3)`,
			commentID, userID, isLike)
		action = domain.VoteAdded
	case err != nil:
		return "", err
	case existing.IsLike == isLike:
		_, err = tx.ExecContext(ctx,
			`DELETE FROM comment_votes WHERE comment_id = $1 AND user_id = $2`,
			commentID, userID)
		action = domain.VoteRemoved
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE comment_votes SET is_like = $3 WHERE comment_id = $1 AND user_id = $2`,
			commentID, userID, isLike)
		action = domain.VoteUpdated
	}
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return action, nil
}

func (r *voteRepository) Tally(ctx context.Context, commentID uuid.UUID) (domain.VoteTally, error) {
	var tally domain.VoteTally
	query := `
		SELECT COALESCE(SUM(CASE WHEN is_like THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN is_like THEN 0 ELSE 1 END), 0)
		FROM comment_votes
		WHERE comment_id = $1`

	err := r.db.QueryRowxContext(ctx, query, commentID).Scan(&tally.Likes, &tally.Dislikes)
	return tally, err
}

func (r *voteRepository) TallyFor(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]domain.VoteTally, error) {
	tallies := make(map[uuid.UUID]domain.VoteTally)
	if len(commentIDs) == 0 {
		return tallies, nil
	}

	query := `
		SELECT comment_id,
		       COALESCE(SUM(CASE WHEN is_like THEN 1 ELSE 0 END), 0) AS likes,
		       COALESCE(SUM(CASE WHEN is_like THEN 0 ELSE 1 END), 0) AS dislikes
		FROM comment_votes
		WHERE comment_id = ANY($1)
		GROUP BY comment_id`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(commentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var commentID uuid.UUID
		var tally domain.VoteTally
		if err := rows.Scan(&commentID, &tally.Likes, &tally.Dislikes); err != nil {
			return nil, err
		}
		tallies[commentID] = tally
	}
	return tallies, rows.Err()
}

// ViewerVotes returns the viewer's own polarity per comment; comments the
// viewer never voted on are simply absent from the map.
func (r *voteRepository) ViewerVotes(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	votes := make(map[uuid.UUID]bool)
	if len(commentIDs) == 0 {
		return votes, nil
	}

	query := `SELECT comment_id, is_like FROM comment_votes WHERE comment_id = ANY($1) AND user_id = $2`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(commentIDs), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var commentID uuid.UUID
		var isLike bool
		if err := rows.Scan(&commentID, &isLike); err != nil {
			return nil, err
		}
		votes[commentID] = isLike
	}
	return votes, rows.Err()
}
