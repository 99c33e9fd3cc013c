package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one ledger row: at most one per (comment, user) pair. IsLike is the
// polarity; "no row" is the third state.
type Vote struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// VoteAction reports what the toggle did to the ledger row.
type VoteAction string

const (
	VoteAdded   VoteAction = "added"
	VoteUpdated VoteAction = "updated"
	VoteRemoved VoteAction = "removed"
)

type CastVoteInput struct {
	IsLike bool `json:"is_like"`
}

type VoteResult struct {
	Action   VoteAction `json:"action"`
	Likes    int        `json:"likes_count"`
	Dislikes int        `json:"dislikes_count"`
}

// VoteTally is the aggregate for one comment.
type VoteTally struct {
	Likes    int
	Dislikes int
}
