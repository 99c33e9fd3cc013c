package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeletedContentPlaceholder replaces the content of soft-deleted comments.
// The row keeps its place in the thread so replies keep their context.
const DeletedContentPlaceholder = "[Comment has been deleted]"

// RemovedUserLabel is shown as the author name when the account behind a
// comment no longer exists.
const RemovedUserLabel = "Removed user"

// EditWindow is how long after creation a comment stays editable by its
// author. Edits at exactly the boundary still succeed.
const EditWindow = 15 * time.Minute

// WithinEditWindow reports whether a comment created at createdAt is still
// editable at now. The boundary instant itself is editable.
func WithinEditWindow(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= EditWindow
}

type Comment struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	PostID     uuid.UUID  `json:"post_id" db:"post_id"`
	UserID     *uuid.UUID `json:"user_id" db:"user_id"`
	ParentID   *uuid.UUID `json:"parent_id" db:"parent_id"`
	Content    string     `json:"content" db:"content"`
	IsApproved bool       `json:"is_approved" db:"is_approved"`
	IsDeleted  bool       `json:"is_deleted" db:"is_deleted"`
	IPAddress  string     `json:"-" db:"ip_address"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateCommentInput struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Content  string     `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// Comment listing controls. SortByLikes orders by (likes - dislikes) with
// created_at as tiebreaker in the same direction.
type CommentSort string

type SortOrder string

const (
	SortByCreatedAt CommentSort = "created_at"
	SortByLikes     CommentSort = "likes"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (s CommentSort) IsValid() bool {
	return s == SortByCreatedAt || s == SortByLikes
}

func (o SortOrder) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// RoleBadge and RankBadge are the display subsets of Role and Rank embedded
// in rendered comments.
type RoleBadge struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color"`
	IsStaff     bool      `json:"is_staff"`
}

type RankBadge struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color"`
	Level       int       `json:"level"`
	Icon        string    `json:"icon"`
}

// CommentAuthor is the author block of a rendered comment. Build it through
// KnownAuthor or RemovedAuthor; author presence and comment deletion are
// independent axes, so a deleted comment may still carry a known author.
type CommentAuthor struct {
	ID       *uuid.UUID `json:"id"`
	Username string     `json:"username"`
	Removed  bool       `json:"removed"`
	Role     *RoleBadge `json:"role,omitempty"`
	Rank     *RankBadge `json:"rank,omitempty"`
}

func KnownAuthor(u *User) CommentAuthor {
	author := CommentAuthor{
		ID:       &u.ID,
		Username: u.Username,
	}
	if u.Role != nil {
		author.Role = &RoleBadge{
			ID:          u.Role.ID,
			Name:        u.Role.Name,
			DisplayName: u.Role.DisplayName,
			Color:       u.Role.Color,
			IsStaff:     u.Role.IsStaff,
		}
	}
	if u.Rank != nil {
		author.Rank = &RankBadge{
			ID:          u.Rank.ID,
			Name:        u.Rank.Name,
			DisplayName: u.Rank.DisplayName,
			Color:       u.Rank.Color,
			Level:       u.Rank.Level,
			Icon:        u.Rank.Icon,
		}
	}
	return author
}

func RemovedAuthor() CommentAuthor {
	return CommentAuthor{Username: RemovedUserLabel, Removed: true}
}

// CommentResponse is the externally visible representation of a comment.
// ViewerVote is tri-state: nil means the viewer has not voted.
type CommentResponse struct {
	ID            uuid.UUID         `json:"id"`
	PostID        uuid.UUID         `json:"post_id"`
	ParentID      *uuid.UUID        `json:"parent_id"`
	Content       string            `json:"content"`
	IsApproved    bool              `json:"is_approved"`
	IsDeleted     bool              `json:"is_deleted"`
	Author        CommentAuthor     `json:"author"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	LikesCount    int               `json:"likes_count"`
	DislikesCount int               `json:"dislikes_count"`
	ViewerVote    *bool             `json:"viewer_vote"`
	RepliesCount  int               `json:"replies_count"`
	Replies       []CommentResponse `json:"replies,omitempty"`
}

// CommentStats summarises a post's comment activity. TotalReplies is the
// subset of TotalComments with a parent.
type CommentStats struct {
	PostID            uuid.UUID `json:"post_id"`
	TotalComments     int64     `json:"total_comments"`
	TotalReplies      int64     `json:"total_replies"`
	TotalInteractions int64     `json:"total_interactions"`
}
