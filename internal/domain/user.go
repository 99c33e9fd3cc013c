package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User as consumed by the comment and rank subsystem. The account itself is
// owned by the identity subsystem; only the fields this core reads are here.
type User struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	Username           string     `json:"username" db:"username"`
	Email              string     `json:"email" db:"email"`
	IsActive           bool       `json:"is_active" db:"is_active"`
	IsAdmin            bool       `json:"is_admin" db:"is_admin"`
	TotalComments      int        `json:"total_comments" db:"total_comments"`
	TotalLikesReceived int        `json:"total_likes_received" db:"total_likes_received"`
	RoleID             *uuid.UUID `json:"role_id" db:"role_id"`
	RankID             *uuid.UUID `json:"rank_id" db:"rank_id"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	Role *Role `json:"role,omitempty"`
	Rank *Rank `json:"rank,omitempty"`
}

// Role is the capability tier, an axis independent from Rank.
type Role struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Description string    `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"`
	IsStaff     bool      `json:"is_staff" db:"is_staff"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RankRequirements are the activity thresholds a user must meet to hold a
// rank. Stored as jsonb; keys other than the two known counters are ignored.
type RankRequirements struct {
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
}

func (r RankRequirements) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RankRequirements) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = RankRequirements{}
		return nil
	default:
		return fmt.Errorf("unsupported requirements type %T", src)
	}
}

// Rank is the reputation tier. Level is a strict total order over the
// catalog.
type Rank struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	Name         string           `json:"name" db:"name"`
	DisplayName  string           `json:"display_name" db:"display_name"`
	Description  string           `json:"description" db:"description"`
	Color        string           `json:"color" db:"color"`
	Icon         string           `json:"icon" db:"icon"`
	Level        int              `json:"level" db:"level"`
	Requirements RankRequirements `json:"requirements" db:"requirements"`
	IsActive     bool             `json:"is_active" db:"is_active"`
}

// SatisfiedBy reports whether a user's counters meet every requirement
// threshold of this rank.
func (r *Rank) SatisfiedBy(totalComments, totalLikesReceived int) bool {
	return totalComments >= r.Requirements.Comments &&
		totalLikesReceived >= r.Requirements.Likes
}

// PromotionResult is the outcome of a rank evaluation. NewRank is set only
// when Promoted is true.
type PromotionResult struct {
	Promoted bool   `json:"upgraded"`
	OldRank  string `json:"old_rank,omitempty"`
	NewRank  *Rank  `json:"new_rank,omitempty"`
}
