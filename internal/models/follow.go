package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow edge status. An edge to a public account is approved at creation;
// an edge to a private account starts pending until the followee approves.
const (
	FollowStatusPending  = "pending"
	FollowStatusApproved = "approved"
)

// Follow is a directed edge follower -> followee. The unique index on the
// ordered pair makes a duplicate-insert race lose deterministically.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index" json:"followee_id"`
	Status     string    `gorm:"size:10;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
