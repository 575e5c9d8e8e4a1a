package models

import (
	"time"

	"github.com/google/uuid"
)

var ReactionChoices = []string{"like", "dislike", "love", "haha", "wow", "sad", "angry"}

// Reaction is one user's reaction to one post; the pair is unique.
type Reaction struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_post" json:"user_id"`
	PostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_post;index" json:"post_id"`
	Type   string    `gorm:"size:10;not null" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func ValidReaction(t string) bool {
	for _, c := range ReactionChoices {
		if t == c {
			return true
		}
	}
	return false
}
