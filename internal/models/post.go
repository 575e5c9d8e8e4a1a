package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post privacy scopes.
const (
	PrivacyPublic    = "public"
	PrivacyFollowers = "followers"
	PrivacyPrivate   = "private"
)

var PrivacyChoices = []string{PrivacyPublic, PrivacyFollowers, PrivacyPrivate}

// Post is a content item owned by one user.
type Post struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Caption  string    `gorm:"size:2200" json:"caption"`
	ImageURL string    `gorm:"size:500" json:"image_url,omitempty"`
	VideoURL string    `gorm:"size:500" json:"video_url,omitempty"`
	Location string    `gorm:"size:100" json:"location,omitempty"`
	Privacy  string    `gorm:"size:10;not null;default:'public';index" json:"privacy"`

	CommentCount  int `gorm:"default:0" json:"comment_count"`
	ReactionCount int `gorm:"default:0" json:"reaction_count"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func ValidPrivacy(p string) bool {
	for _, c := range PrivacyChoices {
		if p == c {
			return true
		}
	}
	return false
}
