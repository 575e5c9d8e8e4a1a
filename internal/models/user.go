package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User is a registered account. Username is the public handle, email is the
// login credential. IsPrivate gates the follow approval workflow.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;default:'user'" json:"role"`

	FirstName          string     `gorm:"size:100" json:"first_name"`
	LastName           string     `gorm:"size:100" json:"last_name"`
	Bio                string     `gorm:"size:200" json:"bio"`
	ProfilePicture     string     `gorm:"size:500" json:"profile_picture"`
	CoverPhoto         string     `gorm:"size:500" json:"cover_photo"`
	Location           string     `gorm:"size:100" json:"location"`
	PhoneNumber        string     `gorm:"size:15" json:"phone_number,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             string     `gorm:"size:10" json:"gender,omitempty"`
	RelationshipStatus string     `gorm:"size:20" json:"relationship_status,omitempty"`

	IsPrivate bool `gorm:"default:false;index" json:"is_private"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsModerator reports whether the user may act on moderation surfaces.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}

var GenderChoices = []string{"male", "female", "other"}

var RelationshipChoices = []string{
	"single", "in_a_relationship", "married", "divorced", "widowed",
}
