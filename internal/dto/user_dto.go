package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileResponse is the viewer-shaped profile. The minimal card fields are
// always present; the rest are filled only when Full is true.
type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	IsPrivate      bool      `json:"is_private"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`

	Full               bool   `json:"full"`
	Bio                string `json:"bio,omitempty"`
	CoverPhoto         string `json:"cover_photo,omitempty"`
	Location           string `json:"location,omitempty"`
	Gender             string `json:"gender,omitempty"`
	RelationshipStatus string `json:"relationship_status,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName          *string    `json:"first_name"`
	LastName           *string    `json:"last_name"`
	Bio                *string    `json:"bio"`
	Location           *string    `json:"location"`
	PhoneNumber        *string    `json:"phone_number"`
	Gender             *string    `json:"gender"`
	RelationshipStatus *string    `json:"relationship_status"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
}

type SetPrivacyRequest struct {
	IsPrivate bool `json:"is_private"`
}
