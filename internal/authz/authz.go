package authz

import (
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
)

// Authorizer makes object-level decisions for guarded mutations, one method
// per action. Services call it explicitly before mutating.
type Authorizer struct{}

func New() Authorizer {
	return Authorizer{}
}

func (Authorizer) CanUpdatePost(actor *models.User, post *models.Post) bool {
	return actor.ID == post.UserID
}

// CanDeletePost allows the owner and moderators.
func (Authorizer) CanDeletePost(actor *models.User, post *models.Post) bool {
	return actor.ID == post.UserID || actor.IsModerator()
}

func (Authorizer) CanUpdateComment(actor *models.User, comment *models.Comment) bool {
	return actor.ID == comment.UserID
}

// CanDeleteComment allows the comment author, the parent post owner, and
// moderators.
func (Authorizer) CanDeleteComment(actor *models.User, comment *models.Comment, post *models.Post) bool {
	return actor.ID == comment.UserID || actor.ID == post.UserID || actor.IsModerator()
}

// CanApproveFollow: only the followee decides on a pending request.
func (Authorizer) CanApproveFollow(actorID uuid.UUID, edge *models.Follow) bool {
	return actorID == edge.FolloweeID
}

func (Authorizer) CanRemoveFollower(actorID uuid.UUID, edge *models.Follow) bool {
	return actorID == edge.FolloweeID
}

func (Authorizer) CanUpdateProfile(actor *models.User, target *models.User) bool {
	return actor.ID == target.ID
}

func (Authorizer) CanModerate(actor *models.User) bool {
	return actor.IsModerator()
}
