package visibility

import (
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
)

// RelationshipSet is the viewer's relationship state against a set of content
// owners, batch-fetched before filtering so that per-item decisions never
// touch storage.
type RelationshipSet struct {
	viewer    uuid.UUID
	anonymous bool
	approved  map[uuid.UUID]struct{}
	blocked   map[uuid.UUID]struct{}
}

// NewRelationshipSet builds the set for an authenticated viewer. approved
// holds the IDs of users the viewer follows with an approved edge; blocked
// holds users with a block in either direction.
func NewRelationshipSet(viewer uuid.UUID, approved, blocked []uuid.UUID) *RelationshipSet {
	rs := &RelationshipSet{
		viewer:   viewer,
		approved: make(map[uuid.UUID]struct{}, len(approved)),
		blocked:  make(map[uuid.UUID]struct{}, len(blocked)),
	}
	for _, id := range approved {
		rs.approved[id] = struct{}{}
	}
	for _, id := range blocked {
		rs.blocked[id] = struct{}{}
	}
	return rs
}

// Anonymous returns the set for an unauthenticated viewer, who sees public
// content only.
func Anonymous() *RelationshipSet {
	return &RelationshipSet{anonymous: true}
}

func (r *RelationshipSet) Viewer() uuid.UUID { return r.viewer }

func (r *RelationshipSet) IsOwner(ownerID uuid.UUID) bool {
	return !r.anonymous && r.viewer == ownerID
}

func (r *RelationshipSet) Follows(ownerID uuid.UUID) bool {
	if r.anonymous {
		return false
	}
	_, ok := r.approved[ownerID]
	return ok
}

func (r *RelationshipSet) BlockedWith(ownerID uuid.UUID) bool {
	if r.anonymous {
		return false
	}
	_, ok := r.blocked[ownerID]
	return ok
}

// CanViewPost decides whether the viewer may see a post. Pure: no side
// effects, no queries. Policy order: blocks, owner, public, private,
// followers-only.
func CanViewPost(rel *RelationshipSet, post *models.Post) bool {
	if rel.BlockedWith(post.UserID) {
		return false
	}
	if rel.IsOwner(post.UserID) {
		return true
	}
	switch post.Privacy {
	case models.PrivacyPublic:
		return true
	case models.PrivacyPrivate:
		return false
	case models.PrivacyFollowers:
		return rel.Follows(post.UserID)
	}
	return false
}

// CanViewComment decides whether the viewer may see a comment. A comment is
// never more visible than its parent post.
func CanViewComment(rel *RelationshipSet, comment *models.Comment, parent *models.Post) bool {
	if !CanViewPost(rel, parent) {
		return false
	}
	if rel.BlockedWith(comment.UserID) {
		return false
	}
	return true
}

// CanViewProfile decides whether the viewer may see a user's full profile.
// Private accounts show full profiles only to themselves and approved
// followers; everyone else gets the minimal card.
func CanViewProfile(rel *RelationshipSet, user *models.User) bool {
	if rel.BlockedWith(user.ID) {
		return false
	}
	if rel.IsOwner(user.ID) {
		return true
	}
	if !user.IsPrivate {
		return true
	}
	return rel.Follows(user.ID)
}
