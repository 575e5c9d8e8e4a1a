package visibility

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanViewPost(t *testing.T) {
	owner := uuid.New()
	follower := uuid.New()
	stranger := uuid.New()
	blocked := uuid.New()

	post := func(privacy string) *models.Post {
		return &models.Post{ID: uuid.New(), UserID: owner, Privacy: privacy}
	}

	t.Run("owner sees everything", func(t *testing.T) {
		rel := NewRelationshipSet(owner, nil, nil)
		assert.True(t, CanViewPost(rel, post(models.PrivacyPublic)))
		assert.True(t, CanViewPost(rel, post(models.PrivacyFollowers)))
		assert.True(t, CanViewPost(rel, post(models.PrivacyPrivate)))
	})

	t.Run("public visible to all", func(t *testing.T) {
		assert.True(t, CanViewPost(NewRelationshipSet(stranger, nil, nil), post(models.PrivacyPublic)))
		assert.True(t, CanViewPost(Anonymous(), post(models.PrivacyPublic)))
	})

	t.Run("followers-only requires approved edge", func(t *testing.T) {
		withEdge := NewRelationshipSet(follower, []uuid.UUID{owner}, nil)
		withoutEdge := NewRelationshipSet(stranger, nil, nil)
		assert.True(t, CanViewPost(withEdge, post(models.PrivacyFollowers)))
		assert.False(t, CanViewPost(withoutEdge, post(models.PrivacyFollowers)))
		assert.False(t, CanViewPost(Anonymous(), post(models.PrivacyFollowers)))
	})

	t.Run("private hidden from everyone but owner", func(t *testing.T) {
		withEdge := NewRelationshipSet(follower, []uuid.UUID{owner}, nil)
		assert.False(t, CanViewPost(withEdge, post(models.PrivacyPrivate)))
		assert.False(t, CanViewPost(Anonymous(), post(models.PrivacyPrivate)))
	})

	t.Run("block overrides everything", func(t *testing.T) {
		rel := NewRelationshipSet(blocked, []uuid.UUID{owner}, []uuid.UUID{owner})
		assert.False(t, CanViewPost(rel, post(models.PrivacyPublic)))
		assert.False(t, CanViewPost(rel, post(models.PrivacyFollowers)))
	})

	t.Run("unknown privacy value denies", func(t *testing.T) {
		rel := NewRelationshipSet(stranger, nil, nil)
		assert.False(t, CanViewPost(rel, post("friends-of-friends")))
	})
}

func TestCanViewComment(t *testing.T) {
	postOwner := uuid.New()
	commenter := uuid.New()
	viewer := uuid.New()

	parent := &models.Post{ID: uuid.New(), UserID: postOwner, Privacy: models.PrivacyFollowers}
	comment := &models.Comment{ID: uuid.New(), PostID: parent.ID, UserID: commenter}

	t.Run("bounded by parent post", func(t *testing.T) {
		noEdge := NewRelationshipSet(viewer, nil, nil)
		assert.False(t, CanViewComment(noEdge, comment, parent))

		withEdge := NewRelationshipSet(viewer, []uuid.UUID{postOwner}, nil)
		assert.True(t, CanViewComment(withEdge, comment, parent))
	})

	t.Run("block with comment author hides the comment", func(t *testing.T) {
		rel := NewRelationshipSet(viewer, []uuid.UUID{postOwner}, []uuid.UUID{commenter})
		assert.False(t, CanViewComment(rel, comment, parent))
	})
}

func TestCanViewProfile(t *testing.T) {
	target := &models.User{ID: uuid.New(), IsPrivate: true}
	open := &models.User{ID: uuid.New(), IsPrivate: false}
	viewer := uuid.New()

	t.Run("public profile visible to anyone", func(t *testing.T) {
		assert.True(t, CanViewProfile(NewRelationshipSet(viewer, nil, nil), open))
		assert.True(t, CanViewProfile(Anonymous(), open))
	})

	t.Run("private profile needs approved edge", func(t *testing.T) {
		assert.False(t, CanViewProfile(NewRelationshipSet(viewer, nil, nil), target))
		assert.True(t, CanViewProfile(NewRelationshipSet(viewer, []uuid.UUID{target.ID}, nil), target))
		assert.True(t, CanViewProfile(NewRelationshipSet(target.ID, nil, nil), target))
	})

	t.Run("blocked viewer gets nothing", func(t *testing.T) {
		rel := NewRelationshipSet(viewer, []uuid.UUID{open.ID}, []uuid.UUID{open.ID})
		assert.False(t, CanViewProfile(rel, open))
	})
}
