package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPostAuthorization(t *testing.T) {
	az := New()
	owner := &models.User{ID: uuid.New(), Role: models.RoleUser}
	other := &models.User{ID: uuid.New(), Role: models.RoleUser}
	mod := &models.User{ID: uuid.New(), Role: models.RoleModerator}
	post := &models.Post{ID: uuid.New(), UserID: owner.ID}

	assert.True(t, az.CanUpdatePost(owner, post))
	assert.False(t, az.CanUpdatePost(other, post))
	assert.False(t, az.CanUpdatePost(mod, post), "moderators cannot edit content, only remove it")

	assert.True(t, az.CanDeletePost(owner, post))
	assert.False(t, az.CanDeletePost(other, post))
	assert.True(t, az.CanDeletePost(mod, post))
}

func TestCommentAuthorization(t *testing.T) {
	az := New()
	postOwner := &models.User{ID: uuid.New(), Role: models.RoleUser}
	author := &models.User{ID: uuid.New(), Role: models.RoleUser}
	other := &models.User{ID: uuid.New(), Role: models.RoleUser}
	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}

	post := &models.Post{ID: uuid.New(), UserID: postOwner.ID}
	comment := &models.Comment{ID: uuid.New(), PostID: post.ID, UserID: author.ID}

	assert.True(t, az.CanUpdateComment(author, comment))
	assert.False(t, az.CanUpdateComment(postOwner, comment))

	assert.True(t, az.CanDeleteComment(author, comment, post))
	assert.True(t, az.CanDeleteComment(postOwner, comment, post))
	assert.True(t, az.CanDeleteComment(admin, comment, post))
	assert.False(t, az.CanDeleteComment(other, comment, post))
}

func TestFollowAuthorization(t *testing.T) {
	az := New()
	follower := uuid.New()
	followee := uuid.New()
	edge := &models.Follow{ID: uuid.New(), FollowerID: follower, FolloweeID: followee}

	assert.True(t, az.CanApproveFollow(followee, edge))
	assert.False(t, az.CanApproveFollow(follower, edge), "the requester cannot approve their own request")
	assert.False(t, az.CanApproveFollow(uuid.New(), edge))

	assert.True(t, az.CanRemoveFollower(followee, edge))
	assert.False(t, az.CanRemoveFollower(follower, edge))
}
