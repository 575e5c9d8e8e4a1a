package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterVisiblePosts(t *testing.T) {
	owner := uuid.New()
	followed := uuid.New()
	blocked := uuid.New()
	viewer := uuid.New()

	now := time.Now()
	posts := []models.Post{
		{ID: uuid.New(), UserID: owner, Privacy: models.PrivacyPublic, CreatedAt: now},
		{ID: uuid.New(), UserID: followed, Privacy: models.PrivacyFollowers, CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), UserID: owner, Privacy: models.PrivacyFollowers, CreatedAt: now.Add(-2 * time.Minute)},
		{ID: uuid.New(), UserID: owner, Privacy: models.PrivacyPrivate, CreatedAt: now.Add(-3 * time.Minute)},
		{ID: uuid.New(), UserID: blocked, Privacy: models.PrivacyPublic, CreatedAt: now.Add(-4 * time.Minute)},
	}

	rel := visibility.NewRelationshipSet(viewer, []uuid.UUID{followed}, []uuid.UUID{blocked})
	visible := filterVisiblePosts(rel, posts)

	require.Len(t, visible, 2)
	assert.Equal(t, posts[0].ID, visible[0].ID, "public post survives")
	assert.Equal(t, posts[1].ID, visible[1].ID, "followers-only from a followed author survives")
}

func TestFilterVisiblePostsPreservesOrder(t *testing.T) {
	author := uuid.New()
	viewer := uuid.New()

	posts := make([]models.Post, 5)
	for i := range posts {
		posts[i] = models.Post{ID: uuid.New(), UserID: author, Privacy: models.PrivacyPublic}
	}

	visible := filterVisiblePosts(visibility.NewRelationshipSet(viewer, nil, nil), posts)
	require.Len(t, visible, len(posts))
	for i := range posts {
		assert.Equal(t, posts[i].ID, visible[i].ID)
	}
}

func TestPaginatePosts(t *testing.T) {
	items := make([]models.Post, 25)
	for i := range items {
		items[i] = models.Post{ID: uuid.New()}
	}

	t.Run("windows are computed over the filtered set", func(t *testing.T) {
		page1, total := paginatePosts(items, 1, 10)
		assert.Equal(t, int64(25), total)
		require.Len(t, page1, 10)
		assert.Equal(t, items[0].ID, page1[0].ID)

		page3, _ := paginatePosts(items, 3, 10)
		require.Len(t, page3, 5)
		assert.Equal(t, items[20].ID, page3[0].ID)
	})

	t.Run("no overlap between adjacent pages", func(t *testing.T) {
		page1, _ := paginatePosts(items, 1, 10)
		page2, _ := paginatePosts(items, 2, 10)
		seen := map[uuid.UUID]bool{}
		for _, p := range page1 {
			seen[p.ID] = true
		}
		for _, p := range page2 {
			assert.False(t, seen[p.ID])
		}
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		out, total := paginatePosts(items, 99, 10)
		assert.Empty(t, out)
		assert.Equal(t, int64(25), total)
	})

	t.Run("empty input", func(t *testing.T) {
		out, total := paginatePosts(nil, 1, 10)
		assert.Empty(t, out)
		assert.Zero(t, total)
	})
}

func TestPaginateComments(t *testing.T) {
	items := make([]models.Comment, 3)
	for i := range items {
		items[i] = models.Comment{ID: uuid.New()}
	}

	page, total := paginateComments(items, 1, 20)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 3)

	partial, _ := paginateComments(items, 2, 2)
	require.Len(t, partial, 1)
	assert.Equal(t, items[2].ID, partial[0].ID)
}
