package services

import (
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"gorm.io/gorm"
)

// FeedService builds post listings. Pagination windows are computed over the
// set the viewer is allowed to see, never over raw rows, so page boundaries
// stay stable regardless of how much hidden content exists.
type FeedService struct {
	db      *gorm.DB
	follows *FollowService
}

func NewFeedService(db *gorm.DB, follows *FollowService) *FeedService {
	return &FeedService{db: db, follows: follows}
}

// GlobalFeed returns the posts visible to the viewer, newest first with ID as
// the tiebreak. A coarse SQL prefilter narrows candidates; the visibility
// resolver makes the final per-post decision in memory.
func (s *FeedService) GlobalFeed(viewerID uuid.UUID, page, limit int) ([]models.Post, int64, error) {
	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.Post{}).Preload("User")
	if viewerID == uuid.Nil {
		query = query.Where("privacy = ?", models.PrivacyPublic)
	} else {
		approved, err := s.follows.ApprovedFolloweeIDs(viewerID)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where(
			"privacy = ? OR user_id = ? OR (privacy = ? AND user_id IN ?)",
			models.PrivacyPublic, viewerID, models.PrivacyFollowers, idsOrNil(approved),
		)
	}

	var candidates []models.Post
	if err := query.Order("created_at DESC, id DESC").Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	visible := filterVisiblePosts(rel, candidates)
	pageItems, total := paginatePosts(visible, page, limit)
	return pageItems, total, nil
}

// UserPosts lists one author's posts as seen by the viewer.
func (s *FeedService) UserPosts(viewerID, authorID uuid.UUID, page, limit int) ([]models.Post, int64, error) {
	var author models.User
	if err := s.db.First(&author, "id = ?", authorID).Error; err != nil {
		return nil, 0, ErrUserNotFound
	}

	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, 0, err
	}

	var candidates []models.Post
	if err := s.db.Where("user_id = ?", authorID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	visible := filterVisiblePosts(rel, candidates)
	pageItems, total := paginatePosts(visible, page, limit)
	return pageItems, total, nil
}

// PostComments lists top-level comments on a post the viewer can see, oldest
// first. A hidden post reads as not found.
func (s *FeedService) PostComments(viewerID, postID uuid.UUID, page, limit int) ([]models.Comment, int64, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, 0, ErrPostNotFound
	}

	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if !visibility.CanViewPost(rel, &post) {
		return nil, 0, ErrPostNotFound
	}

	var comments []models.Comment
	if err := s.db.Where("post_id = ? AND parent_comment_id IS NULL", postID).
		Preload("User").
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	visible := make([]models.Comment, 0, len(comments))
	for i := range comments {
		if visibility.CanViewComment(rel, &comments[i], &post) {
			visible = append(visible, comments[i])
		}
	}

	pageItems, total := paginateComments(visible, page, limit)
	return pageItems, total, nil
}

// filterVisiblePosts applies the visibility policy to an ordered candidate
// slice, preserving order.
func filterVisiblePosts(rel *visibility.RelationshipSet, posts []models.Post) []models.Post {
	visible := make([]models.Post, 0, len(posts))
	for i := range posts {
		if visibility.CanViewPost(rel, &posts[i]) {
			visible = append(visible, posts[i])
		}
	}
	return visible
}

func paginatePosts(items []models.Post, page, limit int) ([]models.Post, int64) {
	total := int64(len(items))
	start := (page - 1) * limit
	if start >= len(items) {
		return []models.Post{}, total
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

// idsOrNil keeps an empty IN clause valid by substituting an impossible ID.
func idsOrNil(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return []uuid.UUID{uuid.Nil}
	}
	return ids
}
