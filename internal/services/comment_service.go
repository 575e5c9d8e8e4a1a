package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/authz"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"gorm.io/gorm"
)

type CommentService struct {
	db         *gorm.DB
	follows    *FollowService
	posts      *PostService
	moderation *ModerationService
	authz      authz.Authorizer
}

func NewCommentService(db *gorm.DB, follows *FollowService, posts *PostService, moderation *ModerationService) *CommentService {
	return &CommentService{db: db, follows: follows, posts: posts, moderation: moderation, authz: authz.New()}
}

// CreateComment adds a comment to a post the viewer can see. Replies nest one
// level: replying to a reply attaches to the reply's parent.
func (s *CommentService) CreateComment(userID, postID uuid.UUID, text string, parentID *uuid.UUID) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("comment text is required")
	}
	if len(text) > 1000 {
		return nil, validationError("comment must be 1000 characters or fewer")
	}
	if ok, reason := s.moderation.FilterContent(text); !ok {
		return nil, validationError(s.moderation.GetRejectionMessage(reason))
	}

	if _, err := s.posts.GetPost(userID, postID); err != nil {
		return nil, err
	}

	if parentID != nil {
		var parent models.Comment
		if err := s.db.First(&parent, "id = ?", *parentID).Error; err != nil {
			return nil, ErrCommentNotFound
		}
		if parent.PostID != postID {
			return nil, validationError("parent comment belongs to a different post")
		}
		if parent.ParentCommentID != nil {
			parentID = parent.ParentCommentID
		}
	}

	comment := &models.Comment{
		ID:              uuid.New(),
		PostID:          postID,
		UserID:          userID,
		Text:            text,
		ParentCommentID: parentID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(actorID, commentID uuid.UUID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("comment text is required")
	}
	if len(text) > 1000 {
		return nil, validationError("comment must be 1000 characters or fewer")
	}
	if ok, reason := s.moderation.FilterContent(text); !ok {
		return nil, validationError(s.moderation.GetRejectionMessage(reason))
	}

	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, ErrCommentNotFound
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", actorID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !s.authz.CanUpdateComment(&actor, &comment) {
		return nil, ErrNotOwner
	}

	if err := s.db.Model(&comment).Updates(map[string]interface{}{
		"text":      text,
		"is_edited": true,
	}).Error; err != nil {
		return nil, err
	}
	comment.Text = text
	comment.IsEdited = true
	return &comment, nil
}

// DeleteComment removes a comment and its direct replies. The author, the
// post owner, and moderators may delete.
func (s *CommentService) DeleteComment(actorID, commentID uuid.UUID) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return ErrCommentNotFound
	}

	var post models.Post
	if err := s.db.First(&post, "id = ?", comment.PostID).Error; err != nil {
		return ErrPostNotFound
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", actorID).Error; err != nil {
		return ErrUserNotFound
	}
	if !s.authz.CanDeleteComment(&actor, &comment, &post) {
		return ErrNotOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var replies int64
		if err := tx.Model(&models.Comment{}).
			Where("parent_comment_id = ?", commentID).
			Count(&replies).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_comment_id = ?", commentID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
			Update("comment_count", gorm.Expr("comment_count - ?", replies+1)).Error
	})
}

// Replies lists direct replies to a comment, oldest first, provided the
// viewer can see the parent post.
func (s *CommentService) Replies(viewerID, commentID uuid.UUID, page, limit int) ([]models.Comment, int64, error) {
	var parent models.Comment
	if err := s.db.First(&parent, "id = ?", commentID).Error; err != nil {
		return nil, 0, ErrCommentNotFound
	}

	post, err := s.posts.GetPost(viewerID, parent.PostID)
	if err != nil {
		return nil, 0, ErrCommentNotFound
	}

	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, 0, err
	}

	var replies []models.Comment
	if err := s.db.Where("parent_comment_id = ?", commentID).
		Preload("User").
		Order("created_at ASC, id ASC").
		Find(&replies).Error; err != nil {
		return nil, 0, err
	}

	visible := make([]models.Comment, 0, len(replies))
	for i := range replies {
		if visibility.CanViewComment(rel, &replies[i], post) {
			visible = append(visible, replies[i])
		}
	}

	pageItems, total := paginateComments(visible, page, limit)
	return pageItems, total, nil
}

func paginateComments(items []models.Comment, page, limit int) ([]models.Comment, int64) {
	total := int64(len(items))
	start := (page - 1) * limit
	if start >= len(items) {
		return []models.Comment{}, total
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
