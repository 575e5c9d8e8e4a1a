package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/authz"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"gorm.io/gorm"
)

type PostService struct {
	db         *gorm.DB
	follows    *FollowService
	moderation *ModerationService
	authz      authz.Authorizer
}

func NewPostService(db *gorm.DB, follows *FollowService, moderation *ModerationService) *PostService {
	return &PostService{db: db, follows: follows, moderation: moderation, authz: authz.New()}
}

func (s *PostService) CreatePost(userID uuid.UUID, req *dto.CreatePostRequest) (*models.Post, error) {
	req.Caption = normalizeCaption(req.Caption)
	if len(req.Caption) > 2200 {
		return nil, validationError("caption must be 2200 characters or fewer")
	}
	if req.Caption == "" && req.ImageURL == "" && req.VideoURL == "" {
		return nil, validationError("post must have a caption, image, or video")
	}
	privacy := req.Privacy
	if privacy == "" {
		privacy = models.PrivacyPublic
	}
	if !models.ValidPrivacy(privacy) {
		return nil, validationError("privacy must be public, followers, or private")
	}
	if ok, reason := s.moderation.FilterContent(req.Caption); !ok {
		return nil, validationError(s.moderation.GetRejectionMessage(reason))
	}

	post := &models.Post{
		ID:       uuid.New(),
		UserID:   userID,
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
		Location: req.Location,
		Privacy:  privacy,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost loads a post and applies the visibility policy. Hidden posts read
// as not found so their existence does not leak.
func (s *PostService) GetPost(viewerID, postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, err
	}
	if !visibility.CanViewPost(rel, &post) {
		return nil, ErrPostNotFound
	}

	return &post, nil
}

func (s *PostService) UpdatePost(actorID, postID uuid.UUID, req *dto.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", actorID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !s.authz.CanUpdatePost(&actor, &post) {
		return nil, ErrNotOwner
	}

	if req.Caption != nil {
		if len(*req.Caption) > 2200 {
			return nil, validationError("caption must be 2200 characters or fewer")
		}
		if ok, reason := s.moderation.FilterContent(*req.Caption); !ok {
			return nil, validationError(s.moderation.GetRejectionMessage(reason))
		}
		post.Caption = *req.Caption
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.Privacy != nil {
		if !models.ValidPrivacy(*req.Privacy) {
			return nil, validationError("privacy must be public, followers, or private")
		}
		post.Privacy = *req.Privacy
	}

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post and cascades to its comments and reactions.
func (s *PostService) DeletePost(actorID, postID uuid.UUID) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return ErrPostNotFound
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", actorID).Error; err != nil {
		return ErrUserNotFound
	}
	if !s.authz.CanDeletePost(&actor, &post) {
		return ErrNotOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("post_id = ?", postID).Delete(&models.Comment{})
		tx.Where("post_id = ?", postID).Delete(&models.Reaction{})
		return tx.Delete(&post).Error
	})
}

// React toggles or switches a reaction: same type removes it, a different
// type replaces the existing one.
func (s *PostService) React(viewerID, postID uuid.UUID, reactionType string) (string, error) {
	if !models.ValidReaction(reactionType) {
		return "", validationError("invalid reaction type")
	}

	// Reacting requires seeing the post.
	if _, err := s.GetPost(viewerID, postID); err != nil {
		return "", err
	}

	var existing models.Reaction
	err := s.db.Where("user_id = ? AND post_id = ?", viewerID, postID).First(&existing).Error
	if err == nil {
		if existing.Type == reactionType {
			if err := s.db.Delete(&existing).Error; err != nil {
				return "", err
			}
			s.db.Model(&models.Post{}).Where("id = ?", postID).
				Update("reaction_count", gorm.Expr("reaction_count - 1"))
			return "removed", nil
		}
		if err := s.db.Model(&existing).Update("type", reactionType).Error; err != nil {
			return "", err
		}
		return "updated", nil
	}

	reaction := &models.Reaction{
		ID:     uuid.New(),
		UserID: viewerID,
		PostID: postID,
		Type:   reactionType,
	}
	if err := s.db.Create(reaction).Error; err != nil {
		return "", err
	}
	s.db.Model(&models.Post{}).Where("id = ?", postID).
		Update("reaction_count", gorm.Expr("reaction_count + 1"))
	return "added", nil
}

func (s *PostService) RemoveReaction(viewerID, postID uuid.UUID) error {
	result := s.db.Where("user_id = ? AND post_id = ?", viewerID, postID).
		Delete(&models.Reaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return validationError("no reaction found to remove")
	}
	s.db.Model(&models.Post{}).Where("id = ?", postID).
		Update("reaction_count", gorm.Expr("reaction_count - 1"))
	return nil
}

// Reactions lists a post's reactions, optionally filtered by type.
func (s *PostService) Reactions(viewerID, postID uuid.UUID, reactionType string) ([]models.Reaction, error) {
	if _, err := s.GetPost(viewerID, postID); err != nil {
		return nil, err
	}

	query := s.db.Where("post_id = ?", postID).Order("created_at DESC")
	if reactionType != "" {
		query = query.Where("type = ?", reactionType)
	}

	var reactions []models.Reaction
	err := query.Preload("User").Find(&reactions).Error
	return reactions, err
}

// normalizeCaption trims surrounding whitespace; empty captions stay allowed
// when media is attached.
func normalizeCaption(caption string) string {
	return strings.TrimSpace(caption)
}
