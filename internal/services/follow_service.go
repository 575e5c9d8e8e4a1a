package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/authz"
	"github.com/snapverse/snapverse-api/internal/models"
	"gorm.io/gorm"
)

// FollowService owns the relationship ledger and its state machine:
// none -> pending -> approved (private followee), none -> approved (public
// followee), deletion back to none from either state.
type FollowService struct {
	db    *gorm.DB
	authz authz.Authorizer
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db, authz: authz.New()}
}

// initialStatus is the status a fresh edge gets at creation time.
func initialStatus(followeeIsPrivate bool) string {
	if followeeIsPrivate {
		return models.FollowStatusPending
	}
	return models.FollowStatusApproved
}

// RequestFollow creates an edge follower -> followee. The unique index on the
// pair decides races: the losing insert comes back as ErrAlreadyFollowing.
func (s *FollowService) RequestFollow(followerID, followeeID uuid.UUID) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	var followee models.User
	if err := s.db.First(&followee, "id = ?", followeeID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	blocked, err := s.blockedBetween(followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}

	edge := &models.Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     initialStatus(followee.IsPrivate),
	}

	if err := s.db.Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return edge, nil
}

// ApproveFollow transitions a pending edge to approved. Only the followee may
// act; acting on a non-pending edge is an invalid transition.
func (s *FollowService) ApproveFollow(actorID, followID uuid.UUID) (*models.Follow, error) {
	var edge models.Follow
	if err := s.db.First(&edge, "id = ?", followID).Error; err != nil {
		return nil, ErrFollowNotFound
	}

	if !s.authz.CanApproveFollow(actorID, &edge) {
		return nil, ErrNotOwner
	}
	if edge.Status != models.FollowStatusPending {
		return nil, ErrNotPending
	}

	if err := s.db.Model(&edge).Update("status", models.FollowStatusApproved).Error; err != nil {
		return nil, err
	}
	edge.Status = models.FollowStatusApproved
	return &edge, nil
}

// RejectFollow deletes a pending edge. Same gating as approval.
func (s *FollowService) RejectFollow(actorID, followID uuid.UUID) error {
	var edge models.Follow
	if err := s.db.First(&edge, "id = ?", followID).Error; err != nil {
		return ErrFollowNotFound
	}

	if !s.authz.CanApproveFollow(actorID, &edge) {
		return ErrNotOwner
	}
	if edge.Status != models.FollowStatusPending {
		return ErrNotPending
	}

	return s.db.Delete(&edge).Error
}

// Unfollow deletes the edge follower -> followee regardless of status.
func (s *FollowService) Unfollow(followerID, followeeID uuid.UUID) error {
	result := s.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// RemoveFollower is the followee-side deletion of an incoming edge.
func (s *FollowService) RemoveFollower(followeeID, followerID uuid.UUID) error {
	result := s.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (s *FollowService) Followers(userID uuid.UUID, page, limit int) ([]models.Follow, int64, error) {
	return s.listEdges("followee_id = ? AND status = ?", userID, models.FollowStatusApproved, page, limit)
}

func (s *FollowService) Following(userID uuid.UUID, page, limit int) ([]models.Follow, int64, error) {
	return s.listEdges("follower_id = ? AND status = ?", userID, models.FollowStatusApproved, page, limit)
}

// PendingRequests lists incoming pending edges for the followee.
func (s *FollowService) PendingRequests(userID uuid.UUID, page, limit int) ([]models.Follow, int64, error) {
	return s.listEdges("followee_id = ? AND status = ?", userID, models.FollowStatusPending, page, limit)
}

func (s *FollowService) listEdges(cond string, userID uuid.UUID, status string, page, limit int) ([]models.Follow, int64, error) {
	var edges []models.Follow
	var total int64

	query := s.db.Model(&models.Follow{}).Where(cond, userID, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Follower").
		Preload("Followee").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&edges).Error
	return edges, total, err
}

// Stats returns follower/following/pending counts for a user.
func (s *FollowService) Stats(userID uuid.UUID) (followers, following, pending int64, err error) {
	if err = s.db.Model(&models.Follow{}).
		Where("followee_id = ? AND status = ?", userID, models.FollowStatusApproved).
		Count(&followers).Error; err != nil {
		return
	}
	if err = s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND status = ?", userID, models.FollowStatusApproved).
		Count(&following).Error; err != nil {
		return
	}
	err = s.db.Model(&models.Follow{}).
		Where("followee_id = ? AND status = ?", userID, models.FollowStatusPending).
		Count(&pending).Error
	return
}

// ApprovedFolloweeIDs batch-fetches the IDs of everyone the viewer follows
// with an approved edge, for the visibility resolver.
func (s *FollowService) ApprovedFolloweeIDs(viewerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND status = ?", viewerID, models.FollowStatusApproved).
		Pluck("followee_id", &ids).Error
	return ids, err
}

// HasApprovedEdge reports whether follower -> followee exists approved.
func (s *FollowService) HasApprovedEdge(followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ? AND status = ?",
			followerID, followeeID, models.FollowStatusApproved).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowService) blockedBetween(a, b uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}
