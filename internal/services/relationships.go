package services

import (
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"gorm.io/gorm"
)

// relationshipSetFor batch-fetches the viewer's approved followees and block
// partners so visibility checks over a whole result set need no further
// queries.
func relationshipSetFor(db *gorm.DB, follows *FollowService, viewerID uuid.UUID) (*visibility.RelationshipSet, error) {
	if viewerID == uuid.Nil {
		return visibility.Anonymous(), nil
	}
	approved, err := follows.ApprovedFolloweeIDs(viewerID)
	if err != nil {
		return nil, err
	}
	blocked, err := blockedUserIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	return visibility.NewRelationshipSet(viewerID, approved, blocked), nil
}

// blockedUserIDs returns users blocked in either direction relative to userID.
func blockedUserIDs(db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := db.Where("blocker_id = ? OR blocked_id = ?", userID, userID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		if b.BlockerID == userID {
			ids = append(ids, b.BlockedID)
		} else {
			ids = append(ids, b.BlockerID)
		}
	}
	return ids, nil
}
