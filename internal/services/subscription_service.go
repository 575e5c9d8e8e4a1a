package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/config"
	"github.com/snapverse/snapverse-api/internal/models"
	"gorm.io/gorm"
)

// SubscriptionService manages pro memberships paid through the SSLCommerz
// gateway: an initiated transaction is activated or failed by the gateway's
// IPN callback.
type SubscriptionService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSubscriptionService(db *gorm.DB, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{db: db, cfg: cfg}
}

// InitiatePro opens a payment session for the pro plan. The transaction ID
// encodes the user and initiation time so the IPN callback can be matched
// back without extra state.
func (s *SubscriptionService) InitiatePro(userID uuid.UUID) (*models.Subscription, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	active, err := s.activeSubscription(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: subscription already active", ErrConflict)
	}

	sub := &models.Subscription{
		ID:            uuid.New(),
		UserID:        userID,
		TransactionID: fmt.Sprintf("pro_%s_%d", userID, time.Now().Unix()),
		Status:        "initiated",
		AmountBDT:     s.cfg.ProPriceBDT,
	}

	if err := s.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// HandleWebhook processes the gateway's IPN callback for a transaction.
func (s *SubscriptionService) HandleWebhook(tranID, status string) error {
	var sub models.Subscription
	if err := s.db.Where("transaction_id = ?", tranID).First(&sub).Error; err != nil {
		return ErrTransactionNotFound
	}

	switch status {
	case "VALID", "VALIDATED":
		return s.activate(&sub)
	case "FAILED":
		return s.db.Model(&sub).Update("status", "failed").Error
	case "CANCELLED":
		return s.db.Model(&sub).Update("status", "cancelled").Error
	default:
		return validationError("unknown payment status")
	}
}

func (s *SubscriptionService) activate(sub *models.Subscription) error {
	if sub.Status == "active" {
		// Gateways retry IPN deliveries; a second activation is a no-op.
		return nil
	}
	if sub.Status != "initiated" {
		return fmt.Errorf("%w: transaction already settled as %s", ErrInvalidState, sub.Status)
	}

	now := time.Now().UTC()
	return s.db.Model(sub).Updates(map[string]interface{}{
		"status":               "active",
		"current_period_start": now,
		"current_period_end":   now.AddDate(0, 0, s.cfg.ProPeriodDays),
	}).Error
}

// Status returns the user's current subscription, lazily expiring a lapsed
// active period on read.
func (s *SubscriptionService) Status(userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if sub.Status == "active" && time.Now().After(sub.CurrentPeriodEnd) {
		if err := s.db.Model(&sub).Update("status", "expired").Error; err != nil {
			return nil, err
		}
		sub.Status = "expired"
	}
	return &sub, nil
}

// IsPro reports whether the user has an unexpired active subscription.
func (s *SubscriptionService) IsPro(userID uuid.UUID) (bool, error) {
	sub, err := s.activeSubscription(userID)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}

func (s *SubscriptionService) activeSubscription(userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Where("user_id = ? AND status = ? AND current_period_end > ?",
		userID, "active", time.Now()).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
