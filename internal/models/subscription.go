package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a pro membership period activated by a payment webhook.
type Subscription struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionID      string    `gorm:"uniqueIndex;size:255;not null" json:"transaction_id"`
	Status             string    `gorm:"not null;default:'initiated';size:50" json:"status"`
	AmountBDT          int       `gorm:"not null" json:"amount_bdt"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	User               User      `gorm:"foreignKey:UserID" json:"-"`
}
