package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet holds the three credit buckets for a user. All balances are stored
// in integer cents; conversion to euros happens once at the service boundary.
type Wallet struct {
	ID                   uint   `gorm:"primarykey"`
	UserID               uint   `gorm:"uniqueIndex;not null"`
	BalanceCents         int64  `gorm:"default:0"`
	ReferralBalanceCents int64  `gorm:"default:0"`
	RefundBalanceCents   int64  `gorm:"default:0"`
	Currency             string `gorm:"default:'EUR'"`
	Status               string `gorm:"default:'active'"`
	StatusReason         string `gorm:"default:''"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Buckets always start empty
	w.BalanceCents = 0
	w.ReferralBalanceCents = 0
	w.RefundBalanceCents = 0
	return nil
}
