package models

import "time"

// Referral credit statuses
const (
	ReferralCreditActive  = "active"
	ReferralCreditSpent   = "spent"
	ReferralCreditExpired = "expired"
)

// ReferralCredit tracks a single grant of referral credit to a referrer.
// The granted amount also lands on the wallet's referral bucket; this record
// exists so the nightly expiry job knows what to claw back and when.
type ReferralCredit struct {
	ID             uint   `gorm:"primarykey"`
	ReferrerID     uint   `gorm:"not null;index"`
	ReferredUserID uint   `gorm:"not null;index"`
	AmountCents    int64  `gorm:"not null"`
	Status         string `gorm:"not null;default:'active'"`
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
