package models

import (
	"time"
)

// Wallet transaction types
const (
	TransactionTypeBookingDebit   = "booking_debit"
	TransactionTypeReferralCredit = "referral_credit"
	TransactionTypeRefundCredit   = "refund_credit"
	TransactionTypeReferralExpiry = "referral_expiry"
	TransactionTypeTopup          = "topup"
)

// Wallet bucket names used in transaction records
const (
	BucketGeneral  = "general"
	BucketReferral = "referral"
	BucketRefund   = "refund"
)

// Transaction records a single movement on one wallet bucket.
type Transaction struct {
	ID          uint   `gorm:"primarykey"`
	WalletID    uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Type        string `gorm:"not null"`
	Bucket      string `gorm:"not null"`
	AmountCents int64  `gorm:"not null"`
	Description string
	Status      string `gorm:"not null;default:'completed'"`
	Reference   string // links related movements (e.g. one booking)
	Metadata    JSON   `gorm:"type:jsonb"`
	Currency    string `gorm:"default:'EUR'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
