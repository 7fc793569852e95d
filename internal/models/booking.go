package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is the persisted record of a paid reservation. It is materialized
// by the payment webhook, never by the checkout request itself.
type Booking struct {
	gorm.Model
	Reference        string     `gorm:"uniqueIndex;not null"` // external payment reference
	ListingID        uint       `gorm:"not null;index"`
	Listing          *Listing   `gorm:"foreignKey:ListingID"`
	RenterID         uint       `gorm:"not null;index"`
	HubberID         uint       `gorm:"not null;index"`
	PriceUnit        string     `gorm:"not null"`
	DurationUnits    int        `gorm:"not null"`
	StartDate        time.Time
	EndDate          *time.Time
	Subtotal         float64    `gorm:"not null"`
	CleaningFee      float64    `gorm:"default:0"`
	Deposit          float64    `gorm:"default:0"`
	RenterServiceFee float64    `gorm:"not null"`
	HubberServiceFee float64    `gorm:"not null"`
	HubberNet        float64    `gorm:"not null"`
	Total            float64    `gorm:"not null"`
	WalletUsed       float64    `gorm:"default:0"`
	CardCharged      float64    `gorm:"default:0"`
	Status           string     `gorm:"not null;default:'confirmed'"`
}
