package models

import "time"

// Hard-coded fee fallbacks, used whenever no configuration row can be loaded.
// Pricing must never fail because configuration is absent.
const (
	DefaultRenterPercentage      = 10.0
	DefaultHubberPercentage      = 10.0
	DefaultSuperHubberPercentage = 5.0
	DefaultRenterFixedFee        = 2.0 // EUR per booking, renter side
	DefaultHubberFixedFee        = 2.0 // EUR per booking, hubber side
	DefaultMaxCreditUsagePercent = 30.0
)

// FeeConfig is the platform-wide fee rule set. A single active row is
// loaded once per request path and treated as read-only.
type FeeConfig struct {
	ID                    uint    `gorm:"primarykey"`
	RenterPercentage      float64 `gorm:"not null"`
	HubberPercentage      float64 `gorm:"not null"`
	SuperHubberPercentage float64 `gorm:"not null"`
	RenterFixedFee        float64 `gorm:"not null"`
	HubberFixedFee        float64 `gorm:"not null"`
	MaxCreditUsagePercent float64 `gorm:"not null"`
	Active                bool    `gorm:"default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// UserFeeOverride is an admin-set, per-user exception to the platform fees.
type UserFeeOverride struct {
	ID              uint `gorm:"primarykey"`
	UserID          uint `gorm:"uniqueIndex;not null"`
	FeesDisabled    bool `gorm:"default:false"`
	CustomRenterFee *float64
	CustomHubberFee *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
