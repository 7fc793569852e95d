package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email               string  `gorm:"uniqueIndex;not null"`
	Password            string  `gorm:"not null"`
	Name                string  `gorm:"not null"`
	Phone               string  `gorm:"uniqueIndex;not null"`
	Role                string  `gorm:"default:'renter'"`
	SuperHubber         bool    `gorm:"default:false"`
	WalletID            *uint   `gorm:"unique;default:null"`
	Wallet              *Wallet `gorm:"foreignKey:WalletID"`
	Status              string  `gorm:"default:'active'"`
	VerificationStatus  string  `gorm:"default:'pending'"`
	ReferralCode        string  `gorm:"uniqueIndex"`
	ReferredByID        *uint
	LastLoginAt         time.Time
	LastLoginIP         string
	FailedLoginAttempts int `gorm:"default:0"`
	AccountLockoutUntil *time.Time
	TokenVersion        int `gorm:"default:1"`
}

// IsHubber reports whether the user can own listings.
func (u *User) IsHubber() bool {
	return u.Role == "hubber" || u.Role == "admin"
}
