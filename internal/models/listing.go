package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing categories
const (
	ListingCategoryObject = "object"
	ListingCategorySpace  = "space"
)

// Price units
const (
	PriceUnitHour  = "hour"
	PriceUnitDay   = "day"
	PriceUnitWeek  = "week"
	PriceUnitMonth = "month"
)

type Listing struct {
	gorm.Model
	OwnerID     uint   `gorm:"not null;index"`
	Owner       *User  `gorm:"foreignKey:OwnerID"`
	Title       string `gorm:"not null"`
	Description string
	Category    string  `gorm:"not null"` // object or space
	PriceUnit   string  `gorm:"not null"` // hour, day, week, month
	UnitPrice   float64 `gorm:"not null"`
	CleaningFee float64 `gorm:"default:0"`
	Deposit     float64 `gorm:"default:0"`
	Address     string
	City        string
	Latitude    float64
	Longitude   float64
	Status      string `gorm:"default:'draft'"`
	PublishedAt *time.Time
}
