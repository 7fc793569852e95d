package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ListingID uint `gorm:"not null;index"`
	BookingID uint `gorm:"uniqueIndex;not null"` // one review per booking
	AuthorID  uint `gorm:"not null;index"`
	Rating    int  `gorm:"not null"` // 1..5
	Comment   string
}
