package repositories

import (
	"errors"

	"renthub/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBooking(bookingID uint) (*models.Review, error)
	ListByListing(listingID uint, limit, offset int) ([]models.Review, error)
	AverageRating(listingID uint) (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a GORM-backed review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByBooking(bookingID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("booking_id = ?", bookingID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByListing(listingID uint, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageRating(listingID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Where("listing_id = ?", listingID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
