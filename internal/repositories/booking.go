package repositories

import (
	"context"
	"errors"

	"renthub/internal/models"

	"gorm.io/gorm"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	Update(booking *models.Booking) error
	ListByRenter(renterID uint, limit, offset int) ([]models.Booking, error)
	ListByHubber(hubberID uint, limit, offset int) ([]models.Booking, error)
	CountByRenter(renterID uint) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a GORM-backed booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *bookingRepository) ListByRenter(renterID uint, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByHubber(hubberID uint, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("hubber_id = ?", hubberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) CountByRenter(renterID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("renter_id = ?", renterID).Count(&count).Error
	return count, err
}
