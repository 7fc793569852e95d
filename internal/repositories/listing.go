package repositories

import (
	"errors"

	"renthub/internal/models"

	"gorm.io/gorm"
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(listing *models.Listing) error
	GetByID(id uint) (*models.Listing, error)
	GetWithOwner(id uint) (*models.Listing, error)
	Update(listing *models.Listing) error
	Delete(id uint) error
	List(limit, offset int) ([]models.Listing, error)
	ListByOwner(ownerID uint) ([]models.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a GORM-backed listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetWithOwner(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.Preload("Owner").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

func (r *listingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Listing{}, id).Error
}

func (r *listingRepository) List(limit, offset int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("status = ?", "published").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) ListByOwner(ownerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}
