package repositories

import (
	"errors"

	"renthub/internal/models"

	"gorm.io/gorm"
)

// FeeRepository defines persistence for platform fee configuration and
// per-user overrides.
type FeeRepository interface {
	GetActiveConfig() (*models.FeeConfig, error)
	SaveConfig(cfg *models.FeeConfig) error
	GetOverride(userID uint) (*models.UserFeeOverride, error)
	SaveOverride(override *models.UserFeeOverride) error
	DeleteOverride(userID uint) error
}

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a GORM-backed fee repository.
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) GetActiveConfig() (*models.FeeConfig, error) {
	var cfg models.FeeConfig
	err := r.db.Where("active = ?", true).Order("updated_at DESC").First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *feeRepository) SaveConfig(cfg *models.FeeConfig) error {
	return r.db.Save(cfg).Error
}

func (r *feeRepository) GetOverride(userID uint) (*models.UserFeeOverride, error) {
	var override models.UserFeeOverride
	err := r.db.Where("user_id = ?", userID).First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return &override, nil
}

func (r *feeRepository) SaveOverride(override *models.UserFeeOverride) error {
	return r.db.Save(override).Error
}

func (r *feeRepository) DeleteOverride(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserFeeOverride{}).Error
}
