package repositories

import (
	"time"

	"renthub/internal/models"

	"gorm.io/gorm"
)

// ReferralRepository defines persistence for referral credit grants.
type ReferralRepository interface {
	Create(credit *models.ReferralCredit) error
	Update(credit *models.ReferralCredit) error
	HasGrantForReferred(referredUserID uint) (bool, error)
	ListExpired(now time.Time) ([]models.ReferralCredit, error)
	ListByReferrer(referrerID uint) ([]models.ReferralCredit, error)
}

type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a GORM-backed referral repository.
func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) Create(credit *models.ReferralCredit) error {
	return r.db.Create(credit).Error
}

func (r *referralRepository) Update(credit *models.ReferralCredit) error {
	return r.db.Save(credit).Error
}

func (r *referralRepository) HasGrantForReferred(referredUserID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReferralCredit{}).
		Where("referred_user_id = ?", referredUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *referralRepository) ListExpired(now time.Time) ([]models.ReferralCredit, error) {
	var credits []models.ReferralCredit
	err := r.db.Where("status = ? AND expires_at <= ?", models.ReferralCreditActive, now).
		Find(&credits).Error
	return credits, err
}

func (r *referralRepository) ListByReferrer(referrerID uint) ([]models.ReferralCredit, error) {
	var credits []models.ReferralCredit
	err := r.db.Where("referrer_id = ?", referrerID).Order("created_at DESC").Find(&credits).Error
	return credits, err
}
