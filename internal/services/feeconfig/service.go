// Package feeconfig provides the platform fee configuration and the
// per-user admin overrides consumed by pricing.
package feeconfig

import (
	"context"
	"log"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/pricing"
)

// Service exposes read access for checkout and write access for admins.
type Service interface {
	// GetRates never fails: missing or unreadable configuration falls back
	// to the hard-coded defaults. The second value is the referral credit
	// usage cap in percent of the renter service fee.
	GetRates(ctx context.Context) (pricing.Rates, float64)

	// GetOverride returns nil when the user has no admin-set exception.
	GetOverride(ctx context.Context, userID uint) *pricing.Override

	UpdateConfig(ctx context.Context, cfg *models.FeeConfig) error
	SetOverride(ctx context.Context, override *models.UserFeeOverride) error
	RemoveOverride(ctx context.Context, userID uint) error
}

// ConfigCache is the slice of the cache layer this service needs.
type ConfigCache interface {
	GetFeeConfig(ctx context.Context) (*models.FeeConfig, bool)
	SetFeeConfig(ctx context.Context, cfg *models.FeeConfig) error
	InvalidateFeeConfig(ctx context.Context) error
}

type service struct {
	repo  repositories.FeeRepository
	cache ConfigCache
}

// NewService creates a fee configuration service.
func NewService(repo repositories.FeeRepository, cache ConfigCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) GetRates(ctx context.Context) (pricing.Rates, float64) {
	cfg := s.loadConfig(ctx)
	if cfg == nil {
		return pricing.DefaultRates(), models.DefaultMaxCreditUsagePercent
	}

	maxCredit := cfg.MaxCreditUsagePercent
	if maxCredit <= 0 {
		maxCredit = models.DefaultMaxCreditUsagePercent
	}

	return pricing.Rates{
		RenterPercentage:      cfg.RenterPercentage,
		HubberPercentage:      cfg.HubberPercentage,
		SuperHubberPercentage: cfg.SuperHubberPercentage,
		RenterFixedFee:        cfg.RenterFixedFee,
		HubberFixedFee:        cfg.HubberFixedFee,
	}, maxCredit
}

func (s *service) loadConfig(ctx context.Context) *models.FeeConfig {
	if s.cache != nil {
		if cfg, ok := s.cache.GetFeeConfig(ctx); ok {
			return cfg
		}
	}

	cfg, err := s.repo.GetActiveConfig()
	if err != nil {
		if err != repositories.ErrConfigNotFound {
			log.Printf("fee config load failed, using defaults: %v", err)
		}
		return nil
	}

	if s.cache != nil {
		s.cache.SetFeeConfig(ctx, cfg)
	}
	return cfg
}

func (s *service) GetOverride(ctx context.Context, userID uint) *pricing.Override {
	record, err := s.repo.GetOverride(userID)
	if err != nil {
		if err != repositories.ErrOverrideNotFound {
			log.Printf("fee override load failed for user %d: %v", userID, err)
		}
		return nil
	}
	return &pricing.Override{
		FeesDisabled:    record.FeesDisabled,
		CustomRenterFee: record.CustomRenterFee,
		CustomHubberFee: record.CustomHubberFee,
	}
}

func (s *service) UpdateConfig(ctx context.Context, cfg *models.FeeConfig) error {
	cfg.Active = true
	if err := s.repo.SaveConfig(cfg); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.InvalidateFeeConfig(ctx)
	}
	return nil
}

func (s *service) SetOverride(ctx context.Context, override *models.UserFeeOverride) error {
	existing, err := s.repo.GetOverride(override.UserID)
	if err == nil {
		override.ID = existing.ID
	}
	return s.repo.SaveOverride(override)
}

func (s *service) RemoveOverride(ctx context.Context, userID uint) error {
	return s.repo.DeleteOverride(userID)
}
