package feeconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renthub/internal/models"
	"renthub/internal/repositories"
)

type mockFeeRepo struct{ mock.Mock }

func (m *mockFeeRepo) GetActiveConfig() (*models.FeeConfig, error) {
	args := m.Called()
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*models.FeeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeeRepo) SaveConfig(cfg *models.FeeConfig) error { return m.Called(cfg).Error(0) }

func (m *mockFeeRepo) GetOverride(userID uint) (*models.UserFeeOverride, error) {
	args := m.Called(userID)
	if o := args.Get(0); o != nil {
		return o.(*models.UserFeeOverride), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeeRepo) SaveOverride(o *models.UserFeeOverride) error { return m.Called(o).Error(0) }

func (m *mockFeeRepo) DeleteOverride(userID uint) error { return m.Called(userID).Error(0) }

type mockConfigCache struct{ mock.Mock }

func (m *mockConfigCache) GetFeeConfig(ctx context.Context) (*models.FeeConfig, bool) {
	args := m.Called(ctx)
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*models.FeeConfig), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *mockConfigCache) SetFeeConfig(ctx context.Context, cfg *models.FeeConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *mockConfigCache) InvalidateFeeConfig(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestGetRatesFallsBackToDefaults(t *testing.T) {
	repo := new(mockFeeRepo)
	svc := NewService(repo, nil)

	repo.On("GetActiveConfig").Return(nil, repositories.ErrConfigNotFound)

	rates, maxPct := svc.GetRates(context.Background())

	assert.Equal(t, models.DefaultRenterPercentage, rates.RenterPercentage)
	assert.Equal(t, models.DefaultHubberPercentage, rates.HubberPercentage)
	assert.Equal(t, models.DefaultSuperHubberPercentage, rates.SuperHubberPercentage)
	assert.Equal(t, models.DefaultRenterFixedFee, rates.RenterFixedFee)
	assert.Equal(t, models.DefaultMaxCreditUsagePercent, maxPct)
}

func TestGetRatesUsesActiveConfig(t *testing.T) {
	repo := new(mockFeeRepo)
	cache := new(mockConfigCache)
	svc := NewService(repo, cache)
	ctx := context.Background()

	cfg := &models.FeeConfig{
		RenterPercentage:      12,
		HubberPercentage:      11,
		SuperHubberPercentage: 4,
		RenterFixedFee:        1.5,
		HubberFixedFee:        2.5,
		MaxCreditUsagePercent: 25,
	}
	cache.On("GetFeeConfig", ctx).Return(nil, false)
	cache.On("SetFeeConfig", ctx, cfg).Return(nil)
	repo.On("GetActiveConfig").Return(cfg, nil)

	rates, maxPct := svc.GetRates(ctx)

	assert.Equal(t, 12.0, rates.RenterPercentage)
	assert.Equal(t, 2.5, rates.HubberFixedFee)
	assert.Equal(t, 25.0, maxPct)
	cache.AssertCalled(t, "SetFeeConfig", ctx, cfg)
}

func TestGetRatesPrefersCache(t *testing.T) {
	repo := new(mockFeeRepo)
	cache := new(mockConfigCache)
	svc := NewService(repo, cache)
	ctx := context.Background()

	cache.On("GetFeeConfig", ctx).Return(&models.FeeConfig{
		RenterPercentage:      9,
		MaxCreditUsagePercent: 30,
	}, true)

	rates, _ := svc.GetRates(ctx)

	assert.Equal(t, 9.0, rates.RenterPercentage)
	repo.AssertNotCalled(t, "GetActiveConfig")
}

func TestGetOverrideMapsRecord(t *testing.T) {
	repo := new(mockFeeRepo)
	svc := NewService(repo, nil)

	custom := 3.0
	repo.On("GetOverride", uint(5)).Return(&models.UserFeeOverride{
		UserID:          5,
		FeesDisabled:    true,
		CustomRenterFee: &custom,
	}, nil)

	override := svc.GetOverride(context.Background(), 5)

	assert.NotNil(t, override)
	assert.True(t, override.FeesDisabled)
	assert.Equal(t, 3.0, *override.CustomRenterFee)
}

func TestGetOverrideNilWhenAbsent(t *testing.T) {
	repo := new(mockFeeRepo)
	svc := NewService(repo, nil)

	repo.On("GetOverride", uint(5)).Return(nil, repositories.ErrOverrideNotFound)

	assert.Nil(t, svc.GetOverride(context.Background(), 5))
}

func TestUpdateConfigInvalidatesCache(t *testing.T) {
	repo := new(mockFeeRepo)
	cache := new(mockConfigCache)
	svc := NewService(repo, cache)
	ctx := context.Background()

	cfg := &models.FeeConfig{RenterPercentage: 15}
	repo.On("SaveConfig", cfg).Return(nil)
	cache.On("InvalidateFeeConfig", ctx).Return(nil)

	assert.NoError(t, svc.UpdateConfig(ctx, cfg))
	assert.True(t, cfg.Active)
	cache.AssertCalled(t, "InvalidateFeeConfig", ctx)
}
