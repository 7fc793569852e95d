package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pct(v float64) *float64 { return &v }

func TestCompute_RenterSide(t *testing.T) {
	rates := Rates{
		RenterPercentage:      10,
		HubberPercentage:      10,
		SuperHubberPercentage: 5,
		RenterFixedFee:        2,
		HubberFixedFee:        2,
	}

	q := Quote{UnitPrice: 50, Unit: UnitDay, DurationUnits: 2}
	b := Compute(q, rates, nil, false)

	assert.Equal(t, 100.0, b.Subtotal)
	assert.Equal(t, 100.0, b.CompleteSubtotal)
	assert.Equal(t, 12.0, b.RenterServiceFee) // 100 * 10% + 2
	assert.Equal(t, 112.0, b.Total)
}

func TestCompute_HubberSide(t *testing.T) {
	rates := Rates{RenterPercentage: 10, HubberPercentage: 10, RenterFixedFee: 2, HubberFixedFee: 2}

	b := Compute(Quote{UnitPrice: 50, Unit: UnitDay, DurationUnits: 2}, rates, nil, false)

	assert.Equal(t, 12.0, b.HubberServiceFee)
	assert.Equal(t, 88.0, b.HubberNet)
}

func TestCompute_SuperHubberRate(t *testing.T) {
	rates := Rates{RenterPercentage: 10, HubberPercentage: 10, SuperHubberPercentage: 5, HubberFixedFee: 2}

	b := Compute(Quote{UnitPrice: 100, Unit: UnitDay, DurationUnits: 1}, rates, nil, true)

	assert.Equal(t, 5.0, b.HubberPercentage)
	assert.Equal(t, 7.0, b.HubberServiceFee) // 100 * 5% + 2
	assert.Equal(t, 93.0, b.HubberNet)
}

func TestCompute_CleaningFeeAndDeposit(t *testing.T) {
	rates := Rates{RenterPercentage: 10, HubberPercentage: 10, RenterFixedFee: 2, HubberFixedFee: 2}
	q := Quote{UnitPrice: 40, Unit: UnitDay, DurationUnits: 2, CleaningFee: 20, Deposit: 50}

	b := Compute(q, rates, nil, false)

	assert.Equal(t, 80.0, b.Subtotal)
	assert.Equal(t, 100.0, b.CompleteSubtotal, "cleaning fee joins the fee base")
	assert.Equal(t, 12.0, b.RenterServiceFee)
	assert.Equal(t, 162.0, b.Total, "deposit is added after fees")
}

func TestCompute_Overrides(t *testing.T) {
	rates := Rates{RenterPercentage: 10, HubberPercentage: 10, RenterFixedFee: 2, HubberFixedFee: 2}
	q := Quote{UnitPrice: 100, Unit: UnitDay, DurationUnits: 1}

	t.Run("custom renter fee wins over config", func(t *testing.T) {
		b := Compute(q, rates, &Override{CustomRenterFee: pct(5)}, false)
		assert.Equal(t, 5.0, b.RenterPercentage)
		assert.Equal(t, 7.0, b.RenterServiceFee)
	})

	t.Run("fees disabled zeroes both components", func(t *testing.T) {
		b := Compute(q, rates, &Override{FeesDisabled: true, CustomRenterFee: pct(5)}, false)
		assert.Equal(t, 0.0, b.RenterServiceFee)
		assert.Equal(t, 0.0, b.HubberServiceFee)
		assert.Equal(t, b.CompleteSubtotal, b.Total)
		assert.Equal(t, b.CompleteSubtotal, b.HubberNet)
	})

	t.Run("zero-valued config falls back to defaults", func(t *testing.T) {
		b := Compute(q, Rates{}, nil, false)
		assert.Equal(t, 10.0, b.RenterPercentage)
		assert.Equal(t, 12.0, b.RenterServiceFee) // default 10% + default fixed 2
	})
}

func TestCompute_Idempotent(t *testing.T) {
	rates := Rates{RenterPercentage: 12.5, HubberPercentage: 8.5, RenterFixedFee: 1.5, HubberFixedFee: 2.5}
	q := Quote{UnitPrice: 33.33, Unit: UnitHour, DurationUnits: 7, CleaningFee: 12.5, Deposit: 99.99}

	first := Compute(q, rates, nil, true)
	second := Compute(q, rates, nil, true)

	assert.Equal(t, first, second)
}

func TestCompute_NonNegativeFees(t *testing.T) {
	for _, p := range []float64{0, 0.5, 10, 50, 100} {
		fee := VariableFee(250, p)
		assert.GreaterOrEqual(t, fee, 0.0)
		assert.Equal(t, 250*p/100, fee)
	}
}

func TestCents_SingleBoundaryRounding(t *testing.T) {
	assert.Equal(t, int64(11200), Cents(112.0))
	assert.Equal(t, int64(5360), Cents(53.6))
	assert.Equal(t, int64(1), Cents(0.005))
	assert.Equal(t, int64(0), Cents(0.004))

	// The decimal value survives until the boundary: 10% of 0.1+0.2 style
	// inputs must not be rounded twice.
	b := Compute(Quote{UnitPrice: 0.1, Unit: UnitDay, DurationUnits: 3}, Rates{RenterPercentage: 10, RenterFixedFee: 2, HubberPercentage: 10, HubberFixedFee: 2}, nil, false)
	assert.Equal(t, int64(233), Cents(b.Total))
}

func TestEuros_InverseOfCents(t *testing.T) {
	assert.Equal(t, 53.6, Euros(5360))
	assert.Equal(t, 0.0, Euros(0))
}
