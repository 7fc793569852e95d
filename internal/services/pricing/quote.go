package pricing

import (
	"math"

	"renthub/internal/models"
)

// Compute derives the full cost breakdown for a quote. It is a pure function
// of its inputs: identical inputs always yield an identical breakdown.
//
// All intermediate amounts stay in decimal euros. Rounding to integer cents
// happens exactly once per amount, via Cents, at the payment boundary.
func Compute(q Quote, rates Rates, override *Override, superHubber bool) Breakdown {
	subtotal := q.UnitPrice * float64(q.DurationUnits)
	completeSubtotal := subtotal + q.CleaningFee

	renterPct := ResolveRenterPercentage(rates, override)
	hubberPct := ResolveHubberPercentage(rates, override, superHubber)

	renterFixed := resolveFixedFee(rates.RenterFixedFee, models.DefaultRenterFixedFee, override)
	hubberFixed := resolveFixedFee(rates.HubberFixedFee, models.DefaultHubberFixedFee, override)

	renterFee := VariableFee(completeSubtotal, renterPct) + renterFixed
	hubberFee := VariableFee(completeSubtotal, hubberPct) + hubberFixed

	return Breakdown{
		Subtotal:         subtotal,
		CompleteSubtotal: completeSubtotal,
		RenterPercentage: renterPct,
		HubberPercentage: hubberPct,
		RenterServiceFee: renterFee,
		HubberServiceFee: hubberFee,
		HubberNet:        completeSubtotal - hubberFee,
		Deposit:          q.Deposit,
		Total:            completeSubtotal + renterFee + q.Deposit,
	}
}

// Cents converts a decimal euro amount to integer cents. Callers must convert
// each amount once, as close to the external payment boundary as possible, so
// rounding error never compounds across repeated conversions.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Euros converts integer cents to decimal euros. The inverse boundary
// conversion, applied once when balances arrive from storage.
func Euros(cents int64) float64 {
	return float64(cents) / 100
}
