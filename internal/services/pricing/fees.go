package pricing

import "renthub/internal/models"

// DefaultRates returns the hard-coded fallback rule set. It is used whenever
// platform configuration is missing or zero-valued; pricing never fails for
// lack of configuration.
func DefaultRates() Rates {
	return Rates{
		RenterPercentage:      models.DefaultRenterPercentage,
		HubberPercentage:      models.DefaultHubberPercentage,
		SuperHubberPercentage: models.DefaultSuperHubberPercentage,
		RenterFixedFee:        models.DefaultRenterFixedFee,
		HubberFixedFee:        models.DefaultHubberFixedFee,
	}
}

// ResolveRenterPercentage picks the renter-side percentage in priority order:
// admin override, platform config, hard fallback.
func ResolveRenterPercentage(rates Rates, override *Override) float64 {
	if override != nil {
		if override.FeesDisabled {
			return 0
		}
		if override.CustomRenterFee != nil {
			return *override.CustomRenterFee
		}
	}
	if rates.RenterPercentage > 0 {
		return rates.RenterPercentage
	}
	return models.DefaultRenterPercentage
}

// ResolveHubberPercentage picks the hubber-side percentage. Super-hubbers get
// the discounted super-hubber rate instead of the standard one.
func ResolveHubberPercentage(rates Rates, override *Override, superHubber bool) float64 {
	if override != nil {
		if override.FeesDisabled {
			return 0
		}
		if override.CustomHubberFee != nil {
			return *override.CustomHubberFee
		}
	}
	if superHubber {
		if rates.SuperHubberPercentage > 0 {
			return rates.SuperHubberPercentage
		}
		return models.DefaultSuperHubberPercentage
	}
	if rates.HubberPercentage > 0 {
		return rates.HubberPercentage
	}
	return models.DefaultHubberPercentage
}

// VariableFee computes the percentage component of a service fee.
func VariableFee(completeSubtotal, percentage float64) float64 {
	return completeSubtotal * percentage / 100
}

func resolveFixedFee(configured, fallback float64, override *Override) float64 {
	// FeesDisabled suppresses the fixed component as well.
	if override != nil && override.FeesDisabled {
		return 0
	}
	if configured > 0 {
		return configured
	}
	return fallback
}
