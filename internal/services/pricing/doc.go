/*
Package pricing computes booking prices and platform fees.

It is a pure package: every function is a deterministic function of its
inputs, with no storage, clock, or network access. The three concerns are:

  - Duration: DurationUnits turns a renter's date/time selection into a
    billable unit count for hour/day/week/month listings, including
    slot-based hourly space bookings.
  - Fees: ResolveRenterPercentage and ResolveHubberPercentage pick the
    effective percentages (admin override, then platform config, then
    hard fallback); VariableFee applies them.
  - Breakdown: Compute assembles the full cost breakdown, including the
    hubber's net payout and the renter's total.

Amounts are decimal euros throughout. Cents/Euros perform the single
conversion at the payment and storage boundaries.

Usage:

	units := pricing.DurationUnits(pricing.UnitDay, pricing.CategorySpace, sel)
	b := pricing.Compute(pricing.Quote{
	    UnitPrice:     50,
	    Unit:          pricing.UnitDay,
	    DurationUnits: units,
	}, rates, override, superHubber)
	amountCents := pricing.Cents(b.Total)
*/
package pricing
