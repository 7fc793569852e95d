package wallet

import "math"

// Balances holds the three credit buckets in decimal euros.
type Balances struct {
	General  float64 `json:"general"`
	Referral float64 `json:"referral"`
	Refund   float64 `json:"refund"`
}

// Sum returns the combined credit across all buckets.
func (b Balances) Sum() float64 {
	return b.General + b.Referral + b.Refund
}

// AllocationInput describes one wallet-vs-card split decision.
type AllocationInput struct {
	Total                 float64 // booking total due
	ServiceFee            float64 // renter service fee; base of the referral cap
	MaxCreditUsagePercent float64 // referral bucket cap, percent of ServiceFee
	Balances              Balances
}

// Allocation is the resulting split. Per-bucket amounts never exceed the
// bucket's balance or its cap, and WalletUsed never exceeds Total.
type Allocation struct {
	RefundUsed      float64 `json:"refund_used"`
	ReferralUsed    float64 `json:"referral_used"`
	GeneralUsed     float64 `json:"general_used"`
	WalletUsed      float64 `json:"wallet_used"`
	AmountDueOnCard float64 `json:"amount_due_on_card"`
}

// Allocate decides how much of a booking total is covered by wallet credit.
//
// The buckets are consumed in a fixed, strictly ordered sequence:
//
//  1. refund credit, unrestricted;
//  2. referral credit, capped at MaxCreditUsagePercent% of the renter
//     service fee (not of the total);
//  3. general credit, unrestricted.
//
// The strict order is the single supported policy; buckets are never merged
// before the referral cap is applied.
func Allocate(in AllocationInput) Allocation {
	if in.Total <= 0 {
		return Allocation{}
	}

	remaining := in.Total
	var out Allocation

	out.RefundUsed = clampNonNegative(math.Min(in.Balances.Refund, remaining))
	remaining -= out.RefundUsed

	referralCap := in.ServiceFee * in.MaxCreditUsagePercent / 100
	out.ReferralUsed = clampNonNegative(math.Min(in.Balances.Referral, math.Min(referralCap, remaining)))
	remaining -= out.ReferralUsed

	out.GeneralUsed = clampNonNegative(math.Min(in.Balances.General, remaining))
	remaining -= out.GeneralUsed

	out.WalletUsed = out.RefundUsed + out.ReferralUsed + out.GeneralUsed
	out.AmountDueOnCard = remaining
	return out
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
