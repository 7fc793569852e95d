package wallet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocate_StrictBucketOrder(t *testing.T) {
	// total=112, refund=50, referral=30, general=0, fee=12, cap 30%
	in := AllocationInput{
		Total:                 112,
		ServiceFee:            12,
		MaxCreditUsagePercent: 30,
		Balances:              Balances{Refund: 50, Referral: 30, General: 0},
	}

	out := Allocate(in)

	assert.InDelta(t, 50.0, out.RefundUsed, 1e-9)
	assert.InDelta(t, 3.6, out.ReferralUsed, 1e-9, "referral capped at 30%% of the service fee")
	assert.InDelta(t, 0.0, out.GeneralUsed, 1e-9)
	assert.InDelta(t, 53.6, out.WalletUsed, 1e-9)
	assert.InDelta(t, 58.4, out.AmountDueOnCard, 1e-9)
}

func TestAllocate_RefundExceedsTotal(t *testing.T) {
	out := Allocate(AllocationInput{
		Total:                 40,
		ServiceFee:            5,
		MaxCreditUsagePercent: 30,
		Balances:              Balances{Refund: 100, Referral: 10, General: 10},
	})

	assert.InDelta(t, 40.0, out.RefundUsed, 1e-9, "refund clamps to the total")
	assert.InDelta(t, 0.0, out.ReferralUsed, 1e-9)
	assert.InDelta(t, 0.0, out.GeneralUsed, 1e-9)
	assert.InDelta(t, 0.0, out.AmountDueOnCard, 1e-9)
}

func TestAllocate_GeneralCoversRemainder(t *testing.T) {
	out := Allocate(AllocationInput{
		Total:                 100,
		ServiceFee:            10,
		MaxCreditUsagePercent: 50,
		Balances:              Balances{Refund: 20, Referral: 40, General: 200},
	})

	assert.InDelta(t, 20.0, out.RefundUsed, 1e-9)
	assert.InDelta(t, 5.0, out.ReferralUsed, 1e-9) // cap: 10 * 50% = 5
	assert.InDelta(t, 75.0, out.GeneralUsed, 1e-9)
	assert.InDelta(t, 100.0, out.WalletUsed, 1e-9)
	assert.InDelta(t, 0.0, out.AmountDueOnCard, 1e-9)
}

func TestAllocate_ZeroOrNegativeTotal(t *testing.T) {
	assert.Equal(t, Allocation{}, Allocate(AllocationInput{Total: 0, Balances: Balances{Refund: 50}}))
	assert.Equal(t, Allocation{}, Allocate(AllocationInput{Total: -5, Balances: Balances{Refund: 50}}))
}

func TestAllocate_EmptyWallet(t *testing.T) {
	out := Allocate(AllocationInput{Total: 80, ServiceFee: 8, MaxCreditUsagePercent: 30})

	assert.Equal(t, 0.0, out.WalletUsed)
	assert.Equal(t, 80.0, out.AmountDueOnCard)
}

// A merged policy that folds refund into the general bucket before applying
// the referral cap would produce a different split. This test pins the strict
// refund/referral/general order so a regression toward merging is visible.
func TestAllocate_RejectedMergedPolicyDiffers(t *testing.T) {
	in := AllocationInput{
		Total:                 50,
		ServiceFee:            10,
		MaxCreditUsagePercent: 100,
		Balances:              Balances{Refund: 30, Referral: 25, General: 30},
	}

	out := Allocate(in)

	// Strict order: refund 30, referral min(25, 10, 20)=10, general 10.
	assert.InDelta(t, 30.0, out.RefundUsed, 1e-9)
	assert.InDelta(t, 10.0, out.ReferralUsed, 1e-9)
	assert.InDelta(t, 10.0, out.GeneralUsed, 1e-9)

	// The merged variant would have drawn 50 straight from general+refund
	// (60 available, unrestricted) and touched the referral bucket not at
	// all. Pin that the chosen policy spends referral credit here.
	assert.Greater(t, out.ReferralUsed, 0.0)
}

func TestAllocate_Invariants(t *testing.T) {
	cases := []AllocationInput{
		{Total: 112, ServiceFee: 12, MaxCreditUsagePercent: 30, Balances: Balances{Refund: 50, Referral: 30}},
		{Total: 7.35, ServiceFee: 0.95, MaxCreditUsagePercent: 25, Balances: Balances{General: 2.22, Referral: 1.11, Refund: 0.5}},
		{Total: 1000, ServiceFee: 90, MaxCreditUsagePercent: 0, Balances: Balances{General: 500, Referral: 500, Refund: 500}},
		{Total: 0.01, ServiceFee: 0.01, MaxCreditUsagePercent: 100, Balances: Balances{General: 10, Referral: 10, Refund: 10}},
	}

	for _, in := range cases {
		out := Allocate(in)

		assert.GreaterOrEqual(t, out.WalletUsed, 0.0)
		assert.LessOrEqual(t, out.WalletUsed, in.Total+1e-9)
		assert.LessOrEqual(t, out.WalletUsed, in.Balances.Sum()+1e-9)
		assert.LessOrEqual(t, out.RefundUsed, in.Balances.Refund+1e-9)
		assert.LessOrEqual(t, out.GeneralUsed, in.Balances.General+1e-9)
		referralCap := in.ServiceFee * in.MaxCreditUsagePercent / 100
		assert.LessOrEqual(t, out.ReferralUsed, math.Min(in.Balances.Referral, referralCap)+1e-9)
		assert.InDelta(t, in.Total, out.WalletUsed+out.AmountDueOnCard, 1e-9)
	}
}

func TestAllocate_Idempotent(t *testing.T) {
	in := AllocationInput{
		Total:                 99.99,
		ServiceFee:            11.5,
		MaxCreditUsagePercent: 30,
		Balances:              Balances{General: 12.34, Referral: 5.67, Refund: 8.9},
	}

	assert.Equal(t, Allocate(in), Allocate(in))
}
