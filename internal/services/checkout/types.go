package checkout

import (
	"time"

	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

// State is the lifecycle of one payment modal session.
type State string

const (
	StateIdle        State = "idle"
	StateFeesLoading State = "fees_loading"
	StateReady       State = "ready"
	StateSubmitting  State = "submitting"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
)

// QuoteRequest is the renter's current selection for a listing.
type QuoteRequest struct {
	ListingID uint       `json:"listing_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CheckIn   *int       `json:"check_in"`
	CheckOut  *int       `json:"check_out"`
	Hours     int        `json:"hours"`
}

// QuoteResult is the preview shown before confirmation: the cost breakdown
// plus the wallet-vs-card split it would produce.
type QuoteResult struct {
	DurationUnits int               `json:"duration_units"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
	Balances      wallet.Balances   `json:"balances"`
	Allocation    wallet.Allocation `json:"allocation"`
}

// SubmitRequest confirms a quote. ExpectedWalletUsed is what the renter saw
// on screen; it is re-validated against a fresh computation before any money
// moves.
type SubmitRequest struct {
	QuoteRequest
	ExpectedWalletUsed float64 `json:"expected_wallet_used"`
}

// SubmitResult tells the client how to finish the payment. When PaidInFull
// is set the card step is skipped entirely and the booking already exists.
type SubmitResult struct {
	Reference    string            `json:"reference"`
	PaidInFull   bool              `json:"paid_in_full"`
	ClientSecret string            `json:"client_secret,omitempty"`
	Allocation   wallet.Allocation `json:"allocation"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}
