package checkout

import (
	"context"

	"renthub/internal/models"
	"renthub/internal/services/booking"
	"renthub/internal/services/payment"
	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

// Service drives the booking payment flow end to end.
type Service interface {
	// NewSession creates and loads a session: fee configuration, the
	// renter's override and wallet balances. A wallet load failure is not
	// fatal; the session becomes ready with empty buckets (card-only).
	NewSession(ctx context.Context, userID uint) (*Session, error)

	// Quote recomputes the preview for the current selection. Pure with
	// respect to the loaded session data; safe to call on every change.
	Quote(ctx context.Context, session *Session, userID uint, req QuoteRequest) (*QuoteResult, error)

	// Submit confirms the quote: re-validates the wallet split, then either
	// settles entirely from wallet credit or opens a card payment intent.
	Submit(ctx context.Context, session *Session, userID uint, req SubmitRequest) (*SubmitResult, error)

	// AwaitBooking polls for the booking record the payment webhook is
	// expected to create, within a fixed attempt budget.
	AwaitBooking(ctx context.Context, session *Session, reference string) (*models.Booking, error)
}

// Dependencies required by the checkout service.

type FeeProvider interface {
	GetRates(ctx context.Context) (pricing.Rates, float64)
	GetOverride(ctx context.Context, userID uint) *pricing.Override
}

type WalletService interface {
	GetBalances(ctx context.Context, userID uint) (wallet.Balances, error)
}

type BookingService interface {
	Materialize(ctx context.Context, req booking.MaterializeRequest) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
}

type ListingProvider interface {
	GetWithOwner(id uint) (*models.Listing, error)
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}
