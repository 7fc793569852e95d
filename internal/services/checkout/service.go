// Package checkout drives the payment modal flow: load fee configuration and
// wallet balances, preview the cost split, confirm, then wait for the booking
// the payment webhook creates.
package checkout

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"renthub/internal/models"
	"renthub/internal/services/booking"
	"renthub/internal/services/payment"
	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
	"renthub/internal/validation"
)

// Tolerance for comparing client-observed euro amounts against a fresh
// computation. Anything under half a cent is float noise, not drift.
const amountEpsilon = 0.005

type service struct {
	fees     FeeProvider
	wallets  WalletService
	bookings BookingService
	listings ListingProvider
	gateway  Gateway
	poll     poller
}

// NewService creates the checkout service.
func NewService(fees FeeProvider, wallets WalletService, bookings BookingService, listings ListingProvider, gateway Gateway) Service {
	if fees == nil || wallets == nil || bookings == nil || listings == nil || gateway == nil {
		panic("all checkout dependencies are required")
	}
	return &service{
		fees:     fees,
		wallets:  wallets,
		bookings: bookings,
		listings: listings,
		gateway:  gateway,
		poll:     newPoller(),
	}
}

func (s *service) NewSession(ctx context.Context, userID uint) (*Session, error) {
	session := NewSession()
	session.beginLoading()

	rates, maxCreditPct := s.fees.GetRates(ctx)
	override := s.fees.GetOverride(ctx, userID)

	balances, err := s.wallets.GetBalances(ctx, userID)
	if err != nil {
		// No wallet credit is usable when the balance cannot be read; the
		// renter still checks out, fully on card.
		log.Printf("wallet balances unavailable for user %d: %v", userID, err)
		balances = wallet.Balances{}
	}

	session.becomeReady(rates, maxCreditPct, override, balances)
	return session, nil
}

func (s *service) Quote(ctx context.Context, session *Session, userID uint, req QuoteRequest) (*QuoteResult, error) {
	switch session.State() {
	case StateIdle, StateFeesLoading:
		return nil, ErrNotReady
	}
	result, _, err := s.buildQuote(ctx, session, req)
	return result, err
}

// buildQuote runs the full selection -> duration -> fees -> allocation chain
// against the session's loaded configuration.
func (s *service) buildQuote(ctx context.Context, session *Session, req QuoteRequest) (*QuoteResult, *models.Listing, error) {
	listing, err := s.listings.GetWithOwner(req.ListingID)
	if err != nil {
		return nil, nil, err
	}
	if listing.Status != "published" {
		return nil, nil, ErrListingUnavailable
	}

	v := validation.New()
	v.Selection(listing.PriceUnit, listing.Category, req.StartDate, req.EndDate, req.CheckIn, req.CheckOut, req.Hours)
	if !v.Valid() {
		return nil, nil, ErrInvalidSelection
	}

	rates, maxCreditPct, override, balances := session.snapshot()

	units := pricing.DurationUnits(pricing.PriceUnit(listing.PriceUnit), pricing.Category(listing.Category), pricing.Selection{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Hours:     req.Hours,
	})

	superHubber := listing.Owner != nil && listing.Owner.SuperHubber
	breakdown := pricing.Compute(pricing.Quote{
		UnitPrice:     listing.UnitPrice,
		Unit:          pricing.PriceUnit(listing.PriceUnit),
		DurationUnits: units,
		CleaningFee:   listing.CleaningFee,
		Deposit:       listing.Deposit,
	}, rates, override, superHubber)

	alloc := wallet.Allocate(wallet.AllocationInput{
		Total:                 breakdown.Total,
		ServiceFee:            breakdown.RenterServiceFee,
		MaxCreditUsagePercent: maxCreditPct,
		Balances:              balances,
	})

	return &QuoteResult{
		DurationUnits: units,
		Breakdown:     breakdown,
		Balances:      balances,
		Allocation:    alloc,
	}, listing, nil
}

func (s *service) Submit(ctx context.Context, session *Session, userID uint, req SubmitRequest) (*SubmitResult, error) {
	if err := session.beginSubmit(); err != nil {
		return nil, err
	}

	quote, listing, err := s.buildQuote(ctx, session, req.QuoteRequest)
	if err != nil {
		session.fail(err.Error())
		return nil, err
	}
	if quote.DurationUnits == 0 {
		session.fail(ErrNoDuration.Error())
		return nil, ErrNoDuration
	}

	// Re-read the wallet and recompute the split before any money moves.
	// The preview the renter approved may have gone stale.
	fresh, err := s.wallets.GetBalances(ctx, userID)
	if err != nil {
		log.Printf("wallet balances unavailable at submit for user %d: %v", userID, err)
		fresh = wallet.Balances{}
	}
	_, maxCreditPct, _, _ := session.snapshot()
	alloc := wallet.Allocate(wallet.AllocationInput{
		Total:                 quote.Breakdown.Total,
		ServiceFee:            quote.Breakdown.RenterServiceFee,
		MaxCreditUsagePercent: maxCreditPct,
		Balances:              fresh,
	})
	if req.ExpectedWalletUsed > alloc.WalletUsed+amountEpsilon {
		session.fail(ErrInsufficientWalletFunds.Error())
		return nil, ErrInsufficientWalletFunds
	}

	reference := "BK-" + uuid.NewString()
	materialize := booking.MaterializeRequest{
		Reference:     reference,
		ListingID:     listing.ID,
		RenterID:      userID,
		HubberID:      listing.OwnerID,
		PriceUnit:     listing.PriceUnit,
		DurationUnits: quote.DurationUnits,
		CleaningFee:   listing.CleaningFee,
		Deposit:       listing.Deposit,
		Breakdown:     quote.Breakdown,
		Allocation:    alloc,
	}
	if req.StartDate != nil {
		materialize.StartDate = *req.StartDate
	}
	materialize.EndDate = req.EndDate

	if pricing.Cents(alloc.AmountDueOnCard) == 0 {
		// Fully covered by wallet credit: no card step, the booking is
		// created right here.
		created, err := s.bookings.Materialize(ctx, materialize)
		if err != nil {
			session.fail(err.Error())
			return nil, fmt.Errorf("wallet-only booking failed: %w", err)
		}
		session.succeed()
		return &SubmitResult{
			Reference:  created.Reference,
			PaidInFull: true,
			Allocation: alloc,
			Breakdown:  quote.Breakdown,
		}, nil
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, payment.IntentRequest{
		AmountCents: pricing.Cents(alloc.AmountDueOnCard),
		Currency:    "eur",
		Reference:   reference,
		Metadata:    booking.EncodeIntentMetadata(materialize),
	})
	if err != nil {
		session.fail(err.Error())
		return nil, fmt.Errorf("failed to open card payment: %w", err)
	}

	// The session stays in submitting until AwaitBooking resolves the
	// webhook outcome.
	return &SubmitResult{
		Reference:    reference,
		ClientSecret: intent.ClientSecret,
		Allocation:   alloc,
		Breakdown:    quote.Breakdown,
	}, nil
}

func (s *service) AwaitBooking(ctx context.Context, session *Session, reference string) (*models.Booking, error) {
	found, err := s.poll.await(ctx, s.bookings, reference)
	if err != nil {
		if session != nil {
			session.fail(err.Error())
		}
		return nil, err
	}
	if session != nil {
		session.succeed()
	}
	return found, nil
}
