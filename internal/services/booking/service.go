// Package booking materializes and serves booking records. Bookings are
// created here on behalf of the payment webhook (card flow) or the checkout
// service (wallet-only flow), never directly by an API client.
package booking

import (
	"context"
	"log"
	"time"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

// MaterializeRequest carries everything needed to persist a paid booking.
type MaterializeRequest struct {
	Reference     string
	ListingID     uint
	RenterID      uint
	HubberID      uint
	PriceUnit     string
	DurationUnits int
	StartDate     time.Time
	EndDate       *time.Time
	CleaningFee   float64
	Deposit       float64
	Breakdown     pricing.Breakdown
	Allocation    wallet.Allocation
}

// Service defines booking operations.
type Service interface {
	Materialize(ctx context.Context, req MaterializeRequest) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListForRenter(ctx context.Context, renterID uint, limit, offset int) ([]models.Booking, error)
	ListForHubber(ctx context.Context, hubberID uint, limit, offset int) ([]models.Booking, error)
}

// WalletDebiter settles the wallet share of a booking.
type WalletDebiter interface {
	DebitBuckets(ctx context.Context, userID uint, alloc wallet.Allocation, reference string) error
}

// ReferralGranter awards referral credit after a referred renter's first booking.
type ReferralGranter interface {
	GrantForFirstBooking(ctx context.Context, renterID uint, reference string) error
}

// Notifier delivers the booking confirmation.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, userID uint, booking *models.Booking) error
}

type service struct {
	repo     repositories.BookingRepository
	wallets  WalletDebiter
	referral ReferralGranter
	notifier Notifier
}

// NewService creates a booking service. Referral and notifier are optional.
func NewService(repo repositories.BookingRepository, wallets WalletDebiter, referral ReferralGranter, notifier Notifier) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{
		repo:     repo,
		wallets:  wallets,
		referral: referral,
		notifier: notifier,
	}
}

// Materialize persists the booking for a settled payment. It is idempotent
// by reference: a webhook redelivery returns the existing record untouched.
func (s *service) Materialize(ctx context.Context, req MaterializeRequest) (*models.Booking, error) {
	if existing, err := s.repo.GetByReference(ctx, req.Reference); err == nil {
		return existing, nil
	}

	booking := &models.Booking{
		Reference:        req.Reference,
		ListingID:        req.ListingID,
		RenterID:         req.RenterID,
		HubberID:         req.HubberID,
		PriceUnit:        req.PriceUnit,
		DurationUnits:    req.DurationUnits,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Subtotal:         req.Breakdown.Subtotal,
		CleaningFee:      req.CleaningFee,
		Deposit:          req.Deposit,
		RenterServiceFee: req.Breakdown.RenterServiceFee,
		HubberServiceFee: req.Breakdown.HubberServiceFee,
		HubberNet:        req.Breakdown.HubberNet,
		Total:            req.Breakdown.Total,
		WalletUsed:       req.Allocation.WalletUsed,
		CardCharged:      req.Allocation.AmountDueOnCard,
		Status:           models.BookingStatusConfirmed,
	}

	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}

	if s.wallets != nil && req.Allocation.WalletUsed > 0 {
		if err := s.wallets.DebitBuckets(ctx, req.RenterID, req.Allocation, req.Reference); err != nil {
			// The card charge already settled; a failed bucket debit needs
			// manual reconciliation, not a rejected webhook.
			log.Printf("wallet debit failed for booking %s: %v", req.Reference, err)
		}
	}

	if s.referral != nil {
		if err := s.referral.GrantForFirstBooking(ctx, req.RenterID, req.Reference); err != nil {
			log.Printf("referral grant failed for booking %s: %v", req.Reference, err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, req.RenterID, booking); err != nil {
			log.Printf("confirmation email failed for booking %s: %v", req.Reference, err)
		}
	}

	return booking, nil
}

func (s *service) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return s.repo.GetByReference(ctx, reference)
}

func (s *service) ListForRenter(ctx context.Context, renterID uint, limit, offset int) ([]models.Booking, error) {
	return s.repo.ListByRenter(renterID, limit, offset)
}

func (s *service) ListForHubber(ctx context.Context, hubberID uint, limit, offset int) ([]models.Booking, error) {
	return s.repo.ListByHubber(hubberID, limit, offset)
}
