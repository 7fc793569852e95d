// Package referral implements the refer-a-friend program: credit is granted
// to the referrer after the referred renter's first booking, lands on the
// wallet's referral bucket, and expires if unspent.
package referral

import (
	"context"
	"fmt"
	"log"
	"time"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/pricing"
)

const (
	// RewardCents is granted per successful referral.
	RewardCents int64 = 1000

	// CreditTTL is how long a grant stays spendable.
	CreditTTL = 180 * 24 * time.Hour
)

// Service defines referral program operations.
type Service interface {
	// ResolveReferrerID maps a referral code to the referrer's user ID.
	ResolveReferrerID(ctx context.Context, code string) (uint, error)

	// GrantForFirstBooking awards the referrer once the referred renter's
	// first booking exists. Safe to call on every booking; at most one grant
	// is ever made per referred user.
	GrantForFirstBooking(ctx context.Context, renterID uint, reference string) error

	// ExpireStale claws back active grants past their expiry. Returns the
	// number of grants expired.
	ExpireStale(ctx context.Context) (int, error)

	// ListForReferrer returns a referrer's grant history.
	ListForReferrer(ctx context.Context, referrerID uint) ([]models.ReferralCredit, error)
}

// WalletCreditor moves referral credit on and off the wallet bucket.
type WalletCreditor interface {
	CreditReferral(ctx context.Context, userID uint, amountCents int64, reference string) error
	ExpireReferral(ctx context.Context, userID uint, amountCents int64) error
}

// RewardNotifier tells the referrer their credit arrived.
type RewardNotifier interface {
	SendReferralReward(ctx context.Context, userID uint, amount float64) error
}

type service struct {
	repo     repositories.ReferralRepository
	users    repositories.UserRepository
	wallets  WalletCreditor
	notifier RewardNotifier
	now      func() time.Time
}

// NewService creates a referral service. The notifier is optional.
func NewService(repo repositories.ReferralRepository, users repositories.UserRepository, wallets WalletCreditor, notifier RewardNotifier) Service {
	if repo == nil || users == nil || wallets == nil {
		panic("all referral dependencies are required")
	}
	return &service{
		repo:     repo,
		users:    users,
		wallets:  wallets,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) ResolveReferrerID(ctx context.Context, code string) (uint, error) {
	user, err := s.users.GetByReferralCode(code)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *service) GrantForFirstBooking(ctx context.Context, renterID uint, reference string) error {
	renter, err := s.users.GetByID(renterID)
	if err != nil {
		return err
	}
	if renter.ReferredByID == nil {
		return nil
	}

	granted, err := s.repo.HasGrantForReferred(renterID)
	if err != nil {
		return err
	}
	if granted {
		return nil
	}

	credit := &models.ReferralCredit{
		ReferrerID:     *renter.ReferredByID,
		ReferredUserID: renterID,
		AmountCents:    RewardCents,
		Status:         models.ReferralCreditActive,
		ExpiresAt:      s.now().Add(CreditTTL),
	}
	if err := s.repo.Create(credit); err != nil {
		return fmt.Errorf("failed to record referral grant: %w", err)
	}

	if err := s.wallets.CreditReferral(ctx, credit.ReferrerID, RewardCents, reference); err != nil {
		return fmt.Errorf("failed to credit referrer wallet: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendReferralReward(ctx, credit.ReferrerID, pricing.Euros(RewardCents)); err != nil {
			log.Printf("referral reward email failed for user %d: %v", credit.ReferrerID, err)
		}
	}
	return nil
}

func (s *service) ExpireStale(ctx context.Context) (int, error) {
	stale, err := s.repo.ListExpired(s.now())
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		credit := &stale[i]
		if err := s.wallets.ExpireReferral(ctx, credit.ReferrerID, credit.AmountCents); err != nil {
			log.Printf("referral expiry clawback failed for grant %d: %v", credit.ID, err)
			continue
		}
		credit.Status = models.ReferralCreditExpired
		if err := s.repo.Update(credit); err != nil {
			log.Printf("failed to mark grant %d expired: %v", credit.ID, err)
			continue
		}
		expired++
	}
	return expired, nil
}

func (s *service) ListForReferrer(ctx context.Context, referrerID uint) ([]models.ReferralCredit, error) {
	return s.repo.ListByReferrer(referrerID)
}
