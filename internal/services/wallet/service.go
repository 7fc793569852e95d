package wallet

import (
	"context"
	"fmt"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/pricing"
)

type service struct {
	repo    repositories.WalletRepository
	cache   CacheOperator
	metrics MetricsCollector
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache CacheOperator, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
		s.metrics.RecordCacheHit(WalletCachePrefix)
		return wallet, nil
	}
	s.metrics.RecordCacheMiss(WalletCachePrefix)

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	if currency == "" {
		currency = "EUR"
	}
	wallet := &models.Wallet{
		UserID:   userID,
		Currency: currency,
		Status:   StatusActive,
	}

	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

// GetBalances loads the three buckets and converts them from stored cents
// to decimal euros in one place. Callers must not convert again.
func (s *service) GetBalances(ctx context.Context, userID uint) (Balances, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return Balances{}, err
	}
	return Balances{
		General:  pricing.Euros(wallet.BalanceCents),
		Referral: pricing.Euros(wallet.ReferralBalanceCents),
		Refund:   pricing.Euros(wallet.RefundBalanceCents),
	}, nil
}

// DebitBuckets settles a booking's wallet portion. Unlike Allocate, which
// clamps while computing a split, this validates the requested amounts
// against the live balances and fails on any shortfall.
func (s *service) DebitBuckets(ctx context.Context, userID uint, alloc Allocation, reference string) error {
	refundCents := pricing.Cents(alloc.RefundUsed)
	referralCents := pricing.Cents(alloc.ReferralUsed)
	generalCents := pricing.Cents(alloc.GeneralUsed)

	if refundCents < 0 || referralCents < 0 || generalCents < 0 {
		return ErrInvalidAmount
	}
	if refundCents+referralCents+generalCents == 0 {
		return nil
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Status != StatusActive {
		return ErrWalletLocked
	}

	if wallet.RefundBalanceCents < refundCents ||
		wallet.ReferralBalanceCents < referralCents ||
		wallet.BalanceCents < generalCents {
		return ErrBucketOverdraw
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet.RefundBalanceCents -= refundCents
		wallet.ReferralBalanceCents -= referralCents
		wallet.BalanceCents -= generalCents
		if err := tx.Update(wallet); err != nil {
			return err
		}

		for _, mv := range []struct {
			bucket string
			cents  int64
		}{
			{models.BucketRefund, refundCents},
			{models.BucketReferral, referralCents},
			{models.BucketGeneral, generalCents},
		} {
			if mv.cents == 0 {
				continue
			}
			txn := &models.Transaction{
				WalletID:    wallet.ID,
				UserID:      userID,
				Type:        models.TransactionTypeBookingDebit,
				Bucket:      mv.bucket,
				AmountCents: mv.cents,
				Description: "Booking payment from wallet credit",
				Status:      "completed",
				Reference:   reference,
				Metadata: models.NewJSON(map[string]interface{}{
					"refund_cents":   refundCents,
					"referral_cents": referralCents,
					"general_cents":  generalCents,
				}),
			}
			if err := tx.CreateTransaction(txn); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		s.metrics.RecordError("debit_buckets", err.Error())
		return ErrTransactionFailed
	}

	s.cache.InvalidateWallet(ctx, userID)
	s.metrics.RecordTransaction(models.TransactionTypeBookingDebit, refundCents+referralCents+generalCents)

	return nil
}

func (s *service) CreditReferral(ctx context.Context, userID uint, amountCents int64, reference string) error {
	return s.credit(ctx, userID, amountCents, models.BucketReferral, models.TransactionTypeReferralCredit, reference)
}

func (s *service) CreditRefund(ctx context.Context, userID uint, amountCents int64, reference string) error {
	return s.credit(ctx, userID, amountCents, models.BucketRefund, models.TransactionTypeRefundCredit, reference)
}

func (s *service) credit(ctx context.Context, userID uint, amountCents int64, bucket, txType, reference string) error {
	if amountCents <= 0 {
		return ErrInvalidAmount
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Status != StatusActive {
		return ErrWalletLocked
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		switch bucket {
		case models.BucketReferral:
			wallet.ReferralBalanceCents += amountCents
		case models.BucketRefund:
			wallet.RefundBalanceCents += amountCents
		default:
			wallet.BalanceCents += amountCents
		}
		if err := tx.Update(wallet); err != nil {
			return err
		}

		return tx.CreateTransaction(&models.Transaction{
			WalletID:    wallet.ID,
			UserID:      userID,
			Type:        txType,
			Bucket:      bucket,
			AmountCents: amountCents,
			Status:      "completed",
			Reference:   reference,
		})
	})

	if err != nil {
		s.metrics.RecordError(txType, err.Error())
		return ErrTransactionFailed
	}

	s.cache.InvalidateWallet(ctx, userID)
	s.metrics.RecordTransaction(txType, amountCents)

	return nil
}

// ExpireReferral claws back expired referral credit. If part of the grant
// was already spent the clawback is limited to what is left; buckets never
// go below zero.
func (s *service) ExpireReferral(ctx context.Context, userID uint, amountCents int64) error {
	if amountCents <= 0 {
		return ErrInvalidAmount
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	clawback := amountCents
	if wallet.ReferralBalanceCents < clawback {
		clawback = wallet.ReferralBalanceCents
	}
	if clawback == 0 {
		return nil
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet.ReferralBalanceCents -= clawback
		if err := tx.Update(wallet); err != nil {
			return err
		}
		return tx.CreateTransaction(&models.Transaction{
			WalletID:    wallet.ID,
			UserID:      userID,
			Type:        models.TransactionTypeReferralExpiry,
			Bucket:      models.BucketReferral,
			AmountCents: clawback,
			Description: "Expired referral credit",
			Status:      "completed",
		})
	})

	if err != nil {
		s.metrics.RecordError("referral_expiry", err.Error())
		return ErrTransactionFailed
	}

	s.cache.InvalidateWallet(ctx, userID)
	s.metrics.RecordTransaction(models.TransactionTypeReferralExpiry, clawback)

	return nil
}

func (s *service) GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTransactionHistory(ctx, wallet.ID, limit, offset)
}
