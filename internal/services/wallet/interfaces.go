package wallet

import (
	"context"

	"renthub/internal/models"
)

// Service defines the wallet service interface.
type Service interface {
	// Wallet management
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error)

	// Balance operations. GetBalances converts the stored cent buckets to
	// decimal euros exactly once.
	GetBalances(ctx context.Context, userID uint) (Balances, error)

	// Booking settlement. DebitBuckets validates each bucket against the
	// requested amounts and fails rather than clamping.
	DebitBuckets(ctx context.Context, userID uint, alloc Allocation, reference string) error

	// Credit operations
	CreditReferral(ctx context.Context, userID uint, amountCents int64, reference string) error
	CreditRefund(ctx context.Context, userID uint, amountCents int64, reference string) error
	ExpireReferral(ctx context.Context, userID uint, amountCents int64) error

	// History
	GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}

// CacheOperator defines the caching operations the wallet service needs.
type CacheOperator interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// MetricsCollector defines the metrics emitted by wallet operations.
type MetricsCollector interface {
	RecordTransaction(txType string, amountCents int64)
	RecordError(operation, errType string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}
