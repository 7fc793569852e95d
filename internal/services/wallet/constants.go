package wallet

import "time"

// Wallet statuses
const (
	StatusActive = "active"
	StatusLocked = "locked"
)

// Cache keys and durations
const (
	WalletCachePrefix = "wallet:"
	CacheDuration     = 5 * time.Minute
)
