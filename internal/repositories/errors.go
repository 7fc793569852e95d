package repositories

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrConfigNotFound   = errors.New("fee config not found")
	ErrOverrideNotFound = errors.New("fee override not found")
	ErrReviewNotFound   = errors.New("review not found")
)
