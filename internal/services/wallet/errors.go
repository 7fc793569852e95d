package wallet

import "errors"

// Service errors
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletLocked        = errors.New("wallet is locked")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBucketOverdraw      = errors.New("bucket allocation exceeds balance")
	ErrTransactionFailed   = errors.New("transaction failed")
)
