package checkout

import "errors"

// Service errors
var (
	ErrNotReady                = errors.New("checkout is not ready")
	ErrAlreadySubmitting       = errors.New("checkout already submitting")
	ErrNoDuration              = errors.New("no dates selected")
	ErrInvalidSelection        = errors.New("selected dates or times are invalid")
	ErrInsufficientWalletFunds = errors.New("wallet balance no longer covers the intended amount")
	ErrBookingNotMaterialized  = errors.New("payment confirmed but booking not yet available; please wait or contact support")
	ErrListingUnavailable      = errors.New("listing is not available for booking")
)
