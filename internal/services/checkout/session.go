package checkout

import (
	"sync"

	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

// Session tracks one payment modal through its lifecycle:
//
//	idle -> feesLoading -> ready -> submitting -> succeeded
//	                         ^           |
//	                         +-- failed -+  (error retained, retry allowed)
//
// Ready requires both the fee configuration and the wallet balances to have
// loaded. Submitting blocks re-entry so a double click cannot double-charge.
type Session struct {
	mu sync.Mutex

	state   State
	lastErr string

	rates        pricing.Rates
	maxCreditPct float64
	override     *pricing.Override
	balances     wallet.Balances
}

// NewSession creates a session in the idle state.
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the retained error message from the last failed submit.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) beginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFeesLoading
}

func (s *Session) becomeReady(rates pricing.Rates, maxCreditPct float64, override *pricing.Override, balances wallet.Balances) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates = rates
	s.maxCreditPct = maxCreditPct
	s.override = override
	s.balances = balances
	s.state = StateReady
}

// beginSubmit transitions ready -> submitting. It is the double-submit guard:
// a session that is already submitting, or not yet loaded, is rejected.
func (s *Session) beginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return ErrAlreadySubmitting
	case StateReady:
		s.state = StateSubmitting
		return nil
	default:
		return ErrNotReady
	}
}

// fail returns the session to ready with the error message retained.
// There is no automatic retry; the renter decides whether to try again.
func (s *Session) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
	s.state = StateReady
}

func (s *Session) succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
	s.state = StateSucceeded
}

func (s *Session) snapshot() (pricing.Rates, float64, *pricing.Override, wallet.Balances) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates, s.maxCreditPct, s.override, s.balances
}
