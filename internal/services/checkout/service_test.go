package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/booking"
	"renthub/internal/services/payment"
	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

type mockFees struct{ mock.Mock }

func (m *mockFees) GetRates(ctx context.Context) (pricing.Rates, float64) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.Rates), args.Get(1).(float64)
}

func (m *mockFees) GetOverride(ctx context.Context, userID uint) *pricing.Override {
	args := m.Called(ctx, userID)
	if o := args.Get(0); o != nil {
		return o.(*pricing.Override)
	}
	return nil
}

type mockWallets struct{ mock.Mock }

func (m *mockWallets) GetBalances(ctx context.Context, userID uint) (wallet.Balances, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(wallet.Balances), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) Materialize(ctx context.Context, req booking.MaterializeRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookings) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	args := m.Called(ctx, reference)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockListings struct{ mock.Mock }

func (m *mockListings) GetWithOwner(id uint) (*models.Listing, error) {
	args := m.Called(id)
	if l := args.Get(0); l != nil {
		return l.(*models.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	args := m.Called(ctx, req)
	if i := args.Get(0); i != nil {
		return i.(*payment.Intent), args.Error(1)
	}
	return nil, args.Error(1)
}

type testDeps struct {
	fees     *mockFees
	wallets  *mockWallets
	bookings *mockBookings
	listings *mockListings
	gateway  *mockGateway
}

func newTestService() (*service, *testDeps) {
	d := &testDeps{
		fees:     new(mockFees),
		wallets:  new(mockWallets),
		bookings: new(mockBookings),
		listings: new(mockListings),
		gateway:  new(mockGateway),
	}
	svc := &service{
		fees:     d.fees,
		wallets:  d.wallets,
		bookings: d.bookings,
		listings: d.listings,
		gateway:  d.gateway,
		poll:     poller{attempts: 3, interval: time.Millisecond},
	}
	return svc, d
}

func defaultRates() pricing.Rates {
	return pricing.Rates{
		RenterPercentage:      10,
		HubberPercentage:      10,
		SuperHubberPercentage: 5,
		RenterFixedFee:        2,
		HubberFixedFee:        2,
	}
}

func dayListing() *models.Listing {
	l := &models.Listing{
		OwnerID:     7,
		Owner:       &models.User{},
		Category:    models.ListingCategorySpace,
		PriceUnit:   models.PriceUnitDay,
		UnitPrice:   25,
		CleaningFee: 10,
		Status:      "published",
	}
	l.ID = 42
	return l
}

func twoDaySelection() QuoteRequest {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	return QuoteRequest{ListingID: 42, StartDate: &start, EndDate: &end}
}

func readySession(balances wallet.Balances) *Session {
	s := NewSession()
	s.beginLoading()
	s.becomeReady(defaultRates(), 30, nil, balances)
	return s
}

func TestNewSessionLoadsWallet(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()

	d.fees.On("GetRates", ctx).Return(defaultRates(), float64(30))
	d.fees.On("GetOverride", ctx, uint(1)).Return(nil)
	d.wallets.On("GetBalances", ctx, uint(1)).Return(wallet.Balances{General: 10, Referral: 5}, nil)

	session, err := svc.NewSession(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, StateReady, session.State())
	_, maxPct, _, balances := session.snapshot()
	assert.Equal(t, float64(30), maxPct)
	assert.Equal(t, float64(10), balances.General)
}

func TestNewSessionWalletFailureMeansCardOnly(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()

	d.fees.On("GetRates", ctx).Return(defaultRates(), float64(30))
	d.fees.On("GetOverride", ctx, uint(1)).Return(nil)
	d.wallets.On("GetBalances", ctx, uint(1)).Return(wallet.Balances{}, errors.New("redis down"))

	session, err := svc.NewSession(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, StateReady, session.State())
	_, _, _, balances := session.snapshot()
	assert.Zero(t, balances.Sum())
}

func TestQuoteComputesSplit(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	session := readySession(wallet.Balances{Refund: 5, Referral: 100, General: 10})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)

	result, err := svc.Quote(ctx, session, 1, twoDaySelection())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.DurationUnits)
	// 2 days * 25 + 10 cleaning = 60; renter fee 10% + 2 = 8; total 68.
	assert.InDelta(t, 60.0, result.Breakdown.CompleteSubtotal, 1e-9)
	assert.InDelta(t, 8.0, result.Breakdown.RenterServiceFee, 1e-9)
	assert.InDelta(t, 68.0, result.Breakdown.Total, 1e-9)
	// Refund 5, referral capped at 30% of 8 = 2.4, general 10.
	assert.InDelta(t, 5.0, result.Allocation.RefundUsed, 1e-9)
	assert.InDelta(t, 2.4, result.Allocation.ReferralUsed, 1e-9)
	assert.InDelta(t, 10.0, result.Allocation.GeneralUsed, 1e-9)
	assert.InDelta(t, 50.6, result.Allocation.AmountDueOnCard, 1e-9)
}

func TestQuoteRejectsUnloadedSession(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Quote(context.Background(), NewSession(), 1, twoDaySelection())

	assert.ErrorIs(t, err, ErrNotReady)
}

func TestQuoteRejectsUnpublishedListing(t *testing.T) {
	svc, d := newTestService()
	session := readySession(wallet.Balances{})

	unpublished := dayListing()
	unpublished.Status = "draft"
	d.listings.On("GetWithOwner", uint(42)).Return(unpublished, nil)

	_, err := svc.Quote(context.Background(), session, 1, twoDaySelection())

	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestQuoteRejectsReversedDates(t *testing.T) {
	svc, d := newTestService()
	session := readySession(wallet.Balances{})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)

	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	start := end.Add(48 * time.Hour)
	_, err := svc.Quote(context.Background(), session, 1, QuoteRequest{ListingID: 42, StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestSubmitCardPath(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	session := readySession(wallet.Balances{Refund: 5})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)
	d.wallets.On("GetBalances", ctx, uint(1)).Return(wallet.Balances{Refund: 5}, nil)
	d.gateway.On("CreatePaymentIntent", ctx, mock.MatchedBy(func(req payment.IntentRequest) bool {
		return req.AmountCents == 6300 && req.Currency == "eur"
	})).Return(&payment.Intent{ID: "pi_1", ClientSecret: "secret_1"}, nil)

	result, err := svc.Submit(ctx, session, 1, SubmitRequest{QuoteRequest: twoDaySelection(), ExpectedWalletUsed: 5})

	assert.NoError(t, err)
	assert.False(t, result.PaidInFull)
	assert.Equal(t, "secret_1", result.ClientSecret)
	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, StateSubmitting, session.State())
	d.bookings.AssertNotCalled(t, "Materialize", mock.Anything, mock.Anything)
}

func TestSubmitWalletOnlySkipsCard(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	session := readySession(wallet.Balances{Refund: 100})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)
	d.wallets.On("GetBalances", ctx, uint(1)).Return(wallet.Balances{Refund: 100}, nil)
	d.bookings.On("Materialize", ctx, mock.MatchedBy(func(req booking.MaterializeRequest) bool {
		return req.Allocation.AmountDueOnCard == 0 && req.RenterID == 1 && req.HubberID == 7
	})).Return(&models.Booking{Reference: "BK-x"}, nil)

	result, err := svc.Submit(ctx, session, 1, SubmitRequest{QuoteRequest: twoDaySelection(), ExpectedWalletUsed: 68})

	assert.NoError(t, err)
	assert.True(t, result.PaidInFull)
	assert.Empty(t, result.ClientSecret)
	assert.Equal(t, StateSucceeded, session.State())
	d.gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func TestSubmitStaleWalletRejected(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	// Preview was computed against a richer wallet than what remains.
	session := readySession(wallet.Balances{Refund: 50})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)
	d.wallets.On("GetBalances", ctx, uint(1)).Return(wallet.Balances{Refund: 5}, nil)

	_, err := svc.Submit(ctx, session, 1, SubmitRequest{QuoteRequest: twoDaySelection(), ExpectedWalletUsed: 50})

	assert.ErrorIs(t, err, ErrInsufficientWalletFunds)
	assert.Equal(t, StateReady, session.State())
	assert.Equal(t, ErrInsufficientWalletFunds.Error(), session.LastError())
	d.gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
	d.bookings.AssertNotCalled(t, "Materialize", mock.Anything, mock.Anything)
}

func TestSubmitWithoutDatesRejected(t *testing.T) {
	svc, d := newTestService()
	session := readySession(wallet.Balances{})

	d.listings.On("GetWithOwner", uint(42)).Return(dayListing(), nil)

	_, err := svc.Submit(context.Background(), session, 1, SubmitRequest{QuoteRequest: QuoteRequest{ListingID: 42}})

	assert.ErrorIs(t, err, ErrNoDuration)
	assert.Equal(t, StateReady, session.State())
}

func TestSubmitBlocksReentry(t *testing.T) {
	session := readySession(wallet.Balances{})
	assert.NoError(t, session.beginSubmit())

	svc, _ := newTestService()
	_, err := svc.Submit(context.Background(), session, 1, SubmitRequest{QuoteRequest: twoDaySelection()})

	assert.ErrorIs(t, err, ErrAlreadySubmitting)
}

func TestAwaitBookingSucceedsOnLaterAttempt(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	session := readySession(wallet.Balances{})
	assert.NoError(t, session.beginSubmit())

	d.bookings.On("GetByReference", ctx, "BK-1").Return(nil, repositories.ErrBookingNotFound).Twice()
	d.bookings.On("GetByReference", ctx, "BK-1").Return(&models.Booking{Reference: "BK-1"}, nil).Once()

	found, err := svc.AwaitBooking(ctx, session, "BK-1")

	assert.NoError(t, err)
	assert.Equal(t, "BK-1", found.Reference)
	assert.Equal(t, StateSucceeded, session.State())
}

func TestAwaitBookingExhaustsBudget(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	session := readySession(wallet.Balances{})
	assert.NoError(t, session.beginSubmit())

	d.bookings.On("GetByReference", ctx, "BK-2").Return(nil, repositories.ErrBookingNotFound)

	_, err := svc.AwaitBooking(ctx, session, "BK-2")

	assert.ErrorIs(t, err, ErrBookingNotMaterialized)
	assert.Equal(t, StateReady, session.State())
	d.bookings.AssertNumberOfCalls(t, "GetByReference", 3)
}

func TestAwaitBookingStopsOnCancel(t *testing.T) {
	svc, d := newTestService()
	svc.poll = poller{attempts: 10, interval: 50 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	session := readySession(wallet.Balances{})
	assert.NoError(t, session.beginSubmit())

	d.bookings.On("GetByReference", mock.Anything, "BK-3").Return(nil, repositories.ErrBookingNotFound).Run(func(mock.Arguments) {
		cancel()
	})

	start := time.Now()
	_, err := svc.AwaitBooking(ctx, session, "BK-3")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
	d.bookings.AssertNumberOfCalls(t, "GetByReference", 1)
}
