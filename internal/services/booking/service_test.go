package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(b *models.Booking) error { return m.Called(b).Error(0) }

func (m *mockBookingRepo) GetByID(id uint) (*models.Booking, error) {
	args := m.Called(id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	args := m.Called(ctx, reference)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(b *models.Booking) error { return m.Called(b).Error(0) }

func (m *mockBookingRepo) ListByRenter(renterID uint, limit, offset int) ([]models.Booking, error) {
	args := m.Called(renterID, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByHubber(hubberID uint, limit, offset int) ([]models.Booking, error) {
	args := m.Called(hubberID, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CountByRenter(renterID uint) (int64, error) {
	args := m.Called(renterID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDebiter struct{ mock.Mock }

func (m *mockDebiter) DebitBuckets(ctx context.Context, userID uint, alloc wallet.Allocation, reference string) error {
	return m.Called(ctx, userID, alloc, reference).Error(0)
}

type mockGranter struct{ mock.Mock }

func (m *mockGranter) GrantForFirstBooking(ctx context.Context, renterID uint, reference string) error {
	return m.Called(ctx, renterID, reference).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, userID uint, booking *models.Booking) error {
	return m.Called(ctx, userID, booking).Error(0)
}

func sampleRequest() MaterializeRequest {
	return MaterializeRequest{
		Reference:     "BK-1",
		ListingID:     42,
		RenterID:      1,
		HubberID:      7,
		PriceUnit:     models.PriceUnitDay,
		DurationUnits: 2,
		StartDate:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		CleaningFee:   10,
		Breakdown: pricing.Breakdown{
			Subtotal:         50,
			CompleteSubtotal: 60,
			RenterServiceFee: 8,
			HubberServiceFee: 8,
			HubberNet:        52,
			Total:            68,
		},
		Allocation: wallet.Allocation{
			RefundUsed:      5,
			WalletUsed:      5,
			AmountDueOnCard: 63,
		},
	}
}

func TestMaterializeCreatesBookingAndDebitsWallet(t *testing.T) {
	repo := new(mockBookingRepo)
	debiter := new(mockDebiter)
	granter := new(mockGranter)
	notifier := new(mockNotifier)
	svc := NewService(repo, debiter, granter, notifier)
	ctx := context.Background()
	req := sampleRequest()

	repo.On("GetByReference", ctx, "BK-1").Return(nil, repositories.ErrBookingNotFound)
	repo.On("Create", mock.MatchedBy(func(b *models.Booking) bool {
		return b.Reference == "BK-1" &&
			b.Status == models.BookingStatusConfirmed &&
			b.WalletUsed == 5 && b.CardCharged == 63 && b.Total == 68
	})).Return(nil)
	debiter.On("DebitBuckets", ctx, uint(1), req.Allocation, "BK-1").Return(nil)
	granter.On("GrantForFirstBooking", ctx, uint(1), "BK-1").Return(nil)
	notifier.On("SendBookingConfirmation", ctx, uint(1), mock.Anything).Return(nil)

	created, err := svc.Materialize(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "BK-1", created.Reference)
	repo.AssertExpectations(t)
	debiter.AssertExpectations(t)
}

func TestMaterializeIsIdempotentByReference(t *testing.T) {
	repo := new(mockBookingRepo)
	debiter := new(mockDebiter)
	svc := NewService(repo, debiter, nil, nil)
	ctx := context.Background()

	existing := &models.Booking{Reference: "BK-1"}
	repo.On("GetByReference", ctx, "BK-1").Return(existing, nil)

	created, err := svc.Materialize(ctx, sampleRequest())

	assert.NoError(t, err)
	assert.Same(t, existing, created)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	debiter.AssertNotCalled(t, "DebitBuckets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMaterializeSurvivesWalletDebitFailure(t *testing.T) {
	repo := new(mockBookingRepo)
	debiter := new(mockDebiter)
	svc := NewService(repo, debiter, nil, nil)
	ctx := context.Background()
	req := sampleRequest()

	repo.On("GetByReference", ctx, "BK-1").Return(nil, repositories.ErrBookingNotFound)
	repo.On("Create", mock.Anything).Return(nil)
	debiter.On("DebitBuckets", ctx, uint(1), req.Allocation, "BK-1").Return(errors.New("bucket overdrawn"))

	// The card has already settled: the booking must exist either way.
	created, err := svc.Materialize(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "BK-1", created.Reference)
}

func TestMaterializeSkipsDebitWhenNoWalletUsed(t *testing.T) {
	repo := new(mockBookingRepo)
	debiter := new(mockDebiter)
	svc := NewService(repo, debiter, nil, nil)
	ctx := context.Background()

	req := sampleRequest()
	req.Allocation = wallet.Allocation{AmountDueOnCard: 68}

	repo.On("GetByReference", ctx, "BK-1").Return(nil, repositories.ErrBookingNotFound)
	repo.On("Create", mock.Anything).Return(nil)

	_, err := svc.Materialize(ctx, req)

	assert.NoError(t, err)
	debiter.AssertNotCalled(t, "DebitBuckets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIntentMetadataRoundTrip(t *testing.T) {
	req := sampleRequest()
	end := req.StartDate.Add(48 * time.Hour)
	req.EndDate = &end

	meta := EncodeIntentMetadata(req)
	meta["reference"] = req.Reference // the gateway sets this key

	decoded, err := DecodeIntentMetadata(meta)

	assert.NoError(t, err)
	assert.Equal(t, req.Reference, decoded.Reference)
	assert.Equal(t, req.ListingID, decoded.ListingID)
	assert.Equal(t, req.DurationUnits, decoded.DurationUnits)
	assert.True(t, req.StartDate.Equal(decoded.StartDate))
	assert.True(t, end.Equal(*decoded.EndDate))
	assert.Equal(t, req.Breakdown.Total, decoded.Breakdown.Total)
	assert.Equal(t, req.Allocation.AmountDueOnCard, decoded.Allocation.AmountDueOnCard)
}

func TestIntentMetadataRejectsMissingReference(t *testing.T) {
	meta := EncodeIntentMetadata(sampleRequest())

	_, err := DecodeIntentMetadata(meta)

	assert.Error(t, err)
}
