package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"renthub/internal/models"
	"renthub/internal/repositories"
)

// Booking-discovery poll budget. The webhook that materializes the booking
// is asynchronous; we wait a fixed schedule for it, then give up for good.
const (
	pollAttempts = 10
	pollInterval = time.Second
)

// BookingFinder looks up a booking by its payment reference.
type BookingFinder interface {
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
}

type poller struct {
	attempts int
	interval time.Duration
}

func newPoller() poller {
	return poller{attempts: pollAttempts, interval: pollInterval}
}

// await polls sequentially until the booking appears, the context is
// cancelled, or the attempt budget runs out. It never retries the payment
// itself; exhausting the budget is a hard failure for manual follow-up.
func (p poller) await(ctx context.Context, finder BookingFinder, reference string) (*models.Booking, error) {
	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.interval):
			}
		}

		booking, err := finder.GetByReference(ctx, reference)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, repositories.ErrBookingNotFound) {
			log.Printf("booking poll for %s: %v", reference, err)
		}
	}
	return nil, ErrBookingNotMaterialized
}
