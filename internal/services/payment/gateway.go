// Package payment wraps the card processor behind a small gateway interface.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// IntentRequest describes a charge to collect on card. Amounts are integer
// cents; the caller performs the euro-to-cent conversion exactly once.
type IntentRequest struct {
	AmountCents int64
	Currency    string
	Reference   string
	Metadata    map[string]string
}

// Intent is the processor-side handle the client needs to confirm the card
// payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway is the card processing boundary.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

type stripeGateway struct{}

// NewStripeGateway configures the Stripe client with the given secret key.
func NewStripeGateway(apiKey string) Gateway {
	stripe.Key = apiKey
	return &stripeGateway{}
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("invalid intent amount: %d", req.AmountCents)
	}
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("reference", req.Reference)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
