package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"

	"renthub/internal/services/booking"
	"renthub/internal/utils"
)

type WebhookHandler struct {
	bookingService booking.Service
	signingSecret  string
}

func NewWebhookHandler(bookingService booking.Service, signingSecret string) *WebhookHandler {
	return &WebhookHandler{
		bookingService: bookingService,
		signingSecret:  signingSecret,
	}
}

// HandleStripe processes processor events. A settled payment intent carries
// the full booking request in its metadata; the booking is materialized here,
// idempotently, so redeliveries are harmless.
func (h *WebhookHandler) HandleStripe(c *fiber.Ctx) error {
	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), h.signingSecret)
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		return utils.BadRequest(c, "invalid signature")
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			log.Printf("failed to parse payment intent event: %v", err)
			return utils.BadRequest(c, "malformed event")
		}
		return h.handlePaymentSucceeded(c, &intent)
	case "payment_intent.payment_failed":
		// Nothing to roll back: wallet buckets are only debited after
		// settlement. The client surfaces the processor's message.
		log.Printf("payment intent failed: %s", event.ID)
		return utils.Success(c, fiber.Map{"received": true})
	default:
		return utils.Success(c, fiber.Map{"received": true})
	}
}

func (h *WebhookHandler) handlePaymentSucceeded(c *fiber.Ctx, intent *stripe.PaymentIntent) error {
	req, err := booking.DecodeIntentMetadata(intent.Metadata)
	if err != nil {
		log.Printf("intent %s carries unusable metadata: %v", intent.ID, err)
		return utils.BadRequest(c, "unusable intent metadata")
	}

	created, err := h.bookingService.Materialize(c.Context(), req)
	if err != nil {
		log.Printf("failed to materialize booking %s: %v", req.Reference, err)
		// Non-2xx asks the processor to redeliver.
		return utils.InternalError(c, "failed to materialize booking")
	}

	return utils.Success(c, fiber.Map{"received": true, "booking": created.Reference})
}
