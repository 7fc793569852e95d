package handlers

import (
	"errors"

	"renthub/internal/repositories"
	"renthub/internal/services/checkout"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService checkout.Service
}

func NewCheckoutHandler(checkoutService checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Quote previews the cost breakdown and the wallet-vs-card split for the
// renter's current selection.
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req checkout.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	session, err := h.checkoutService.NewSession(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to prepare checkout")
	}

	result, err := h.checkoutService.Quote(c.Context(), session, claims.UserID, req)
	if err != nil {
		return checkoutError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"state":          session.State(),
		"duration_units": result.DurationUnits,
		"breakdown":      result.Breakdown,
		"balances":       result.Balances,
		"allocation":     result.Allocation,
	})
}

// Submit confirms the quote. The response either carries a client secret for
// the card step or marks the booking as already paid in full from wallet
// credit.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req checkout.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	session, err := h.checkoutService.NewSession(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to prepare checkout")
	}

	result, err := h.checkoutService.Submit(c.Context(), session, claims.UserID, req)
	if err != nil {
		return checkoutError(c, err)
	}
	return utils.Success(c, result)
}

// AwaitBooking waits for the booking created by the payment webhook. The
// wait is bound to the request context: a dropped connection stops the poll
// immediately.
func (h *CheckoutHandler) AwaitBooking(c *fiber.Ctx) error {
	if _, err := extractUserClaims(c); err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	reference := c.Params("reference")
	if reference == "" {
		return utils.BadRequest(c, "reference is required")
	}

	booking, err := h.checkoutService.AwaitBooking(c.Context(), nil, reference)
	if err != nil {
		if errors.Is(err, checkout.ErrBookingNotMaterialized) {
			return utils.Respond(c, fiber.StatusGatewayTimeout, fiber.Map{"error": err.Error()})
		}
		return utils.InternalError(c, "Failed to confirm booking")
	}
	return utils.Success(c, fiber.Map{"booking": booking})
}

func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrListingNotFound):
		return utils.NotFound(c, "Listing not found")
	case errors.Is(err, checkout.ErrListingUnavailable):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, checkout.ErrNoDuration), errors.Is(err, checkout.ErrInvalidSelection):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, checkout.ErrInsufficientWalletFunds):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, checkout.ErrNotReady), errors.Is(err, checkout.ErrAlreadySubmitting):
		return utils.Conflict(c, err.Error())
	default:
		return utils.InternalError(c, err.Error())
	}
}
