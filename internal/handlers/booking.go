package handlers

import (
	"errors"

	"renthub/internal/repositories"
	"renthub/internal/services/booking"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	bookingService booking.Service
}

func NewBookingHandler(bookingService booking.Service) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetByReference returns a booking; only a party to the booking may read it.
func (h *BookingHandler) GetByReference(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	b, err := h.bookingService.GetByReference(c.Context(), c.Params("reference"))
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return utils.NotFound(c, "Booking not found")
		}
		return utils.InternalError(c, "Failed to load booking")
	}
	if b.RenterID != claims.UserID && b.HubberID != claims.UserID && claims.Role != "admin" {
		return utils.Forbidden(c, "not a party to this booking")
	}
	return utils.Success(c, fiber.Map{"booking": b})
}

// MyBookings lists the authenticated renter's bookings.
func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit, offset := pagination(c)
	bookings, err := h.bookingService.ListForRenter(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list bookings")
	}
	return utils.Success(c, fiber.Map{"bookings": bookings})
}

// HostedBookings lists bookings on the authenticated hubber's listings.
func (h *BookingHandler) HostedBookings(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit, offset := pagination(c)
	bookings, err := h.bookingService.ListForHubber(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list bookings")
	}
	return utils.Success(c, fiber.Map{"bookings": bookings})
}
