package handlers

import (
	"errors"

	"renthub/internal/repositories"
	"renthub/internal/services/review"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService review.Service
}

func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req review.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.reviewService.Create(c.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrBookingNotFound):
			return utils.NotFound(c, "Booking not found")
		case errors.Is(err, review.ErrNotBookingRenter):
			return utils.Forbidden(c, err.Error())
		case errors.Is(err, review.ErrAlreadyReviewed):
			return utils.Conflict(c, err.Error())
		default:
			return utils.BadRequest(c, err.Error())
		}
	}
	return utils.Created(c, fiber.Map{"review": created})
}

func (h *ReviewHandler) ListByListing(c *fiber.Ctx) error {
	listingID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid listing id")
	}

	limit, offset := pagination(c)
	reviews, err := h.reviewService.ListByListing(c.Context(), listingID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list reviews")
	}

	avg, err := h.reviewService.AverageRating(c.Context(), listingID)
	if err != nil {
		return utils.InternalError(c, "Failed to compute rating")
	}
	return utils.Success(c, fiber.Map{"reviews": reviews, "average_rating": avg})
}
