package handlers

import (
	"errors"

	"renthub/internal/repositories"
	"renthub/internal/services/listing"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	listingService listing.Service
}

func NewListingHandler(listingService listing.Service) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req listing.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.listingService.Create(c.Context(), claims.UserID, req)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, fiber.Map{"listing": created})
}

func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid listing id")
	}

	l, err := h.listingService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return utils.NotFound(c, "Listing not found")
		}
		return utils.InternalError(c, "Failed to load listing")
	}
	return utils.Success(c, fiber.Map{"listing": l})
}

func (h *ListingHandler) Update(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid listing id")
	}

	var req listing.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.listingService.Update(c.Context(), claims.UserID, id, req)
	if err != nil {
		return listingError(c, err)
	}
	return utils.Success(c, fiber.Map{"listing": updated})
}

func (h *ListingHandler) Publish(c *fiber.Ctx) error {
	return h.setStatus(c, true)
}

func (h *ListingHandler) Unpublish(c *fiber.Ctx) error {
	return h.setStatus(c, false)
}

func (h *ListingHandler) setStatus(c *fiber.Ctx, publish bool) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid listing id")
	}

	var updated interface{}
	if publish {
		updated, err = h.listingService.Publish(c.Context(), claims.UserID, id)
	} else {
		updated, err = h.listingService.Unpublish(c.Context(), claims.UserID, id)
	}
	if err != nil {
		return listingError(c, err)
	}
	return utils.Success(c, fiber.Map{"listing": updated})
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid listing id")
	}

	if err := h.listingService.Delete(c.Context(), claims.UserID, id); err != nil {
		return listingError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "listing deleted"})
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	listings, err := h.listingService.List(c.Context(), limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list listings")
	}
	return utils.Success(c, fiber.Map{"listings": listings})
}

func (h *ListingHandler) Mine(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	listings, err := h.listingService.ListByOwner(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to list listings")
	}
	return utils.Success(c, fiber.Map{"listings": listings})
}

func listingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrListingNotFound):
		return utils.NotFound(c, "Listing not found")
	case errors.Is(err, listing.ErrNotOwner):
		return utils.Forbidden(c, err.Error())
	default:
		return utils.BadRequest(c, err.Error())
	}
}
