package handlers

import (
	"errors"

	"renthub/internal/services/user"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account. A referral code links the new user to the
// referrer; the referrer is rewarded after the new user's first booking.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.userService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrPhoneTaken):
			return utils.Conflict(c, err.Error())
		case errors.Is(err, user.ErrUnknownReferralCode):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.BadRequest(c, err.Error())
		}
	}

	return utils.Created(c, fiber.Map{
		"user": fiber.Map{
			"id":            created.ID,
			"name":          created.Name,
			"email":         created.Email,
			"role":          created.Role,
			"referral_code": created.ReferralCode,
		},
	})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.Map{
		"user": fiber.Map{
			"id":            u.ID,
			"name":          u.Name,
			"email":         u.Email,
			"phone":         u.Phone,
			"role":          u.Role,
			"super_hubber":  u.SuperHubber,
			"referral_code": u.ReferralCode,
		},
	})
}

// BecomeHubber upgrades a renter account so it can own listings.
func (h *UserHandler) BecomeHubber(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.BecomeHubber(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to upgrade account")
	}
	return utils.Success(c, fiber.Map{"role": u.Role})
}
