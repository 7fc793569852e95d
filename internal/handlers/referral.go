package handlers

import (
	"renthub/internal/services/referral"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReferralHandler struct {
	referralService referral.Service
}

func NewReferralHandler(referralService referral.Service) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

// MyReferrals lists the authenticated user's referral grants.
func (h *ReferralHandler) MyReferrals(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	credits, err := h.referralService.ListForReferrer(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to list referrals")
	}
	return utils.Success(c, fiber.Map{"referrals": credits})
}
