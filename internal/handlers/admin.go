package handlers

import (
	"renthub/internal/models"
	"renthub/internal/services/feeconfig"
	"renthub/internal/services/user"
	"renthub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	feeService  feeconfig.Service
	userService user.Service
}

func NewAdminHandler(feeService feeconfig.Service, userService user.Service) *AdminHandler {
	return &AdminHandler{
		feeService:  feeService,
		userService: userService,
	}
}

// GetFeeConfig returns the effective platform rates.
func (h *AdminHandler) GetFeeConfig(c *fiber.Ctx) error {
	rates, maxCreditPct := h.feeService.GetRates(c.Context())
	return utils.Success(c, fiber.Map{
		"renter_percentage":        rates.RenterPercentage,
		"hubber_percentage":        rates.HubberPercentage,
		"super_hubber_percentage":  rates.SuperHubberPercentage,
		"renter_fixed_fee":         rates.RenterFixedFee,
		"hubber_fixed_fee":         rates.HubberFixedFee,
		"max_credit_usage_percent": maxCreditPct,
	})
}

// UpdateFeeConfig replaces the active platform rates.
func (h *AdminHandler) UpdateFeeConfig(c *fiber.Ctx) error {
	var input struct {
		RenterPercentage      float64 `json:"renter_percentage"`
		HubberPercentage      float64 `json:"hubber_percentage"`
		SuperHubberPercentage float64 `json:"super_hubber_percentage"`
		RenterFixedFee        float64 `json:"renter_fixed_fee"`
		HubberFixedFee        float64 `json:"hubber_fixed_fee"`
		MaxCreditUsagePercent float64 `json:"max_credit_usage_percent"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.RenterPercentage < 0 || input.RenterPercentage > 100 ||
		input.HubberPercentage < 0 || input.HubberPercentage > 100 ||
		input.SuperHubberPercentage < 0 || input.SuperHubberPercentage > 100 ||
		input.MaxCreditUsagePercent < 0 || input.MaxCreditUsagePercent > 100 {
		return utils.BadRequest(c, "percentages must be between 0 and 100")
	}
	if input.RenterFixedFee < 0 || input.HubberFixedFee < 0 {
		return utils.BadRequest(c, "fixed fees cannot be negative")
	}

	cfg := &models.FeeConfig{
		RenterPercentage:      input.RenterPercentage,
		HubberPercentage:      input.HubberPercentage,
		SuperHubberPercentage: input.SuperHubberPercentage,
		RenterFixedFee:        input.RenterFixedFee,
		HubberFixedFee:        input.HubberFixedFee,
		MaxCreditUsagePercent: input.MaxCreditUsagePercent,
	}
	if err := h.feeService.UpdateConfig(c.Context(), cfg); err != nil {
		return utils.InternalError(c, "Failed to update fee config")
	}
	return utils.Success(c, fiber.Map{"message": "fee config updated"})
}

// SetFeeOverride creates or replaces a per-user fee exception.
func (h *AdminHandler) SetFeeOverride(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		FeesDisabled    bool     `json:"fees_disabled"`
		CustomRenterFee *float64 `json:"custom_renter_fee"`
		CustomHubberFee *float64 `json:"custom_hubber_fee"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	override := &models.UserFeeOverride{
		UserID:          userID,
		FeesDisabled:    input.FeesDisabled,
		CustomRenterFee: input.CustomRenterFee,
		CustomHubberFee: input.CustomHubberFee,
	}
	if err := h.feeService.SetOverride(c.Context(), override); err != nil {
		return utils.InternalError(c, "Failed to set fee override")
	}
	return utils.Success(c, fiber.Map{"message": "fee override set"})
}

// RemoveFeeOverride deletes a per-user fee exception.
func (h *AdminHandler) RemoveFeeOverride(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}
	if err := h.feeService.RemoveOverride(c.Context(), userID); err != nil {
		return utils.InternalError(c, "Failed to remove fee override")
	}
	return utils.Success(c, fiber.Map{"message": "fee override removed"})
}

// SetSuperHubber toggles the reduced-commission flag on a hubber.
func (h *AdminHandler) SetSuperHubber(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		SuperHubber bool `json:"super_hubber"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	u, err := h.userService.SetSuperHubber(userID, input.SuperHubber)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.Map{"user_id": u.ID, "super_hubber": u.SuperHubber})
}

// ListUsers pages through user accounts.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	users, err := h.userService.List(limit, offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list users")
	}
	return utils.Success(c, fiber.Map{"users": users})
}
