package booking

import (
	"fmt"
	"strconv"
	"time"

	"renthub/internal/services/pricing"
	"renthub/internal/services/wallet"
)

// The payment intent carries the full materialization request as string
// metadata so the webhook can rebuild the booking without trusting any
// client input. Amount fields travel as decimal euro strings; the single
// cent conversion already happened for the charge amount itself.

// EncodeIntentMetadata flattens a materialization request into processor
// metadata.
func EncodeIntentMetadata(req MaterializeRequest) map[string]string {
	m := map[string]string{
		"listing_id":         strconv.FormatUint(uint64(req.ListingID), 10),
		"renter_id":          strconv.FormatUint(uint64(req.RenterID), 10),
		"hubber_id":          strconv.FormatUint(uint64(req.HubberID), 10),
		"price_unit":         req.PriceUnit,
		"duration_units":     strconv.Itoa(req.DurationUnits),
		"start_date":         req.StartDate.Format(time.RFC3339),
		"cleaning_fee":       formatAmount(req.CleaningFee),
		"deposit":            formatAmount(req.Deposit),
		"subtotal":           formatAmount(req.Breakdown.Subtotal),
		"complete_subtotal":  formatAmount(req.Breakdown.CompleteSubtotal),
		"renter_service_fee": formatAmount(req.Breakdown.RenterServiceFee),
		"hubber_service_fee": formatAmount(req.Breakdown.HubberServiceFee),
		"hubber_net":         formatAmount(req.Breakdown.HubberNet),
		"total":              formatAmount(req.Breakdown.Total),
		"refund_used":        formatAmount(req.Allocation.RefundUsed),
		"referral_used":      formatAmount(req.Allocation.ReferralUsed),
		"general_used":       formatAmount(req.Allocation.GeneralUsed),
		"wallet_used":        formatAmount(req.Allocation.WalletUsed),
		"card_charged":       formatAmount(req.Allocation.AmountDueOnCard),
	}
	if req.EndDate != nil {
		m["end_date"] = req.EndDate.Format(time.RFC3339)
	}
	return m
}

// DecodeIntentMetadata rebuilds a materialization request from processor
// metadata. Reference is taken from the dedicated metadata key set by the
// gateway.
func DecodeIntentMetadata(m map[string]string) (MaterializeRequest, error) {
	var req MaterializeRequest
	var err error

	req.Reference = m["reference"]
	if req.Reference == "" {
		return req, fmt.Errorf("intent metadata missing reference")
	}

	if req.ListingID, err = parseID(m, "listing_id"); err != nil {
		return req, err
	}
	if req.RenterID, err = parseID(m, "renter_id"); err != nil {
		return req, err
	}
	if req.HubberID, err = parseID(m, "hubber_id"); err != nil {
		return req, err
	}

	req.PriceUnit = m["price_unit"]
	if req.DurationUnits, err = strconv.Atoi(m["duration_units"]); err != nil {
		return req, fmt.Errorf("invalid duration_units: %w", err)
	}

	start, err := time.Parse(time.RFC3339, m["start_date"])
	if err != nil {
		return req, fmt.Errorf("invalid start_date: %w", err)
	}
	req.StartDate = start

	if raw, ok := m["end_date"]; ok && raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return req, fmt.Errorf("invalid end_date: %w", err)
		}
		req.EndDate = &end
	}

	req.CleaningFee = parseAmount(m, "cleaning_fee")
	req.Deposit = parseAmount(m, "deposit")
	req.Breakdown = pricing.Breakdown{
		Subtotal:         parseAmount(m, "subtotal"),
		CompleteSubtotal: parseAmount(m, "complete_subtotal"),
		RenterServiceFee: parseAmount(m, "renter_service_fee"),
		HubberServiceFee: parseAmount(m, "hubber_service_fee"),
		HubberNet:        parseAmount(m, "hubber_net"),
		Deposit:          parseAmount(m, "deposit"),
		Total:            parseAmount(m, "total"),
	}
	req.Allocation = wallet.Allocation{
		RefundUsed:      parseAmount(m, "refund_used"),
		ReferralUsed:    parseAmount(m, "referral_used"),
		GeneralUsed:     parseAmount(m, "general_used"),
		WalletUsed:      parseAmount(m, "wallet_used"),
		AmountDueOnCard: parseAmount(m, "card_charged"),
	}

	return req, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(m map[string]string, key string) float64 {
	v, _ := strconv.ParseFloat(m[key], 64)
	return v
}

func parseID(m map[string]string, key string) (uint, error) {
	v, err := strconv.ParseUint(m[key], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return uint(v), nil
}
