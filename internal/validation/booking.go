package validation

import (
	"time"

	"renthub/internal/models"
)

// Listing validates a listing before it can be published.
func (v *Validator) Listing(l *models.Listing) {
	v.Required("title", l.Title)
	v.MaxLength("title", l.Title, MaxTitleLength)
	v.MaxLength("description", l.Description, MaxDescriptionLength)
	v.Check(l.Category == models.ListingCategoryObject || l.Category == models.ListingCategorySpace,
		"category", "must be object or space")
	v.Check(l.PriceUnit == models.PriceUnitHour || l.PriceUnit == models.PriceUnitDay ||
		l.PriceUnit == models.PriceUnitWeek || l.PriceUnit == models.PriceUnitMonth,
		"price_unit", "must be hour, day, week or month")
	v.Range("unit_price", l.UnitPrice, 0.01, MaxUnitPrice)
	v.Check(l.CleaningFee >= 0 && l.CleaningFee <= MaxFee, "cleaning_fee", "must be between 0 and 10000")
	v.Check(l.Deposit >= 0 && l.Deposit <= MaxFee, "deposit", "must be between 0 and 10000")
}

// Selection validates a renter's date/time choice for a listing.
func (v *Validator) Selection(unit, category string, start, end *time.Time, checkIn, checkOut *int, hours int) {
	if unit == models.PriceUnitHour && category == models.ListingCategoryObject {
		v.Check(hours >= 0, "hours", "must not be negative")
		return
	}

	if unit == models.PriceUnitHour {
		if checkIn != nil {
			v.Range("check_in", float64(*checkIn), MinSlotHour, MaxSlotHour)
		}
		if checkOut != nil {
			v.Range("check_out", float64(*checkOut), MinSlotHour, MaxSlotHour)
		}
		return
	}

	if start != nil && end != nil {
		v.Check(!end.Before(*start), "end_date", "must not be before start date")
	}
}

// Review validates a booking review.
func (v *Validator) Review(r *models.Review) {
	v.Required("booking_id", r.BookingID)
	v.Range("rating", float64(r.Rating), 1, 5)
	v.MaxLength("comment", r.Comment, MaxCommentLength)
}
