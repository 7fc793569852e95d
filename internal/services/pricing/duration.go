package pricing

const dayMillis = 86_400_000

// DurationUnits converts a renter's selection into a billable unit count.
// It returns 0 when no start date (or, for hourly space bookings, no start
// time) has been selected yet, and a positive integer otherwise.
func DurationUnits(unit PriceUnit, category Category, sel Selection) int {
	if unit == UnitHour {
		if category == CategorySpace {
			return hourlySlotUnits(sel)
		}
		if sel.Hours > 0 {
			return sel.Hours
		}
		return 0
	}

	if sel.StartDate == nil {
		return 0
	}
	if sel.EndDate == nil {
		return 1
	}

	diff := sel.EndDate.Sub(*sel.StartDate).Milliseconds()
	days := ceilDiv(diff, dayMillis)

	switch unit {
	case UnitWeek:
		return atLeastOne(ceilDiv(int64(days), 7))
	case UnitMonth:
		return atLeastOne(ceilDiv(int64(days), 30))
	default:
		return atLeastOne(days)
	}
}

// hourlySlotUnits computes endHour - startHour for slot-based space bookings.
// A reversed or zero-length selection clamps to 1 rather than erroring.
func hourlySlotUnits(sel Selection) int {
	if sel.CheckIn == nil || sel.CheckOut == nil {
		return 0
	}
	units := *sel.CheckOut - *sel.CheckIn
	if units <= 0 {
		return 1
	}
	return units
}

func ceilDiv(n, d int64) int {
	if n <= 0 {
		return 0
	}
	return int((n + d - 1) / d)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
