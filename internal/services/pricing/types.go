package pricing

import "time"

// PriceUnit is the billing unit of a listing.
type PriceUnit string

const (
	UnitHour  PriceUnit = "hour"
	UnitDay   PriceUnit = "day"
	UnitWeek  PriceUnit = "week"
	UnitMonth PriceUnit = "month"
)

// Category distinguishes object and space listings. Hourly space bookings
// are slot-based (check-in/check-out times); hourly object bookings carry
// an explicit hour count.
type Category string

const (
	CategoryObject Category = "object"
	CategorySpace  Category = "space"
)

// Selection is the renter's raw date/time choice, before it is turned
// into a billable unit count.
type Selection struct {
	StartDate *time.Time
	EndDate   *time.Time
	CheckIn   *int // hour of day, hourly space bookings
	CheckOut  *int
	Hours     int // hourly object bookings
}

// Rates is the platform fee rule set in percent and euros. The renter and
// hubber fixed fees are independently configurable and not necessarily equal.
type Rates struct {
	RenterPercentage      float64
	HubberPercentage      float64
	SuperHubberPercentage float64
	RenterFixedFee        float64
	HubberFixedFee        float64
}

// Override is an admin-set, per-user exception to the platform rates.
type Override struct {
	FeesDisabled    bool
	CustomRenterFee *float64
	CustomHubberFee *float64
}

// Quote is the ephemeral input of a price computation. It is re-derived on
// every change to the renter's selection and never persisted.
type Quote struct {
	UnitPrice     float64
	Unit          PriceUnit
	DurationUnits int
	CleaningFee   float64
	Deposit       float64
}

// Breakdown is the computed cost breakdown. All amounts are decimal euros;
// use Cents at the payment boundary.
type Breakdown struct {
	Subtotal         float64 `json:"subtotal"`
	CompleteSubtotal float64 `json:"complete_subtotal"`
	RenterPercentage float64 `json:"renter_percentage"`
	HubberPercentage float64 `json:"hubber_percentage"`
	RenterServiceFee float64 `json:"renter_service_fee"`
	HubberServiceFee float64 `json:"hubber_service_fee"`
	HubberNet        float64 `json:"hubber_net"`
	Deposit          float64 `json:"deposit"`
	Total            float64 `json:"total"`
}
