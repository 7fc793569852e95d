package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxTitleLength       = 140
	MaxDescriptionLength = 2000
	MaxCommentLength     = 1000

	// Amount limits in euros
	MaxUnitPrice = 100000.00
	MaxFee       = 10000.00

	// Hourly slot bounds
	MinSlotHour = 0
	MaxSlotHour = 24
)
