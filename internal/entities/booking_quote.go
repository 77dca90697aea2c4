package entities

// BookingQuote is the itemized cost breakdown derived from the current
// selections. All amounts are unrounded; rounding happens only when the
// display fields are produced.
type BookingQuote struct {
	BillableHours   float64 `json:"billable_hours"`
	DurationDisplay string  `json:"duration_display"`
	VehicleCost     float64 `json:"vehicle_cost"`
	HelmetCost      float64 `json:"helmet_cost"`
	InsuranceCost   float64 `json:"insurance_cost"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Discount        float64 `json:"discount"`
	Total           float64 `json:"total"`
	IsValid         bool    `json:"is_valid"`
}

// QuoteDisplay carries the user-facing, whole-currency-unit rendering of a
// quote. This is the single place where amounts get rounded.
type QuoteDisplay struct {
	Duration      string `json:"duration"`
	VehicleCost   string `json:"vehicle_cost"`
	HelmetCost    string `json:"helmet_cost,omitempty"`
	InsuranceCost string `json:"insurance_cost,omitempty"`
	Tax           string `json:"tax"`
	Discount      string `json:"discount,omitempty"`
	Total         string `json:"total"`
}
