package service

import (
	"fmt"
	"math"

	"github.com/deveshkun/Rental-Fleet/internal/entities"
	"github.com/deveshkun/Rental-Fleet/internal/utils"
)

// Daily add-on rates and tax, in currency units.
const (
	HelmetRatePerDay    = 50.0
	InsuranceRatePerDay = 30.0
	TaxRate             = 0.18
)

// QuoteInput is everything the pricing engine needs to produce a quote.
type QuoteInput struct {
	BillableHours float64
	DailyRate     float64
	Category      string
	AddHelmet     bool
	AddInsurance  bool
	Discount      float64
	Location      string
}

// ComputeQuote turns a billable duration plus the current toggles into an
// itemized quote. Costs are prorated per hour and kept unrounded; the total
// is subtotal + tax - discount with no floor, so an over-discount shows up
// as a negative total instead of being silently capped.
func ComputeQuote(in QuoteInput) entities.BookingQuote {
	hours := math.Max(in.BillableHours, 0)

	vehicleCost := hours * (in.DailyRate / 24)

	var helmetCost float64
	if in.AddHelmet && utils.IsTwoWheeler(in.Category) {
		helmetCost = hours * (HelmetRatePerDay / 24)
	}

	var insuranceCost float64
	if in.AddInsurance {
		insuranceCost = hours * (InsuranceRatePerDay / 24)
	}

	subtotal := vehicleCost + helmetCost + insuranceCost
	tax := subtotal * TaxRate
	total := subtotal + tax - in.Discount

	return entities.BookingQuote{
		BillableHours:   hours,
		DurationDisplay: DurationDisplay(hours),
		VehicleCost:     vehicleCost,
		HelmetCost:      helmetCost,
		InsuranceCost:   insuranceCost,
		Subtotal:        subtotal,
		Tax:             tax,
		Discount:        in.Discount,
		Total:           total,
		IsValid:         hours > 0 && in.Location != "",
	}
}

// FormatAmount renders an amount for display, rounded to the nearest whole
// currency unit. This is the only rounding boundary in the system.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("₹%d", int64(math.Round(amount)))
}

// DisplayQuote produces the user-facing rendering of a quote. Optional lines
// are left empty when their amount is zero, matching the summary panel.
func DisplayQuote(q entities.BookingQuote) entities.QuoteDisplay {
	d := entities.QuoteDisplay{
		Duration:    q.DurationDisplay,
		VehicleCost: FormatAmount(q.VehicleCost),
		Tax:         FormatAmount(q.Tax),
		Total:       FormatAmount(q.Total),
	}
	if q.HelmetCost > 0 {
		d.HelmetCost = FormatAmount(q.HelmetCost)
	}
	if q.InsuranceCost > 0 {
		d.InsuranceCost = FormatAmount(q.InsuranceCost)
	}
	if q.Discount > 0 {
		d.Discount = "-" + FormatAmount(q.Discount)
	}
	return d
}
