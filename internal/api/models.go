package api

import "github.com/deveshkun/Rental-Fleet/internal/entities"

// Sessions
type CreateSessionRequest struct {
	VehicleID string `json:"vehicle_id"`
}

type SwitchCalendarRequest struct {
	Side string `json:"side"`
}

type PickDateRequest struct {
	Date string `json:"date"` // yyyy-mm-dd
}

type SetTimesRequest struct {
	PickupTime string `json:"pickup_time"`
	DropTime   string `json:"drop_time"`
}

type SetLocationRequest struct {
	Location string `json:"location"`
}

type SetAddOnsRequest struct {
	Helmet    bool `json:"helmet"`
	Insurance bool `json:"insurance"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

type SessionResponse struct {
	SessionCode    string                `json:"session_code"`
	VehicleID      string                `json:"vehicle_id"`
	VehicleName    string                `json:"vehicle_name"`
	ActiveCalendar string                `json:"active_calendar"`
	PickupDate     string                `json:"pickup_date,omitempty"`
	DropDate       string                `json:"drop_date,omitempty"`
	PickupTime     string                `json:"pickup_time"`
	DropTime       string                `json:"drop_time"`
	Location       string                `json:"location,omitempty"`
	Helmet         bool                  `json:"helmet"`
	Insurance      bool                  `json:"insurance"`
	Quote          entities.BookingQuote `json:"quote"`
	Display        entities.QuoteDisplay `json:"display"`
}

// Auth
type SendEmailOTPRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type SendSMSOTPRequest struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
}

type VerifyEmailOTPRequest struct {
	Email     string `json:"email"`
	OTP       string `json:"otp"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Vehicles
type VehicleResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Year         int     `json:"year"`
	DailyRate    float64 `json:"daily_rate"`
	WeeklyRate   float64 `json:"weekly_rate"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission"`
	Fuel         string  `json:"fuel"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	Available    bool    `json:"available"`
}
