package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/db"
	"github.com/deveshkun/Rental-Fleet/internal/entities"
	apperrors "github.com/deveshkun/Rental-Fleet/internal/errors"
	"github.com/deveshkun/Rental-Fleet/internal/repository"
)

const ConfirmValidationMessage = "Please select pickup, drop date and location."

const defaultClockTime = "10:00 AM"

// ConfirmationSender delivers the booking confirmation to the customer.
type ConfirmationSender interface {
	SendBookingConfirmation(toEmail string, data entities.BookingEmailData)
}

// BookingSession holds the evolving selections for a single quote: the date
// selector, clock times, location, add-on toggles and the promo validator.
// Everything is transient and recomputed on each change; the quote is frozen
// only at confirmation.
type BookingSession struct {
	Code         string
	Vehicle      db.Vehicle
	Selector     DateSelector
	PickupTime   string
	DropTime     string
	Location     string
	AddHelmet    bool
	AddInsurance bool
	Promo        *PromoValidator
	Confirmed    *entities.BookingQuote
	UpdatedAt    time.Time
}

// Quote derives the current itemized quote from the session's inputs.
func (bs *BookingSession) Quote() entities.BookingQuote {
	hours := BillableHours(bs.Selector.Range.From, bs.Selector.Range.To, bs.PickupTime, bs.DropTime)
	return ComputeQuote(QuoteInput{
		BillableHours: hours,
		DailyRate:     bs.Vehicle.DailyRate,
		Category:      bs.Vehicle.Category,
		AddHelmet:     bs.AddHelmet,
		AddInsurance:  bs.AddInsurance,
		Discount:      bs.Promo.State().DiscountAmount,
		Location:      bs.Location,
	})
}

// SessionService owns the in-memory booking sessions. There is exactly one
// writer per session (the user's event stream), so a single mutex over the
// store is enough.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*BookingSession
	catalog  repository.VehicleCatalog
	sender   ConfirmationSender
}

func NewSessionService(catalog repository.VehicleCatalog, sender ConfirmationSender) *SessionService {
	return &SessionService{
		sessions: make(map[string]*BookingSession),
		catalog:  catalog,
		sender:   sender,
	}
}

func (s *SessionService) Create(vehicleID string) (*BookingSession, error) {
	vehicle, err := s.catalog.GetVehicleByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperrors.ErrNotFound("Vehicle not found")
	}
	if !vehicle.Available {
		return nil, apperrors.ErrUnprocessable("Vehicle is not available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	for s.sessions[code] != nil {
		code = fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	}

	session := &BookingSession{
		Code:       code,
		Vehicle:    *vehicle,
		Selector:   NewDateSelector(),
		PickupTime: defaultClockTime,
		DropTime:   defaultClockTime,
		Promo:      NewPromoValidator(),
		UpdatedAt:  time.Now().UTC(),
	}
	s.sessions[code] = session
	return session, nil
}

func (s *SessionService) get(code string) (*BookingSession, error) {
	session, ok := s.sessions[code]
	if !ok {
		return nil, apperrors.ErrNotFound("Booking session not found")
	}
	session.UpdatedAt = time.Now().UTC()
	return session, nil
}

func (s *SessionService) SwitchCalendar(code string, side CalendarSide) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	session.Selector = session.Selector.SwitchTo(side)
	return session, nil
}

func (s *SessionService) PickDate(code string, date time.Time) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	session.Selector = session.Selector.Pick(date)
	return session, nil
}

func (s *SessionService) SetTimes(code, pickupTime, dropTime string) (*BookingSession, error) {
	if !IsOfferedClockTime(pickupTime) {
		return nil, apperrors.ErrBadRequest("Invalid pickup time")
	}
	if !IsOfferedClockTime(dropTime) {
		return nil, apperrors.ErrBadRequest("Invalid drop time")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	session.PickupTime = pickupTime
	session.DropTime = dropTime
	return session, nil
}

func (s *SessionService) SetLocation(code, location string) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	session.Location = location
	return session, nil
}

func (s *SessionService) SetAddOns(code string, helmet, insurance bool) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	session.AddHelmet = helmet
	session.AddInsurance = insurance
	return session, nil
}

func (s *SessionService) ApplyPromo(code, promoCode string) (entities.PromoState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return entities.PromoState{}, err
	}
	return session.Promo.Apply(promoCode), nil
}

func (s *SessionService) Quote(code string) (entities.BookingQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return entities.BookingQuote{}, err
	}
	return session.Quote(), nil
}

// Confirm gates the booking. While the quote is invalid it returns the
// user-facing validation message; once valid it freezes the quote as the
// confirmed record and notifies the customer. Confirming twice returns the
// already frozen quote.
func (s *SessionService) Confirm(code, userName, userEmail string) (*entities.BookingQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.get(code)
	if err != nil {
		return nil, err
	}
	if session.Confirmed != nil {
		return session.Confirmed, nil
	}

	quote := session.Quote()
	if !quote.IsValid {
		return nil, apperrors.ErrUnprocessable(ConfirmValidationMessage)
	}

	frozen := quote
	session.Confirmed = &frozen

	if s.sender != nil && userEmail != "" {
		s.sender.SendBookingConfirmation(userEmail, confirmationEmailData(session, frozen, userName))
	}
	return session.Confirmed, nil
}

// Close discards a session and its pending promo timer.
func (s *SessionService) Close(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[code]; ok {
		session.Promo.Stop()
		delete(s.sessions, code)
	}
}

// SweepIdle drops sessions untouched for longer than maxIdle and returns how
// many were removed.
func (s *SessionService) SweepIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().UTC().Add(-maxIdle)
	removed := 0
	for code, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			session.Promo.Stop()
			delete(s.sessions, code)
			removed++
		}
	}
	return removed
}

func confirmationEmailData(session *BookingSession, quote entities.BookingQuote, userName string) entities.BookingEmailData {
	display := DisplayQuote(quote)
	data := entities.BookingEmailData{
		UserName:      userName,
		VehicleName:   session.Vehicle.Name,
		Duration:      quote.DurationDisplay,
		Location:      session.Location,
		VehicleCost:   display.VehicleCost,
		HelmetCost:    display.HelmetCost,
		InsuranceCost: display.InsuranceCost,
		Tax:           display.Tax,
		Discount:      display.Discount,
		Total:         display.Total,
		CurrentYear:   time.Now().Year(),
	}
	if session.Selector.Range.From != nil {
		data.PickupFormatted = fmt.Sprintf("%s, %s", session.Selector.Range.From.Format("02 Jan 2006"), session.PickupTime)
	}
	if session.Selector.Range.To != nil {
		data.DropFormatted = fmt.Sprintf("%s, %s", session.Selector.Range.To.Format("02 Jan 2006"), session.DropTime)
	}
	return data
}
