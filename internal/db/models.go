package db

import "time"

type Vehicle struct {
	ID           string
	Name         string
	Category     string
	Year         int
	DailyRate    float64
	WeeklyRate   float64
	Seats        int
	Transmission string
	Fuel         string
	Rating       float64
	ReviewCount  int
	Available    bool
}

type EmailOTP struct {
	ID         int
	Identifier string
	Channel    string
	Purpose    string
	CodeHash   string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
