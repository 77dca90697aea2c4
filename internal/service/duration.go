package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ClockTimes is the fixed list of pickup/drop times offered to the user.
var ClockTimes = []string{
	"08:00 AM",
	"10:00 AM",
	"12:00 PM",
	"02:00 PM",
	"04:00 PM",
	"06:00 PM",
}

// IsOfferedClockTime reports whether the time is one of the pick-list values.
func IsOfferedClockTime(clock string) bool {
	for _, t := range ClockTimes {
		if t == clock {
			return true
		}
	}
	return false
}

// ParseClockTime converts a 12-hour clock string ("hh:mm AM|PM") into minutes
// since midnight. 12 AM maps to 0, 12 PM stays at 720.
func ParseClockTime(clock string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(clock))
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format, expected hh:mm AM/PM")
	}
	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, fmt.Errorf("invalid meridiem %q", parts[1])
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time format, expected hh:mm AM/PM")
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour: %v", err)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute: %v", err)
	}
	if hours < 1 || hours > 12 {
		return 0, fmt.Errorf("hour must be between 1 and 12")
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minute must be between 0 and 59")
	}

	if meridiem == "PM" && hours != 12 {
		hours += 12
	}
	if meridiem == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + minutes, nil
}

// CombineDateTime attaches a clock time to a calendar date, producing the
// absolute instant of pickup or drop.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	minutes, err := ParseClockTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute), nil
}

// BillableHours computes the non-negative rental duration in hours. It
// returns 0 whenever either date is absent, either time fails to parse, or
// the drop instant does not come after the pickup instant. It never errors:
// degenerate input is standard input-incompleteness, not a failure.
func BillableHours(from, to *time.Time, pickupClock, dropClock string) float64 {
	if from == nil || to == nil {
		return 0
	}
	pickup, err := CombineDateTime(*from, pickupClock)
	if err != nil {
		return 0
	}
	drop, err := CombineDateTime(*to, dropClock)
	if err != nil {
		return 0
	}
	return math.Max(drop.Sub(pickup).Hours(), 0)
}

// DurationDisplay renders hours as the "N day(s) M hour(s)" breakdown shown
// alongside every cost line.
func DurationDisplay(hours float64) string {
	fullDays := int(math.Floor(hours / 24))
	extraHours := int(math.Round(math.Mod(hours, 24)))
	return fmt.Sprintf("%d day(s) %d hour(s)", fullDays, extraHours)
}
