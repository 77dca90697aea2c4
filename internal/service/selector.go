package service

import "time"

// CalendarSide identifies which endpoint of the rental period a date pick
// applies to.
type CalendarSide string

const (
	SidePickup CalendarSide = "pickup"
	SideDrop   CalendarSide = "drop"
)

// DateRange holds the two endpoints of the rental period. To is only
// meaningful once From is set.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// DateSelector accumulates the pickup and drop dates from independent user
// picks. It is a value type: every event produces a new state, never a
// mutation. Ordering of the picked dates relative to each other and to "now"
// is the calendar's responsibility, not re-checked here.
type DateSelector struct {
	Active CalendarSide
	Range  DateRange
}

func NewDateSelector() DateSelector {
	return DateSelector{Active: SidePickup}
}

// Pick applies a calendar date pick to the active side. Picking on the
// pickup side sets From, clears To and switches to the drop side. Picking on
// the drop side sets To only when From is already set; otherwise the pick is
// ignored.
func (s DateSelector) Pick(date time.Time) DateSelector {
	day := truncateToDay(date)
	if s.Active == SidePickup {
		s.Range = DateRange{From: &day}
		s.Active = SideDrop
		return s
	}
	if s.Range.From == nil {
		return s
	}
	s.Range.To = &day
	return s
}

// SwitchTo changes the active side. Switching to the drop side is refused
// until a pickup date exists.
func (s DateSelector) SwitchTo(side CalendarSide) DateSelector {
	if side == SideDrop && s.Range.From == nil {
		return s
	}
	if side == SidePickup || side == SideDrop {
		s.Active = side
	}
	return s
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
