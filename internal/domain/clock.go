package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar date format accepted by date-range queries.
const DayLayout = "2006-01-02"

// Clock supplies the engine's notion of now. Date queries use its location.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location, or the local zone when nil.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ParseDay parses a YYYY-MM-DD date at midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: want %s", ErrInvalidArgument, s, DayLayout)
	}
	return t, nil
}

// dayOf truncates t to its calendar date as seen in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	return calendarDay(t.In(loc))
}

// calendarDay is the date t names in its own location, as midnight UTC.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
