package viewstate

import "time"

// Countdown is a duration split into calendar-free display components.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero.
func (c Countdown) IsZero() bool {
	return c == Countdown{}
}

// NextMonthStart returns the first instant of the month following now, in
// now's location. December rolls over to January of the next year.
func NextMonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
}

// Remaining splits the time from now until target into days, hours, minutes
// and seconds using floor division. A target at or before now clamps to a
// zero countdown rather than going negative.
func Remaining(now, target time.Time) Countdown {
	delta := target.Sub(now)
	if delta <= 0 {
		return Countdown{}
	}

	secs := int(delta / time.Second)
	return Countdown{
		Days:    secs / (24 * 60 * 60),
		Hours:   secs % (24 * 60 * 60) / (60 * 60),
		Minutes: secs % (60 * 60) / 60,
		Seconds: secs % 60,
	}
}

// UntilNextMonth is the per-tick computation: the countdown from now to the
// first instant of the next calendar month.
func UntilNextMonth(now time.Time) Countdown {
	return Remaining(now, NextMonthStart(now))
}
