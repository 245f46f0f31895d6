// Package interval decides whether half-open time windows [start, end)
// collide. Every scheduling rule in fitclub goes through Overlaps.
package interval

import (
	"fmt"
	"time"

	"fitclub/internal/apperror"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = DateLayout + " " + ClockLayout
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any instant.
// Callers must have rejected windows with start >= end already.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New builds a window, failing with ErrInvalidWindow unless start < end.
func New(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, fmt.Errorf("%w: start %s is not before end %s",
			apperror.ErrInvalidWindow, start.Format(TimestampLayout), end.Format(TimestampLayout))
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Overlaps(o Window) bool {
	return Overlaps(w.Start, w.End, o.Start, o.End)
}

// Contains reports whether o lies entirely inside w.
func (w Window) Contains(o Window) bool {
	return !w.Start.After(o.Start) && !w.End.Before(o.End)
}

func (w Window) String() string {
	return w.Start.Format(TimestampLayout) + " - " + w.End.Format(TimestampLayout)
}

// FirstConflict returns the index of the first window in existing that
// overlaps candidate.
func FirstConflict(candidate Window, existing []Window) (int, bool) {
	for i, w := range existing {
		if candidate.Overlaps(w) {
			return i, true
		}
	}
	return -1, false
}

// ContainedByAny reports whether some window in outer fully contains candidate.
func ContainedByAny(candidate Window, outer []Window) bool {
	for _, w := range outer {
		if w.Contains(candidate) {
			return true
		}
	}
	return false
}

// Parse combines a YYYY-MM-DD date and an HH:MM clock into one UTC timestamp.
// Both parts must be zero padded; "9:00" or surrounding spaces are rejected.
func Parse(date, clock string) (time.Time, error) {
	if len(date) != len(DateLayout) || len(clock) != len(ClockLayout) {
		return time.Time{}, fmt.Errorf("%w: %q %q is not YYYY-MM-DD HH:MM", apperror.ErrInvalidWindow, date, clock)
	}
	t, err := time.Parse(TimestampLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q is not YYYY-MM-DD HH:MM", apperror.ErrInvalidWindow, date, clock)
	}
	return t, nil
}

// ParseWindow parses both ends and validates ordering.
func ParseWindow(startDate, startClock, endDate, endClock string) (Window, error) {
	start, err := Parse(startDate, startClock)
	if err != nil {
		return Window{}, err
	}
	end, err := Parse(endDate, endClock)
	if err != nil {
		return Window{}, err
	}
	return New(start, end)
}
