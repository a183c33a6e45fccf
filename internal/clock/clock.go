package clock

import "time"

// Clock supplies the current instant. Services take a Clock instead of
// calling time.Now directly so calendar logic is testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by the wall clock.
func New() Clock { return realClock{} }

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// Day truncates t to its calendar day (midnight, same location).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysUntil returns the whole calendar days from `from` to `to`
// (negative when `to` is in the past).
func DaysUntil(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}
