package domain

import "time"

type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}

	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether both ranges share any instant. Touching ranges do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start.Before(other.End) && t.End.After(other.Start)
}

func (t TimeRange) Duration() time.Duration {
	return t.End.Sub(t.Start)
}
