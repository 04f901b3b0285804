package domain

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [Start, Start+Duration). Instants are
// normalized to UTC on construction.
type TimeWindow struct {
	Start           time.Time
	DurationMinutes int
}

func NewTimeWindow(start time.Time, durationMinutes int) (TimeWindow, error) {
	var fields []FieldError
	if start.IsZero() {
		fields = append(fields, FieldError{Path: "startDateTime", Message: "is required"})
	}
	if durationMinutes <= 0 {
		fields = append(fields, FieldError{Path: "duration", Message: "must be a positive number of minutes"})
	}
	if len(fields) > 0 {
		return TimeWindow{}, NewValidationError(fields...)
	}
	return TimeWindow{Start: start.UTC(), DurationMinutes: durationMinutes}, nil
}

func (w TimeWindow) End() time.Time {
	return w.Start.Add(time.Duration(w.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the two windows share at least one instant strictly
// inside both. Touching endpoints are adjacent, not overlapping.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End()) && other.Start.Before(w.End())
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format(time.RFC3339), w.End().Format(time.RFC3339))
}
