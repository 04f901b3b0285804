package domain

import (
	"fmt"
	"time"
)

const (
	DefaultHoursStart         = 9
	DefaultHoursEnd           = 23
	DefaultCancellationWindow = 4 * time.Hour
)

// BusinessHoursPolicy holds the shop's booking-hours rule and the minimum lead
// time required to cancel an appointment. It is stateless; construct once at
// wiring time.
type BusinessHoursPolicy struct {
	HoursStart         int
	HoursEnd           int
	CancellationWindow time.Duration
}

func DefaultBusinessHoursPolicy() BusinessHoursPolicy {
	return BusinessHoursPolicy{
		HoursStart:         DefaultHoursStart,
		HoursEnd:           DefaultHoursEnd,
		CancellationWindow: DefaultCancellationWindow,
	}
}

func NewBusinessHoursPolicy(hoursStart, hoursEnd int, cancellationWindow time.Duration) (BusinessHoursPolicy, error) {
	if hoursStart < 0 || hoursStart > 23 {
		return BusinessHoursPolicy{}, fmt.Errorf("hours start %d out of range", hoursStart)
	}
	if hoursEnd < 0 || hoursEnd > 23 {
		return BusinessHoursPolicy{}, fmt.Errorf("hours end %d out of range", hoursEnd)
	}
	if hoursEnd <= hoursStart {
		return BusinessHoursPolicy{}, fmt.Errorf("hours end %d must be after hours start %d", hoursEnd, hoursStart)
	}
	if cancellationWindow < 0 {
		return BusinessHoursPolicy{}, fmt.Errorf("cancellation window must not be negative")
	}
	return BusinessHoursPolicy{
		HoursStart:         hoursStart,
		HoursEnd:           hoursEnd,
		CancellationWindow: cancellationWindow,
	}, nil
}

// WithinBusinessHours fails unless t's local clock time falls inside booking
// hours. The boundary hour admits only minute zero, so the last valid start is
// exactly HoursEnd:00.
func (p BusinessHoursPolicy) WithinBusinessHours(t time.Time) error {
	hour, minute := t.Hour(), t.Minute()
	if hour < p.HoursStart || hour > p.HoursEnd {
		return NewBusinessRuleError("time must be between %d:00 and %d:00", p.HoursStart, p.HoursEnd)
	}
	if hour == p.HoursEnd && minute > 0 {
		return NewBusinessRuleError("time cannot be after %d:00", p.HoursEnd)
	}
	return nil
}

// Cancellable reports whether an appointment starting at start may still be
// cancelled at now.
func (p BusinessHoursPolicy) Cancellable(start, now time.Time) bool {
	return start.After(now.Add(p.CancellationWindow))
}
