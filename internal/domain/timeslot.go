package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TimeSlot is a bookable window owned by one barber. State transitions return
// a new version of the slot sharing its identity; the stored row is replaced,
// never mutated in place.
type TimeSlot struct {
	bun.BaseModel `bun:"table:time_slots"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	BarberID        uuid.UUID `bun:"barber_id,notnull,type:uuid"`
	StartTime       time.Time `bun:"start_time,notnull"`
	DurationMinutes int       `bun:"duration_minutes,notnull"`
	IsBooked        bool      `bun:"is_booked,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

func NewTimeSlot(barberID uuid.UUID, window TimeWindow) TimeSlot {
	return TimeSlot{
		BarberID:        barberID,
		StartTime:       window.Start,
		DurationMinutes: window.DurationMinutes,
	}
}

func (s TimeSlot) Window() TimeWindow {
	return TimeWindow{Start: s.StartTime, DurationMinutes: s.DurationMinutes}
}

func (s TimeSlot) EndTime() time.Time {
	return s.Window().End()
}

// Book returns a booked version of the slot.
func (s TimeSlot) Book() (TimeSlot, error) {
	if s.IsBooked {
		return TimeSlot{}, NewBusinessRuleError("time slot is already booked")
	}
	s.IsBooked = true
	return s, nil
}

// Unbook returns a free version of the slot.
func (s TimeSlot) Unbook() (TimeSlot, error) {
	if !s.IsBooked {
		return TimeSlot{}, NewBusinessRuleError("time slot is not booked")
	}
	s.IsBooked = false
	return s, nil
}

// EnsureUpcoming fails when the slot's window has already started. Booking
// requires an upcoming slot; unbooking does not.
func (s TimeSlot) EnsureUpcoming(now time.Time) error {
	if s.StartTime.Before(now) {
		return NewBusinessRuleError("this time slot is in the past and cannot be booked")
	}
	return nil
}

func (s *TimeSlot) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if s.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			s.ID = id
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		s.UpdatedAt = now
	}
	return nil
}
