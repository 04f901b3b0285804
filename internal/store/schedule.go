package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
)

// ScheduleTx is the unit of work for a single barber's calendar. All
// check-then-write sequences run through it while the barber's advisory lock
// is held, so the state read inside the transaction is the state written
// against.
type ScheduleTx interface {
	GetSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error)
	ListSlotsInRange(ctx context.Context, barberID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.TimeSlot, error)
	InsertSlot(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error)
	InsertSlots(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error)
	UpdateSlot(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error)
	DeleteSlot(ctx context.Context, barberID, slotID uuid.UUID) error

	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
