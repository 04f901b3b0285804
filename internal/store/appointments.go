package store

import (
	"context"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
)

// AppointmentFilter narrows appointment listings. A nil Cancelled matches
// both states.
type AppointmentFilter struct {
	Cancelled *bool
}

type AppointmentRepository interface {
	FindAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	ListAppointmentsByUser(ctx context.Context, userID uuid.UUID, filter AppointmentFilter) ([]domain.Appointment, error)
	ListAppointmentsByBarber(ctx context.Context, barberID uuid.UUID, filter AppointmentFilter) ([]domain.Appointment, error)
}
