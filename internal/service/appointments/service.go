package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

type Service struct {
	slots        store.SlotRepository
	appointments store.AppointmentRepository
	users        store.UserRepository
	policy       domain.BusinessHoursPolicy
	now          func() time.Time
}

func NewService(slots store.SlotRepository, appointments store.AppointmentRepository, users store.UserRepository, policy domain.BusinessHoursPolicy) *Service {
	return &Service{
		slots:        slots,
		appointments: appointments,
		users:        users,
		policy:       policy,
		now:          time.Now,
	}
}

type ScheduleInput struct {
	UserID     uuid.UUID
	TimeSlotID uuid.UUID
	Note       string
}

// Schedule books the slot for the user and creates the appointment. The slot
// is re-read inside the barber's transaction, so two requests racing for the
// same slot serialize and the loser sees it booked.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (domain.Appointment, error) {
	var fields []domain.FieldError
	if in.UserID == uuid.Nil {
		fields = append(fields, domain.FieldError{Path: "userId", Message: "is required"})
	}
	if in.TimeSlotID == uuid.Nil {
		fields = append(fields, domain.FieldError{Path: "timeSlotId", Message: "is required"})
	}
	if len(fields) > 0 {
		return domain.Appointment{}, domain.NewValidationError(fields...)
	}

	if _, err := s.users.FindUser(ctx, in.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, domain.NewNotFoundError("User", in.UserID.String())
		}
		return domain.Appointment{}, err
	}

	slot, err := s.slots.FindSlot(ctx, in.TimeSlotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, domain.NewNotFoundError("Time slot", in.TimeSlotID.String())
		}
		return domain.Appointment{}, err
	}

	var created domain.Appointment
	err = s.slots.InBarberTx(ctx, slot.BarberID, func(ctx context.Context, tx store.ScheduleTx) error {
		cur, err := tx.GetSlot(ctx, in.TimeSlotID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewNotFoundError("Time slot", in.TimeSlotID.String())
			}
			return err
		}

		appt, booked, err := domain.ScheduleAppointment(in.UserID, cur, in.Note, s.now())
		if err != nil {
			return err
		}
		if _, err := tx.UpdateSlot(ctx, booked); err != nil {
			return err
		}
		created, err = tx.InsertAppointment(ctx, appt)
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return created, nil
}

// Cancel cancels the appointment and frees its slot as one transaction,
// provided the cancellation window has not passed.
func (s *Service) Cancel(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, domain.NewValidationError(domain.FieldError{Path: "appointmentId", Message: "is required"})
	}

	appt, err := s.appointments.FindAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, domain.NewNotFoundError("Appointment", appointmentID.String())
		}
		return domain.Appointment{}, err
	}

	var cancelled domain.Appointment
	err = s.slots.InBarberTx(ctx, appt.BarberID, func(ctx context.Context, tx store.ScheduleTx) error {
		cur, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewNotFoundError("Appointment", appointmentID.String())
			}
			return err
		}
		slot, err := tx.GetSlot(ctx, cur.TimeSlotID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewNotFoundError("Time slot", cur.TimeSlotID.String())
			}
			return err
		}

		cancelledAppt, freed, err := domain.CancelAppointment(cur, slot, s.policy, s.now())
		if err != nil {
			return err
		}
		if _, err := tx.UpdateSlot(ctx, freed); err != nil {
			return err
		}
		cancelled, err = tx.UpdateAppointment(ctx, cancelledAppt)
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return cancelled, nil
}

func (s *Service) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	appt, err := s.appointments.FindAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, domain.NewNotFoundError("Appointment", appointmentID.String())
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, filter store.AppointmentFilter) ([]domain.Appointment, error) {
	if _, err := s.users.FindUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewNotFoundError("User", userID.String())
		}
		return nil, err
	}
	return s.appointments.ListAppointmentsByUser(ctx, userID, filter)
}

func (s *Service) ListByBarber(ctx context.Context, barberID uuid.UUID, filter store.AppointmentFilter) ([]domain.Appointment, error) {
	return s.appointments.ListAppointmentsByBarber(ctx, barberID, filter)
}
