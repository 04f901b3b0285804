package slots

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

type Service struct {
	slots   store.SlotRepository
	barbers store.BarberRepository
	policy  domain.BusinessHoursPolicy
	now     func() time.Time
}

func NewService(slots store.SlotRepository, barbers store.BarberRepository, policy domain.BusinessHoursPolicy) *Service {
	return &Service{slots: slots, barbers: barbers, policy: policy, now: time.Now}
}

type CreateSlotInput struct {
	BarberID        uuid.UUID
	Start           time.Time
	DurationMinutes int
}

// CreateSlot creates one free slot after checking business hours and, inside
// the barber's transaction, that the window overlaps no persisted slot.
func (s *Service) CreateSlot(ctx context.Context, in CreateSlotInput) (domain.TimeSlot, error) {
	if in.BarberID == uuid.Nil {
		return domain.TimeSlot{}, domain.NewValidationError(domain.FieldError{Path: "barberId", Message: "is required"})
	}
	window, err := domain.NewTimeWindow(in.Start, in.DurationMinutes)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	if err := s.policy.WithinBusinessHours(in.Start); err != nil {
		return domain.TimeSlot{}, err
	}
	if err := s.ensureBarber(ctx, in.BarberID); err != nil {
		return domain.TimeSlot{}, err
	}

	var created domain.TimeSlot
	err = s.slots.InBarberTx(ctx, in.BarberID, func(ctx context.Context, tx store.ScheduleTx) error {
		existing, err := tx.ListSlotsInRange(ctx, in.BarberID, window.Start, window.End())
		if err != nil {
			return err
		}
		if c := domain.FindSlotConflict(slotIntervals(existing), window, uuid.Nil); c != nil {
			return c.Err()
		}
		created, err = tx.InsertSlot(ctx, domain.NewTimeSlot(in.BarberID, window))
		return err
	})
	if err != nil {
		return domain.TimeSlot{}, mapConflict(err)
	}
	return created, nil
}

type WeeklyScheduleInput struct {
	BarberID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	DailySlots []domain.DailyPattern
}

// CreateWeeklySchedule expands the daily patterns over the date range, sweeps
// existing and candidate windows for conflicts, and persists the accepted
// batch atomically. On any conflict or storage fault nothing is committed.
func (s *Service) CreateWeeklySchedule(ctx context.Context, in WeeklyScheduleInput) ([]domain.TimeSlot, error) {
	if in.BarberID == uuid.Nil {
		return nil, domain.NewValidationError(domain.FieldError{Path: "barberId", Message: "is required"})
	}
	if err := s.ensureBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}

	windows, err := domain.GenerateWeeklyWindows(in.StartDate, in.EndDate, in.DailySlots)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Interval, len(windows))
	for i, w := range windows {
		candidates[i] = domain.Interval{ID: uuid.New(), Window: w}
	}
	rangeStart := windows[0].Start
	rangeEnd := windows[len(windows)-1].End()

	var created []domain.TimeSlot
	err = s.slots.InBarberTx(ctx, in.BarberID, func(ctx context.Context, tx store.ScheduleTx) error {
		existing, err := tx.ListSlotsInRange(ctx, in.BarberID, rangeStart, rangeEnd)
		if err != nil {
			return err
		}
		if c := domain.FindBatchConflict(slotIntervals(existing), candidates); c != nil {
			return c.Err()
		}
		batch := make([]domain.TimeSlot, len(windows))
		for i, w := range windows {
			batch[i] = domain.NewTimeSlot(in.BarberID, w)
		}
		created, err = tx.InsertSlots(ctx, batch)
		return err
	})
	if err != nil {
		return nil, mapConflict(err)
	}
	return created, nil
}

// DeleteSlot removes a free slot owned by the barber. Booked slots cannot be
// deleted.
func (s *Service) DeleteSlot(ctx context.Context, barberID, slotID uuid.UUID) error {
	if barberID == uuid.Nil || slotID == uuid.Nil {
		return domain.NewValidationError(domain.FieldError{Path: "id", Message: "is required"})
	}
	return s.slots.InBarberTx(ctx, barberID, func(ctx context.Context, tx store.ScheduleTx) error {
		slot, err := tx.GetSlot(ctx, slotID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewNotFoundError("Time slot", slotID.String())
			}
			return err
		}
		if slot.BarberID != barberID {
			return domain.NewNotFoundError("Time slot", slotID.String())
		}
		if slot.IsBooked {
			return domain.NewBusinessRuleError("cannot delete a time slot that is currently booked")
		}
		return tx.DeleteSlot(ctx, barberID, slotID)
	})
}

func (s *Service) GetSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
	slot, err := s.slots.FindSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TimeSlot{}, domain.NewNotFoundError("Time slot", slotID.String())
		}
		return domain.TimeSlot{}, err
	}
	return slot, nil
}

func (s *Service) ListSlotsByBarber(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error) {
	if err := s.ensureBarber(ctx, barberID); err != nil {
		return nil, err
	}
	return s.slots.ListSlotsByBarber(ctx, barberID, filter)
}

func (s *Service) ensureBarber(ctx context.Context, barberID uuid.UUID) error {
	if _, err := s.barbers.FindBarber(ctx, barberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NewNotFoundError("Barber", barberID.String())
		}
		return err
	}
	return nil
}

func slotIntervals(slots []domain.TimeSlot) []domain.Interval {
	out := make([]domain.Interval, len(slots))
	for i, slot := range slots {
		out[i] = domain.Interval{ID: slot.ID, Window: slot.Window()}
	}
	return out
}

// store.ErrConflict means the exclusion constraint fired after the in-memory
// check passed; report it as the same business rule.
func mapConflict(err error) error {
	if errors.Is(err, store.ErrConflict) {
		return domain.NewBusinessRuleError("cannot create a time slot that overlaps with an existing one")
	}
	return err
}
