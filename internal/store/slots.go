package store

import (
	"context"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
)

// SlotFilter narrows slot listings. A nil Booked matches both states.
type SlotFilter struct {
	Booked *bool
}

type SlotRepository interface {
	// InBarberTx runs fn inside one transaction serialized per barber: no two
	// calls for the same barber interleave their check-then-write sequences.
	InBarberTx(ctx context.Context, barberID uuid.UUID, fn func(ctx context.Context, tx ScheduleTx) error) error

	FindSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error)
	ListSlotsByBarber(ctx context.Context, barberID uuid.UUID, filter SlotFilter) ([]domain.TimeSlot, error)
}
