package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Appointment binds a user to exactly one time slot. Cancellation is a
// terminal flag; the row and its link to the slot persist.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	UserID      uuid.UUID `bun:"user_id,notnull,type:uuid"`
	BarberID    uuid.UUID `bun:"barber_id,notnull,type:uuid"`
	TimeSlotID  uuid.UUID `bun:"time_slot_id,notnull,type:uuid"`
	IsCancelled bool      `bun:"is_cancelled,notnull"`
	Note        string    `bun:"note"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

// Cancel returns a cancelled version of the appointment. There is no path
// back from cancelled.
func (a Appointment) Cancel() (Appointment, error) {
	if a.IsCancelled {
		return Appointment{}, NewBusinessRuleError("appointment is already cancelled")
	}
	a.IsCancelled = true
	return a, nil
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}
