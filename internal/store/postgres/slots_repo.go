package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

const slotOverlapConstraint = "time_slots_no_overlap"

// SlotRepo implements store.SlotRepository. All writes go through InBarberTx,
// which takes a per-barber advisory lock so overlap checks and the inserts
// they guard cannot race across requests.
type SlotRepo struct {
	db *bun.DB
}

func NewSlotRepo(db *bun.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

func (r *SlotRepo) InBarberTx(ctx context.Context, barberID uuid.UUID, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockBarberCalendar(ctx, tx, barberID); err != nil {
			return err
		}
		return fn(ctx, scheduleTx{tx: tx})
	})
}

func lockBarberCalendar(ctx context.Context, tx bun.Tx, barberID uuid.UUID) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", barberID.String()).Exec(ctx)
	return err
}

func (r *SlotRepo) FindSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
	var slot domain.TimeSlot
	err := r.db.NewSelect().
		Model(&slot).
		Where("id = ?", slotID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TimeSlot{}, store.ErrNotFound
		}
		return domain.TimeSlot{}, err
	}
	return slot, nil
}

func (r *SlotRepo) ListSlotsByBarber(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error) {
	var rows []domain.TimeSlot
	q := r.db.NewSelect().
		Model(&rows).
		Where("barber_id = ?", barberID).
		OrderExpr("start_time ASC")
	if filter.Booked != nil {
		q = q.Where("is_booked = ?", *filter.Booked)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

type scheduleTx struct {
	tx bun.Tx
}

func (r scheduleTx) GetSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
	var slot domain.TimeSlot
	err := r.tx.NewSelect().
		Model(&slot).
		Where("id = ?", slotID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TimeSlot{}, store.ErrNotFound
		}
		return domain.TimeSlot{}, err
	}
	return slot, nil
}

func (r scheduleTx) ListSlotsInRange(ctx context.Context, barberID uuid.UUID, windowStart, windowEnd time.Time) ([]domain.TimeSlot, error) {
	var rows []domain.TimeSlot
	err := r.tx.NewSelect().
		Model(&rows).
		Where("barber_id = ?", barberID).
		Where("start_time < ?", windowEnd).
		Where("start_time + make_interval(mins => duration_minutes) > ?", windowStart).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r scheduleTx) InsertSlot(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error) {
	m := slot
	if _, err := r.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.TimeSlot{}, mapSlotInsertError(err)
	}
	return m, nil
}

func (r scheduleTx) InsertSlots(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	rows := make([]domain.TimeSlot, len(slots))
	copy(rows, slots)
	if _, err := r.tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return nil, mapSlotInsertError(err)
	}
	return rows, nil
}

func (r scheduleTx) UpdateSlot(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error) {
	m := slot
	res, err := r.tx.NewUpdate().
		Model(&m).
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.TimeSlot{}, err
	}
	if affected == 0 {
		return domain.TimeSlot{}, store.ErrNotFound
	}
	return m, nil
}

func (r scheduleTx) DeleteSlot(ctx context.Context, barberID, slotID uuid.UUID) error {
	res, err := r.tx.NewDelete().
		Model((*domain.TimeSlot)(nil)).
		Where("barber_id = ?", barberID).
		Where("id = ?", slotID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// The exclusion constraint is a backstop behind the advisory lock; hitting it
// means another path wrote an overlapping slot.
func mapSlotInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == slotOverlapConstraint {
		return store.ErrConflict
	}
	return err
}
