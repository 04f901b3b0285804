package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

// DirectoryRepo implements store.BarberRepository and store.UserRepository.
type DirectoryRepo struct {
	db *bun.DB
}

func NewDirectoryRepo(db *bun.DB) *DirectoryRepo {
	return &DirectoryRepo{db: db}
}

func (r *DirectoryRepo) CreateBarber(ctx context.Context, barber domain.Barber) (domain.Barber, error) {
	m := barber
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Barber{}, err
	}
	return m, nil
}

func (r *DirectoryRepo) FindBarber(ctx context.Context, barberID uuid.UUID) (domain.Barber, error) {
	var barber domain.Barber
	err := r.db.NewSelect().
		Model(&barber).
		Where("id = ?", barberID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Barber{}, store.ErrNotFound
		}
		return domain.Barber{}, err
	}
	return barber, nil
}

func (r *DirectoryRepo) ListBarbers(ctx context.Context) ([]domain.Barber, error) {
	var rows []domain.Barber
	err := r.db.NewSelect().
		Model(&rows).
		OrderExpr("full_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DirectoryRepo) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	m := user
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.User{}, err
	}
	return m, nil
}

func (r *DirectoryRepo) FindUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var user domain.User
	err := r.db.NewSelect().
		Model(&user).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (r *DirectoryRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []domain.User
	err := r.db.NewSelect().
		Model(&rows).
		OrderExpr("full_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
