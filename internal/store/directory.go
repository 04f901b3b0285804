package store

import (
	"context"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
)

type BarberRepository interface {
	CreateBarber(ctx context.Context, barber domain.Barber) (domain.Barber, error)
	FindBarber(ctx context.Context, barberID uuid.UUID) (domain.Barber, error)
	ListBarbers(ctx context.Context) ([]domain.Barber, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	FindUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
