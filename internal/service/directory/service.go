package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

type Service struct {
	barbers store.BarberRepository
	users   store.UserRepository
}

func NewService(barbers store.BarberRepository, users store.UserRepository) *Service {
	return &Service{barbers: barbers, users: users}
}

func (s *Service) RegisterBarber(ctx context.Context, fullName string) (domain.Barber, error) {
	name := strings.TrimSpace(fullName)
	if fields := validateFullName(name); len(fields) > 0 {
		return domain.Barber{}, domain.NewValidationError(fields...)
	}
	return s.barbers.CreateBarber(ctx, domain.Barber{FullName: name})
}

func (s *Service) GetBarber(ctx context.Context, barberID uuid.UUID) (domain.Barber, error) {
	barber, err := s.barbers.FindBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Barber{}, domain.NewNotFoundError("Barber", barberID.String())
		}
		return domain.Barber{}, err
	}
	return barber, nil
}

func (s *Service) ListBarbers(ctx context.Context) ([]domain.Barber, error) {
	return s.barbers.ListBarbers(ctx)
}

func (s *Service) RegisterUser(ctx context.Context, fullName, phoneNumber string) (domain.User, error) {
	name := strings.TrimSpace(fullName)
	phone := normalizePhone(phoneNumber)

	fields := validateFullName(name)
	if !validPhone(phone) {
		fields = append(fields, domain.FieldError{Path: "phoneNumber", Message: "must be 7 to 15 digits, optionally prefixed with +"})
	}
	if len(fields) > 0 {
		return domain.User{}, domain.NewValidationError(fields...)
	}

	return s.users.CreateUser(ctx, domain.User{FullName: name, PhoneNumber: phone})
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.NewNotFoundError("User", userID.String())
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

func validateFullName(name string) []domain.FieldError {
	if len(name) < 2 || len(name) > 100 {
		return []domain.FieldError{{Path: "fullName", Message: "must be between 2 and 100 characters"}}
	}
	return nil
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validPhone(phone string) bool {
	digits := phone
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
