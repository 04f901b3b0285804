package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/store"
)

type fakeBarberRepo struct {
	createFn func(ctx context.Context, barber domain.Barber) (domain.Barber, error)
	findFn   func(ctx context.Context, barberID uuid.UUID) (domain.Barber, error)
	listFn   func(ctx context.Context) ([]domain.Barber, error)
}

func (f *fakeBarberRepo) CreateBarber(ctx context.Context, barber domain.Barber) (domain.Barber, error) {
	if f.createFn == nil {
		panic("CreateBarber not configured")
	}
	return f.createFn(ctx, barber)
}

func (f *fakeBarberRepo) FindBarber(ctx context.Context, barberID uuid.UUID) (domain.Barber, error) {
	if f.findFn == nil {
		panic("FindBarber not configured")
	}
	return f.findFn(ctx, barberID)
}

func (f *fakeBarberRepo) ListBarbers(ctx context.Context) ([]domain.Barber, error) {
	if f.listFn == nil {
		panic("ListBarbers not configured")
	}
	return f.listFn(ctx)
}

type fakeUserRepo struct {
	createFn func(ctx context.Context, user domain.User) (domain.User, error)
	findFn   func(ctx context.Context, userID uuid.UUID) (domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if f.createFn == nil {
		panic("CreateUser not configured")
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if f.findFn == nil {
		panic("FindUser not configured")
	}
	return f.findFn(ctx, userID)
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	if f.listFn == nil {
		panic("ListUsers not configured")
	}
	return f.listFn(ctx)
}

func TestRegisterBarber(t *testing.T) {
	var created domain.Barber
	barbers := &fakeBarberRepo{
		createFn: func(ctx context.Context, barber domain.Barber) (domain.Barber, error) {
			created = barber
			barber.ID = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
			return barber, nil
		},
	}
	svc := NewService(barbers, &fakeUserRepo{})

	barber, err := svc.RegisterBarber(context.Background(), "  Sam Cutter  ")
	if err != nil {
		t.Fatalf("RegisterBarber error = %v", err)
	}
	if created.FullName != "Sam Cutter" {
		t.Fatalf("stored name = %q, want trimmed", created.FullName)
	}
	if barber.ID == uuid.Nil {
		t.Fatal("barber.ID is nil")
	}
}

func TestRegisterBarber_NameValidation(t *testing.T) {
	svc := NewService(&fakeBarberRepo{}, &fakeUserRepo{})

	for _, name := range []string{"", "x", strings.Repeat("a", 101)} {
		_, err := svc.RegisterBarber(context.Background(), name)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("name %q: error = %v, want *ValidationError", name, err)
		}
	}
}

func TestGetBarber_NotFound(t *testing.T) {
	barbers := &fakeBarberRepo{
		findFn: func(ctx context.Context, barberID uuid.UUID) (domain.Barber, error) {
			return domain.Barber{}, store.ErrNotFound
		},
	}
	svc := NewService(barbers, &fakeUserRepo{})

	_, err := svc.GetBarber(context.Background(), uuid.MustParse("00000000-0000-0000-0000-0000000000b1"))
	var nferr *domain.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}

func TestRegisterUser(t *testing.T) {
	var created domain.User
	users := &fakeUserRepo{
		createFn: func(ctx context.Context, user domain.User) (domain.User, error) {
			created = user
			user.ID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
			return user, nil
		},
	}
	svc := NewService(&fakeBarberRepo{}, users)

	user, err := svc.RegisterUser(context.Background(), "Ada Lovelace", "+1 (555) 123-4567")
	if err != nil {
		t.Fatalf("RegisterUser error = %v", err)
	}
	if created.PhoneNumber != "+15551234567" {
		t.Fatalf("stored phone = %q, want normalized", created.PhoneNumber)
	}
	if user.ID == uuid.Nil {
		t.Fatal("user.ID is nil")
	}
}

func TestRegisterUser_PhoneValidation(t *testing.T) {
	svc := NewService(&fakeBarberRepo{}, &fakeUserRepo{})

	tests := []struct {
		name  string
		phone string
	}{
		{name: "too short", phone: "123456"},
		{name: "too long", phone: "1234567890123456"},
		{name: "letters", phone: "555CALLNOW"},
		{name: "plus in the middle", phone: "555+1234567"},
		{name: "empty", phone: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), "Ada Lovelace", tt.phone)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Fields[0].Path != "phoneNumber" {
				t.Fatalf("fields = %v, want phoneNumber", verr.Fields)
			}
		})
	}
}

func TestRegisterUser_CollectsAllFieldErrors(t *testing.T) {
	svc := NewService(&fakeBarberRepo{}, &fakeUserRepo{})

	_, err := svc.RegisterUser(context.Background(), "x", "bad")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("fields = %v, want both fullName and phoneNumber", verr.Fields)
	}
}

func TestListUsers(t *testing.T) {
	users := &fakeUserRepo{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{FullName: "Ada"}, {FullName: "Grace"}}, nil
		},
	}
	svc := NewService(&fakeBarberRepo{}, users)

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
