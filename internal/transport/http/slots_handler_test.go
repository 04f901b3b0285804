package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/service/slots"
	"barberbook/backend/internal/store"
)

type fakeSlotsService struct {
	createSlotFn           func(ctx context.Context, in slots.CreateSlotInput) (domain.TimeSlot, error)
	createWeeklyScheduleFn func(ctx context.Context, in slots.WeeklyScheduleInput) ([]domain.TimeSlot, error)
	deleteSlotFn           func(ctx context.Context, barberID, slotID uuid.UUID) error
	getSlotFn              func(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error)
	listSlotsByBarberFn    func(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error)
}

func (f *fakeSlotsService) CreateSlot(ctx context.Context, in slots.CreateSlotInput) (domain.TimeSlot, error) {
	if f.createSlotFn == nil {
		panic("CreateSlot not configured")
	}
	return f.createSlotFn(ctx, in)
}

func (f *fakeSlotsService) CreateWeeklySchedule(ctx context.Context, in slots.WeeklyScheduleInput) ([]domain.TimeSlot, error) {
	if f.createWeeklyScheduleFn == nil {
		panic("CreateWeeklySchedule not configured")
	}
	return f.createWeeklyScheduleFn(ctx, in)
}

func (f *fakeSlotsService) DeleteSlot(ctx context.Context, barberID, slotID uuid.UUID) error {
	if f.deleteSlotFn == nil {
		panic("DeleteSlot not configured")
	}
	return f.deleteSlotFn(ctx, barberID, slotID)
}

func (f *fakeSlotsService) GetSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
	if f.getSlotFn == nil {
		panic("GetSlot not configured")
	}
	return f.getSlotFn(ctx, slotID)
}

func (f *fakeSlotsService) ListSlotsByBarber(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error) {
	if f.listSlotsByBarberFn == nil {
		panic("ListSlotsByBarber not configured")
	}
	return f.listSlotsByBarberFn(ctx, barberID, filter)
}

var (
	testBarberID = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	testSlotID   = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
)

func slotsRouter(svc slotsService) http.Handler {
	return NewRouter(
		NewSlotsHandler(svc, nil),
		NewAppointmentsHandler(nil, nil),
		NewDirectoryHandler(nil, nil),
		time.Second,
	)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestCreateTimeSlotRoute(t *testing.T) {
	svc := &fakeSlotsService{
		createSlotFn: func(ctx context.Context, in slots.CreateSlotInput) (domain.TimeSlot, error) {
			if in.BarberID != testBarberID {
				t.Fatalf("BarberID = %v, want %v", in.BarberID, testBarberID)
			}
			return domain.TimeSlot{
				ID:              testSlotID,
				BarberID:        in.BarberID,
				StartTime:       in.Start,
				DurationMinutes: in.DurationMinutes,
			}, nil
		},
	}

	body := `{"startDateTime":"2026-03-02T10:00:00Z","duration":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/"+testBarberID.String()+"/timeslots", strings.NewReader(body))
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body)
	}
	var dto timeSlotDTO
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.ID != testSlotID.String() || dto.Duration != 60 || dto.IsBooked {
		t.Fatalf("response = %+v", dto)
	}
}

func TestCreateTimeSlotRoute_BadBarberID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/not-a-uuid/timeslots", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	slotsRouter(&fakeSlotsService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Type != "VALIDATION_ERROR" {
		t.Fatalf("type = %q, want VALIDATION_ERROR", resp.Type)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Path != "barberId" {
		t.Fatalf("errors = %v", resp.Errors)
	}
}

func TestCreateTimeSlotRoute_BusinessRule(t *testing.T) {
	svc := &fakeSlotsService{
		createSlotFn: func(ctx context.Context, in slots.CreateSlotInput) (domain.TimeSlot, error) {
			return domain.TimeSlot{}, domain.NewBusinessRuleError("time must be between 9:00 and 23:00")
		},
	}

	body := `{"startDateTime":"2026-03-02T07:00:00Z","duration":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/"+testBarberID.String()+"/timeslots", strings.NewReader(body))
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	resp := decodeError(t, rec)
	if resp.Type != "BUSINESS_RULE_ERROR" {
		t.Fatalf("type = %q, want BUSINESS_RULE_ERROR", resp.Type)
	}
}

func TestCreateWeeklyScheduleRoute(t *testing.T) {
	svc := &fakeSlotsService{
		createWeeklyScheduleFn: func(ctx context.Context, in slots.WeeklyScheduleInput) ([]domain.TimeSlot, error) {
			if got, want := in.StartDate, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
				t.Fatalf("StartDate = %v, want %v", got, want)
			}
			if len(in.DailySlots) != 1 || in.DailySlots[0].DayOfWeek != 1 {
				t.Fatalf("DailySlots = %+v", in.DailySlots)
			}
			return []domain.TimeSlot{
				{ID: testSlotID, BarberID: in.BarberID, StartTime: in.StartDate.Add(9 * time.Hour), DurationMinutes: 60},
			}, nil
		},
	}

	body := `{"startDate":"2026-03-02","endDate":"2026-03-08","dailySlots":[{"dayOfWeek":1,"startTime":"09:00","endTime":"12:00","duration":60}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/"+testBarberID.String()+"/schedule", strings.NewReader(body))
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body)
	}
	var resp struct {
		Count     int           `json:"count"`
		TimeSlots []timeSlotDTO `json:"timeSlots"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.TimeSlots) != 1 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestCreateWeeklyScheduleRoute_BadDate(t *testing.T) {
	body := `{"startDate":"02/03/2026","endDate":"2026-03-08","dailySlots":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/"+testBarberID.String()+"/schedule", strings.NewReader(body))
	rec := httptest.NewRecorder()
	slotsRouter(&fakeSlotsService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Path != "startDate" {
		t.Fatalf("errors = %v", resp.Errors)
	}
}

func TestGetTimeSlotRoute_NotFound(t *testing.T) {
	svc := &fakeSlotsService{
		getSlotFn: func(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
			return domain.TimeSlot{}, domain.NewNotFoundError("Time slot", slotID.String())
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/timeslots/"+testSlotID.String(), nil)
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	resp := decodeError(t, rec)
	if resp.Type != "NOT_FOUND" {
		t.Fatalf("type = %q, want NOT_FOUND", resp.Type)
	}
}

func TestListTimeSlotsRoute_StatusFilter(t *testing.T) {
	var gotFilter store.SlotFilter
	svc := &fakeSlotsService{
		listSlotsByBarberFn: func(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/barbers/"+testBarberID.String()+"/timeslots?status=free", nil)
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotFilter.Booked == nil || *gotFilter.Booked {
		t.Fatalf("filter = %+v, want Booked=false", gotFilter)
	}
}

func TestDeleteTimeSlotRoute(t *testing.T) {
	deleted := false
	svc := &fakeSlotsService{
		deleteSlotFn: func(ctx context.Context, barberID, slotID uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/barbers/"+testBarberID.String()+"/timeslots/"+testSlotID.String(), nil)
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if !deleted {
		t.Fatal("delete never reached the service")
	}
}

func TestDeleteTimeSlotRoute_Booked(t *testing.T) {
	svc := &fakeSlotsService{
		deleteSlotFn: func(ctx context.Context, barberID, slotID uuid.UUID) error {
			return domain.NewBusinessRuleError("cannot delete a time slot that is currently booked")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/barbers/"+testBarberID.String()+"/timeslots/"+testSlotID.String(), nil)
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestUnexpectedErrorHidesDetail(t *testing.T) {
	svc := &fakeSlotsService{
		getSlotFn: func(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error) {
			return domain.TimeSlot{}, context.DeadlineExceeded
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/timeslots/"+testSlotID.String(), nil)
	rec := httptest.NewRecorder()
	slotsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	resp := decodeError(t, rec)
	if resp.Type != "UNEXPECTED_ERROR" {
		t.Fatalf("type = %q, want UNEXPECTED_ERROR", resp.Type)
	}
	if strings.Contains(resp.Message, "deadline") {
		t.Fatalf("message leaks internals: %q", resp.Message)
	}
}
