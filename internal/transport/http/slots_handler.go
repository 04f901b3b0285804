package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/service/slots"
	"barberbook/backend/internal/store"
)

type slotsService interface {
	CreateSlot(ctx context.Context, in slots.CreateSlotInput) (domain.TimeSlot, error)
	CreateWeeklySchedule(ctx context.Context, in slots.WeeklyScheduleInput) ([]domain.TimeSlot, error)
	DeleteSlot(ctx context.Context, barberID, slotID uuid.UUID) error
	GetSlot(ctx context.Context, slotID uuid.UUID) (domain.TimeSlot, error)
	ListSlotsByBarber(ctx context.Context, barberID uuid.UUID, filter store.SlotFilter) ([]domain.TimeSlot, error)
}

type SlotsHandler struct {
	svc slotsService
	log *slog.Logger
}

func NewSlotsHandler(svc slotsService, log *slog.Logger) *SlotsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SlotsHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.slots")),
	}
}

type timeSlotDTO struct {
	ID            string    `json:"id"`
	BarberID      string    `json:"barberId"`
	StartDateTime time.Time `json:"startDateTime"`
	Duration      int       `json:"duration"`
	IsBooked      bool      `json:"isBooked"`
}

func toTimeSlotDTO(s domain.TimeSlot) timeSlotDTO {
	return timeSlotDTO{
		ID:            s.ID.String(),
		BarberID:      s.BarberID.String(),
		StartDateTime: s.StartTime,
		Duration:      s.DurationMinutes,
		IsBooked:      s.IsBooked,
	}
}

type createTimeSlotRequest struct {
	StartDateTime time.Time `json:"startDateTime"`
	Duration      int       `json:"duration"`
}

func (h *SlotsHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "CreateTimeSlot"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	var req createTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(log, w, domain.NewValidationError(domain.FieldError{Path: "body", Message: "invalid request body"}))
		return
	}

	slot, err := h.svc.CreateSlot(r.Context(), slots.CreateSlotInput{
		BarberID:        barberID,
		Start:           req.StartDateTime,
		DurationMinutes: req.Duration,
	})
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("time slot created",
		slog.String("time_slot_id", slot.ID.String()),
		slog.String("barber_id", slot.BarberID.String()),
		slog.Time("start_time", slot.StartTime),
	)
	writeJSON(w, http.StatusCreated, toTimeSlotDTO(slot))
}

type dailyScheduleDTO struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	Interval  int    `json:"interval"`
}

type weeklyScheduleRequest struct {
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	DailySlots []dailyScheduleDTO `json:"dailySlots"`
}

func (h *SlotsHandler) CreateWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "CreateWeeklySchedule"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	var req weeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(log, w, domain.NewValidationError(domain.FieldError{Path: "body", Message: "invalid request body"}))
		return
	}

	startDate, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		writeError(log, w, err)
		return
	}
	endDate, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		writeError(log, w, err)
		return
	}

	patterns := make([]domain.DailyPattern, len(req.DailySlots))
	for i, d := range req.DailySlots {
		patterns[i] = domain.DailyPattern{
			DayOfWeek:       d.DayOfWeek,
			StartTime:       d.StartTime,
			EndTime:         d.EndTime,
			DurationMinutes: d.Duration,
			IntervalMinutes: d.Interval,
		}
	}

	created, err := h.svc.CreateWeeklySchedule(r.Context(), slots.WeeklyScheduleInput{
		BarberID:   barberID,
		StartDate:  startDate,
		EndDate:    endDate,
		DailySlots: patterns,
	})
	if err != nil {
		writeError(log, w, err)
		return
	}

	dtos := make([]timeSlotDTO, len(created))
	for i, slot := range created {
		dtos[i] = toTimeSlotDTO(slot)
	}

	log.Info("weekly schedule created",
		slog.String("barber_id", barberID.String()),
		slog.Int("count", len(created)),
	)
	writeJSON(w, http.StatusCreated, map[string]any{
		"count":     len(created),
		"timeSlots": dtos,
	})
}

func (h *SlotsHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "GetTimeSlot"))

	slotID, err := pathUUID(r, "timeslotId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	slot, err := h.svc.GetSlot(r.Context(), slotID)
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimeSlotDTO(slot))
}

func (h *SlotsHandler) ListByBarber(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ListTimeSlots"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	filter := store.SlotFilter{}
	switch r.URL.Query().Get("status") {
	case "free":
		booked := false
		filter.Booked = &booked
	case "taken":
		booked := true
		filter.Booked = &booked
	}

	rows, err := h.svc.ListSlotsByBarber(r.Context(), barberID, filter)
	if err != nil {
		writeError(log, w, err)
		return
	}

	dtos := make([]timeSlotDTO, len(rows))
	for i, slot := range rows {
		dtos[i] = toTimeSlotDTO(slot)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(dtos),
		"timeSlots": dtos,
	})
}

func (h *SlotsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "DeleteTimeSlot"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}
	slotID, err := pathUUID(r, "timeslotId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	if err := h.svc.DeleteSlot(r.Context(), barberID, slotID); err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("time slot deleted",
		slog.String("time_slot_id", slotID.String()),
		slog.String("barber_id", barberID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func parseDate(s, path string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(domain.FieldError{Path: path, Message: "must be a date in YYYY-MM-DD or RFC 3339 format"})
}
