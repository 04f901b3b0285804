package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
	"barberbook/backend/internal/service/appointments"
	"barberbook/backend/internal/store"
)

type appointmentsService interface {
	Schedule(ctx context.Context, in appointments.ScheduleInput) (domain.Appointment, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter store.AppointmentFilter) ([]domain.Appointment, error)
	ListByBarber(ctx context.Context, barberID uuid.UUID, filter store.AppointmentFilter) ([]domain.Appointment, error)
}

type AppointmentsHandler struct {
	svc appointmentsService
	log *slog.Logger
}

func NewAppointmentsHandler(svc appointmentsService, log *slog.Logger) *AppointmentsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.appointments")),
	}
}

type appointmentDTO struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	BarberID    string `json:"barberId"`
	TimeSlotID  string `json:"timeSlotId"`
	IsCancelled bool   `json:"isCancelled"`
	Note        string `json:"note,omitempty"`
}

func toAppointmentDTO(a domain.Appointment) appointmentDTO {
	return appointmentDTO{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		BarberID:    a.BarberID.String(),
		TimeSlotID:  a.TimeSlotID.String(),
		IsCancelled: a.IsCancelled,
		Note:        a.Note,
	}
}

type scheduleAppointmentRequest struct {
	UserID     string `json:"userId"`
	TimeSlotID string `json:"timeSlotId"`
	Note       string `json:"note"`
}

func (h *AppointmentsHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ScheduleAppointment"))

	var req scheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(log, w, domain.NewValidationError(domain.FieldError{Path: "body", Message: "invalid request body"}))
		return
	}

	var fields []domain.FieldError
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		fields = append(fields, domain.FieldError{Path: "userId", Message: "must be a valid UUID"})
	}
	slotID, err := uuid.Parse(req.TimeSlotID)
	if err != nil {
		fields = append(fields, domain.FieldError{Path: "timeSlotId", Message: "must be a valid UUID"})
	}
	if len(fields) > 0 {
		writeError(log, w, domain.NewValidationError(fields...))
		return
	}

	appt, err := h.svc.Schedule(r.Context(), appointments.ScheduleInput{
		UserID:     userID,
		TimeSlotID: slotID,
		Note:       req.Note,
	})
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("appointment scheduled",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("user_id", appt.UserID.String()),
		slog.String("time_slot_id", appt.TimeSlotID.String()),
	)
	writeJSON(w, http.StatusCreated, toAppointmentDTO(appt))
}

func (h *AppointmentsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "CancelAppointment"))

	appointmentID, err := pathUUID(r, "appointmentId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	appt, err := h.svc.Cancel(r.Context(), appointmentID)
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("appointment cancelled", slog.String("appointment_id", appt.ID.String()))
	writeJSON(w, http.StatusOK, toAppointmentDTO(appt))
}

func (h *AppointmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "GetAppointment"))

	appointmentID, err := pathUUID(r, "appointmentId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	appt, err := h.svc.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentDTO(appt))
}

func (h *AppointmentsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ListAppointmentsByUser"))

	userID, err := pathUUID(r, "userId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	rows, err := h.svc.ListByUser(r.Context(), userID, appointmentFilter(r))
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeAppointmentList(w, rows)
}

func (h *AppointmentsHandler) ListByBarber(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ListAppointmentsByBarber"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	rows, err := h.svc.ListByBarber(r.Context(), barberID, appointmentFilter(r))
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeAppointmentList(w, rows)
}

func appointmentFilter(r *http.Request) store.AppointmentFilter {
	filter := store.AppointmentFilter{}
	switch r.URL.Query().Get("status") {
	case "active":
		cancelled := false
		filter.Cancelled = &cancelled
	case "cancelled":
		cancelled := true
		filter.Cancelled = &cancelled
	}
	return filter
}

func writeAppointmentList(w http.ResponseWriter, rows []domain.Appointment) {
	dtos := make([]appointmentDTO, len(rows))
	for i, a := range rows {
		dtos[i] = toAppointmentDTO(a)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(dtos),
		"appointments": dtos,
	})
}
