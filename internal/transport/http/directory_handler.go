package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"barberbook/backend/internal/domain"
)

type directoryService interface {
	RegisterBarber(ctx context.Context, fullName string) (domain.Barber, error)
	GetBarber(ctx context.Context, barberID uuid.UUID) (domain.Barber, error)
	ListBarbers(ctx context.Context) ([]domain.Barber, error)
	RegisterUser(ctx context.Context, fullName, phoneNumber string) (domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

func NewDirectoryHandler(svc directoryService, log *slog.Logger) *DirectoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &DirectoryHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.directory")),
	}
}

type barberDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type userDTO struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

func toBarberDTO(b domain.Barber) barberDTO {
	return barberDTO{ID: b.ID.String(), FullName: b.FullName}
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{ID: u.ID.String(), FullName: u.FullName, PhoneNumber: u.PhoneNumber}
}

type registerBarberRequest struct {
	FullName string `json:"fullName"`
}

type registerUserRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *DirectoryHandler) RegisterBarber(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "RegisterBarber"))

	var req registerBarberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(log, w, domain.NewValidationError(domain.FieldError{Path: "body", Message: "invalid request body"}))
		return
	}

	barber, err := h.svc.RegisterBarber(r.Context(), req.FullName)
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("barber registered", slog.String("barber_id", barber.ID.String()))
	writeJSON(w, http.StatusCreated, toBarberDTO(barber))
}

func (h *DirectoryHandler) GetBarber(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "GetBarber"))

	barberID, err := pathUUID(r, "barberId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	barber, err := h.svc.GetBarber(r.Context(), barberID)
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBarberDTO(barber))
}

func (h *DirectoryHandler) ListBarbers(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ListBarbers"))

	barbers, err := h.svc.ListBarbers(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	dtos := make([]barberDTO, len(barbers))
	for i, b := range barbers {
		dtos[i] = toBarberDTO(b)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(dtos),
		"barbers": dtos,
	})
}

func (h *DirectoryHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "RegisterUser"))

	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(log, w, domain.NewValidationError(domain.FieldError{Path: "body", Message: "invalid request body"}))
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), req.FullName, req.PhoneNumber)
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "GetUser"))

	userID, err := pathUUID(r, "userId")
	if err != nil {
		writeError(log, w, err)
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("route", "ListUsers"))

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	dtos := make([]userDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(dtos),
		"users": dtos,
	})
}
