package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"barberbook/backend/internal/domain"
)

type errorResponse struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Errors  []fieldErrorDTO `json:"errors,omitempty"`
}

type fieldErrorDTO struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain error kinds onto the API envelope. Anything
// unrecognized is an internal fault: logged with detail, answered without.
func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldErrorDTO, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			fields = append(fields, fieldErrorDTO{Path: f.Path, Error: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Type: "VALIDATION_ERROR", Message: "Validation failed", Errors: fields})
		return
	}
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		writeJSON(w, http.StatusNotFound, errorResponse{Type: "NOT_FOUND", Message: nfErr.Error()})
		return
	}
	var brErr *domain.BusinessRuleError
	if errors.As(err, &brErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Type: "BUSINESS_RULE_ERROR", Message: brErr.Error()})
		return
	}
	log.Error("request failed", slog.Any("err", err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Type: "UNEXPECTED_ERROR", Message: "An unexpected error occurred"})
}
