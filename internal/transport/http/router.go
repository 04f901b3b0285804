package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"barberbook/backend/internal/domain"
)

// NewRouter wires the REST surface. Conflict partitioning, locking, and all
// domain rules live below the services; handlers only decode, dispatch, and
// map errors.
func NewRouter(slotsH *SlotsHandler, apptH *AppointmentsHandler, dirH *DirectoryHandler, requestTimeout time.Duration) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestTimeoutMiddleware(requestTimeout))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", dirH.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/users", dirH.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", dirH.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/appointments", apptH.ListByUser).Methods(http.MethodGet)

	api.HandleFunc("/barbers", dirH.RegisterBarber).Methods(http.MethodPost)
	api.HandleFunc("/barbers", dirH.ListBarbers).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}", dirH.GetBarber).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/timeslots", slotsH.Create).Methods(http.MethodPost)
	api.HandleFunc("/barbers/{barberId}/timeslots", slotsH.ListByBarber).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/timeslots/{timeslotId}", slotsH.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/barbers/{barberId}/schedule", slotsH.CreateWeeklySchedule).Methods(http.MethodPost)
	api.HandleFunc("/barbers/{barberId}/appointments", apptH.ListByBarber).Methods(http.MethodGet)

	api.HandleFunc("/timeslots/{timeslotId}", slotsH.Get).Methods(http.MethodGet)

	api.HandleFunc("/appointments", apptH.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", apptH.Get).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", apptH.Cancel).Methods(http.MethodPost)

	return r
}

func requestTimeoutMiddleware(timeout time.Duration) mux.MiddlewareFunc {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, domain.NewValidationError(domain.FieldError{Path: name, Message: "must be a valid UUID"})
	}
	return id, nil
}
