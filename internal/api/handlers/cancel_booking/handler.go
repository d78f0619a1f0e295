package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWidget/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidConfirm       = "некорректный параметр confirm, ожидается true или false"
	msgNotFound             = "сессия не найдена"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/appointments/{appointmentId}?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/appointments/{id} - Invalid appointment ID: %s", vars["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Без параметра пользователь подтверждает отмену
	confirm := true
	if raw := r.URL.Query().Get("confirm"); raw != "" {
		confirm, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("DELETE /sessions/{id}/appointments/{id} - Invalid confirm: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidConfirm)
			return
		}
	}

	view, err := h.service.CancelAppointment(r.Context(), sessionID, appointmentID, confirm)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/appointments/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id}/appointments/{id} - Failed to cancel appointment: session_id=%s, appointment_id=%d, error=%v",
				sessionID, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/appointments/{id} - session_id=%s, appointment_id=%d, confirm=%t, dispatched=%t",
		sessionID, appointmentID, confirm, view.Dispatched)
	handlers.RespondJSON(w, http.StatusOK, view)
}
