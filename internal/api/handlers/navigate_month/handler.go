package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWidget/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
)

const (
	msgNotFound         = "сессия не найдена"
	msgInvalidDirection = "некорректное направление, ожидается prev или next"
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

// Handle POST /api/v1/sessions/{sessionId}/month/{direction}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	direction := vars["direction"]

	view, err := h.service.NavigateMonth(r.Context(), sessionID, direction)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidDirection):
			h.logger.Warn("POST /sessions/{id}/month - Invalid direction: %s", direction)
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/month - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/month - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
