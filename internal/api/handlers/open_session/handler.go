package open_session

import (
	"net/http"

	"github.com/m04kA/SMC-BookingWidget/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Open(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to open session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session opened: session_id=%s", view.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, view)
}
