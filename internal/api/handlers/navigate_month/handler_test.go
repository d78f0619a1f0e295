package navigate_month

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
)

type serviceStub struct {
	err error
}

func (s *serviceStub) NavigateMonth(_ context.Context, sessionID, direction string) (*models.View, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.View{SessionID: sessionID, VisibleMonth: "2025-04"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "ok", wantCode: http.StatusOK},
		{name: "invalid direction", err: sessions.ErrInvalidDirection, wantCode: http.StatusBadRequest},
		{name: "session not found", err: sessions.ErrSessionNotFound, wantCode: http.StatusNotFound},
		{name: "internal", err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&serviceStub{err: tt.err}, logger.NewNop())

			r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/month/next", nil)
			r = mux.SetURLVars(r, map[string]string{"sessionId": "s1", "direction": "next"})
			rec := httptest.NewRecorder()
			h.Handle(rec, r)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
