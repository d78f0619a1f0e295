package select_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

type serviceStub struct {
	got types.TimeString
	err error
}

func (s *serviceStub) SelectSlot(_ context.Context, sessionID string, slot types.TimeString) (*models.View, error) {
	s.got = slot
	if s.err != nil {
		return nil, s.err
	}
	return &models.View{SessionID: sessionID}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "ok", body: `{"time":"09:30"}`, wantCode: http.StatusOK},
		{name: "bad time", body: `{"time":"9h30"}`, wantCode: http.StatusBadRequest},
		{name: "broken json", body: `[`, wantCode: http.StatusBadRequest},
		{name: "session not found", body: `{"time":"09:30"}`, err: sessions.ErrSessionNotFound, wantCode: http.StatusNotFound},
		{name: "internal", body: `{"time":"09:30"}`, err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceStub{err: tt.err}
			r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/slot", strings.NewReader(tt.body))
			r = mux.SetURLVars(r, map[string]string{"sessionId": "s1"})
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, r)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, types.TimeString("09:30"), svc.got)
			}
		})
	}
}
