package select_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
)

type serviceStub struct {
	gotID   string
	gotDate time.Time
	err     error
}

func (s *serviceStub) SelectDate(_ context.Context, sessionID string, date time.Time) (*models.View, error) {
	s.gotID = sessionID
	s.gotDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &models.View{SessionID: sessionID, Phase: "date_chosen", Dispatched: true}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/date", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"sessionId": "s1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "ok", body: `{"date":"2025-03-10"}`, wantCode: http.StatusOK},
		{name: "broken json", body: `{"date":`, wantCode: http.StatusBadRequest},
		{name: "unknown field", body: `{"day":"2025-03-10"}`, wantCode: http.StatusBadRequest},
		{name: "bad date", body: `{"date":"10/03/2025"}`, wantCode: http.StatusBadRequest},
		{name: "session not found", body: `{"date":"2025-03-10"}`, err: sessions.ErrSessionNotFound, wantCode: http.StatusNotFound},
		{name: "invalid input", body: `{"date":"2025-03-10"}`, err: sessions.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", body: `{"date":"2025-03-10"}`, err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceStub{err: tt.err}
			rec := serve(NewHandler(svc, logger.NewNop()), tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_PassesParsedDate(t *testing.T) {
	svc := &serviceStub{}
	rec := serve(NewHandler(svc, logger.NewNop()), `{"date":"2025-03-10"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", svc.gotID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), svc.gotDate)
	assert.Contains(t, rec.Body.String(), `"dispatched":true`)
}
