package get_session

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
	views map[string]*models.View
}

func (s *serviceStub) View(_ context.Context, sessionID string) (*models.View, error) {
	v, ok := s.views[sessionID]
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}
	return v, nil
}

func TestHandle(t *testing.T) {
	svc := &serviceStub{views: map[string]*models.View{
		"s1": {SessionID: "s1", Phase: "browsing", VisibleMonth: "2025-03"},
	}}
	h := NewHandler(svc, logger.NewNop())

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1", nil), map[string]string{"sessionId": "s1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"visibleMonth":"2025-03"`)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/zz", nil), map[string]string{"sessionId": "zz"})
	rec = httptest.NewRecorder()
	h.Handle(rec, r)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
