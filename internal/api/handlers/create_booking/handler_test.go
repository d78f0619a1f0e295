package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/internal/ui"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
)

type serviceStub struct {
	name, phone string
	err         error
}

func (s *serviceStub) ConfirmBooking(_ context.Context, sessionID, name, phone string) (*models.View, error) {
	s.name, s.phone = name, phone
	if s.err != nil {
		return nil, s.err
	}
	return &models.View{
		SessionID:  sessionID,
		Dispatched: true,
		Page:       ui.Snapshot{Alerts: []string{"¡Turno reservado exitosamente!"}},
	}, nil
}

func serve(svc *serviceStub, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/booking", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"sessionId": "s1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, r)
	return rec
}

func TestHandle_PassesFieldsAsIs(t *testing.T) {
	svc := &serviceStub{}
	rec := serve(svc, `{"name":"  Ana ","phone":"555-1111"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "  Ana ", svc.name)
	assert.Equal(t, "555-1111", svc.phone)
	assert.Contains(t, rec.Body.String(), "Turno reservado")
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&serviceStub{}, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&serviceStub{err: sessions.ErrSessionNotFound}, `{"name":"Ana","phone":"1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&serviceStub{err: assert.AnError}, `{"name":"Ana","phone":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
