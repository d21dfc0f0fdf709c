package get_business_window

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	businessHoursSvc "github.com/m04kA/SMC-AgendaService/internal/service/businesshours"
	"github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type stubService struct {
	resp *models.WindowResponse
	err  error
	got  *models.GetWindowRequest
}

func (s *stubService) GetWindow(_ context.Context, req *models.GetWindowRequest) (*models.WindowResponse, error) {
	s.got = req
	return s.resp, s.err
}

func doRequest(h *Handler, unitID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/units/"+unitID+"/business-window?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"unitId": unitID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	unitID := uuid.New()
	svc := &stubService{resp: &models.WindowResponse{
		UnitID:        unitID,
		Date:          "2026-04-21",
		Timezone:      "America/Sao_Paulo",
		IsOpen:        true,
		OpeningTime:   ptr.Ptr(types.TimeString("09:00")),
		ClosingTime:   ptr.Ptr(types.TimeString("18:30")),
		GridStartHour: 9,
		GridEndHour:   19,
		Warnings:      []string{},
	}}

	rec := doRequest(NewHandler(svc, logger.NewNop()), unitID.String(), "date=2026-04-21")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 21, svc.got.Date.Day())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["isOpen"])
	assert.Equal(t, "18:30", body["closingTime"])
	assert.Equal(t, float64(19), body["gridEndHour"])
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name   string
		unitID string
		query  string
		err    error
		status int
	}{
		{"invalid unit", "x", "", nil, http.StatusBadRequest},
		{"invalid date", uuid.New().String(), "date=amanha", nil, http.StatusBadRequest},
		{"not found", uuid.New().String(), "", businessHoursSvc.ErrUnitNotFound, http.StatusNotFound},
		{"internal", uuid.New().String(), "", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&stubService{err: tc.err}, logger.NewNop()), tc.unitID, tc.query)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
