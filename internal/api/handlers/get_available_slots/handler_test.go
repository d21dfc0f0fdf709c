package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func doRequest(h *Handler, unitID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/units/"+unitID+"/available-slots?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"unitId": unitID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	unitID, barberID := uuid.New(), uuid.New()
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		UnitID:          unitID,
		BarberID:        barberID,
		Date:            time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "09:45"},
		},
	}}

	rec := doRequest(NewHandler(uc, logger.NewNop()), unitID.String(),
		fmt.Sprintf("barberId=%s&date=2026-04-21&durationMinutes=45", barberID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 45, uc.got.DurationMinutes)
	assert.Equal(t, barberID, uc.got.BarberID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:45", body.Slots[0].EndTime)
	assert.NotNil(t, body.Warnings)
}

func TestHandle_DefaultDuration(t *testing.T) {
	unitID := uuid.New()
	uc := &stubUseCase{resp: &getAvailableSlots.Response{UnitID: unitID}}

	rec := doRequest(NewHandler(uc, logger.NewNop()), unitID.String(),
		fmt.Sprintf("barberId=%s&date=2026-04-21", uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, uc.got.DurationMinutes)
}

func TestHandle_BadRequests(t *testing.T) {
	unitID := uuid.New().String()
	barber := uuid.New().String()

	cases := map[string]string{
		"missing barber":   "date=2026-04-21",
		"invalid barber":   "barberId=1&date=2026-04-21",
		"missing date":     "barberId=" + barber,
		"invalid date":     "barberId=" + barber + "&date=2026-13-01",
		"invalid duration": "barberId=" + barber + "&date=2026-04-21&durationMinutes=meia",
	}

	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec := doRequest(NewHandler(uc, logger.NewNop()), unitID, query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	query := fmt.Sprintf("barberId=%s&date=2026-04-21", uuid.New())

	cases := []struct {
		err    error
		status int
	}{
		{getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{fmt.Errorf("%w: duration", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest},
		{getAvailableSlots.ErrUnitNotFound, http.StatusNotFound},
		{getAvailableSlots.ErrBarberNotFound, http.StatusNotFound},
		{getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := doRequest(NewHandler(&stubUseCase{err: tc.err}, logger.NewNop()), uuid.New().String(), query)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
