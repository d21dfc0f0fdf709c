package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func newRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/x?"+query, nil)
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()

	got, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseUUID(uuid.Nil.String())
	assert.Error(t, err)

	_, err = ParseUUID("abc")
	assert.Error(t, err)
}

func TestQueryParams_Defaults(t *testing.T) {
	r := newRequest("")

	id, err := QueryUUID(r, "barberId")
	require.NoError(t, err)
	assert.Nil(t, id)

	date, err := QueryDate(r, "date")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	flag, err := QueryBool(r, "businessHoursOnly")
	require.NoError(t, err)
	assert.False(t, flag)

	n, err := QueryInt(r, "durationMinutes", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestQueryParams_Values(t *testing.T) {
	r := newRequest("date=2026-04-21&businessHoursOnly=1&compactHeight=640")

	date, err := QueryDate(r, "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC), date)

	flag, err := QueryBool(r, "businessHoursOnly")
	require.NoError(t, err)
	assert.True(t, flag)

	n, err := QueryInt(r, "compactHeight", 0)
	require.NoError(t, err)
	assert.Equal(t, 640, n)

	_, err = QueryDate(newRequest("date=21/04/2026"), "date")
	assert.Error(t, err)
}

func TestFromAppointment_UnitTimezone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	start := time.Date(2026, 4, 21, 12, 0, 0, 0, time.UTC)
	dto := FromAppointment(&domain.Appointment{
		ID:        uuid.New(),
		StartTime: start,
		Status:    domain.StatusConfirmed,
	}, loc)

	assert.Equal(t, "2026-04-21T09:00:00-03:00", dto.StartTime)
	assert.Empty(t, dto.EndTime)
	assert.Empty(t, dto.BarberID)
	assert.Equal(t, "confirmed", dto.Status)
}

func TestTrueKeys_GridOrder(t *testing.T) {
	order := []string{"12:00", "12:15", "12:30", "12:45"}
	mask := map[string]bool{"12:45": true, "12:00": true, "12:15": false}

	assert.Equal(t, []string{"12:00", "12:45"}, TrueKeys(order, mask))
	assert.Equal(t, []string{}, TrueKeys(order, nil))
}

func TestRespondError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "unidade não encontrada")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"unidade não encontrada"}`, rec.Body.String())
}
