package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/services"
)

func newTestEventsHandler(t *testing.T) *EventsHandler {
	t.Helper()
	return NewEventsHandler(services.NewEventService(fakeWipeService(t, "rust", false)))
}

func TestEventsHandlerUpcoming(t *testing.T) {
	h := newTestEventsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/upcoming", nil)
	rec := httptest.NewRecorder()
	h.HandleUpcoming(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count  int                `json:"count"`
		Events []models.GameEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "rust", body.Events[0].GameID)
	assert.Equal(t, "Force Wipe", body.Events[0].Title)
}

func TestEventsHandlerDaysFilter(t *testing.T) {
	h := newTestEventsHandler(t)

	// The fake date is 10 days out, so a 5-day horizon excludes it.
	req := httptest.NewRequest(http.MethodGet, "/api/events/upcoming?days=5", nil)
	rec := httptest.NewRecorder()
	h.HandleUpcoming(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
}

func TestEventsHandlerBadParams(t *testing.T) {
	h := newTestEventsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/upcoming?days=soon", nil)
	rec := httptest.NewRecorder()
	h.HandleUpcoming(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/events/upcoming?month=December", nil)
	rec = httptest.NewRecorder()
	h.HandleUpcoming(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventsHandlerExportCSV(t *testing.T) {
	h := newTestEventsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/export.csv", nil)
	rec := httptest.NewRecorder()
	h.HandleExportCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "game,title,type,start_date,confirmed,details", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Rust")
	assert.Contains(t, lines[1], "Force Wipe")
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(fakeWipeService(t, "rust", false))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string   `json:"status"`
		Games  []string `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []string{"rust"}, body.Games)
}

func TestHistoryHandlerDisabled(t *testing.T) {
	h := NewHistoryHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history/rust", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
