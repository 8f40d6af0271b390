package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextwipe/wipetime/backend/config"
	"github.com/nextwipe/wipetime/backend/models"
)

func TestCronHandlerUnauthorized(t *testing.T) {
	config.AppConfig.Cron.Secret = "test-secret"
	h := NewCronHandler(fakeWipeService(t, "rust", false))

	req := httptest.NewRequest(http.MethodGet, "/api/cron/update-wipes", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/cron/update-wipes", nil)
	req.Header.Set("Authorization", "Bearer wrong-secret")
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronHandlerFanOut(t *testing.T) {
	config.AppConfig.Cron.Secret = "test-secret"

	svc := fakeWipeService(t, "rust", false)
	wipeHandler := NewWipeHandler(svc)

	// The cron fan-out goes through the public endpoint, so stand one up.
	mux := http.NewServeMux()
	mux.HandleFunc("/api/wipes/", wipeHandler.Handle)
	ts := httptest.NewServer(mux)
	defer ts.Close()
	config.AppConfig.Server.BaseURL = ts.URL

	h := NewCronHandler(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/cron/update-wipes", nil)
	req.Header.Set("Authorization", "Bearer test-secret")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.CronSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.Success)
	assert.Equal(t, "Updated 1/1 games", summary.Message)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "rust", summary.Results[0].Game)
	assert.Equal(t, "fulfilled", summary.Results[0].Status)
	require.NotNil(t, summary.Results[0].Data)
	assert.Equal(t, "live", summary.Results[0].Data.Source)
}

func TestCronHandlerReportsFailures(t *testing.T) {
	config.AppConfig.Cron.Secret = "test-secret"

	svc := fakeWipeService(t, "rust", true)
	wipeHandler := NewWipeHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/wipes/", wipeHandler.Handle)
	ts := httptest.NewServer(mux)
	defer ts.Close()
	config.AppConfig.Server.BaseURL = ts.URL

	h := NewCronHandler(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/cron/update-wipes", nil)
	req.Header.Set("Authorization", "Bearer test-secret")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.CronSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "Updated 0/1 games", summary.Message)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "rejected", summary.Results[0].Status)
	assert.NotEmpty(t, summary.Results[0].Error)
}
