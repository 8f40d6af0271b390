package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/config"
	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/services"
)

// CronHandler serves GET /api/cron/update-wipes: a secret-gated fan-out that
// force-refreshes every game through the public wipe endpoint, so the cron
// path exercises exactly what users hit.
type CronHandler struct {
	wipes  *services.WipeService
	client *http.Client
}

func NewCronHandler(wipes *services.WipeService) *CronHandler {
	return &CronHandler{
		wipes:  wipes,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

func (h *CronHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+config.AppConfig.Cron.Secret {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	games := h.wipes.Games()
	results := make([]models.CronResult, len(games))

	start := time.Now()
	var wg sync.WaitGroup
	for i, gameID := range games {
		wg.Add(1)
		go func(i int, gameID string) {
			defer wg.Done()
			results[i] = h.refreshGame(gameID)
		}(i, gameID)
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if res.Status == "fulfilled" {
			succeeded++
		}
	}
	log.Info().Int("succeeded", succeeded).Int("total", len(games)).
		Dur("elapsed", time.Since(start)).Msg("Cron refresh completed")

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetNoCache))
	respondWithJSON(w, http.StatusOK, models.CronSummary{
		Success:   true,
		Message:   fmt.Sprintf("Updated %d/%d games", succeeded, len(games)),
		Timestamp: time.Now().UTC(),
		Results:   results,
	})
}

// refreshGame hits the public per-game endpoint with refresh=true rather
// than calling the service directly.
func (h *CronHandler) refreshGame(gameID string) models.CronResult {
	result := models.CronResult{Game: gameID, Status: "rejected"}

	url := fmt.Sprintf("%s/api/wipes/%s?refresh=true", config.AppConfig.Server.BaseURL, gameID)
	resp, err := h.client.Get(url)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("unexpected status %d from wipe endpoint", resp.StatusCode)
		return result
	}

	var data models.WipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		result.Error = fmt.Sprintf("failed to decode wipe response: %v", err)
		return result
	}

	result.Status = "fulfilled"
	result.Data = &data
	return result
}
