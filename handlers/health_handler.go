package handlers

import (
	"net/http"
	"time"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/database"
	"github.com/nextwipe/wipetime/backend/services"
)

// HealthHandler serves GET /api/health.
type HealthHandler struct {
	wipes   *services.WipeService
	started time.Time
}

func NewHealthHandler(wipes *services.WipeService) *HealthHandler {
	return &HealthHandler{wipes: wipes, started: time.Now().UTC()}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	body := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"games":     h.wipes.Games(),
	}

	status := http.StatusOK
	if database.DB != nil {
		if err := database.DB.PingContext(r.Context()); err != nil {
			body["status"] = "degraded"
			body["database"] = err.Error()
			status = http.StatusInternalServerError
		} else {
			body["database"] = "ok"
		}
	}

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetNoCache))
	respondWithJSON(w, status, body)
}
