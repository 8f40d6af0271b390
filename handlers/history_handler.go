package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/database"
	"github.com/nextwipe/wipetime/backend/scrapers"
)

// HistoryHandler serves GET /api/history/{game}?limit=. It only works when
// the scrape-history database is configured; otherwise it answers 503.
type HistoryHandler struct {
	store *database.HistoryStore
}

func NewHistoryHandler(store *database.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	if h.store == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Scrape history is not enabled")
		return
	}

	gameID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/history/"), "/")
	if gameID == "" || strings.Contains(gameID, "/") {
		respondWithError(w, http.StatusBadRequest, "Expected path /api/history/{game}")
		return
	}
	if _, ok := scrapers.SpecByID(gameID); !ok {
		respondWithError(w, http.StatusNotFound, "Unknown game: "+gameID)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit, expected a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.store.RecentScrapes(r.Context(), gameID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to query scrape history")
		return
	}

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetNoCache))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"game":    gameID,
		"count":   len(records),
		"records": records,
	})
}
