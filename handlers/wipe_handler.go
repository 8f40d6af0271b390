package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/services"
)

// WipeHandler serves GET /api/wipes/{game}.
type WipeHandler struct {
	wipes *services.WipeService
}

func NewWipeHandler(wipes *services.WipeService) *WipeHandler {
	return &WipeHandler{wipes: wipes}
}

func (h *WipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	gameID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/wipes/"), "/")
	if gameID == "" || strings.Contains(gameID, "/") {
		respondWithError(w, http.StatusBadRequest, "Expected path /api/wipes/{game}")
		return
	}

	forceRefresh := r.URL.Query().Get("refresh") == "true"

	resp, err := h.wipes.Get(r.Context(), gameID, forceRefresh)
	if err != nil {
		w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetNoCache))
		if errors.Is(err, services.ErrUnknownGame) {
			respondWithError(w, http.StatusNotFound, "Unknown game: "+gameID)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch wipe data for "+gameID)
		return
	}

	preset := cache.PresetWipeData
	switch {
	case forceRefresh || resp.Stale:
		preset = cache.PresetDynamic
	case resp.Confirmed:
		preset = cache.PresetConfirmed
	}
	w.Header().Set("Cache-Control", cache.ControlHeader(preset))

	respondWithJSON(w, http.StatusOK, resp)
}
