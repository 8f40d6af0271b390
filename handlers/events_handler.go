package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/services"
)

// EventsHandler serves the cross-game calendar:
//
//	GET /api/events/upcoming    JSON, ?days= limits the horizon, ?month=YYYY-MM filters
//	GET /api/events/export.csv  CSV download of the same data
type EventsHandler struct {
	events *services.EventService
}

func NewEventsHandler(events *services.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

func (h *EventsHandler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
			return
		}
		events := h.events.ForMonth(r.Context(), parsed.Year(), parsed.Month())
		w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetDynamic))
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"month":  monthStr,
			"count":  len(events),
			"events": events,
			"byDay":  services.GroupByDay(events),
		})
		return
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid days, expected a non-negative integer")
			return
		}
		days = parsed
	}

	events := h.events.Upcoming(r.Context(), days)
	w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetDynamic))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(events),
		"events": events,
	})
}

func (h *EventsHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	events := h.events.Upcoming(r.Context(), 0)
	raw, err := csvutil.Marshal(services.CSVRows(events))
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal events CSV")
		respondWithError(w, http.StatusInternalServerError, "Failed to build CSV export")
		return
	}

	filename := fmt.Sprintf("wipe-events-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Cache-Control", cache.ControlHeader(cache.PresetDynamic))
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
