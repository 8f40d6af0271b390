package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/scrapers"
)

// EventService flattens every game's wipe record into one cross-game
// calendar of upcoming events.
type EventService struct {
	wipes *WipeService
	now   func() time.Time
}

func NewEventService(wipes *WipeService) *EventService {
	return &EventService{
		wipes: wipes,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Upcoming returns all future events across every tracked game, sorted by
// start date. When days > 0 only events starting within that many days are
// kept. Games whose data cannot be fetched are skipped, not fatal.
func (s *EventService) Upcoming(ctx context.Context, days int) []models.GameEvent {
	now := s.now()
	var cutoff time.Time
	if days > 0 {
		cutoff = now.AddDate(0, 0, days)
	}

	var events []models.GameEvent
	for _, gameID := range s.wipes.Games() {
		resp, err := s.wipes.Get(ctx, gameID, false)
		if err != nil {
			log.Warn().Err(err).Str("game", gameID).Msg("Skipping game in events calendar")
			continue
		}
		events = append(events, gameEvents(gameID, &resp.WipeData, now)...)
	}

	if !cutoff.IsZero() {
		kept := events[:0]
		for _, ev := range events {
			if ev.StartDate.Before(cutoff) {
				kept = append(kept, ev)
			}
		}
		events = kept
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})
	return events
}

// ForMonth returns the upcoming events that fall in the given UTC month.
func (s *EventService) ForMonth(ctx context.Context, year int, month time.Month) []models.GameEvent {
	var kept []models.GameEvent
	for _, ev := range s.Upcoming(ctx, 0) {
		if ev.StartDate.Year() == year && ev.StartDate.Month() == month {
			kept = append(kept, ev)
		}
	}
	return kept
}

// GroupByDay buckets events under their UTC calendar day (2006-01-02 keys).
func GroupByDay(events []models.GameEvent) map[string][]models.GameEvent {
	grouped := make(map[string][]models.GameEvent)
	for _, ev := range events {
		day := ev.StartDate.UTC().Format("2006-01-02")
		grouped[day] = append(grouped[day], ev)
	}
	return grouped
}

// CSVRows flattens events into the export shape.
func CSVRows(events []models.GameEvent) []models.EventCSVRow {
	rows := make([]models.EventCSVRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, models.EventCSVRow{
			Game:      ev.GameName,
			Title:     ev.Title,
			Type:      ev.Type,
			StartDate: ev.StartDate.UTC().Format(time.RFC3339),
			Confirmed: ev.Confirmed,
			Details:   ev.Description,
		})
	}
	return rows
}

// gameEvents turns one game's record into calendar entries: the next wipe
// itself plus any attached special events still ahead.
func gameEvents(gameID string, data *models.WipeData, now time.Time) []models.GameEvent {
	spec, ok := scrapers.SpecByID(gameID)
	if !ok {
		return nil
	}

	var events []models.GameEvent
	if data.NextWipe != nil && data.NextWipe.After(now) {
		title := data.EventName
		if title == "" {
			title = spec.EventTitle
		}
		eventType := data.EventType
		if eventType == "" {
			eventType = spec.DefaultEventType
		}
		events = append(events, models.GameEvent{
			ID:          fmt.Sprintf("%s-%s", gameID, data.NextWipe.UTC().Format("20060102")),
			GameID:      gameID,
			GameName:    spec.Name,
			Title:       title,
			Type:        eventType,
			StartDate:   data.NextWipe.UTC(),
			Confirmed:   data.Confirmed,
			Description: data.Announcement,
		})
	}

	for _, special := range data.SpecialEvents {
		if !special.Date.After(now) {
			continue
		}
		events = append(events, models.GameEvent{
			ID:          fmt.Sprintf("%s-%s-%s", gameID, special.Type, special.Date.UTC().Format("20060102")),
			GameID:      gameID,
			GameName:    spec.Name,
			Title:       special.Name,
			Type:        special.Type,
			StartDate:   special.Date.UTC(),
			Confirmed:   data.Confirmed,
			Description: special.Description,
		})
	}
	return events
}
