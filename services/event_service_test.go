package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/scrapers"
)

// scraperWithDate serves a fixed date, optionally with special events riding along.
func scraperWithDate(t *testing.T, gameID string, next time.Time, specials ...models.SpecialEvent) *scrapers.GameScraper {
	t.Helper()
	spec, ok := scrapers.SpecByID(gameID)
	require.True(t, ok)

	return &scrapers.GameScraper{
		Spec: spec,
		Strategies: []scrapers.Strategy{{
			Name: "fake",
			Run: func(ctx context.Context) (*models.WipeData, error) {
				n := next
				return &models.WipeData{
					NextWipe:      &n,
					Source:        "live",
					Confirmed:     true,
					SpecialEvents: specials,
				}, nil
			},
		}},
	}
}

func newTestEventService(t *testing.T, games ...*scrapers.GameScraper) *EventService {
	t.Helper()
	reg := scrapers.NewRegistry()
	for _, g := range games {
		reg.Register(g)
	}
	return NewEventService(NewWipeService(cache.NewStore(t.TempDir()), reg, nil))
}

func TestUpcomingSortedAcrossGames(t *testing.T) {
	now := time.Now().UTC()
	svc := newTestEventService(t,
		scraperWithDate(t, "tarkov", now.AddDate(0, 0, 40)),
		scraperWithDate(t, "rust", now.AddDate(0, 0, 5)),
	)

	events := svc.Upcoming(context.Background(), 0)
	require.Len(t, events, 2)
	assert.Equal(t, "rust", events[0].GameID)
	assert.Equal(t, "tarkov", events[1].GameID)
	assert.Equal(t, "Rust", events[0].GameName)
	assert.Equal(t, "Force Wipe", events[0].Title)
}

func TestUpcomingDaysFilter(t *testing.T) {
	now := time.Now().UTC()
	svc := newTestEventService(t,
		scraperWithDate(t, "tarkov", now.AddDate(0, 0, 40)),
		scraperWithDate(t, "rust", now.AddDate(0, 0, 5)),
	)

	events := svc.Upcoming(context.Background(), 10)
	require.Len(t, events, 1)
	assert.Equal(t, "rust", events[0].GameID)
}

func TestUpcomingIncludesSpecialEvents(t *testing.T) {
	now := time.Now().UTC()
	launch := now.AddDate(0, 0, 30)
	svc := newTestEventService(t,
		scraperWithDate(t, "tft", launch,
			models.SpecialEvent{Name: "PBE Release", Date: now.AddDate(0, 0, 15), Type: "beta"},
			models.SpecialEvent{Name: "Old Reveal", Date: now.AddDate(0, 0, -5), Type: "reveal"},
		),
	)

	events := svc.Upcoming(context.Background(), 0)
	require.Len(t, events, 2, "past special events are dropped")
	assert.Equal(t, "PBE Release", events[0].Title)
	assert.Equal(t, "beta", events[0].Type)
}

func TestForMonth(t *testing.T) {
	now := time.Now().UTC()
	inTwoMonths := now.AddDate(0, 2, 0)
	svc := newTestEventService(t,
		scraperWithDate(t, "tarkov", inTwoMonths),
		scraperWithDate(t, "rust", now.AddDate(0, 0, 5)),
	)

	events := svc.ForMonth(context.Background(), inTwoMonths.Year(), inTwoMonths.Month())
	require.Len(t, events, 1)
	assert.Equal(t, "tarkov", events[0].GameID)
}

func TestGroupByDay(t *testing.T) {
	day := time.Date(2025, time.December, 3, 18, 0, 0, 0, time.UTC)
	events := []models.GameEvent{
		{GameID: "a", StartDate: day},
		{GameID: "b", StartDate: day.Add(2 * time.Hour)},
		{GameID: "c", StartDate: day.AddDate(0, 0, 1)},
	}

	grouped := GroupByDay(events)
	assert.Len(t, grouped["2025-12-03"], 2)
	assert.Len(t, grouped["2025-12-04"], 1)
}

func TestCSVRows(t *testing.T) {
	start := time.Date(2025, time.December, 3, 18, 0, 0, 0, time.UTC)
	rows := CSVRows([]models.GameEvent{{
		GameName:  "Teamfight Tactics",
		Title:     "Set 16",
		Type:      "season",
		StartDate: start,
		Confirmed: true,
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, "Teamfight Tactics", rows[0].Game)
	assert.Equal(t, "2025-12-03T18:00:00Z", rows[0].StartDate)
	assert.True(t, rows[0].Confirmed)
}
