package scrapers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextwipe/wipetime/backend/models"
)

var testSpec = GameSpec{
	ID: "testgame", Name: "Test Game", CacheLabel: "wipe",
	ReleaseHourUTC: 19, CycleDays: 30, MinNoticeDays: 0, MaxNoticeDays: 60,
	Frequency: "Monthly", DefaultEventType: "update", EventTitle: "Wipe",
}

func fixedStrategy(name string, data *models.WipeData, err error) Strategy {
	return Strategy{
		Name: name,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			return data, err
		},
	}
}

func futureDate(days int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, days).Truncate(time.Hour)
	return &d
}

func TestScrapeFirstSuccessWins(t *testing.T) {
	good := futureDate(10)
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("broken", nil, errors.New("connection refused")),
			fixedStrategy("empty", nil, nil),
			fixedStrategy("good", &models.WipeData{NextWipe: good, Source: "good"}, nil),
			fixedStrategy("never reached", &models.WipeData{NextWipe: futureDate(20), Source: "late"}, nil),
		},
		Fallback: cycleEstimate(testSpec, 30, "fallback", ""),
	}

	data, err := g.Scrape(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "good", data.Source)
	assert.Equal(t, *good, *data.NextWipe)
}

func TestScrapeSkipsImplausibleDates(t *testing.T) {
	tooFar := futureDate(120) // beyond the 60-day notice window
	good := futureDate(10)
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("implausible", &models.WipeData{NextWipe: tooFar, Source: "implausible"}, nil),
			fixedStrategy("good", &models.WipeData{NextWipe: good, Source: "good"}, nil),
		},
		Fallback: cycleEstimate(testSpec, 30, "fallback", ""),
	}

	data, err := g.Scrape(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "good", data.Source)
}

func TestScrapeFallbackWhenExhausted(t *testing.T) {
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("broken", nil, errors.New("boom")),
		},
		Fallback: cycleEstimate(testSpec, 30, "fallback source", "estimated"),
	}

	data, err := g.Scrape(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback source", data.Source)
	assert.False(t, data.Confirmed)
	require.NotNil(t, data.NextWipe)
	assert.True(t, data.NextWipe.After(time.Now().UTC()))
}

func TestScrapeFinalizeFillsDefaults(t *testing.T) {
	next := futureDate(10)
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("good", &models.WipeData{NextWipe: next, Source: "good"}, nil),
		},
	}

	data, err := g.Scrape(context.Background())
	require.NoError(t, err)
	assert.False(t, data.ScrapedAt.IsZero())
	assert.Equal(t, "Monthly", data.Frequency)
	assert.Equal(t, "update", data.EventType)
	require.NotNil(t, data.LastWipe)
	assert.Equal(t, next.Add(-testSpec.Cycle()), *data.LastWipe)
}

func TestScrapeKeepsProvidedLastWipe(t *testing.T) {
	next := futureDate(10)
	last := futureDate(-20)
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("good", &models.WipeData{NextWipe: next, LastWipe: last, Source: "good"}, nil),
		},
	}

	data, err := g.Scrape(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *last, *data.LastWipe)
}

func TestScrapeNoFallbackErrors(t *testing.T) {
	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("broken", nil, errors.New("boom")),
		},
	}

	_, err := g.Scrape(context.Background())
	assert.Error(t, err)
}

func TestScrapeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &GameScraper{
		Spec: testSpec,
		Strategies: []Strategy{
			fixedStrategy("good", &models.WipeData{NextWipe: futureDate(10), Source: "good"}, nil),
		},
		Fallback: cycleEstimate(testSpec, 30, "fallback", ""),
	}

	_, err := g.Scrape(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
