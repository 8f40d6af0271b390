// Package scrapers turns per-game source chains into normalized WipeData
// records. Each game is an ordered list of strategies (official announcement
// source first, then community/wiki, then Reddit) plus a deterministic
// fallback; the first strategy whose date lands inside the game's
// plausibility window wins.
package scrapers

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/models"
)

// Strategy is one fetch-and-extract attempt for a game. Run returns a partial
// WipeData (at minimum NextWipe and Source) or an error, which the runner
// treats as "try the next source".
type Strategy struct {
	Name string
	Run  func(ctx context.Context) (*models.WipeData, error)
}

// GameScraper is the strategy chain for one game.
type GameScraper struct {
	Spec       GameSpec
	Strategies []Strategy
	// Fallback synthesizes an estimate when every live source fails. It is
	// pure date arithmetic and must always succeed.
	Fallback func(now time.Time) models.WipeData
}

// Scrape runs the chain. Source failures and implausible dates fall through
// to the next strategy; an exhausted chain ends in the fallback estimate.
// An error is only possible when the chain is exhausted and no fallback is
// configured, or the context has already ended.
func (g *GameScraper) Scrape(ctx context.Context) (*models.WipeData, error) {
	now := time.Now().UTC()

	for _, strat := range g.Strategies {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scrape %s aborted: %w", g.Spec.ID, err)
		}
		data, err := strat.Run(ctx)
		if err != nil {
			log.Debug().Err(err).Str("game", g.Spec.ID).Str("strategy", strat.Name).
				Msg("Source failed, trying next")
			continue
		}
		if data == nil || data.NextWipe == nil {
			log.Debug().Str("game", g.Spec.ID).Str("strategy", strat.Name).
				Msg("Source produced no date, trying next")
			continue
		}
		if !g.Spec.Plausible(*data.NextWipe, now) {
			log.Debug().Str("game", g.Spec.ID).Str("strategy", strat.Name).
				Time("date", *data.NextWipe).Msg("Date outside plausibility window, trying next")
			continue
		}

		g.finalize(data, now)
		log.Info().Str("game", g.Spec.ID).Str("strategy", strat.Name).
			Time("next_wipe", *data.NextWipe).Bool("confirmed", data.Confirmed).
			Msg("Scraped wipe date")
		return data, nil
	}

	if g.Fallback == nil {
		return nil, fmt.Errorf("all sources failed for %s and no fallback is configured", g.Spec.ID)
	}
	log.Info().Str("game", g.Spec.ID).Msg("All live sources exhausted, using fallback estimate")
	fallback := g.Fallback(now)
	g.finalize(&fallback, now)
	return &fallback, nil
}

// finalize fills defaults the strategy left open: scrape time, synthetic
// lastWipe one cycle back, spec-level frequency and event type.
func (g *GameScraper) finalize(data *models.WipeData, now time.Time) {
	data.ScrapedAt = now

	if data.LastWipe == nil && data.NextWipe != nil {
		last := data.NextWipe.Add(-g.Spec.Cycle())
		data.LastWipe = &last
	}
	if data.Frequency == "" {
		data.Frequency = g.Spec.Frequency
	}
	if data.EventType == "" {
		data.EventType = g.Spec.DefaultEventType
	}
}
