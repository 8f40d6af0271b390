// Package services orchestrates cache, scrapers and persistence into the
// operations the HTTP handlers expose.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/scrapers"
)

// ErrUnknownGame is returned for game IDs with no registered scraper.
var ErrUnknownGame = errors.New("unknown game")

// HistoryRecorder persists one row per scrape attempt. A nil recorder
// disables history entirely.
type HistoryRecorder interface {
	RecordScrape(ctx context.Context, rec models.ScrapeRecord) error
}

// WipeService answers "when is the next wipe for game X", serving from the
// file cache while it passes the freshness heuristics and scraping otherwise.
type WipeService struct {
	store    *cache.Store
	registry *scrapers.Registry
	history  HistoryRecorder
	now      func() time.Time
}

func NewWipeService(store *cache.Store, registry *scrapers.Registry, history HistoryRecorder) *WipeService {
	return &WipeService{
		store:    store,
		registry: registry,
		history:  history,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Games returns the tracked game IDs in registration order.
func (s *WipeService) Games() []string {
	return s.registry.IDs()
}

// Get returns wipe data for a game. The cached record is served while the
// smart-expiry validation accepts it; otherwise the scraper chain runs and
// its result replaces the cache. A failed scrape falls back to the stale
// cached record, and only a failure with no cache at all surfaces an error.
//
// Concurrent calls for the same game may scrape and write concurrently;
// the cache store's last-write-wins semantics make that benign.
func (s *WipeService) Get(ctx context.Context, gameID string, forceRefresh bool) (*models.WipeResponse, error) {
	scraper, ok := s.registry.Get(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, gameID)
	}
	spec := scraper.Spec
	now := s.now()

	cached := s.store.Read(gameID, spec.CacheLabel)
	if cached != nil && !forceRefresh {
		maxAge := cache.SmartDuration(cached.EventType, cached.Confirmed)
		check := cache.Validate(cached, maxAge, now)
		if check.IsValid {
			log.Debug().Str("game", gameID).Msg("Serving wipe data from cache")
			return annotate(cached, now, true, false, ""), nil
		}
		log.Info().Str("game", gameID).Str("reason", check.Reason).Msg("Cache needs refresh")
	}

	started := time.Now()
	data, err := scraper.Scrape(ctx)
	s.recordScrape(ctx, gameID, started, data, err)
	if err != nil {
		if cached != nil {
			log.Warn().Err(err).Str("game", gameID).Msg("Scrape failed, serving stale cache")
			return annotate(cached, now, true, true, "Failed to fetch fresh data"), nil
		}
		return nil, fmt.Errorf("failed to fetch wipe data for %s: %w", gameID, err)
	}

	if err := s.store.Write(gameID, spec.CacheLabel, data); err != nil {
		log.Error().Err(err).Str("game", gameID).Msg("Failed to persist wipe cache")
	}
	return annotate(data, now, false, false, ""), nil
}

// annotate wraps a record with the cache metadata the API exposes.
func annotate(data *models.WipeData, now time.Time, fromCache, stale bool, errMsg string) *models.WipeResponse {
	resp := &models.WipeResponse{
		WipeData:  *data,
		FromCache: fromCache,
		Stale:     stale,
		Error:     errMsg,
	}
	if fromCache && !data.ScrapedAt.IsZero() {
		resp.CacheAge = int(now.Sub(data.ScrapedAt).Minutes())
	}
	return resp
}

func (s *WipeService) recordScrape(ctx context.Context, gameID string, started time.Time, data *models.WipeData, scrapeErr error) {
	if s.history == nil {
		return
	}

	rec := models.ScrapeRecord{
		GameID:     gameID,
		DurationMS: time.Since(started).Milliseconds(),
		ScrapedAt:  s.now(),
	}
	if data != nil {
		rec.Source = data.Source
		rec.Confirmed = data.Confirmed
		rec.NextWipe = data.NextWipe
	}
	if scrapeErr != nil {
		rec.Error = scrapeErr.Error()
	}

	if err := s.history.RecordScrape(ctx, rec); err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("Failed to record scrape history")
	}
}
