package database

import (
	"context"
	"fmt"

	"github.com/nextwipe/wipetime/backend/models"
)

// Schema for the scrape-history table:
//
//	CREATE TABLE IF NOT EXISTS scrape_history (
//	    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
//	    game_id     VARCHAR(32)  NOT NULL,
//	    source      VARCHAR(255) NOT NULL DEFAULT '',
//	    confirmed   BOOLEAN      NOT NULL DEFAULT FALSE,
//	    next_wipe   DATETIME     NULL,
//	    duration_ms BIGINT       NOT NULL DEFAULT 0,
//	    error       TEXT         NULL,
//	    scraped_at  DATETIME     NOT NULL,
//	    INDEX idx_game_scraped (game_id, scraped_at)
//	);

// HistoryStore records every scrape attempt so date drift and source
// reliability can be audited after the fact.
type HistoryStore struct{}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// RecordScrape inserts one history row.
func (h *HistoryStore) RecordScrape(ctx context.Context, rec models.ScrapeRecord) error {
	if DB == nil {
		return fmt.Errorf("history database is not initialized")
	}

	query := `
		INSERT INTO scrape_history
			(game_id, source, confirmed, next_wipe, duration_ms, error, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := DB.ExecContext(ctx, query,
		rec.GameID, rec.Source, rec.Confirmed, rec.NextWipe,
		rec.DurationMS, rec.Error, rec.ScrapedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scrape history for %s: %w", rec.GameID, err)
	}
	return nil
}

// RecentScrapes returns the newest history rows for a game, most recent first.
func (h *HistoryStore) RecentScrapes(ctx context.Context, gameID string, limit int) ([]models.ScrapeRecord, error) {
	if DB == nil {
		return nil, fmt.Errorf("history database is not initialized")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT id, game_id, source, confirmed, next_wipe, duration_ms, COALESCE(error, ''), scraped_at
		FROM scrape_history
		WHERE game_id = ?
		ORDER BY scraped_at DESC
		LIMIT ?`

	rows, err := DB.QueryContext(ctx, query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scrape history for %s: %w", gameID, err)
	}
	defer rows.Close()

	var records []models.ScrapeRecord
	for rows.Next() {
		var rec models.ScrapeRecord
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Source, &rec.Confirmed,
			&rec.NextWipe, &rec.DurationMS, &rec.Error, &rec.ScrapedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrape history row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scrape history rows: %w", err)
	}
	return records, nil
}
