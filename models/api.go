package models

import "time"

// CronResult is the per-game outcome of a cron fan-out refresh.
type CronResult struct {
	Game   string        `json:"game"`
	Status string        `json:"status"` // fulfilled or rejected
	Data   *WipeResponse `json:"data,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// CronSummary aggregates the fan-out into the cron endpoint's response body.
type CronSummary struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Results   []CronResult `json:"results"`
}

// ScrapeRecord is one row of the optional scrape-history audit log.
type ScrapeRecord struct {
	ID         int64      `json:"id"`
	GameID     string     `json:"game_id"`
	Source     string     `json:"source"`
	Confirmed  bool       `json:"confirmed"`
	NextWipe   *time.Time `json:"next_wipe,omitempty"`
	DurationMS int64      `json:"duration_ms"`
	Error      string     `json:"error,omitempty"`
	ScrapedAt  time.Time  `json:"scraped_at"`
}
