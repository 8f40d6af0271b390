package models

import "time"

// Event types a wipe record can carry. Games use different names for the
// same idea (league, season, act, cycle, set); scrapers normalize to these.
const (
	EventTypeLeague = "league"
	EventTypePatch  = "patch"
	EventTypeUpdate = "update"
	EventTypeEvent  = "event"
	EventTypeSeason = "season"
	EventTypeHotfix = "hotfix"
)

// SpecialEvent is a sub-event attached to a wipe record (reveals, teasers,
// PBE releases and the like).
type SpecialEvent struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"` // reveal, teaser, announcement, tournament, beta
	Description string    `json:"description,omitempty"`
}

// WipeData is the central record: one per game, describing the next and
// previous content reset. NextWipe/LastWipe are nullable; Confirmed marks
// whether the date came from an official source or a heuristic fallback.
// ScrapedAt is always set by the producer.
type WipeData struct {
	NextWipe      *time.Time     `json:"nextWipe"`
	LastWipe      *time.Time     `json:"lastWipe"`
	Frequency     string         `json:"frequency"`
	Source        string         `json:"source"`
	ScrapedAt     time.Time      `json:"scrapedAt"`
	Confirmed     bool           `json:"confirmed"`
	Announcement  string         `json:"announcement,omitempty"`
	EventType     string         `json:"eventType,omitempty"`
	EventName     string         `json:"eventName,omitempty"`
	IsRelease     bool           `json:"isRelease,omitempty"`
	SpecialEvents []SpecialEvent `json:"specialEvents,omitempty"`
}

// WipeResponse is what the API returns: the record plus cache annotations.
// Only the service layer sets these; scrapers and the cache store never do.
type WipeResponse struct {
	WipeData
	FromCache bool   `json:"fromCache"`
	CacheAge  int    `json:"cacheAge,omitempty"` // minutes
	Stale     bool   `json:"stale,omitempty"`
	Error     string `json:"error,omitempty"`
}
