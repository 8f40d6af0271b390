package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/nextwipe/wipetime/backend/models"
)

// ValidationResult is the validator's single decision output.
type ValidationResult struct {
	IsValid       bool
	Reason        string
	ShouldRefresh bool
}

// Freshness windows. Unconfirmed and fast-moving event types are re-checked
// more aggressively so an official announcement is picked up quickly.
const (
	DefaultMaxAge     = 6 * time.Hour
	UnconfirmedMaxAge = 3 * time.Hour
	PatchMaxAge       = 2 * time.Hour
	EventMaxAge       = 4 * time.Hour

	// recentlyLiveWindow is how long after an event's start we keep treating
	// it as "live" and poll for the next event's announcement.
	recentlyLiveWindow = 24 * time.Hour
	recentlyLiveMaxAge = 2 * time.Hour
)

// SmartDuration returns the freshness window for a record based on its event
// type and confirmation status.
func SmartDuration(eventType string, confirmed bool) time.Duration {
	if !confirmed {
		return UnconfirmedMaxAge
	}
	switch strings.ToLower(eventType) {
	case models.EventTypePatch, models.EventTypeHotfix:
		return PatchMaxAge
	case models.EventTypeEvent:
		return EventMaxAge
	case models.EventTypeLeague, models.EventTypeSeason:
		return DefaultMaxAge
	default:
		return DefaultMaxAge
	}
}

// Validate decides whether a cached record is still usable. Freshness is
// always recomputed from now; nothing about the decision is persisted.
//
// Checks, in order, each of which can independently invalidate:
//  1. absolute cache age against maxAge
//  2. next event more than 24h in the past (the tracked event already
//     happened and nothing newer was discovered)
//  3. event started within the last 24h and the cache is over 2h old
//     (poll for the next event while the current one is live)
//  4. unconfirmed date older than 3h
//  5. patch/hotfix over 2h, special events over 4h
func Validate(data *models.WipeData, maxAge time.Duration, now time.Time) ValidationResult {
	if data == nil {
		return ValidationResult{IsValid: false, Reason: "No cached data", ShouldRefresh: true}
	}

	cacheAge := now.Sub(data.ScrapedAt)

	if !data.ScrapedAt.IsZero() && cacheAge > maxAge {
		return invalid(fmt.Sprintf("Cache too old: %d minutes", int(cacheAge.Minutes())))
	}

	if data.NextWipe != nil {
		sinceEvent := now.Sub(*data.NextWipe)

		if sinceEvent > recentlyLiveWindow {
			return invalid(fmt.Sprintf("Event date is %dh in the past", int(sinceEvent.Hours())))
		}

		if sinceEvent > 0 && !data.ScrapedAt.IsZero() && cacheAge > recentlyLiveMaxAge {
			return invalid("Event recently happened, checking for next event announcement")
		}
	}

	if !data.Confirmed && !data.ScrapedAt.IsZero() && cacheAge > UnconfirmedMaxAge {
		return invalid("Unconfirmed date - checking for official announcement")
	}

	switch strings.ToLower(data.EventType) {
	case models.EventTypePatch, models.EventTypeHotfix:
		if !data.ScrapedAt.IsZero() && cacheAge > PatchMaxAge {
			return invalid("Patch data refreshes every 2 hours")
		}
	case models.EventTypeEvent:
		if !data.ScrapedAt.IsZero() && cacheAge > EventMaxAge {
			return invalid("Special event data refreshes every 4 hours")
		}
	}

	return ValidationResult{IsValid: true, ShouldRefresh: false}
}

func invalid(reason string) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason, ShouldRefresh: true}
}
