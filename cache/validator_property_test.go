package cache

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/nextwipe/wipetime/backend/models"
)

func TestValidateProperties(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	properties := gopter.NewProperties(nil)

	// Property: a confirmed season record younger than every window, with a
	// comfortably future date, is always valid.
	properties.Property("fresh confirmed future record is valid", prop.ForAll(
		func(ageMinutes int64, daysAhead int) bool {
			next := now.AddDate(0, 0, daysAhead)
			data := &models.WipeData{
				NextWipe:  &next,
				ScrapedAt: now.Add(-time.Duration(ageMinutes) * time.Minute),
				EventType: "season",
				Confirmed: true,
			}
			return Validate(data, DefaultMaxAge, now).IsValid
		},
		gen.Int64Range(0, 119),
		gen.IntRange(2, 120),
	))

	// Property: exceeding the absolute age window always invalidates,
	// regardless of event type or confirmation.
	properties.Property("cache older than maxAge is invalid", prop.ForAll(
		func(extraMinutes int64, eventType string, confirmed bool) bool {
			next := now.AddDate(0, 0, 30)
			data := &models.WipeData{
				NextWipe:  &next,
				ScrapedAt: now.Add(-DefaultMaxAge - time.Duration(extraMinutes)*time.Minute),
				EventType: eventType,
				Confirmed: confirmed,
			}
			res := Validate(data, DefaultMaxAge, now)
			return !res.IsValid && res.ShouldRefresh
		},
		gen.Int64Range(1, 10000),
		gen.OneConstOf("league", "patch", "update", "event", "season", "hotfix", ""),
		gen.Bool(),
	))

	// Property: an event more than a day in the past invalidates even a
	// zero-age cache.
	properties.Property("long-past event is invalid at any age", prop.ForAll(
		func(hoursPast int) bool {
			next := now.Add(-time.Duration(hoursPast) * time.Hour)
			data := &models.WipeData{
				NextWipe:  &next,
				ScrapedAt: now,
				EventType: "season",
				Confirmed: true,
			}
			return !Validate(data, DefaultMaxAge, now).IsValid
		},
		gen.IntRange(25, 2000),
	))

	properties.TestingRun(t)
}
