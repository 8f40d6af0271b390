package scrapers

import (
	"time"

	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/sources"
)

// Rust force wipes follow a fixed schedule: first Thursday of every month at
// 19:00 UTC. The live site is tried first, but the computed schedule is
// authoritative enough to stay confirmed even as a fallback.
func newRustScraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			renderDateStrategy(spec, b, "rustforcewipe.com", "https://www.rustforcewipe.com/", []string{"wipe"}),
		},
		Fallback: func(now time.Time) models.WipeData {
			next := firstThursday(now.Year(), now.Month())
			if !next.After(now) {
				next = firstThursday(now.Year(), now.Month()+1)
			}
			last := firstThursday(next.Year(), next.Month()-1)
			return models.WipeData{
				NextWipe:  &next,
				LastWipe:  &last,
				Source:    "rustforcewipe.com (calculated)",
				Confirmed: true, // force wipes are a fixed monthly schedule
			}
		},
	}
}

func firstThursday(year int, month time.Month) time.Time {
	t := time.Date(year, month, 1, 19, 0, 0, 0, time.UTC)
	for t.Weekday() != time.Thursday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
