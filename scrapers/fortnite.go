package scrapers

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/nextwipe/wipetime/backend/dates"
	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/sources"
)

var (
	// fortnite.gg embeds the season end either as a millisecond timestamp in
	// a countdown data attribute or as an ISO date inside inline scripts.
	fortniteDataTargetRe = regexp.MustCompile(`data-target="(\d{10,13})"`)
	fortniteISORe        = regexp.MustCompile(`"(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z)"`)
)

func newFortniteScraper(spec GameSpec, b *sources.Browser) *GameScraper {
	countdown := Strategy{
		Name: "fortnite.gg",
		Run: func(ctx context.Context) (*models.WipeData, error) {
			html, err := b.Render(ctx, "https://fortnite.gg/season-countdown", 2*time.Second)
			if err != nil {
				return nil, err
			}
			now := time.Now().UTC()

			if m := fortniteDataTargetRe.FindStringSubmatch(html); m != nil {
				ts, _ := strconv.ParseInt(m[1], 10, 64)
				if len(m[1]) > 10 {
					ts /= 1000
				}
				next := time.Unix(ts, 0).UTC()
				if next.After(now) {
					return &models.WipeData{NextWipe: &next, Source: "fortnite.gg (countdown)", Confirmed: true}, nil
				}
			}

			if m := fortniteISORe.FindStringSubmatch(html); m != nil {
				if next, err := time.Parse(time.RFC3339, m[1]); err == nil && next.After(now) {
					next = next.UTC()
					return &models.WipeData{NextWipe: &next, Source: "fortnite.gg (script)", Confirmed: true}, nil
				}
			}

			// Last resort on the same page: any textual future date.
			text, err := pageText(html)
			if err != nil {
				return nil, err
			}
			if next, ok := dates.FirstFuture(text, dates.Options{HourUTC: spec.ReleaseHourUTC, Now: now}); ok {
				return &models.WipeData{NextWipe: &next, Source: "fortnite.gg (text)", Confirmed: true}, nil
			}
			return nil, nil
		},
	}

	return &GameScraper{
		Spec:       spec,
		Strategies: []Strategy{countdown},
		Fallback: cycleEstimate(spec, 30, "fortnite.gg (estimated)",
			"Season end not announced - estimate based on typical season length"),
	}
}
