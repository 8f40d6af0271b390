package scrapers

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/nextwipe/wipetime/backend/dates"
	"github.com/nextwipe/wipetime/backend/models"
	"github.com/nextwipe/wipetime/backend/sources"
)

// forumAnnouncement is a classified thread title from a pathofexile.com
// news forum.
type forumAnnouncement struct {
	Title     string
	EventType string
}

// classifyForumTitle buckets a news thread by priority: league announcements
// beat patch notes, which beat special events. Returns "" for unrelated posts.
func classifyForumTitle(title string) string {
	lower := strings.ToLower(title)

	if strings.Contains(lower, "league") &&
		(strings.Contains(lower, "announce") || strings.Contains(lower, "launch") ||
			strings.Contains(lower, "start") || strings.Contains(lower, "coming")) {
		return models.EventTypeLeague
	}
	if strings.Contains(lower, "patch notes") ||
		(strings.Contains(lower, "patch") && strings.Contains(lower, "notes")) {
		return models.EventTypePatch
	}
	if (strings.Contains(lower, "event") || strings.Contains(lower, "race")) &&
		(strings.Contains(lower, "announce") || strings.Contains(lower, "start") ||
			strings.Contains(lower, "live")) {
		return models.EventTypeEvent
	}
	return ""
}

// poeForumStrategy renders a pathofexile.com forum listing and looks for the
// highest-priority announcement carrying a future date.
func poeForumStrategy(spec GameSpec, b *sources.Browser, name, url string) Strategy {
	return Strategy{
		Name: name,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			html, err := b.Render(ctx, url, 3*time.Second)
			if err != nil {
				return nil, err
			}
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
			if err != nil {
				return nil, err
			}

			var best *forumAnnouncement
			doc.Find(".title, .newsPost, .thread_title").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
				title := strings.TrimSpace(sel.Text())
				eventType := classifyForumTitle(title)
				if eventType == "" {
					return true
				}
				// League announcements end the search; anything else is kept
				// only until something better shows up.
				if best == nil || eventType == models.EventTypeLeague {
					best = &forumAnnouncement{Title: title, EventType: eventType}
				}
				return eventType != models.EventTypeLeague
			})

			if best == nil {
				return nil, nil
			}

			next, ok := dates.FirstFuture(best.Title, dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
			if !ok {
				return nil, nil
			}
			return &models.WipeData{
				NextWipe:     &next,
				Source:       name,
				Confirmed:    true,
				Announcement: best.Title,
				EventType:    best.EventType,
				EventName:    best.Title,
			}, nil
		},
	}
}

func newPoeScraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			poeForumStrategy(spec, b, "pathofexile.com/forum/news", "https://www.pathofexile.com/forum/view-forum/news"),
		},
		Fallback: cycleEstimate(spec, 30, "pathofexile.com (estimated)",
			"Next league date not yet announced - check official sources"),
	}
}

func newPoe2Scraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			poeForumStrategy(spec, b, "pathofexile.com/forum/2212", "https://www.pathofexile.com/forum/view-forum/2212"),
		},
		Fallback: cycleEstimate(spec, 30, "pathofexile.com (estimated)",
			"Next league date not yet announced - check official sources"),
	}
}
