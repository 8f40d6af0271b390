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

// pageText reduces an HTML document to its visible text for date scanning.
func pageText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// htmlDateStrategy fetches a static page (news sites, Fandom wikis), requires
// one of the keywords to appear, and takes the first future date mentioned.
func htmlDateStrategy(spec GameSpec, name, url string, keywords []string) Strategy {
	return Strategy{
		Name: name,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			html, err := sources.FetchHTML(ctx, url)
			if err != nil {
				return nil, err
			}
			text, err := pageText(html)
			if err != nil {
				return nil, err
			}
			if len(keywords) > 0 && !containsAny(text, keywords) {
				return nil, nil
			}
			next, ok := dates.FirstFuture(text, dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
			if !ok {
				return nil, nil
			}
			return &models.WipeData{NextWipe: &next, Source: name, Confirmed: true}, nil
		},
	}
}

// redditOptions tunes the Reddit strategy. Tarkov only trusts stickied posts
// or known official accounts; most games accept any keyword match.
type redditOptions struct {
	Keywords        []string
	Exclude         []string
	OfficialAuthors []string
	RequireSticky   bool
}

// redditDateStrategy scans a subreddit's hot listing for announcement posts
// and extracts the first future date from the first matching post.
func redditDateStrategy(spec GameSpec, subreddit string, opts redditOptions) Strategy {
	return Strategy{
		Name: "r/" + subreddit,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			posts, err := sources.RedditHot(ctx, subreddit, 25)
			if err != nil {
				return nil, err
			}

			matched := sources.SearchPosts(posts, opts.Keywords, opts.Exclude)
			for _, post := range matched {
				if opts.RequireSticky || len(opts.OfficialAuthors) > 0 {
					official := false
					for _, a := range opts.OfficialAuthors {
						if strings.EqualFold(post.Author, a) {
							official = true
							break
						}
					}
					if !post.Stickied && !official {
						continue
					}
				}

				next, ok := dates.FirstFuture(post.Title+" "+post.SelfText,
					dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
				if !ok {
					continue
				}
				return &models.WipeData{
					NextWipe:     &next,
					Source:       "r/" + subreddit,
					Confirmed:    true,
					Announcement: post.Title,
				}, nil
			}
			return nil, nil
		},
	}
}

// steamDateStrategy reads official Steam news for an app and extracts the
// first future date from a keyword-matching item.
func steamDateStrategy(spec GameSpec, appID int, keywords []string) Strategy {
	return Strategy{
		Name: "Steam News",
		Run: func(ctx context.Context) (*models.WipeData, error) {
			items, err := sources.SteamNews(ctx, appID, 10)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				if len(keywords) > 0 && !containsAny(item.Title+" "+item.Contents, keywords) {
					continue
				}
				next, ok := dates.FirstFuture(item.Title+" "+item.Contents,
					dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
				if !ok {
					continue
				}
				return &models.WipeData{
					NextWipe:     &next,
					Source:       "Steam News (Official)",
					Confirmed:    true,
					Announcement: item.Title,
				}, nil
			}
			return nil, nil
		},
	}
}

// discourseDateStrategy scans a Discourse announcement category for topics
// carrying a future date (last-epoch style official forums).
func discourseDateStrategy(spec GameSpec, name, categoryURL string, keywords []string) Strategy {
	return Strategy{
		Name: name,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			topics, err := sources.DiscourseTopics(ctx, categoryURL)
			if err != nil {
				return nil, err
			}
			for _, topic := range topics {
				text := topic.Title + " " + topic.Excerpt
				if len(keywords) > 0 && !containsAny(text, keywords) {
					continue
				}
				next, ok := dates.FirstFuture(text,
					dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
				if !ok {
					continue
				}
				return &models.WipeData{
					NextWipe:     &next,
					Source:       name,
					Confirmed:    true,
					Announcement: topic.Title,
				}, nil
			}
			return nil, nil
		},
	}
}

// renderDateStrategy drives the headless browser for pages that only show
// their schedule after client-side rendering.
func renderDateStrategy(spec GameSpec, b *sources.Browser, name, url string, keywords []string) Strategy {
	return Strategy{
		Name: name,
		Run: func(ctx context.Context) (*models.WipeData, error) {
			html, err := b.Render(ctx, url, 2*time.Second)
			if err != nil {
				return nil, err
			}
			text, err := pageText(html)
			if err != nil {
				return nil, err
			}
			if len(keywords) > 0 && !containsAny(text, keywords) {
				return nil, nil
			}
			next, ok := dates.FirstFuture(text, dates.Options{HourUTC: spec.ReleaseHourUTC, Now: time.Now().UTC()})
			if !ok {
				return nil, nil
			}
			return &models.WipeData{NextWipe: &next, Source: name, Confirmed: true}, nil
		},
	}
}

// cycleEstimate projects the next reset a fixed number of days out from now.
// Used when a game has no reliable anchor date.
func cycleEstimate(spec GameSpec, aheadDays int, source, announcement string) func(now time.Time) models.WipeData {
	return func(now time.Time) models.WipeData {
		next := midDay(now.AddDate(0, 0, aheadDays), spec.ReleaseHourUTC)
		last := next.Add(-spec.Cycle())
		return models.WipeData{
			NextWipe:     &next,
			LastWipe:     &last,
			Source:       source,
			Confirmed:    false,
			Announcement: announcement,
		}
	}
}

// anchorEstimate rolls a known past reset forward by whole cycles until the
// projection lands in the future.
func anchorEstimate(spec GameSpec, anchor time.Time, source, announcement string) func(now time.Time) models.WipeData {
	return func(now time.Time) models.WipeData {
		next := anchor
		for !next.After(now) {
			next = next.AddDate(0, 0, spec.CycleDays)
		}
		last := next.AddDate(0, 0, -spec.CycleDays)
		return models.WipeData{
			NextWipe:     &next,
			LastWipe:     &last,
			Source:       source,
			Confirmed:    false,
			Announcement: announcement,
		}
	}
}

// scheduleEstimate picks the next entry from a fixed month/day schedule
// (quarterly chapters, seasonal splits), checking this year then next.
func scheduleEstimate(spec GameSpec, monthDays [][2]int, source, announcement string) func(now time.Time) models.WipeData {
	return func(now time.Time) models.WipeData {
		var next time.Time
		for _, year := range []int{now.Year(), now.Year() + 1} {
			for _, md := range monthDays {
				candidate := time.Date(year, time.Month(md[0]), md[1], spec.ReleaseHourUTC, 0, 0, 0, time.UTC)
				if candidate.After(now) && (next.IsZero() || candidate.Before(next)) {
					next = candidate
				}
			}
			if !next.IsZero() {
				break
			}
		}
		last := next.Add(-spec.Cycle())
		return models.WipeData{
			NextWipe:     &next,
			LastWipe:     &last,
			Source:       source,
			Confirmed:    false,
			Announcement: announcement,
		}
	}
}

func midDay(t time.Time, hourUTC int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hourUTC, 0, 0, 0, time.UTC)
}
