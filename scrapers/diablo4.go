package scrapers

import "time"

// Diablo 4 seasons: official Blizzard news feed first, the subreddit second,
// gaming press third. Anchor for estimation is the announced Season 11 start.
func newDiablo4Scraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			htmlDateStrategy(spec, "news.blizzard.com (Official)",
				"https://news.blizzard.com/en-us/feed/diablo-4", []string{"season"}),
			redditDateStrategy(spec, "diablo4", redditOptions{
				Keywords: []string{"season", "start", "launch"},
				Exclude:  []string{"meme", "question"},
			}),
			htmlDateStrategy(spec, "Millenium.org (Gaming News)",
				"https://www.millenium.org/news/428375.html", []string{"season", "saison"}),
		},
		Fallback: anchorEstimate(spec,
			time.Date(2025, time.December, 9, 18, 0, 0, 0, time.UTC),
			"Based on announced Season 11 (Dec 9, 2025)",
			"Next season estimated from the seasonal cadence"),
	}
}
