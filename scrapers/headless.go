package scrapers

import "github.com/nextwipe/wipetime/backend/sources"

// Titles whose news pages render client-side go through the shared headless
// browser; their publishers rarely pre-announce dates, so the estimates sit
// closer than the announcement-driven games.

func newOverwatch2Scraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			renderDateStrategy(spec, b, "overwatch.blizzard.com",
				"https://overwatch.blizzard.com/en-us/news/", []string{"season"}),
		},
		Fallback: cycleEstimate(spec, 35, "overwatch.blizzard.com (estimated)",
			"Next season estimated from the nine-week cadence"),
	}
}

func newDestiny2Scraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			renderDateStrategy(spec, b, "bungie.net",
				"https://www.bungie.net/7/en/Seasons", []string{"episode", "season"}),
		},
		Fallback: cycleEstimate(spec, 45, "bungie.net (estimated)",
			"Next episode estimated from the seasonal cadence"),
	}
}

func newR6SiegeScraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			renderDateStrategy(spec, b, "ubisoft.com",
				"https://www.ubisoft.com/en-us/game/rainbow-six/siege/news-updates", []string{"season", "operation"}),
		},
		Fallback: cycleEstimate(spec, 45, "ubisoft.com (estimated)",
			"Next season estimated from the quarterly cadence"),
	}
}

func newWarframeScraper(spec GameSpec, b *sources.Browser) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			renderDateStrategy(spec, b, "warframe.com",
				"https://www.warframe.com/news", []string{"update"}),
		},
		Fallback: cycleEstimate(spec, 90, "warframe.com (estimated)",
			"Next major update estimated from the release history"),
	}
}
