package scrapers

import "time"

// The remaining season-based titles all follow the news-or-wiki plus Reddit
// chain with a simple cadence estimate.

func newApexScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			htmlDateStrategy(spec, "ea.com (Official News)",
				"https://www.ea.com/games/apex-legends/news", []string{"season"}),
			redditDateStrategy(spec, "apexlegends", redditOptions{
				Keywords: []string{"season", "launch", "start"},
			}),
		},
		Fallback: anchorEstimate(spec,
			time.Date(2025, time.November, 4, 17, 0, 0, 0, time.UTC),
			"Based on Season 27 (Nov 4, 2025)",
			"Next season estimated from the 90-day season cadence"),
	}
}

func newCodScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			htmlDateStrategy(spec, "callofduty.fandom.com",
				"https://callofduty.fandom.com/wiki/Season", []string{"season"}),
			redditDateStrategy(spec, "CODWarzone", redditOptions{
				Keywords: []string{"season", "start", "update"},
			}),
		},
		Fallback: cycleEstimate(spec, 35, "Estimated based on typical season length",
			"Next season estimated from the two-month season cadence"),
	}
}

func newRocketLeagueScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			htmlDateStrategy(spec, "rocketleague.fandom.com",
				"https://rocketleague.fandom.com/wiki/Seasons", []string{"season"}),
			redditDateStrategy(spec, "RocketLeague", redditOptions{
				Keywords: []string{"season", "start", "rocket pass"},
			}),
		},
		Fallback: cycleEstimate(spec, 60, "Estimated based on typical season length",
			"Next season estimated from the three-to-four-month cadence"),
	}
}

func newDbdScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			htmlDateStrategy(spec, "deadbydaylight.fandom.com",
				"https://deadbydaylight.fandom.com/wiki/Chapters", []string{"chapter"}),
			redditDateStrategy(spec, "deadbydaylight", redditOptions{
				Keywords: []string{"chapter", "ptb", "release"},
			}),
		},
		// Chapters ship quarterly around the 15th.
		Fallback: scheduleEstimate(spec,
			[][2]int{{3, 15}, {6, 15}, {9, 15}, {12, 15}},
			"Based on typical chapter schedule",
			"Next chapter estimated from the quarterly schedule"),
	}
}
