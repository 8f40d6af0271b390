package scrapers

import "time"

// Last Epoch cycles: the official Discourse announcements category, then the
// subreddit, then Steam news for the app.
func newLastEpochScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			discourseDateStrategy(spec, "forum.lastepoch.com (Official)",
				"https://forum.lastepoch.com/c/announcements/37.json",
				[]string{"cycle", "season", "launch", "update"}),
			redditDateStrategy(spec, "LastEpoch", redditOptions{
				Keywords: []string{"cycle", "season", "launch"},
			}),
			steamDateStrategy(spec, 899770, []string{"cycle", "season", "update"}),
		},
		Fallback: anchorEstimate(spec,
			time.Date(2025, time.April, 2, 17, 0, 0, 0, time.UTC),
			"forum.lastepoch.com (Estimated)",
			"Next cycle estimated from the Season 2 launch cadence"),
	}
}
