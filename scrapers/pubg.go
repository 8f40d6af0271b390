package scrapers

// PUBG seasons: Steam news is the most reliable source, the subreddit backs
// it up, and the estimate lands on the next mid-month update slot.
func newPubgScraper(spec GameSpec) *GameScraper {
	return &GameScraper{
		Spec: spec,
		Strategies: []Strategy{
			steamDateStrategy(spec, 578080, []string{"season", "update", "ranked"}),
			redditDateStrategy(spec, "PUBATTLEGROUNDS", redditOptions{
				Keywords: []string{"season", "update", "patch"},
			}),
		},
		Fallback: scheduleEstimate(spec,
			[][2]int{{1, 15}, {2, 15}, {3, 15}, {4, 15}, {5, 15}, {6, 15}, {7, 15}, {8, 15}, {9, 15}, {10, 15}, {11, 15}, {12, 15}},
			"Steam News (Estimated)",
			"Next season estimated at the usual mid-month slot"),
	}
}
