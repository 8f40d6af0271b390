package scrapers

import (
	"context"
	"strings"
	"time"

	"github.com/nextwipe/wipetime/backend/models"
)

var (
	tarkovKeywords        = []string{"wipe", "reset", "patch notes", "update", "release", "launch", "1.0"}
	tarkovReleaseKeywords = []string{"release", "launch", "1.0", "version 1.0"}
	// Nikita's account and the official studio accounts.
	tarkovOfficialAuthors = []string{"trainfender", "bstategames", "AutoModerator"}

	// Last wipe known from the announcement history, used for estimation
	// when no fresh announcement is up.
	tarkovKnownLastWipe = time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)
)

// Tarkov wipes are announced on r/EscapefromTarkov, usually as stickied posts
// or posts from official accounts. A wipe tied to the 1.0 release is flagged
// separately so the UI can present it as a launch rather than a routine reset.
func newTarkovScraper(spec GameSpec) *GameScraper {
	reddit := redditDateStrategy(spec, "EscapefromTarkov", redditOptions{
		Keywords:        tarkovKeywords,
		OfficialAuthors: tarkovOfficialAuthors,
		RequireSticky:   true,
	})
	base := reddit.Run
	reddit.Run = func(ctx context.Context) (*models.WipeData, error) {
		data, err := base(ctx)
		if err != nil || data == nil {
			return data, err
		}
		content := strings.ToLower(data.Announcement)
		for _, kw := range tarkovReleaseKeywords {
			if strings.Contains(content, kw) {
				data.IsRelease = true
				data.Frequency = "Official 1.0 Release"
				break
			}
		}
		return data, nil
	}

	return &GameScraper{
		Spec:       spec,
		Strategies: []Strategy{reddit},
		Fallback: anchorEstimate(spec, tarkovKnownLastWipe,
			"r/EscapefromTarkov (Estimated)",
			"No official announcement found. This is an estimate."),
	}
}
