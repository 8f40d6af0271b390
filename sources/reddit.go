package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/config"
)

// RedditPost is one entry of a subreddit listing.
type RedditPost struct {
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	Stickied   bool    `json:"stickied"`
	URL        string  `json:"url"`
	Permalink  string  `json:"permalink"`
}

// Content returns title and body joined, lowercased for keyword matching.
func (p RedditPost) Content() string {
	return strings.ToLower(p.Title + " " + p.SelfText)
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data RedditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Process-wide rate gate: Reddit tolerates scraping poorly, so all requests
// share one last-request timestamp regardless of subreddit.
var (
	redditMu          sync.Mutex
	lastRedditRequest time.Time
)

func waitForRedditRateLimit() {
	redditMu.Lock()
	defer redditMu.Unlock()

	minDelay := config.AppConfig.Scraper.RedditMinDelay
	if elapsed := time.Since(lastRedditRequest); elapsed < minDelay {
		delay := minDelay - elapsed
		log.Debug().Dur("delay", delay).Msg("Waiting for Reddit rate limit")
		time.Sleep(delay)
	}
	lastRedditRequest = time.Now()
}

// RedditHot fetches the hot listing of a subreddit via old.reddit.com, which
// is more lenient with scraping than the main domain.
func RedditHot(ctx context.Context, subreddit string, limit int) ([]RedditPost, error) {
	waitForRedditRateLimit()

	url := fmt.Sprintf("https://old.reddit.com/r/%s/hot.json?limit=%d", subreddit, limit)
	log.Debug().Str("subreddit", subreddit).Int("limit", limit).Msg("Fetching Reddit listing")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build Reddit request for r/%s: %w", subreddit, err)
	}
	req.Header.Set("User-Agent", config.AppConfig.Scraper.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://old.reddit.com/")

	client := http.Client{Timeout: config.AppConfig.Scraper.FetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch r/%s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			log.Warn().Str("subreddit", subreddit).Msg("Rate limited by Reddit")
		}
		return nil, fmt.Errorf("reddit returned %d for r/%s", resp.StatusCode, subreddit)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Reddit response for r/%s: %w", subreddit, err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse Reddit listing for r/%s: %w", subreddit, err)
	}

	posts := make([]RedditPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data)
	}
	log.Debug().Str("subreddit", subreddit).Int("posts", len(posts)).Msg("Fetched Reddit listing")
	return posts, nil
}

// SearchPosts filters posts whose title or body contains any of the keywords
// and none of the excluded ones.
func SearchPosts(posts []RedditPost, keywords, excludeKeywords []string) []RedditPost {
	var out []RedditPost
	for _, post := range posts {
		content := post.Content()

		excluded := false
		for _, kw := range excludeKeywords {
			if strings.Contains(content, strings.ToLower(kw)) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		for _, kw := range keywords {
			if strings.Contains(content, strings.ToLower(kw)) {
				out = append(out, post)
				break
			}
		}
	}
	return out
}
