package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// SteamNewsItem is one entry from the Steam News API for an app.
type SteamNewsItem struct {
	Title    string
	Contents string
	Date     time.Time
}

// SteamNews fetches recent news items for a Steam app via ISteamNews.
func SteamNews(ctx context.Context, appID, count int) ([]SteamNewsItem, error) {
	url := fmt.Sprintf(
		"https://api.steampowered.com/ISteamNews/GetNewsForApp/v2/?appid=%d&count=%d&maxlength=5000&format=json",
		appID, count)

	body, err := FetchHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Steam news for app %d: %w", appID, err)
	}

	items := gjson.Get(body, "appnews.newsitems")
	if !items.Exists() {
		return nil, fmt.Errorf("unexpected Steam news payload for app %d", appID)
	}

	var news []SteamNewsItem
	items.ForEach(func(_, item gjson.Result) bool {
		news = append(news, SteamNewsItem{
			Title:    item.Get("title").String(),
			Contents: item.Get("contents").String(),
			Date:     time.Unix(item.Get("date").Int(), 0).UTC(),
		})
		return true
	})
	return news, nil
}
