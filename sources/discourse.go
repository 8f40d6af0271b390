package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// DiscourseTopic is one topic from a Discourse category listing
// (e.g. forum.lastepoch.com announcements).
type DiscourseTopic struct {
	Title     string
	Excerpt   string
	CreatedAt time.Time
	Pinned    bool
}

// DiscourseTopics fetches the topic list of a Discourse category JSON
// endpoint, newest activity first as Discourse returns them.
func DiscourseTopics(ctx context.Context, categoryURL string) ([]DiscourseTopic, error) {
	body, err := FetchHTML(ctx, categoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forum category %s: %w", categoryURL, err)
	}

	list := gjson.Get(body, "topic_list.topics")
	if !list.Exists() {
		return nil, fmt.Errorf("unexpected Discourse payload from %s", categoryURL)
	}

	var topics []DiscourseTopic
	list.ForEach(func(_, t gjson.Result) bool {
		created, _ := time.Parse(time.RFC3339, t.Get("created_at").String())
		topics = append(topics, DiscourseTopic{
			Title:     t.Get("title").String(),
			Excerpt:   t.Get("excerpt").String(),
			CreatedAt: created,
			Pinned:    t.Get("pinned").Bool(),
		})
		return true
	})
	return topics, nil
}
