package source

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"internsift/app/job"
)

// RSSFeed turns a job-alert RSS/Atom feed into candidates. Entry titles
// become title hints; links go through the pipeline like any other URL.
type RSSFeed struct {
	parser *gofeed.Parser
	url    string
	name   string
}

func NewRSSFeed(url, name, userAgent string) *RSSFeed {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &RSSFeed{parser: parser, url: url, name: name}
}

func (r *RSSFeed) Name() string { return r.name }

func (r *RSSFeed) Fetch(ctx context.Context) ([]job.Candidate, error) {
	feed, err := r.parser.ParseURLWithContext(r.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	out := make([]job.Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		category := ""
		if len(item.Categories) > 0 {
			category = item.Categories[0]
		}
		out = append(out, job.Candidate{
			SourceURL: item.Link,
			Hints:     job.Hints{Title: item.Title},
			Origin:    job.OriginRSSFeed,
			Service:   r.name,
			Category:  category,
		})
	}
	return out, nil
}
