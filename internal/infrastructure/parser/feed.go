package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/rank"
	"NewsScraper/internal/scanner"
	"NewsScraper/internal/textutil"
	"NewsScraper/internal/urlnorm"
)

// FeedName identifies the news feed strategy.
const FeedName = "news-feed"

// FeedScanner reads the aggregator's news feed and keeps the entries
// published on the requested day.
type FeedScanner struct {
	fetcher ports.PageFetcher
	baseURL string
}

var _ scanner.Scanner = (*FeedScanner)(nil)

// NewFeedScanner wires the page fetcher and the feed endpoint.
func NewFeedScanner(fetcher ports.PageFetcher, baseURL string) *FeedScanner {
	return &FeedScanner{fetcher: fetcher, baseURL: baseURL}
}

// Name identifies the strategy inside the registry.
func (f *FeedScanner) Name() string {
	return FeedName
}

// Scan fetches the feed for the query. Entries without a parseable
// timestamp are kept.
func (f *FeedScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Candidate, error) {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	page, err := f.fetcher.Fetch(ctx, rank.FeedURL(f.baseURL, req.Query))
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(page.Markup)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	target := req.Day.In(loc).Format(domain.DateLayout)
	collected := scanner.NewCollector()
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		title := textutil.Clean(item.Title)
		link := urlnorm.Unwrap(strings.TrimSpace(item.Link))
		if title == "" || link == "" {
			continue
		}
		if published, ok := itemTime(item, loc); ok && published.In(loc).Format(domain.DateLayout) != target {
			continue
		}
		collected.Add(title, link)
	}

	return collected.Candidates(), nil
}

func itemTime(item *gofeed.Item, loc *time.Location) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if strings.TrimSpace(item.Published) == "" {
		return time.Time{}, false
	}
	ts, err := dateparse.ParseIn(item.Published, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
