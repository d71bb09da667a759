package parser

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/rank"
	"NewsScraper/internal/scanner"
	"NewsScraper/internal/textutil"
	"NewsScraper/internal/urlnorm"
)

// SearchPageName identifies the results-page strategy.
const SearchPageName = "search-page"

const (
	cardSelector      = "div.dbsr"
	secondarySelector = "a.WlydOe, a.VDXfz"
	headingSelector   = "div[role='heading'], h3"
)

// SearchPageScanner reads the aggregator's results page for a single day.
type SearchPageScanner struct {
	fetcher ports.PageFetcher
	baseURL string
}

var _ scanner.Scanner = (*SearchPageScanner)(nil)

// NewSearchPageScanner wires the page fetcher and the results endpoint.
func NewSearchPageScanner(fetcher ports.PageFetcher, baseURL string) *SearchPageScanner {
	return &SearchPageScanner{fetcher: fetcher, baseURL: baseURL}
}

// Name identifies the strategy inside the registry.
func (s *SearchPageScanner) Name() string {
	return SearchPageName
}

// Scan fetches the day-restricted results page and extracts result cards.
func (s *SearchPageScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Candidate, error) {
	day := req.Day
	if req.Location != nil {
		day = day.In(req.Location)
	}
	pageURL := rank.SearchPageURL(s.baseURL, req.Query, day)

	page, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch results page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Markup))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	return parseResults(doc, page.FinalURL), nil
}

func parseResults(doc *goquery.Document, pageURL string) []domain.Candidate {
	collected := scanner.NewCollector()

	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		a := card.Find("a").First()
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		collected.Add(cardTitle(card, a), resolveLink(href, pageURL))
	})

	if collected.Len() > 0 {
		return collected.Candidates()
	}

	doc.Find(secondarySelector).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		raw := a.Text()
		if head := a.Find(headingSelector).First(); head.Length() > 0 {
			raw = head.Text()
		}
		collected.Add(firstLine(raw), resolveLink(href, pageURL))
	})

	return collected.Candidates()
}

func cardTitle(card, a *goquery.Selection) string {
	if head := card.Find(headingSelector).First(); head.Length() > 0 {
		if t := textutil.Clean(head.Text()); t != "" {
			return t
		}
	}
	if aria, ok := a.Attr("aria-label"); ok {
		if t := textutil.Clean(aria); t != "" {
			return t
		}
	}
	return firstLine(a.Text())
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := textutil.Clean(line); t != "" {
			return t
		}
	}
	return ""
}

// resolveLink unwraps redirect links and makes the rest absolute against
// the results page.
func resolveLink(href, pageURL string) string {
	link := urlnorm.Unwrap(strings.TrimSpace(href))
	u, err := url.Parse(link)
	if err != nil || u.IsAbs() {
		return link
	}
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return link
	}
	return base.ResolveReference(u).String()
}
