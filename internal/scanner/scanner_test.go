package scanner

import (
	"context"
	"testing"

	"NewsScraper/internal/domain"
)

type namedScanner string

func (n namedScanner) Name() string { return string(n) }

func (n namedScanner) Scan(context.Context, Request) ([]domain.Candidate, error) { return nil, nil }

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(namedScanner("search-page"))
	reg.Register(namedScanner("news-feed"))
	reg.Register(namedScanner("search-page"))

	ordered := reg.Ordered()
	if len(ordered) != 2 || ordered[0].Name() != "search-page" || ordered[1].Name() != "news-feed" {
		t.Fatalf("unexpected order: %v", ordered)
	}
}

func TestCollectorDedupes(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	if !c.Add("분산에너지 특구", "https://www.ekn.kr/1?utm_source=x") {
		t.Fatalf("first candidate must be kept")
	}
	if c.Add("분산에너지, 특구!", "https://www.ekn.kr/1") {
		t.Fatalf("tracking and punctuation variants must dedupe")
	}
	if c.Add("", "https://www.ekn.kr/2") {
		t.Fatalf("empty titles must be dropped")
	}
	if !c.Add("분산에너지 특구", "https://www.ekn.kr/3") {
		t.Fatalf("a different url is a different candidate")
	}

	got := c.Candidates()
	if c.Len() != 2 || got[0].URL != "https://www.ekn.kr/1?utm_source=x" {
		t.Fatalf("unexpected candidates: %+v", got)
	}
}
