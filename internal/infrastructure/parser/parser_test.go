package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"NewsScraper/internal/config"
	"NewsScraper/internal/domain"
	"NewsScraper/internal/infrastructure/fetcher"
	"NewsScraper/internal/scanner"
)

var kst = time.FixedZone("KST", 9*60*60)

func newFetcher(client *http.Client) *fetcher.Fetcher {
	return fetcher.New(config.HTTPConfig{MaxAttempts: 1}, client, nil)
}

func TestSearchPageScannerScan(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "계통 OR DR" || !strings.Contains(q.Get("tbs"), "cd_min:10/01/2025") {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`<html><body>
		<div class="dbsr"><a href="/url?q=https://www.etnews.com/1&amp;sa=U"><div role="heading">아이디알서비스 신규 사업</div></a></div>
		<div class="dbsr"><a href="https://news.google.com/articles/x?url=https%3A%2F%2Fwww.etnews.com%2F1%3Futm_source%3Dg"><h3>아이디알서비스 신규 사업!</h3></a></div>
		<div class="dbsr"><a href="https://www.ekn.kr/2" aria-label="계통 안정화"></a></div>
		<div class="dbsr"><a href="https://www.ekn.kr/3"></a></div>
		<a class="WlydOe" href="https://ignored.kr">ignored</a>
		</body></html>`))
	}))
	defer server.Close()

	sc := NewSearchPageScanner(newFetcher(server.Client()), server.URL+"/search")
	got, err := sc.Scan(context.Background(), scanner.Request{
		Query:    "계통 OR DR",
		Day:      time.Date(2025, 10, 1, 0, 0, 0, 0, kst),
		Location: kst,
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	want := []domain.Candidate{
		{Title: "아이디알서비스 신규 사업", URL: "https://www.etnews.com/1"},
		{Title: "계통 안정화", URL: "https://www.ekn.kr/2"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSearchPageScannerSecondarySelectors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
		<a class="WlydOe" href="https://www.mk.co.kr/a"><div role="heading">전력수급기본계획 확정</div><span>매일경제</span></a>
		<a class="VDXfz" href="https://www.mk.co.kr/b">분산에너지 특구
		지정</a>
		</body></html>`))
	}))
	defer server.Close()

	sc := NewSearchPageScanner(newFetcher(server.Client()), server.URL+"/search")
	got, err := sc.Scan(context.Background(), scanner.Request{Query: "DR", Day: time.Now()})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %+v", got)
	}
	if got[0].Title != "전력수급기본계획 확정" || got[1].Title != "분산에너지 특구" {
		t.Fatalf("unexpected titles: %+v", got)
	}
}

func TestFeedScannerKeepsRequestedDay(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ceid") != "KR:ko" {
			http.Error(w, "bad feed query", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>news</title>
<item><title>오늘 기사</title><link>https://news.google.com/rss/articles/abc?url=https%3A%2F%2Fwww.ekn.kr%2F1</link><pubDate>Wed, 01 Oct 2025 01:00:00 GMT</pubDate></item>
<item><title>어제 기사</title><link>https://www.ekn.kr/2</link><pubDate>Tue, 30 Sep 2025 10:00:00 GMT</pubDate></item>
<item><title>늦은 밤 기사</title><link>https://www.ekn.kr/3</link><pubDate>Tue, 30 Sep 2025 16:00:00 GMT</pubDate></item>
<item><title>시간 없음</title><link>https://www.ekn.kr/4</link></item>
<item><title>오늘 기사</title><link>https://www.ekn.kr/1?fbclid=zz</link><pubDate>Wed, 01 Oct 2025 02:00:00 GMT</pubDate></item>
</channel></rss>`))
	}))
	defer server.Close()

	sc := NewFeedScanner(newFetcher(server.Client()), server.URL+"/rss/search")
	got, err := sc.Scan(context.Background(), scanner.Request{
		Query:    "계통",
		Day:      time.Date(2025, 10, 1, 12, 0, 0, 0, kst),
		Location: kst,
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	wantURLs := []string{"https://www.ekn.kr/1", "https://www.ekn.kr/3", "https://www.ekn.kr/4"}
	if len(got) != len(wantURLs) {
		t.Fatalf("expected %d candidates, got %+v", len(wantURLs), got)
	}
	for i, u := range wantURLs {
		if got[i].URL != u {
			t.Fatalf("candidate %d: expected %s, got %s", i, u, got[i].URL)
		}
	}
}

type stubScanner struct {
	name  string
	items []domain.Candidate
	err   error
	calls int
}

func (s *stubScanner) Name() string { return s.name }

func (s *stubScanner) Scan(context.Context, scanner.Request) ([]domain.Candidate, error) {
	s.calls++
	return s.items, s.err
}

func TestStrategySourceFallsBack(t *testing.T) {
	t.Parallel()

	first := &stubScanner{name: SearchPageName}
	second := &stubScanner{name: FeedName, items: []domain.Candidate{{Title: "t", URL: "https://a.kr"}}}
	reg := scanner.NewRegistry()
	reg.Register(first)
	reg.Register(second)

	got, err := NewStrategySource(reg, kst, nil).Candidates(context.Background(), "q", time.Now())
	if err != nil {
		t.Fatalf("Candidates returned error: %v", err)
	}
	if len(got) != 1 || first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected fallback to feed, got %+v (calls %d/%d)", got, first.calls, second.calls)
	}
}

func TestStrategySourceSkipsSecondWhenFirstHasResults(t *testing.T) {
	t.Parallel()

	first := &stubScanner{name: SearchPageName, items: []domain.Candidate{{Title: "t", URL: "https://a.kr"}}}
	second := &stubScanner{name: FeedName}
	reg := scanner.NewRegistry()
	reg.Register(first)
	reg.Register(second)

	if _, err := NewStrategySource(reg, kst, nil).Candidates(context.Background(), "q", time.Now()); err != nil {
		t.Fatalf("Candidates returned error: %v", err)
	}
	if second.calls != 0 {
		t.Fatalf("feed strategy must not run when the first one has results")
	}
}

func TestStrategySourceTreatsFailureAsEmpty(t *testing.T) {
	t.Parallel()

	reg := scanner.NewRegistry()
	reg.Register(&stubScanner{name: SearchPageName, err: errors.New("boom")})
	reg.Register(&stubScanner{name: FeedName, err: errors.New("boom")})

	got, err := NewStrategySource(reg, kst, nil).Candidates(context.Background(), "q", time.Now())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result without error, got %+v, %v", got, err)
	}
}
