package scanner

import (
	"context"
	"time"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/urlnorm"
)

// Request carries all parameters required to execute a scan.
type Request struct {
	Query string
	Day   time.Time
	// Location decides which calendar day a timestamp falls on.
	Location *time.Location
}

// Scanner captures a single result-set strategy (search page, news feed).
type Scanner interface {
	Name() string
	Scan(ctx context.Context, req Request) ([]domain.Candidate, error)
}

// Registry keeps scanners in registration order.
type Registry struct {
	order    []string
	scanners map[string]Scanner
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{scanners: map[string]Scanner{}}
}

// Register adds or replaces a scanner implementation. A replacement keeps
// the original position.
func (r *Registry) Register(scanner Scanner) {
	if r.scanners == nil {
		r.scanners = map[string]Scanner{}
	}
	name := scanner.Name()
	if _, ok := r.scanners[name]; !ok {
		r.order = append(r.order, name)
	}
	r.scanners[name] = scanner
}

// Ordered lists scanners in the order they were registered.
func (r *Registry) Ordered() []Scanner {
	out := make([]Scanner, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.scanners[name])
	}
	return out
}

// Collector accumulates candidates, dropping empty titles and duplicates by
// normalised URL and folded title.
type Collector struct {
	seen  map[urlnorm.DedupeKey]struct{}
	items []domain.Candidate
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: map[urlnorm.DedupeKey]struct{}{}}
}

// Add records a candidate and reports whether it was new.
func (c *Collector) Add(title, link string) bool {
	if title == "" || link == "" {
		return false
	}
	key := urlnorm.KeyOf(title, link)
	if _, dup := c.seen[key]; dup {
		return false
	}
	c.seen[key] = struct{}{}
	c.items = append(c.items, domain.Candidate{Title: title, URL: link})
	return true
}

// Len reports how many candidates were kept.
func (c *Collector) Len() int {
	return len(c.items)
}

// Candidates returns the kept candidates in insertion order.
func (c *Collector) Candidates() []domain.Candidate {
	return append([]domain.Candidate(nil), c.items...)
}
