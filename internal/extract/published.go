package extract

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"NewsScraper/internal/document"
)

var linkedDataDateKeys = []string{"datePublished", "dateCreated", "uploadDate"}

// PublishedAt finds the article's publication time. Values without an
// explicit offset are read in loc. It returns nil when nothing parses.
func PublishedAt(doc *document.Document, loc *time.Location) *time.Time {
	if doc == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var raw []string
	for _, obj := range LinkedData(doc) {
		for _, key := range linkedDataDateKeys {
			if v, ok := obj[key].(string); ok {
				raw = append(raw, v)
			}
		}
	}
	raw = append(raw, doc.Meta("article:published_time"), doc.Meta("pubdate"))
	for _, el := range doc.FindAll("time[datetime]") {
		if v, ok := el.Attr("datetime"); ok {
			raw = append(raw, v)
		}
	}

	for _, v := range raw {
		if ts, ok := ParseTime(v, loc); ok {
			return &ts
		}
	}
	return nil
}

// ParseTime parses a free-form timestamp in loc.
func ParseTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	ts, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
