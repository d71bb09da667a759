// Package classify decides whether a page comes from a Korean outlet and how
// its publisher is named in the report.
package classify

import (
	"strings"

	"NewsScraper/internal/config"
	"NewsScraper/internal/document"
	"NewsScraper/internal/extract"
	"NewsScraper/internal/textutil"
	"NewsScraper/internal/urlnorm"
)

const (
	koreanTLD         = ".kr"
	minHangulRunes    = 40
	minHangulRatio    = 0.30
	defaultRoleTitle  = "기자"
	wwwPrefix         = "www."
	koreanLangPrefix  = "ko"
	registrableLabels = 2
)

// Classifier answers source questions from the configured host lists.
type Classifier struct {
	priority   []string
	korean     []string
	publishers map[string]string
}

// New builds a Classifier. Priority hosts also count as Korean outlets.
func New(domains config.DomainsConfig) *Classifier {
	korean := make([]string, 0, len(domains.Korean)+len(domains.Priority))
	korean = append(korean, domains.Korean...)
	korean = append(korean, domains.Priority...)

	publishers := make(map[string]string, len(domains.Publishers))
	for host, name := range domains.Publishers {
		publishers[strings.ToLower(host)] = name
	}

	return &Classifier{
		priority:   append([]string(nil), domains.Priority...),
		korean:     korean,
		publishers: publishers,
	}
}

// IsKoreanSource checks the host first, then the page language markers and
// finally the share of Hangul in the visible text.
func (c *Classifier) IsKoreanSource(finalURL string, doc *document.Document) bool {
	host := urlnorm.Host(finalURL)
	if strings.HasSuffix(host, koreanTLD) || urlnorm.MatchesSuffix(host, c.korean) {
		return true
	}
	if doc == nil {
		return false
	}
	return declaresKorean(doc) || looksKorean(doc.Text())
}

// IsPriorityHost reports whether finalURL belongs to a priority outlet.
func (c *Classifier) IsPriorityHost(finalURL string) bool {
	return urlnorm.MatchesSuffix(urlnorm.Host(finalURL), c.priority)
}

// PublisherName maps a host to the outlet's display name, preferring the
// longest matching suffix. Unknown hosts fall back to their last two labels.
func (c *Classifier) PublisherName(host string) string {
	host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), wwwPrefix)

	best, name := "", ""
	for suffix, display := range c.publishers {
		if len(suffix) <= len(best) {
			continue
		}
		if urlnorm.MatchesSuffix(host, []string{suffix}) {
			best, name = suffix, display
		}
	}
	if name != "" {
		return name
	}

	labels := strings.Split(host, ".")
	if len(labels) >= registrableLabels {
		return strings.Join(labels[len(labels)-registrableLabels:], ".")
	}
	return host
}

// ReporterCell formats the reporter column: the publisher followed by the
// first author with a role title, or the publisher alone.
func (c *Classifier) ReporterCell(host string, authors []string) string {
	pub := c.PublisherName(host)
	if len(authors) == 0 {
		return pub
	}
	return strings.TrimSpace(pub + " " + withRoleTitle(authors[0]))
}

func withRoleTitle(author string) string {
	name, title := extract.SplitNameTitle(author)
	switch {
	case name == "":
		return ""
	case title != "":
		return name + " " + title
	case strings.HasSuffix(name, defaultRoleTitle):
		return name
	}
	return name + " " + defaultRoleTitle
}

func declaresKorean(doc *document.Document) bool {
	if root, ok := doc.FindFirst("html"); ok {
		for _, attr := range []string{"lang", "xml:lang"} {
			if v, ok := root.Attr(attr); ok && strings.TrimSpace(v) != "" {
				if hasKoreanPrefix(v) {
					return true
				}
				break
			}
		}
	}
	return hasKoreanPrefix(doc.Meta("og:locale"))
}

func hasKoreanPrefix(v string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), koreanLangPrefix)
}

func looksKorean(text string) bool {
	hangul, letters := 0, 0
	for _, r := range text {
		switch {
		case textutil.IsHangul(r):
			hangul++
			letters++
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letters++
		}
	}
	if hangul < minHangulRunes || letters == 0 {
		return false
	}
	return float64(hangul)/float64(letters) >= minHangulRatio
}
