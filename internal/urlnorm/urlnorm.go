package urlnorm

import (
	"net/url"
	"strings"
	"unicode"
)

var trackingParams = map[string]struct{}{
	"fbclid": {},
	"gclid":  {},
	"igshid": {},
	"ref":    {},
}

// Unwrap recovers the publisher URL from an aggregator redirect link.
// Anything that is not a recognised wrapper is returned unchanged.
func Unwrap(link string) string {
	for {
		next, ok := unwrapOnce(link)
		// The inner target is always shorter than its wrapper, so this terminates.
		if !ok || next == link {
			return link
		}
		link = next
	}
}

func unwrapOnce(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	var target string
	switch {
	case strings.Contains(host, "news.google."):
		target = u.Query().Get("url")
	case u.Path == "/url" && (host == "" || strings.Contains(host, "google.")):
		q := u.Query()
		target = q.Get("url")
		if target == "" {
			target = q.Get("q")
		}
	default:
		return "", false
	}

	if !isAbsoluteHTTP(target) {
		return "", false
	}
	return target, true
}

func isAbsoluteHTTP(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeForDedupe drops tracking query parameters while keeping the
// remaining pairs in their original order.
func NormalizeForDedupe(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.RawQuery == "" {
		return u.String()
	}

	kept := make([]string, 0, 4)
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, hasValue := strings.Cut(pair, "=")
		key, keyErr := url.QueryUnescape(rawKey)
		if keyErr != nil {
			key = rawKey
		}
		if IsTrackingParam(key) {
			continue
		}
		value, valueErr := url.QueryUnescape(rawValue)
		if keyErr != nil || valueErr != nil {
			// Malformed escapes are kept verbatim.
			kept = append(kept, pair)
			continue
		}
		encoded := url.QueryEscape(key)
		if hasValue {
			encoded += "=" + url.QueryEscape(value)
		}
		kept = append(kept, encoded)
	}

	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String()
}

// IsTrackingParam reports whether a query key only carries campaign tracking.
func IsTrackingParam(key string) bool {
	key = strings.ToLower(key)
	if strings.HasPrefix(key, "utm_") {
		return true
	}
	_, ok := trackingParams[key]
	return ok
}

// TitleKey folds a title for fuzzy duplicate detection: lowercase with all
// whitespace and punctuation removed.
func TitleKey(title string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return -1
	}, title)
}

// DedupeKey identifies a candidate across wrapped and tracked variants.
type DedupeKey struct {
	URL   string
	Title string
}

// KeyOf builds the dedup key for a title/url pair.
func KeyOf(title, link string) DedupeKey {
	return DedupeKey{URL: NormalizeForDedupe(link), Title: TitleKey(title)}
}

// Host returns the lowercase host of raw, or an empty string.
func Host(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// MatchesSuffix reports whether host equals one of suffixes or ends with
// "." followed by one of them.
func MatchesSuffix(host string, suffixes []string) bool {
	host = strings.ToLower(host)
	if host == "" {
		return false
	}
	for _, s := range suffixes {
		s = strings.ToLower(s)
		if s == "" {
			continue
		}
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}
