package rank

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

const searchDayLayout = "01/02/2006"

// Query gathers the inputs of the aggregator search expression.
type Query struct {
	Base string
	// Selected terms; when empty, Priority is used instead.
	Selected []string
	Priority []string
	Custom   []string
	Excluded []string
}

// BaseQuery recovers the q parameter of a saved search URL.
func BaseQuery(originalURL string) string {
	u, err := url.Parse(strings.TrimSpace(originalURL))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get("q"))
}

// ComposeQuery OR-appends every selected and custom term missing from the
// base expression, then adds a -term for each exclusion not yet present.
func ComposeQuery(q Query) string {
	terms := q.Selected
	if len(terms) == 0 {
		terms = q.Priority
	}
	terms = append([]string(nil), terms...)
	for _, t := range q.Custom {
		if t = strings.TrimSpace(t); t != "" && !slices.Contains(terms, t) {
			terms = append(terms, t)
		}
	}

	out := strings.TrimSpace(q.Base)
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" || strings.Contains(out, t) {
			continue
		}
		if out == "" {
			out = t
		} else {
			out += " OR " + t
		}
	}
	for _, t := range q.Excluded {
		t = strings.TrimSpace(t)
		if t == "" || strings.Contains(out, "-"+t) {
			continue
		}
		out = strings.TrimSpace(out + " -" + t)
	}
	return out
}

// SearchPageURL builds the results-page request restricted to a single day.
func SearchPageURL(base, query string, day time.Time) string {
	md := day.Format(searchDayLayout)
	return joinQuery(base, []string{
		"tbm=nws",
		"q=" + url.QueryEscape(query),
		"tbs=cdr:1,cd_min:" + md + ",cd_max:" + md + ",ctr:countryKR",
		"num=100",
		"hl=ko",
		"lr=lang_ko",
		"cr=countryKR",
		"gl=KR",
	})
}

// FeedURL builds the news feed request for query.
func FeedURL(base, query string) string {
	return joinQuery(base, []string{
		"q=" + url.QueryEscape(query),
		"hl=ko",
		"gl=KR",
		"ceid=KR:ko",
	})
}

func joinQuery(base string, pairs []string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(pairs, "&")
}

