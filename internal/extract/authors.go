package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"NewsScraper/internal/document"
	"NewsScraper/internal/textutil"
)

// MaxAuthors is the number of bylines kept per article.
const MaxAuthors = 2

const maxAttrAuthorRunes = 40

// RoleTitles are the job titles recognised next to a reporter's name.
// Longer titles come first so 사진기자 wins over 기자.
var RoleTitles = []string{"사진기자", "칼럼니스트", "논설위원", "특파원", "평론가", "에디터", "기자", "부장", "팀장", "국장"}

var authorMetaKeys = []string{"author", "article:author", "parsely-author", "byl"}

var bylineSelectors = []string{
	"a[rel='author']", "[itemprop='author']", "[itemprop='author'] [itemprop='name']",
	"address.byline", "p.byline", "span.byline", "div.byline",
	"span[class*=author]", "div[class*=author]", "p[class*=author]",
	"span[class*=writer]", "div[class*=writer]", "p[class*=writer]",
	"span[class*=reporter]", "div[class*=reporter]", "p[class*=reporter]",
	"span[class*=journalist]", "div[class*=journalist]", "p[class*=journalist]",
	"span.article_writer", "div.article_writer", "em.article_writer",
	".info_view .writer", ".press_writer", "#news_writer", "#author",
	"strong.name", "span.name",
}

var (
	emailExpr     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	asideExpr     = regexp.MustCompile(`\(.*?\)|\[.*?\]|<.*?>|【.*?】`)
	fillerExpr    = regexp.MustCompile(`(?i)[-–—▶◇■]|\bby\b|기자명\s*:?`)
	separatorExpr = regexp.MustCompile(`[,/;•·]| 그리고 | 및 | and `)
)

// Authors returns up to MaxAuthors reporter names, each with its role
// title when one is present, e.g. "홍길동 기자".
func Authors(doc *document.Document) []string {
	if doc == nil {
		return nil
	}
	return FirstNonEmptySlice(
		func() []string { return NormalizeAuthors(linkedDataAuthors(doc)) },
		func() []string { return NormalizeAuthors(markupAuthors(doc)) },
	)
}

func linkedDataAuthors(doc *document.Document) []string {
	var names []string
	for _, obj := range LinkedData(doc) {
		for _, key := range []string{"author", "creator"} {
			names = append(names, personNames(obj[key])...)
		}
	}
	return names
}

func markupAuthors(doc *document.Document) []string {
	var cands []string
	for _, key := range authorMetaKeys {
		if v := doc.Meta(key); v != "" {
			cands = append(cands, v)
		}
	}
	for _, sel := range bylineSelectors {
		for _, el := range doc.FindAll(sel) {
			if t := el.Text(); t != "" {
				cands = append(cands, t)
			}
		}
	}
	for _, el := range doc.FindAll("*") {
		for _, attr := range el.Attributes() {
			name := strings.ToLower(attr.Name)
			if !strings.Contains(name, "author") && !strings.Contains(name, "writer") && !strings.Contains(name, "reporter") {
				continue
			}
			if textutil.RuneLen(attr.Value) <= maxAttrAuthorRunes {
				cands = append(cands, attr.Value)
			}
		}
	}
	return cands
}

// NormalizeAuthors cleans raw byline strings into "name [title]" entries,
// dedupes them and keeps the MaxAuthors best ranked.
func NormalizeAuthors(raw []string) []string {
	var cleaned []string
	seen := map[string]struct{}{}
	for _, c := range raw {
		for _, frag := range separatorExpr.Split(stripNoise(c), -1) {
			name, ok := nameWithTitle(textutil.Clean(frag))
			if !ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			cleaned = append(cleaned, name)
		}
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		ti, tj := hasRoleTitle(cleaned[i]), hasRoleTitle(cleaned[j])
		if ti != tj {
			return ti
		}
		return textutil.RuneLen(cleaned[i]) > textutil.RuneLen(cleaned[j])
	})

	if len(cleaned) > MaxAuthors {
		cleaned = cleaned[:MaxAuthors]
	}
	return cleaned
}

func stripNoise(s string) string {
	s = emailExpr.ReplaceAllString(s, " ")
	s = asideExpr.ReplaceAllString(s, " ")
	s = fillerExpr.ReplaceAllString(s, " ")
	return textutil.Clean(s)
}

type hangulRun struct {
	text       string
	start, end int
}

func hangulRuns(s string) []hangulRun {
	var runs []hangulRun
	start := -1
	for i, r := range s {
		if textutil.IsHangul(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, hangulRun{text: s[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, hangulRun{text: s[start:], start: start, end: len(s)})
	}
	return runs
}

// nameWithTitle finds a 2-4 syllable Hangul name in fragment. A name carrying
// a role title, either as a suffix or as the next word, beats a bare one.
func nameWithTitle(fragment string) (string, bool) {
	runs := hangulRuns(fragment)
	bare := ""
	for i, run := range runs {
		if isRoleTitle(run.text) {
			continue
		}
		base, title := splitTitleSuffix(run.text)
		n := textutil.RuneLen(base)
		if n < 2 || n > 4 {
			continue
		}
		if title == "" && i+1 < len(runs) && isRoleTitle(runs[i+1].text) &&
			strings.TrimFunc(fragment[run.end:runs[i+1].start], unicode.IsSpace) == "" {
			title = runs[i+1].text
		}
		if title != "" {
			return base + " " + title, true
		}
		if bare == "" {
			bare = base
		}
	}
	return bare, bare != ""
}

func splitTitleSuffix(word string) (string, string) {
	for _, t := range RoleTitles {
		if strings.HasSuffix(word, t) && textutil.RuneLen(word)-textutil.RuneLen(t) >= 2 {
			return strings.TrimSuffix(word, t), t
		}
	}
	return word, ""
}

func isRoleTitle(word string) bool {
	for _, t := range RoleTitles {
		if word == t {
			return true
		}
	}
	return false
}

func hasRoleTitle(entry string) bool {
	_, after, ok := strings.Cut(entry, " ")
	return ok && isRoleTitle(after)
}

// SplitNameTitle separates a normalised author entry into name and title.
func SplitNameTitle(entry string) (string, string) {
	name, title, _ := strings.Cut(textutil.Clean(entry), " ")
	if !isRoleTitle(title) {
		return name, ""
	}
	return name, title
}
