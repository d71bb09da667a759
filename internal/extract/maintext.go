package extract

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"NewsScraper/internal/document"
	"NewsScraper/internal/textutil"
)

// minMainTextRunes is the shortest body text accepted from a strategy.
const minMainTextRunes = 60

// bodySelectors are known publisher article containers, tried in order.
var bodySelectors = []string{
	"article",
	"div[itemprop='articleBody']",
	".article-body",
	".news_end",
	".article",
	"#newsct_article",
	".newsct_article",
	".art_txt",
	".article_view",
	"#articleBodyContents",
	"#articeBody",
	"#articleBody",
	"#newsEndContents",
}

// MainText returns the article body: readability first, then publisher
// body containers, then the page's visible text.
func MainText(doc *document.Document, pageURL string) string {
	if doc == nil {
		return ""
	}
	return FirstNonEmpty(
		func() string { return readabilityText(doc.Markup(), pageURL) },
		func() string { return selectorText(doc) },
		doc.Text,
	)
}

func readabilityText(markup, pageURL string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(markup), parsed)
	if err != nil {
		return ""
	}
	text := textutil.Clean(article.TextContent)
	if textutil.RuneLen(text) < minMainTextRunes {
		return ""
	}
	return text
}

func selectorText(doc *document.Document) string {
	for _, sel := range bodySelectors {
		el, ok := doc.FindFirst(sel)
		if !ok {
			continue
		}
		if text := el.Text(); textutil.RuneLen(text) >= minMainTextRunes {
			return text
		}
	}
	return ""
}
