package extract

import (
	"time"

	"NewsScraper/internal/document"
	"NewsScraper/internal/domain"
)

// Detail collects the byline and publication time of a fetched page.
func Detail(page domain.Page, doc *document.Document, loc *time.Location) domain.ArticleDetail {
	return domain.ArticleDetail{
		FinalURL:    page.FinalURL,
		Markup:      page.Markup,
		Authors:     Authors(doc),
		PublishedAt: PublishedAt(doc, loc),
	}
}
