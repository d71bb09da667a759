package ports

import (
	"context"
	"time"

	"NewsScraper/internal/domain"
)

// CandidateSource lists search results for one day of the lookback window.
type CandidateSource interface {
	Candidates(ctx context.Context, query string, day time.Time) ([]domain.Candidate, error)
}

// PageFetcher downloads a page, following redirects.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (domain.Page, error)
}

// ReportWriter persists a rendered report and returns the written paths.
type ReportWriter interface {
	Write(ctx context.Context, report domain.Report) ([]string, error)
}

// Previewer shows result rows to the operator.
type Previewer interface {
	Preview(rows []domain.ResultRow) error
}
