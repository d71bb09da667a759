package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/scanner"
)

// StrategySource implements CandidateSource via registered scanner
// strategies. Later strategies run only when earlier ones found nothing.
type StrategySource struct {
	registry *scanner.Registry
	location *time.Location
	logger   *slog.Logger
}

var _ ports.CandidateSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with the reporting timezone.
func NewStrategySource(reg *scanner.Registry, loc *time.Location, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		location: loc,
		logger:   log,
	}
}

// Candidates returns the first non-empty strategy result for the day. A
// failing strategy is logged and counts as empty.
func (s *StrategySource) Candidates(ctx context.Context, query string, day time.Time) ([]domain.Candidate, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	req := scanner.Request{Query: query, Day: day, Location: s.location}
	for _, strategy := range s.registry.Ordered() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			s.warn("strategy failed", "strategy", strategy.Name(), "day", day.Format(domain.DateLayout), "error", err)
			continue
		}
		s.info("strategy results", "strategy", strategy.Name(), "day", day.Format(domain.DateLayout), "count", len(results))
		if len(results) > 0 {
			return results, nil
		}
	}

	return nil, nil
}

func (s *StrategySource) info(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *StrategySource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
