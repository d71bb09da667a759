package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"NewsScraper/internal/classify"
	"NewsScraper/internal/config"
	"NewsScraper/internal/document"
	"NewsScraper/internal/domain"
	"NewsScraper/internal/extract"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/rank"
	"NewsScraper/internal/report"
	"NewsScraper/internal/urlnorm"
)

// LogRecorder exposes the entries captured during a run.
type LogRecorder interface {
	Entries() []string
	Reset()
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.CandidateSource
	Fetcher    ports.PageFetcher
	Classifier *classify.Classifier
	Scorer     *rank.Scorer
	Search     config.SearchConfig
	Terms      config.TermsConfig
	Location   *time.Location
	Logger     *slog.Logger
	Recorder   LogRecorder
	// Now and Shuffle default to the wall clock and an unseeded shuffle.
	Now     func() time.Time
	Shuffle rank.ShuffleFunc
}

// Params are the per-run choices made by the operator.
type Params struct {
	// Selected narrows the priority terms; empty means all of them.
	Selected     []string
	Custom       []string
	PerDay       int
	Days         int
	CandidateCap int
}

// Validate checks the run limits against the accepted bounds.
func (p Params) Validate() error {
	return config.RunConfig{PerDay: p.PerDay, Days: p.Days, CandidateCap: p.CandidateCap}.Validate()
}

// Pipeline implements the news collection workflow.
type Pipeline struct {
	source     ports.CandidateSource
	fetcher    ports.PageFetcher
	classifier *classify.Classifier
	scorer     *rank.Scorer
	search     config.SearchConfig
	terms      config.TermsConfig
	location   *time.Location
	logger     *slog.Logger
	recorder   LogRecorder
	now        func() time.Time
	shuffle    rank.ShuffleFunc
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:     deps.Source,
		fetcher:    deps.Fetcher,
		classifier: deps.Classifier,
		scorer:     deps.Scorer,
		search:     deps.Search,
		terms:      deps.Terms,
		location:   deps.Location,
		logger:     deps.Logger,
		recorder:   deps.Recorder,
		now:        deps.Now,
		shuffle:    deps.Shuffle,
	}
	if p.location == nil {
		p.location = time.UTC
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.shuffle == nil {
		p.shuffle = rank.RandomShuffle
	}
	if p.classifier == nil {
		p.classifier = classify.New(config.DomainsConfig{})
	}
	if p.scorer == nil {
		p.scorer = rank.NewScorer(deps.Terms)
	}
	return p
}

// Query composes the search expression for the run.
func (p *Pipeline) Query(params Params) string {
	return rank.ComposeQuery(rank.Query{
		Base:     rank.BaseQuery(p.search.OriginalURL),
		Selected: params.Selected,
		Priority: p.terms.Priority,
		Custom:   params.Custom,
		Excluded: p.terms.Excluded,
	})
}

// Run walks the lookback window day by day, keeps the best articles of
// each day and returns them shuffled and numbered. It only fails on invalid
// parameters or cancellation.
func (p *Pipeline) Run(ctx context.Context, params Params) (domain.RunResult, error) {
	if err := params.Validate(); err != nil {
		return domain.RunResult{}, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.source == nil || p.fetcher == nil {
		return domain.RunResult{}, fmt.Errorf("pipeline is missing its source or fetcher")
	}
	if p.recorder != nil {
		p.recorder.Reset()
	}

	now := p.now().In(p.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.location)
	query := p.Query(params)
	p.info("run started", "query", query, "days", params.Days, "per_day", params.PerDay, "cand_cap", params.CandidateCap)

	var pooled []domain.ResultRow
	for i := 0; i < params.Days; i++ {
		day := today.AddDate(0, 0, -i)
		p.info(fmt.Sprintf("[parse] day %d/%d", i+1, params.Days), "day", day.Format(domain.DateLayout))

		items, err := p.processDay(ctx, query, day, params.CandidateCap)
		if err != nil {
			return domain.RunResult{}, err
		}
		for _, item := range rank.SelectDay(items, params.PerDay) {
			pooled = append(pooled, domain.ResultRow{
				Title:    item.Title,
				URL:      item.URL,
				Summary:  item.Summary,
				Reporter: item.AuthorsCell,
				Date:     item.PublishedDate,
			})
		}
	}

	rows := rank.Finalize(pooled, params.Days*params.PerDay, p.shuffle)
	p.info("run finished", "pooled", len(pooled), "rows", len(rows))

	result := domain.RunResult{
		Rows:      rows,
		SheetName: report.SheetName(now),
	}
	if p.recorder != nil {
		result.Logs = p.recorder.Entries()
	}
	return result, nil
}

func (p *Pipeline) processDay(ctx context.Context, query string, day time.Time, candidateCap int) ([]domain.ScoredItem, error) {
	candidates, err := p.source.Candidates(ctx, query, day)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("collect candidates: %w", ctx.Err())
		}
		p.warn("candidate source failed", "day", day.Format(domain.DateLayout), "error", err)
		return nil, nil
	}
	if candidateCap > 0 && len(candidates) > candidateCap {
		candidates = candidates[:candidateCap]
	}

	seenCandidates := map[urlnorm.DedupeKey]struct{}{}
	seenFinal := map[string]struct{}{}
	var items []domain.ScoredItem
	for idx, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("process candidates: %w", err)
		}
		p.debug("inspect candidate", "day", day.Format(domain.DateLayout), "index", idx+1, "total", len(candidates))

		key := urlnorm.KeyOf(cand.Title, urlnorm.Unwrap(cand.URL))
		if _, dup := seenCandidates[key]; dup {
			p.debug("duplicate candidate", "url", cand.URL)
			continue
		}
		seenCandidates[key] = struct{}{}

		item, ok := p.inspect(ctx, idx, cand, day)
		if !ok {
			continue
		}
		finalKey := urlnorm.NormalizeForDedupe(item.URL)
		if _, dup := seenFinal[finalKey]; dup {
			p.debug("duplicate article", "url", item.URL)
			continue
		}
		seenFinal[finalKey] = struct{}{}
		items = append(items, item)
	}

	p.info("day processed", "day", day.Format(domain.DateLayout), "candidates", len(candidates), "kept", len(items))
	return items, nil
}

// inspect fetches and scores a single candidate. Any failure drops it.
func (p *Pipeline) inspect(ctx context.Context, order int, cand domain.Candidate, day time.Time) (domain.ScoredItem, bool) {
	if p.scorer.Excluded(cand.Title, cand.URL) {
		p.debug("excluded candidate", "title", cand.Title)
		return domain.ScoredItem{}, false
	}

	page, err := p.fetcher.Fetch(ctx, cand.URL)
	if err != nil {
		p.warn("fetch failed", "url", cand.URL, "error", err)
		return domain.ScoredItem{}, false
	}
	doc, err := document.Parse(page.Markup)
	if err != nil {
		p.warn("parse failed", "url", page.FinalURL, "error", err)
		return domain.ScoredItem{}, false
	}
	if !p.classifier.IsKoreanSource(page.FinalURL, doc) {
		p.debug("non-korean source", "url", page.FinalURL)
		return domain.ScoredItem{}, false
	}

	summary := extract.Summary(doc, page.FinalURL, cand.Title)
	if p.scorer.Excluded(summary, page.FinalURL) {
		p.debug("excluded article", "url", page.FinalURL)
		return domain.ScoredItem{}, false
	}

	detail := extract.Detail(page, doc, p.location)
	host := urlnorm.Host(detail.FinalURL)
	if host == "" {
		host = urlnorm.Host(cand.URL)
	}
	link := detail.FinalURL
	if link == "" {
		link = cand.URL
	}
	published := day
	if detail.PublishedAt != nil {
		t := detail.PublishedAt.In(p.location)
		published = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
	}

	return domain.ScoredItem{
		Rank:          order,
		PriorityScore: p.scorer.Score(cand.Title, summary, detail.FinalURL, p.classifier.IsPriorityHost(detail.FinalURL)),
		Title:         cand.Title,
		URL:           link,
		Summary:       summary,
		Authors:       detail.Authors,
		AuthorsCell:   p.classifier.ReporterCell(host, detail.Authors),
		PublishedDate: published,
		Host:          host,
	}, true
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
