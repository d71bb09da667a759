package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"NewsScraper/internal/classify"
	"NewsScraper/internal/config"
	"NewsScraper/internal/domain"
	"NewsScraper/internal/infrastructure/console"
	"NewsScraper/internal/infrastructure/fetcher"
	"NewsScraper/internal/infrastructure/parser"
	"NewsScraper/internal/infrastructure/storage"
	"NewsScraper/internal/logging"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/rank"
	"NewsScraper/internal/report"
	"NewsScraper/internal/scanner"
	"NewsScraper/internal/usecase"
)

const baseNameLayout = "20060102_150405"

// DefaultBaseNamePrefix starts generated report file names.
const DefaultBaseNamePrefix = "에너지뉴스_"

// RunOptions are the per-invocation choices of the operator.
type RunOptions struct {
	Params   usecase.Params
	BaseName string
	Preview  bool
}

// Outcome is what a single invocation produced.
type Outcome struct {
	Result domain.RunResult
	Files  []string
}

// Application wires configs to use cases.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	writer    ports.ReportWriter
	previewer ports.Previewer
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a runnable application instance. The recorder, when given,
// captures the run log returned in the result.
func New(cfg config.Config, baseLogger *slog.Logger, recorder *logging.Recorder, out io.Writer) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	loc := cfg.Region.Location()

	httpFetcher := fetcher.New(cfg.HTTP, &http.Client{}, baseLogger.With("component", "fetcher"))

	registry := scanner.NewRegistry()
	registry.Register(parser.NewSearchPageScanner(httpFetcher, cfg.Search.ResultsURL))
	registry.Register(parser.NewFeedScanner(httpFetcher, cfg.Search.FeedURL))

	source := parser.NewStrategySource(registry, loc, baseLogger.With("component", "source"))

	deps := usecase.PipelineDeps{
		Source:     source,
		Fetcher:    httpFetcher,
		Classifier: classify.New(cfg.Domains),
		Scorer:     rank.NewScorer(cfg.Terms),
		Search:     cfg.Search,
		Terms:      cfg.Terms,
		Location:   loc,
		Logger:     baseLogger.With("component", "pipeline"),
	}
	if recorder != nil {
		deps.Recorder = recorder
	}

	return &Application{
		cfg:       cfg,
		pipeline:  usecase.NewPipeline(deps),
		writer:    storage.NewFileWriter(cfg.Output.Dir),
		previewer: console.NewTablePreviewer(out),
		logger:    baseLogger.With("component", "app"),
		now:       time.Now,
	}
}

// Run performs a single collection run, writes the report files and
// optionally prints a preview.
func (a *Application) Run(ctx context.Context, opts RunOptions) (Outcome, error) {
	result, err := a.pipeline.Run(ctx, opts.Params)
	if err != nil {
		return Outcome{}, fmt.Errorf("run pipeline: %w", err)
	}

	baseName := opts.BaseName
	if baseName == "" {
		baseName = a.cfg.Output.BaseName
	}
	if baseName == "" {
		baseName = DefaultBaseNamePrefix + a.now().In(a.cfg.Region.Location()).Format(baseNameLayout)
	}

	rep := report.Build(baseName, result, report.Greeting{Sender: a.cfg.Report.Sender, Topic: a.cfg.Report.Topic})
	files, err := a.writer.Write(ctx, rep)
	if err != nil {
		a.logger.Error("write report failed", "error", err)
		return Outcome{Result: result}, fmt.Errorf("write report: %w", err)
	}
	a.logger.Info("report written", "files", files, "rows", len(result.Rows), "sheet", result.SheetName)

	if opts.Preview {
		if err := a.previewer.Preview(result.Rows); err != nil {
			a.logger.Warn("preview failed", "error", err)
		}
	}

	return Outcome{Result: result, Files: files}, nil
}
