package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"NewsScraper/internal/app"
	"NewsScraper/internal/config"
	"NewsScraper/internal/logging"
	"NewsScraper/internal/textutil"
	"NewsScraper/internal/usecase"
)

type runFlags struct {
	configPath string
	logLevel   string
	terms      []string
	custom     string
	perDay     int
	days       int
	candCap    int
	outDir     string
	name       string
	preview    bool
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "newsscraper",
		Short:         "Collect ranked Korean energy news into a weekly report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search, rank and write the news report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "path to a YAML config file (defaults to $NEWS_SCRAPER_CONFIG)")
	flags.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringSliceVar(&f.terms, "terms", nil, "priority terms to search (defaults to all configured terms)")
	flags.StringVar(&f.custom, "custom", "", "extra comma separated search terms")
	flags.IntVar(&f.perDay, "per-day", 0, fmt.Sprintf("articles kept per day (%d-%d)", config.MinPerDay, config.MaxPerDay))
	flags.IntVar(&f.days, "days", 0, fmt.Sprintf("days to look back, today included (%d-%d)", config.MinDays, config.MaxDays))
	flags.IntVar(&f.candCap, "cand-cap", 0, fmt.Sprintf("candidates inspected per day (%d-%d)", config.MinCandidateCap, config.MaxCandidateCap))
	flags.StringVar(&f.outDir, "out-dir", "", "directory for the report files")
	flags.StringVar(&f.name, "name", "", "report file name without extension")
	flags.BoolVar(&f.preview, "preview", false, "print the result table when done")

	return cmd
}

func execute(cmd *cobra.Command, f *runFlags) error {
	cfg := config.Load(f.configPath)
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.outDir != "" {
		cfg.Output.Dir = f.outDir
	}
	if cmd.Flags().Changed("per-day") {
		cfg.Run.PerDay = f.perDay
	}
	if cmd.Flags().Changed("days") {
		cfg.Run.Days = f.days
	}
	if cmd.Flags().Changed("cand-cap") {
		cfg.Run.CandidateCap = f.candCap
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected, err := selectTerms(cfg.Terms.Priority, f.terms)
	if err != nil {
		return err
	}

	recorder := logging.NewRecorder(logging.DefaultRecorderCapacity, slog.LevelInfo)
	logger := slog.New(logging.Tee(logging.NewConsoleHandler(os.Stdout, cfg.Logging.Level), recorder))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger, recorder, cmd.OutOrStdout())
	outcome, err := application.Run(ctx, app.RunOptions{
		Params: usecase.Params{
			Selected:     selected,
			Custom:       textutil.SplitList(f.custom),
			PerDay:       cfg.Run.PerDay,
			Days:         cfg.Run.Days,
			CandidateCap: cfg.Run.CandidateCap,
		},
		BaseName: f.name,
		Preview:  f.preview,
	})
	if err != nil {
		logger.Error("run failed", "error", err)
		return err
	}

	for _, path := range outcome.Files {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// selectTerms keeps the requested terms that exist in the priority list.
func selectTerms(priority, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, nil
	}
	known := make(map[string]struct{}, len(priority))
	for _, t := range priority {
		known[t] = struct{}{}
	}
	var out []string
	for _, t := range requested {
		if _, ok := known[t]; !ok {
			return nil, fmt.Errorf("unknown priority term %q", t)
		}
		out = append(out, t)
	}
	return out, nil
}
