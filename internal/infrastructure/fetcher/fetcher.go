// Package fetcher downloads article and result pages with retries, rotating
// user agents and bot-check detection.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"NewsScraper/internal/config"
	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
	"NewsScraper/internal/retry"
	"NewsScraper/internal/urlnorm"
)

var (
	// ErrUnreachable wraps the last failure once every attempt is spent.
	ErrUnreachable = errors.New("page unreachable")
	// ErrBotCheck marks a response redirected to the aggregator's bot check.
	ErrBotCheck = errors.New("redirected to bot check")
)

const defaultUserAgent = "Mozilla/5.0 (compatible; NewsScraper/1.0)"

// maxBodyBytes caps a single page download.
const maxBodyBytes = 8 << 20

// Option customises a Fetcher.
type Option func(*Fetcher)

// WithClock replaces the clock used for user-agent rotation.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) { f.now = now }
}

// WithSleeper replaces the backoff sleeper.
func WithSleeper(sleep retry.Sleeper) Option {
	return func(f *Fetcher) { f.policy.Sleep = sleep }
}

// Fetcher implements PageFetcher over net/http.
type Fetcher struct {
	client         *http.Client
	policy         retry.Policy
	timeout        time.Duration
	agents         []string
	acceptLanguage string
	botCheck       string
	now            func() time.Time
	logger         *slog.Logger
}

var _ ports.PageFetcher = (*Fetcher)(nil)

// New builds a Fetcher from the HTTP settings. A nil client means a fresh
// http.Client.
func New(cfg config.HTTPConfig, client *http.Client, logger *slog.Logger, opts ...Option) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	agents := cfg.UserAgents
	if len(agents) == 0 {
		agents = []string{defaultUserAgent}
	}

	f := &Fetcher{
		client: client,
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     retry.Linear(cfg.BackoffStep),
			Sleep:       retry.SleepContext,
		},
		timeout:        cfg.Timeout,
		agents:         append([]string(nil), agents...),
		acceptLanguage: cfg.AcceptLanguage,
		botCheck:       cfg.BotCheckMarker,
		now:            time.Now,
		logger:         logger,
	}
	if cfg.BackoffStep <= 0 {
		f.policy.Backoff = nil
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch unwraps redirect links and downloads the target page. Any error
// after the last attempt wraps ErrUnreachable.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (domain.Page, error) {
	target := urlnorm.Unwrap(rawURL)

	// A per-attempt timeout is transient; only the caller's context ends the loop.
	policy := f.policy
	policy.Retryable = func(error) bool { return ctx.Err() == nil }

	var page domain.Page
	err := retry.Do(ctx, policy, func(attempt int) error {
		p, err := f.fetchOnce(ctx, target)
		if err != nil {
			f.debug("fetch attempt failed", "url", target, "attempt", attempt, "error", err)
			return err
		}
		page = p
		return nil
	})
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: %s: %w", ErrUnreachable, target, err)
	}
	return page, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, target string) (domain.Page, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent())
	if f.acceptLanguage != "" {
		req.Header.Set("Accept-Language", f.acceptLanguage)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Page{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	if f.isBotCheck(finalURL) {
		return domain.Page{}, fmt.Errorf("%w: %s", ErrBotCheck, finalURL)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{FinalURL: finalURL, Markup: body}, nil
}

func (f *Fetcher) userAgent() string {
	idx := f.now().Unix() % int64(len(f.agents))
	if idx < 0 {
		idx = -idx
	}
	return f.agents[idx]
}

func (f *Fetcher) isBotCheck(finalURL string) bool {
	return f.botCheck != "" && strings.HasPrefix(finalURL, f.botCheck)
}

func decodeBody(resp *http.Response) (string, error) {
	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(raw), nil
}

func (f *Fetcher) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
