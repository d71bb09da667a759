package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "Asia/Seoul"
	configPathEnv   = "NEWS_SCRAPER_CONFIG"
	logLevelEnv     = "NEWS_SCRAPER_LOG_LEVEL"
	timezoneEnv     = "NEWS_SCRAPER_TIMEZONE"
	outputDirEnv    = "NEWS_SCRAPER_OUTPUT_DIR"
)

// Run parameter bounds accepted from the command line.
const (
	MinPerDay       = 1
	MaxPerDay       = 20
	MinDays         = 1
	MaxDays         = 14
	MinCandidateCap = 10
	MaxCandidateCap = 200
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Region  RegionConfig  `yaml:"region"`
	Search  SearchConfig  `yaml:"search"`
	Terms   TermsConfig   `yaml:"terms"`
	Domains DomainsConfig `yaml:"domains"`
	Run     RunConfig     `yaml:"run"`
	HTTP    HTTPConfig    `yaml:"http"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
}

// LoggingConfig sets the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RegionConfig defines the timezone that decides which day an article belongs to.
type RegionConfig struct {
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Location resolves the configured timezone to a time.Location.
func (r RegionConfig) Location() *time.Location {
	if r.location != nil {
		return r.location
	}
	return loadLocation(defaultTimezone)
}

// SearchConfig points at the aggregator endpoints.
type SearchConfig struct {
	// OriginalURL is a saved results-page URL whose q parameter seeds the query.
	OriginalURL string `yaml:"originalUrl"`
	ResultsURL  string `yaml:"resultsUrl"`
	FeedURL     string `yaml:"feedUrl"`
}

// TermWeight is a scoring keyword.
type TermWeight struct {
	Term   string `yaml:"term"`
	Weight int    `yaml:"weight"`
}

// TermsConfig groups the keyword lists.
type TermsConfig struct {
	// Priority lists the selectable query terms.
	Priority []string     `yaml:"priority"`
	Weights  []TermWeight `yaml:"weights"`
	Excluded []string     `yaml:"excluded"`
}

// DomainsConfig groups host lists used by the classifier.
type DomainsConfig struct {
	Priority   []string          `yaml:"priority"`
	Korean     []string          `yaml:"korean"`
	Publishers map[string]string `yaml:"publishers"`
}

// RunConfig holds per-run selection limits.
type RunConfig struct {
	PerDay       int `yaml:"perDay"`
	Days         int `yaml:"days"`
	CandidateCap int `yaml:"candidateCap"`
}

// HTTPConfig tunes the article fetcher.
type HTTPConfig struct {
	Timeout        time.Duration `yaml:"timeout"`
	MaxAttempts    int           `yaml:"maxAttempts"`
	BackoffStep    time.Duration `yaml:"backoffStep"`
	UserAgents     []string      `yaml:"userAgents"`
	AcceptLanguage string        `yaml:"acceptLanguage"`
	BotCheckMarker string        `yaml:"botCheckMarker"`
}

// OutputConfig says where report files go.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	BaseName string `yaml:"baseName"`
}

// ReportConfig fills the HTML preamble.
type ReportConfig struct {
	Sender string `yaml:"sender"`
	Topic  string `yaml:"topic"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
// An empty path falls back to NEWS_SCRAPER_CONFIG.
func Load(path string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

// Validate checks the run limits against the accepted bounds.
func (c Config) Validate() error {
	return c.Run.Validate()
}

// Validate checks each limit against its accepted range.
func (r RunConfig) Validate() error {
	if r.PerDay < MinPerDay || r.PerDay > MaxPerDay {
		return fmt.Errorf("per-day must be within %d..%d, got %d", MinPerDay, MaxPerDay, r.PerDay)
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("days must be within %d..%d, got %d", MinDays, MaxDays, r.Days)
	}
	if r.CandidateCap < MinCandidateCap || r.CandidateCap > MaxCandidateCap {
		return fmt.Errorf("candidate cap must be within %d..%d, got %d", MinCandidateCap, MaxCandidateCap, r.CandidateCap)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(timezoneEnv); v != "" {
		c.Region.Timezone = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Region.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	c.Region.location = loadLocation(tz)
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc
	}
	log.Printf("config: unknown timezone %s, reverting to fixed KST", name)
	return time.FixedZone("KST", 9*60*60)
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Region.Timezone != "" {
		base.Region.Timezone = override.Region.Timezone
	}

	if override.Search.OriginalURL != "" {
		base.Search.OriginalURL = override.Search.OriginalURL
	}
	if override.Search.ResultsURL != "" {
		base.Search.ResultsURL = override.Search.ResultsURL
	}
	if override.Search.FeedURL != "" {
		base.Search.FeedURL = override.Search.FeedURL
	}

	if len(override.Terms.Priority) > 0 {
		base.Terms.Priority = override.Terms.Priority
	}
	if len(override.Terms.Weights) > 0 {
		base.Terms.Weights = override.Terms.Weights
	}
	if len(override.Terms.Excluded) > 0 {
		base.Terms.Excluded = override.Terms.Excluded
	}

	if len(override.Domains.Priority) > 0 {
		base.Domains.Priority = override.Domains.Priority
	}
	if len(override.Domains.Korean) > 0 {
		base.Domains.Korean = override.Domains.Korean
	}
	for host, name := range override.Domains.Publishers {
		base.Domains.Publishers[host] = name
	}

	if override.Run.PerDay != 0 {
		base.Run.PerDay = override.Run.PerDay
	}
	if override.Run.Days != 0 {
		base.Run.Days = override.Run.Days
	}
	if override.Run.CandidateCap != 0 {
		base.Run.CandidateCap = override.Run.CandidateCap
	}

	if override.HTTP.Timeout > 0 {
		base.HTTP.Timeout = override.HTTP.Timeout
	}
	if override.HTTP.MaxAttempts > 0 {
		base.HTTP.MaxAttempts = override.HTTP.MaxAttempts
	}
	if override.HTTP.BackoffStep > 0 {
		base.HTTP.BackoffStep = override.HTTP.BackoffStep
	}
	if len(override.HTTP.UserAgents) > 0 {
		base.HTTP.UserAgents = override.HTTP.UserAgents
	}
	if override.HTTP.AcceptLanguage != "" {
		base.HTTP.AcceptLanguage = override.HTTP.AcceptLanguage
	}
	if override.HTTP.BotCheckMarker != "" {
		base.HTTP.BotCheckMarker = override.HTTP.BotCheckMarker
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.BaseName != "" {
		base.Output.BaseName = override.Output.BaseName
	}

	if override.Report.Sender != "" {
		base.Report.Sender = override.Report.Sender
	}
	if override.Report.Topic != "" {
		base.Report.Topic = override.Report.Topic
	}

	return base
}
