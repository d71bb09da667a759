package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(timezoneEnv, "")
	t.Setenv(outputDirEnv, "")

	cfg := Load("")

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Run.PerDay)
	assert.Equal(t, 7, cfg.Run.Days)
	assert.Equal(t, 40, cfg.Run.CandidateCap)
	assert.Equal(t, 25*time.Second, cfg.HTTP.Timeout)
	assert.Contains(t, cfg.Terms.Excluded, "배구")
	assert.Equal(t, "전자신문", cfg.Domains.Publishers["etnews.com"])

	_, offset := time.Date(2025, time.October, 1, 12, 0, 0, 0, cfg.Region.Location()).Zone()
	assert.Equal(t, 9*60*60, offset)
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scraper.yaml")
	raw := `
logging:
  level: warn
run:
  perDay: 3
terms:
  excluded: ["야구"]
domains:
  publishers:
    example.kr: 예시일보
http:
  timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	t.Setenv(configPathEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(timezoneEnv, "")
	t.Setenv(outputDirEnv, "/tmp/reports")

	cfg := Load(path)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Run.PerDay)
	assert.Equal(t, 7, cfg.Run.Days, "unset values keep defaults")
	assert.Equal(t, []string{"야구"}, cfg.Terms.Excluded)
	assert.Equal(t, "예시일보", cfg.Domains.Publishers["example.kr"])
	assert.Equal(t, "전자신문", cfg.Domains.Publishers["etnews.com"])
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "/tmp/reports", cfg.Output.Dir)
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(timezoneEnv, "")
	t.Setenv(outputDirEnv, "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		run  RunConfig
		ok   bool
	}{
		{"defaults", RunConfig{PerDay: 5, Days: 7, CandidateCap: 40}, true},
		{"bounds", RunConfig{PerDay: 20, Days: 14, CandidateCap: 200}, true},
		{"per day too high", RunConfig{PerDay: 21, Days: 7, CandidateCap: 40}, false},
		{"zero days", RunConfig{PerDay: 5, Days: 0, CandidateCap: 40}, false},
		{"cap too low", RunConfig{PerDay: 5, Days: 7, CandidateCap: 9}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Run = c.run
			err := cfg.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUnknownTimezoneFallsBackToKST(t *testing.T) {
	loc := loadLocation("Mars/Olympus")
	_, offset := time.Date(2025, time.January, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 9*60*60, offset)
}
