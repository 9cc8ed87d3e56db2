package config_test

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/dijkstra"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1.5, cfg.Units.Scale)
	assert.Equal(t, 65.0, cfg.Units.WalkingSpeed)
	assert.Equal(t, "heap", cfg.Routing.Strategy)
	assert.Equal(t, []string{"building", "gate"}, cfg.Routing.KeyCategories)
	assert.Equal(t, 250*time.Millisecond, cfg.Data.Debounce)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "campusnav.yaml", `
data:
  path: /srv/campus/pathways.yaml
  watch: true
  debounce: 1s
units:
  scale: 2
routing:
  strategy: linear-scan
  cache_workers: 4
server:
  addr: 127.0.0.1:9000
logging:
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/srv/campus/pathways.yaml", cfg.Data.Path)
	assert.True(t, cfg.Data.Watch)
	assert.Equal(t, time.Second, cfg.Data.Debounce)
	assert.Equal(t, 2.0, cfg.Units.Scale)
	assert.Equal(t, 65.0, cfg.Units.WalkingSpeed, "unset fields keep defaults")
	assert.Equal(t, dijkstra.StrategyLinearScan, cfg.Strategy())
	assert.Equal(t, 4, cfg.Routing.CacheWorkers)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "campusnav.json", `{"units": {"walking_speed": 80}, "routing": {"key_categories": ["entrance"]}}`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.Units.WalkingSpeed)
	assert.Equal(t, []campus.Category{campus.CategoryEntrance}, cfg.KeyCategories())
}

func TestLoad_UnparsableFile(t *testing.T) {
	p := writeFile(t, "broken.yaml", "units: [\n")
	_, err := config.Load(p)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "campusnav.yaml", "units:\n  scale: 2\nserver:\n  addr: ':9000'\n")
	t.Setenv("CAMPUSNAV_SCALE", "3.5")
	t.Setenv("CAMPUSNAV_ADDR", ":7000")
	t.Setenv("CAMPUSNAV_DATA_WATCH", "true")
	t.Setenv("CAMPUSNAV_DATA_DEBOUNCE", "75ms")
	t.Setenv("CAMPUSNAV_CACHE_WORKERS", "2")
	t.Setenv("CAMPUSNAV_KEY_CATEGORIES", "gate, entrance ,")
	t.Setenv("CAMPUSNAV_LOG_LEVEL", "debug")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.Units.Scale)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.True(t, cfg.Data.Watch)
	assert.Equal(t, 75*time.Millisecond, cfg.Data.Debounce)
	assert.Equal(t, 2, cfg.Routing.CacheWorkers)
	assert.Equal(t, []string{"gate", "entrance"}, cfg.Routing.KeyCategories)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_MalformedEnv(t *testing.T) {
	t.Setenv("CAMPUSNAV_WALKING_SPEED", "fast")
	t.Setenv("CAMPUSNAV_CACHE_WORKERS", "many")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAMPUSNAV_WALKING_SPEED")
	assert.Contains(t, err.Error(), "CAMPUSNAV_CACHE_WORKERS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"zero scale", func(c *config.Config) { c.Units.Scale = 0 }},
		{"negative speed", func(c *config.Config) { c.Units.WalkingSpeed = -1 }},
		{"infinite scale", func(c *config.Config) { c.Units.Scale = math.Inf(1) }},
		{"NaN speed", func(c *config.Config) { c.Units.WalkingSpeed = math.NaN() }},
		{"unknown strategy", func(c *config.Config) { c.Routing.Strategy = "astar" }},
		{"negative workers", func(c *config.Config) { c.Routing.CacheWorkers = -1 }},
		{"no key categories", func(c *config.Config) { c.Routing.KeyCategories = nil }},
		{"blank key category", func(c *config.Config) { c.Routing.KeyCategories = []string{""} }},
		{"no data path", func(c *config.Config) { c.Data.Path = "" }},
		{"zero debounce", func(c *config.Config) { c.Data.Debounce = 0 }},
		{"no addr", func(c *config.Config) { c.Server.Addr = "" }},
		{"bad gin mode", func(c *config.Config) { c.Server.Mode = "verbose" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestConverterAndEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Units.Scale = 2
	cfg.Units.WalkingSpeed = 50

	conv := cfg.Converter()
	assert.Equal(t, 20.0, conv.ToRealDistance(10))
	assert.Equal(t, 0.4, conv.ToWalkingTime(20))
	assert.Equal(t, conv, cfg.Engine().Converter())
	assert.NotEmpty(t, cfg.FinderOptions())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
