// Package config holds the application settings of the campusnav service and
// CLI.
//
// Settings are merged with priority environment > file > defaults. The file
// may be YAML or JSON. Environment variables use the CAMPUSNAV_ prefix:
//
//	CAMPUSNAV_DATA_PATH        data.path
//	CAMPUSNAV_DATA_WATCH       data.watch
//	CAMPUSNAV_DATA_DEBOUNCE    data.debounce (Go duration)
//	CAMPUSNAV_SCALE            units.scale (metres per map unit)
//	CAMPUSNAV_WALKING_SPEED    units.walking_speed (metres per minute)
//	CAMPUSNAV_STRATEGY         routing.strategy (heap | linear-scan)
//	CAMPUSNAV_CACHE_WORKERS    routing.cache_workers (0 = GOMAXPROCS)
//	CAMPUSNAV_KEY_CATEGORIES   routing.key_categories (comma separated)
//	CAMPUSNAV_ADDR             server.addr
//	CAMPUSNAV_GIN_MODE         server.mode (debug | release | test)
//	CAMPUSNAV_LOG_LEVEL        logging.level (debug | info | warn | error)
//	CAMPUSNAV_LOG_FORMAT       logging.format (text | json)
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/units"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" json:"data"`
	Units   UnitsConfig   `yaml:"units" json:"units"`
	Routing RoutingConfig `yaml:"routing" json:"routing"`
	Server  ServerConfig  `yaml:"server" json:"server"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DataConfig locates the pathway document.
type DataConfig struct {
	Path     string        `yaml:"path" json:"path" validate:"required"`
	Watch    bool          `yaml:"watch" json:"watch"`
	Debounce time.Duration `yaml:"debounce" json:"debounce"`
}

// UnitsConfig holds the map-to-world conversion constants.
type UnitsConfig struct {
	Scale        float64 `yaml:"scale" json:"scale" validate:"gt=0"`
	WalkingSpeed float64 `yaml:"walking_speed" json:"walking_speed" validate:"gt=0"`
}

// RoutingConfig tunes the route engine and the key-location cache.
type RoutingConfig struct {
	Strategy      string   `yaml:"strategy" json:"strategy" validate:"oneof=heap linear-scan"`
	CacheWorkers  int      `yaml:"cache_workers" json:"cache_workers" validate:"gte=0"`
	KeyCategories []string `yaml:"key_categories" json:"key_categories" validate:"min=1,dive,required"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" validate:"required"`
	Mode string `yaml:"mode" json:"mode" validate:"oneof=debug release test"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	keys := make([]string, len(campus.DefaultKeyCategories))
	for i, c := range campus.DefaultKeyCategories {
		keys[i] = string(c)
	}

	return Config{
		Data: DataConfig{
			Path:     "data/pathways.json",
			Debounce: loader.DefaultDebounce,
		},
		Units: UnitsConfig{
			Scale:        units.DefaultScale,
			WalkingSpeed: units.DefaultWalkingSpeed,
		},
		Routing: RoutingConfig{
			Strategy:      "heap",
			KeyCategories: keys,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load merges defaults, the file at path (optional; a missing file is not an
// error) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// YAML first, then JSON.
	if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return fmt.Errorf("parse (tried YAML and JSON): yaml: %v, json: %w", yerr, jerr)
		}
	}

	return nil
}

// loadEnv applies CAMPUSNAV_* overrides. Malformed numeric or boolean values
// are reported rather than ignored.
func loadEnv(cfg *Config) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}

	str("CAMPUSNAV_DATA_PATH", &cfg.Data.Path)
	if v := os.Getenv("CAMPUSNAV_DATA_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CAMPUSNAV_DATA_WATCH: %w", err))
		} else {
			cfg.Data.Watch = b
		}
	}
	if v := os.Getenv("CAMPUSNAV_DATA_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CAMPUSNAV_DATA_DEBOUNCE: %w", err))
		} else {
			cfg.Data.Debounce = d
		}
	}

	float("CAMPUSNAV_SCALE", &cfg.Units.Scale)
	float("CAMPUSNAV_WALKING_SPEED", &cfg.Units.WalkingSpeed)

	str("CAMPUSNAV_STRATEGY", &cfg.Routing.Strategy)
	if v := os.Getenv("CAMPUSNAV_CACHE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CAMPUSNAV_CACHE_WORKERS: %w", err))
		} else {
			cfg.Routing.CacheWorkers = n
		}
	}
	if v := os.Getenv("CAMPUSNAV_KEY_CATEGORIES"); v != "" {
		var cats []string
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cats = append(cats, c)
			}
		}
		cfg.Routing.KeyCategories = cats
	}

	str("CAMPUSNAV_ADDR", &cfg.Server.Addr)
	str("CAMPUSNAV_GIN_MODE", &cfg.Server.Mode)
	str("CAMPUSNAV_LOG_LEVEL", &cfg.Logging.Level)
	str("CAMPUSNAV_LOG_FORMAT", &cfg.Logging.Format)

	if len(errs) > 0 {
		return fmt.Errorf("config: environment: %w", errors.Join(errs...))
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field. All violations are reported together.
func (c Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	if math.IsInf(c.Units.Scale, 0) {
		problems = append(problems, "Config.Units.Scale must be finite")
	}
	if math.IsInf(c.Units.WalkingSpeed, 0) {
		problems = append(problems, "Config.Units.WalkingSpeed must be finite")
	}
	if c.Data.Debounce <= 0 {
		problems = append(problems, "Config.Data.Debounce must be > 0")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}
