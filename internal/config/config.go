// Package config loads the host configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "ONCOSCREEN_"

// Catalog sources.
const (
	SourceBuiltin = "builtin"
	SourceDir     = "dir"
	SourceLoam    = "loam"
)

// Session store drivers.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds the settings shared by all hosts.
type Config struct {
	HTTPAddr string `validate:"required"`

	LogLevel  string `validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `validate:"oneof=text json"`

	CatalogSource string `validate:"oneof=builtin dir loam"`
	CatalogPath   string `validate:"required_unless=CatalogSource builtin"`

	Store         string `validate:"oneof=memory redis"`
	RedisAddr     string `validate:"required_if=Store redis"`
	RedisPassword string
	RedisDB       int           `validate:"gte=0"`
	RedisPrefix   string        `validate:"required_if=Store redis"`
	SessionTTL    time.Duration `validate:"gte=0"`

	Metrics      bool
	MaxInputSize int `validate:"gt=0"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		CatalogSource: SourceBuiltin,
		Store:         StoreMemory,
		RedisAddr:     "localhost:6379",
		RedisPrefix:   "oncoscreen:",
		SessionTTL:    time.Hour,
		Metrics:       true,
		MaxInputSize:  4096,
	}
}

// Load reads the optional dotenv files (".env" when none is given) and then
// the process environment. Variables already set in the environment win over
// the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a configuration from a variable lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	r := reader{lookup: lookup}

	r.str("HTTP_ADDR", &cfg.HTTPAddr)
	r.str("LOG_LEVEL", &cfg.LogLevel)
	r.str("LOG_FORMAT", &cfg.LogFormat)
	r.str("CATALOG_SOURCE", &cfg.CatalogSource)
	r.str("CATALOG_PATH", &cfg.CatalogPath)
	r.str("STORE", &cfg.Store)
	r.str("REDIS_ADDR", &cfg.RedisAddr)
	r.str("REDIS_PASSWORD", &cfg.RedisPassword)
	r.int("REDIS_DB", &cfg.RedisDB)
	r.str("REDIS_PREFIX", &cfg.RedisPrefix)
	r.duration("SESSION_TTL", &cfg.SessionTTL)
	r.bool("METRICS", &cfg.Metrics)
	r.int("MAX_INPUT_SIZE", &cfg.MaxInputSize)

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) get(key string) (string, bool) {
	v, ok := r.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (r *reader) str(key string, dst *string) {
	if v, ok := r.get(key); ok {
		*dst = v
	}
}

func (r *reader) int(key string, dst *int) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = n
}

func (r *reader) bool(key string, dst *bool) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = b
}

func (r *reader) duration(key string, dst *time.Duration) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		return
	}
	*dst = d
}
