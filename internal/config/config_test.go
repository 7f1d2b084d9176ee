package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := config.FromLookup(lookup(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := config.FromLookup(lookup(map[string]string{
		"ONCOSCREEN_HTTP_ADDR":      "127.0.0.1:9000",
		"ONCOSCREEN_LOG_FORMAT":     "json",
		"ONCOSCREEN_CATALOG_SOURCE": "dir",
		"ONCOSCREEN_CATALOG_PATH":   "./catalogs",
		"ONCOSCREEN_STORE":          "redis",
		"ONCOSCREEN_REDIS_DB":       "2",
		"ONCOSCREEN_SESSION_TTL":    "15m",
		"ONCOSCREEN_METRICS":        "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, config.SourceDir, cfg.CatalogSource)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.Metrics)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad int":         {"ONCOSCREEN_REDIS_DB": "two"},
		"bad duration":    {"ONCOSCREEN_SESSION_TTL": "forever"},
		"bad bool":        {"ONCOSCREEN_METRICS": "maybe"},
		"unknown store":   {"ONCOSCREEN_STORE": "etcd"},
		"dir needs path":  {"ONCOSCREEN_CATALOG_SOURCE": "dir"},
		"bad log format":  {"ONCOSCREEN_LOG_FORMAT": "xml"},
		"zero input size": {"ONCOSCREEN_MAX_INPUT_SIZE": "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromLookup(lookup(env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ONCOSCREEN_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("ONCOSCREEN_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("ONCOSCREEN_LOG_LEVEL"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
