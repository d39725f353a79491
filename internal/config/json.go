package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lightbnb/internal/flagx"
	"github.com/dmitrijs2005/lightbnb/internal/timex"
)

// JsonConfig is the on-disk shape of Config. It uses timex.Duration so the
// cache TTL can be written as "10m".
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	LogBackend     string         `json:"log_backend"`
	LogLevel       string         `json:"log_level"`
	TraceSQL       bool           `json:"trace_sql"`
	UserCacheSize  int            `json:"user_cache_size"`
	UserCacheTTL   timex.Duration `json:"user_cache_ttl"`
	MigrateOnStart bool           `json:"migrate_on_start"`
	DefaultLimit   int            `json:"default_limit"`
}

// parseJson overlays config with the JSON file named by -c / -config.
// Keys missing from the file keep their current values. With no flag given
// nothing is loaded.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		DatabaseDSN:    config.DatabaseDSN,
		LogBackend:     config.LogBackend,
		LogLevel:       config.LogLevel,
		TraceSQL:       config.TraceSQL,
		UserCacheSize:  config.UserCacheSize,
		UserCacheTTL:   timex.Duration{Duration: config.UserCacheTTL},
		MigrateOnStart: config.MigrateOnStart,
		DefaultLimit:   config.DefaultLimit,
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.LogBackend = c.LogBackend
	config.LogLevel = c.LogLevel
	config.TraceSQL = c.TraceSQL
	config.UserCacheSize = c.UserCacheSize
	config.UserCacheTTL = c.UserCacheTTL.Duration
	config.MigrateOnStart = c.MigrateOnStart
	config.DefaultLimit = c.DefaultLimit
	return nil
}
