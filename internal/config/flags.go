package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lightbnb/internal/flagx"
)

// Flags recognized by parseFlags. Other arguments belong to the commands.
var configFlags = []string{
	"-d", "-log-backend", "-log-level", "-trace-sql", "-cache-size", "-cache-ttl", "-migrate", "-limit-default",
}

// parseFlags overlays config with command-line flags.
//
// Supported flags:
//
//	-d string              PostgreSQL DSN
//	-log-backend string    slog or zerolog
//	-log-level string      debug, info, warn or error
//	-trace-sql             log every SQL statement
//	-cache-size int        users kept in the cache (0 disables the cache)
//	-cache-ttl duration    user cache entry lifetime, e.g. 10m
//	-migrate               apply the embedded schema on start
//	-limit-default int     default result cap
//
// Arguments are first narrowed with flagx.FilterArgs so command flags do not
// collide with these.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], configFlags)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogBackend, "log-backend", config.LogBackend, "log backend (slog|zerolog)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.BoolVar(&config.TraceSQL, "trace-sql", config.TraceSQL, "log SQL statements")
	fs.IntVar(&config.UserCacheSize, "cache-size", config.UserCacheSize, "users kept in the lookup cache, 0 disables")
	fs.DurationVar(&config.UserCacheTTL, "cache-ttl", config.UserCacheTTL, "user cache TTL")
	fs.BoolVar(&config.MigrateOnStart, "migrate", config.MigrateOnStart, "apply schema migrations on start")
	fs.IntVar(&config.DefaultLimit, "limit-default", config.DefaultLimit, "default result limit")

	// FilterArgs keeps the word after a boolean flag as its value; such a stray
	// positional stops fs.Parse, so skip it and continue with the rest.
	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("parse flags: %w", err)
		}
		args = fs.Args()
		if len(args) > 0 {
			args = args[1:]
		}
	}
	return nil
}
