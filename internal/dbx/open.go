package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/dmitrijs2005/lightbnb/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
)

// PingTimeout bounds the startup connectivity check.
const PingTimeout = 10 * time.Second

// Open creates the process-wide connection pool for dsn through the pgx stdlib
// driver and checks that the database answers. When traceQueries is set, every
// statement is logged through logger at debug level.
func Open(ctx context.Context, dsn string, logger logging.Logger, traceQueries bool) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if traceQueries && logger != nil {
		cfg.Tracer = &tracelog.TraceLog{
			Logger:   QueryLogger(logger),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	db := stdlib.OpenDB(*cfg)

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// QueryLogger adapts logging.Logger to the pgx tracelog interface.
// Trace data is flattened into key-value pairs in key order. Bound query
// arguments (password hashes among them) are never logged, only their count.
func QueryLogger(logger logging.Logger) tracelog.Logger {
	l := logger.With("module", "pgx")
	return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		args := make([]any, 0, len(data)*2)
		for _, k := range slices.Sorted(maps.Keys(data)) {
			if k == "args" {
				args = append(args, "arg_count", argCount(data[k]))
				continue
			}
			args = append(args, k, data[k])
		}

		switch level {
		case tracelog.LogLevelError:
			l.Error(ctx, msg, args...)
		case tracelog.LogLevelWarn:
			l.Warn(ctx, msg, args...)
		default:
			l.Debug(ctx, msg, args...)
		}
	})
}

func argCount(v any) int {
	if a, ok := v.([]any); ok {
		return len(a)
	}
	return 0
}
