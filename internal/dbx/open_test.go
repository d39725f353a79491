package dbx

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/lightbnb/internal/logging"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logCall struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	calls *[]logCall
	with  []any
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{calls: &[]logCall{}}
}

func (r *recordingLogger) record(level, msg string, args []any) {
	*r.calls = append(*r.calls, logCall{level: level, msg: msg, args: append(append([]any{}, r.with...), args...)})
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) { r.record("debug", msg, args) }
func (r *recordingLogger) Info(_ context.Context, msg string, args ...any)  { r.record("info", msg, args) }
func (r *recordingLogger) Warn(_ context.Context, msg string, args ...any)  { r.record("warn", msg, args) }
func (r *recordingLogger) Error(_ context.Context, msg string, args ...any) { r.record("error", msg, args) }
func (r *recordingLogger) With(args ...any) logging.Logger {
	return &recordingLogger{calls: r.calls, with: append(append([]any{}, r.with...), args...)}
}

func TestQueryLogger_MapsLevelsAndSortsData(t *testing.T) {
	rec := newRecordingLogger()
	ql := QueryLogger(rec)
	ctx := context.Background()

	ql.Log(ctx, tracelog.LogLevelInfo, "Query", map[string]any{"sql": "SELECT 1", "args": []any{}})
	ql.Log(ctx, tracelog.LogLevelWarn, "slow", nil)
	ql.Log(ctx, tracelog.LogLevelError, "Query", map[string]any{"err": "boom"})

	calls := *rec.calls
	require.Len(t, calls, 3)

	assert.Equal(t, "debug", calls[0].level)
	assert.Equal(t, []any{"module", "pgx", "arg_count", 0, "sql", "SELECT 1"}, calls[0].args)

	assert.Equal(t, "warn", calls[1].level)
	assert.Equal(t, "error", calls[2].level)
	assert.Equal(t, []any{"module", "pgx", "err", "boom"}, calls[2].args)
}

func TestQueryLogger_OmitsArgumentValues(t *testing.T) {
	rec := newRecordingLogger()
	ql := QueryLogger(rec)

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	ql.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "INSERT INTO users (name, email, password) VALUES ($1, $2, $3)",
		"args": []any{"Jo", "jo@example.com", hash},
	})

	calls := *rec.calls
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].args, "arg_count")
	assert.Contains(t, calls[0].args, 3)
	assert.NotContains(t, calls[0].args, "args")
	assert.NotContains(t, fmt.Sprint(calls[0].args...), hash)
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := Open(context.Background(), "postgres://%zz", nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dsn")
}
