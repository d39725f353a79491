package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonRecords decodes the JSON lines written by a slog-backed Logger.
func jsonRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		rec := map[string]any{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), sc.Text())
		out = append(out, rec)
	}
	return out
}

func newJSONSlog(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(BackendSlog, level, &buf)
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, l)
	return l, &buf
}

func TestSlogLogger_LevelsAsJSON(t *testing.T) {
	log, buf := newJSONSlog(t, "debug")
	ctx := context.Background()

	log.Debug(ctx, "Query", "sql", "SELECT 1")
	log.Info(ctx, "user created", "user_id", 11)
	log.Warn(ctx, "slow query", "ms", 250)
	log.Error(ctx, "data access failed", "op", "search properties")

	recs := jsonRecords(t, buf)
	require.Len(t, recs, 4)

	tests := []struct {
		level, msg, key string
		val             any
	}{
		{"DEBUG", "Query", "sql", "SELECT 1"},
		{"INFO", "user created", "user_id", float64(11)},
		{"WARN", "slow query", "ms", float64(250)},
		{"ERROR", "data access failed", "op", "search properties"},
	}
	for i, tc := range tests {
		assert.Equal(t, tc.level, recs[i]["level"])
		assert.Equal(t, tc.msg, recs[i]["msg"])
		assert.Equal(t, tc.val, recs[i][tc.key])
	}
}

func TestSlogLogger_WithModuleScopesChild(t *testing.T) {
	log, buf := newJSONSlog(t, "info")
	ctx := context.Background()

	data := log.With("module", "data_access")
	data.Error(ctx, "data access failed", "op", "find user by id", "kind", "internal error", "user_id", 1)
	log.Info(ctx, "applying schema migrations")

	recs := jsonRecords(t, buf)
	require.Len(t, recs, 2)

	assert.Equal(t, "data_access", recs[0]["module"])
	assert.Equal(t, "find user by id", recs[0]["op"])
	assert.Equal(t, float64(1), recs[0]["user_id"])

	_, scoped := recs[1]["module"]
	assert.False(t, scoped, "With must not change the parent logger")
}

func TestSlogLogger_NestedWithKeepsBothAttributes(t *testing.T) {
	log, buf := newJSONSlog(t, "debug")

	log.With("module", "pgx").With("pid", 42).Debug(context.Background(), "Query")

	recs := jsonRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "pgx", recs[0]["module"])
	assert.Equal(t, float64(42), recs[0]["pid"])
}

func TestSlogLogger_BelowThresholdIsDropped(t *testing.T) {
	log, buf := newJSONSlog(t, "error")
	ctx := context.Background()

	log.Debug(ctx, "Query")
	log.Info(ctx, "property created")
	log.Warn(ctx, "slow query")

	assert.Empty(t, jsonRecords(t, buf))
}
