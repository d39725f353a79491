package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestZerolog(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)), &buf
}

func TestZerologLogger_Levels(t *testing.T) {
	log, buf := newTestZerolog(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	wantSubs := []string{
		`"level":"debug"`, `"message":"dbg"`, `"a":1`,
		`"level":"info"`, `"message":"inf"`, `"b":2`,
		`"level":"warn"`, `"message":"wrn"`, `"c":3`,
		`"level":"error"`, `"message":"err"`, `"d":4`,
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %s in output:\n%s", s, out)
		}
	}
}

func TestZerologLogger_With_AddsFields(t *testing.T) {
	log, buf := newTestZerolog(t)

	log.With("module", "users").Info(context.Background(), "hello", "id", 7)

	out := buf.String()
	for _, s := range []string{`"module":"users"`, `"id":7`, `"message":"hello"`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %s in output:\n%s", s, out)
		}
	}
}
