package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, LevelInfo)

	logger.Info("league scraped", "league", "Indonesia", "teams", 18)
	logger.Debug("hidden below level")

	out := buf.String()
	if !strings.Contains(out, "league scraped") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"league": "Indonesia"`) {
		t.Fatalf("expected league field in output, got %q", out)
	}
	if strings.Contains(out, "hidden below level") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}

func TestSetMirror_ReceivesContextEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, LevelInfo)

	var got []string
	SetMirror(func(_ context.Context, _ Level, msg string, _ ...any) {
		got = append(got, msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.InfoContext(t.Context(), "mirrored")
	logger.DebugContext(t.Context(), "filtered")
	logger.Info("no context, not mirrored")

	if len(got) != 1 || got[0] != "mirrored" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}
}

func TestZapFields_OddArgsAndErrors(t *testing.T) {
	fields := zapFields([]any{"error", errors.New("boom"), 42, "x", "dangling"})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected non-string key to become arg, got %q", fields[1].Key)
	}
	if fields[2].Key != "dangling" {
		t.Fatalf("expected dangling key to be kept, got %q", fields[2].Key)
	}
}
