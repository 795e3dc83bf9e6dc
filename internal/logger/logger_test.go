package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	quiet, err := New(false, false)
	if err != nil {
		t.Fatalf("building the default logger: %v", err)
	}
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug output to be off by default")
	}

	verbose, err := New(true, true)
	if err != nil {
		t.Fatalf("building the debug logger: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug output to be enabled")
	}
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("  short  ", 10); got != "short" {
		t.Fatalf("expected trimming without truncation, got %q", got)
	}
	if got := TruncateForLog("0123456789", 4); got != "0123..." {
		t.Fatalf("expected truncation with an ellipsis, got %q", got)
	}
	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected an empty string for a zero limit, got %q", got)
	}
}
