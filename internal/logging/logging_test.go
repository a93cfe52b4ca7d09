package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewWritesMessageOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("env_setup.py: Setting DEMO_GREETING")
	if got, want := buf.String(), "env_setup.py: Setting DEMO_GREETING\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("hidden", zap.Int("tokens", 3))
	if buf.Len() != 0 {
		t.Fatalf("expected debug entry to be dropped, got %q", buf.String())
	}
}

func TestNewDebugIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("parsed", zap.Int("tokens", 3))
	out := buf.String()
	if !strings.HasPrefix(out, "parsed ") || !strings.Contains(out, `"tokens": 3`) {
		t.Fatalf("unexpected debug output %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
