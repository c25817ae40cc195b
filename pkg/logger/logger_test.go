package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAppLogger_ErrorCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("translate failed", errors.New("boom"), "provider", "deepl")
	l.Debug("page", "n", 1)

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "translate failed" {
		t.Fatalf("unexpected message: %s", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["provider"] != "deepl" {
		t.Fatalf("expected provider field, got %v", fields)
	}
	if fields["error"] == nil {
		t.Fatalf("expected error field, got %v", fields)
	}
}
