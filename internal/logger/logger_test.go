package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	in := []any{"provider", "openai", "api_key", "sk-123", "OPENROUTER_TOKEN", "t", "dangling"}
	got := sanitizeKVs(in)
	assert.Equal(t, []any{"provider", "openai", "api_key", redacted, "OPENROUTER_TOKEN", redacted, "dangling"}, got)
}

func TestLoggerRedactsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("credentials_json", "{}").Info("sheets connected", "spreadsheet_id", "abc")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, redacted, fields["credentials_json"])
		assert.Equal(t, "abc", fields["spreadsheet_id"])
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Mode: "dev", Level: "loud"})
	assert.Error(t, err)
}
