package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "", expected: slog.LevelInfo},
		{input: "debug", expected: slog.LevelDebug},
		{input: "WARN", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(Config{Output: "json", Level: "warn"}, &buf))
	t.Cleanup(func() { _ = initWithWriter(Config{}, &bytes.Buffer{}) })

	ctx := WithContext(context.Background(), slogx.String("module", "voters"))
	InfoContext(ctx, "filtered out")
	ErrorContext(ctx, "Failed to aggregate voters", errors.New("snapshot unavailable"), slogx.String("network", "mainnet"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), buf.String())
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "Failed to aggregate voters", record["msg"])
	assert.Equal(t, "voters", record["module"])
	assert.Equal(t, "mainnet", record["network"])
	assert.Equal(t, "snapshot unavailable", record["error"])
}

func TestInitUnsupportedOutput(t *testing.T) {
	assert.Error(t, initWithWriter(Config{Output: "gcp"}, &bytes.Buffer{}))
}

func TestLevelAttrReplacer(t *testing.T) {
	testCases := []struct {
		level    slog.Level
		expected string
	}{
		{level: slog.LevelError, expected: "ERROR"},
		{level: LevelPanic, expected: "PANIC"},
		{level: LevelPanic + 1, expected: "PANIC+1"},
		{level: LevelFatal, expected: "FATAL"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			attr := levelAttrReplacer(nil, slog.Any(LevelKey, tc.level))
			assert.Equal(t, tc.expected, attr.Value.String())
		})
	}
}
