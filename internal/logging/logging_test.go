package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for input, want := range testCases {
		assert.Equal(t, want, ParseLevel(input), input)
	}
}

func TestSetup_JSONRespectsLevel(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	cfg := FromStrings("warn", "JSON")
	cfg.Output = &buf

	logger := Setup(cfg)
	logger.Info("hidden")
	slog.Warn("shown", slog.String("label", "Expenses|Transport"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "Expenses|Transport", entry["label"])
}
