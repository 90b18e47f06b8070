package util

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()

	var got sample
	found, err := LoadReport(dir, &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SaveReport(dir+"/nested", sample{"bst", 3}))
	found, err = LoadReport(dir+"/nested", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, sample{"bst", 3}, got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("json", &buf)
	require.NoError(t, err)
	logger.Info().Int("n", 16).Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["message"])
	require.Equal(t, 16.0, line["n"])

	_, err = NewLogger("xml", &buf)
	require.Error(t, err)
}

func TestZerologHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	log := slog.New(NewZerologHandler(logger))

	log.Debug("hidden")
	require.Zero(t, buf.Len())

	log.With("run", "asc").WithGroup("trial").Info("done",
		"n", 32,
		"avg", time.Millisecond,
		"ok", true,
		slog.Group("tree", "size", 32, "height", 5),
	)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "info", line["level"])
	require.Equal(t, "done", line["message"])
	require.Equal(t, "asc", line["run"])
	require.Equal(t, 32.0, line["trial.n"])
	require.Equal(t, true, line["trial.ok"])
	require.Equal(t, 5.0, line["trial.tree.height"])
	require.Contains(t, line, "trial.avg")
}

func TestZerologHandlerLevels(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, zerologLevel(slog.LevelDebug))
	require.Equal(t, zerolog.InfoLevel, zerologLevel(slog.LevelInfo))
	require.Equal(t, zerolog.WarnLevel, zerologLevel(slog.LevelWarn))
	require.Equal(t, zerolog.ErrorLevel, zerologLevel(slog.LevelError+4))
}
