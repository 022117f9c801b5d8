package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.txt")
	var console bytes.Buffer
	l, err := New(path, slog.LevelInfo, &console)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("mesh loaded", "vertices", 5)
	require.NoError(t, l.Close())

	assert.Contains(t, console.String(), "mesh loaded")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vertices=5")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "level=INFO")
	assert.NotContains(t, lines[0], "\n")
}

func TestLoggerLinesBounded(t *testing.T) {
	l, err := New("", slog.LevelInfo, nil)
	require.NoError(t, err)
	for i := 0; i < maxLines+10; i++ {
		l.Info(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[0], "line 10")
	assert.Contains(t, lines[maxLines-1], fmt.Sprintf("line %d", maxLines+9))
	assert.NoError(t, l.Close())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
