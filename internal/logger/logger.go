package logger

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the path to the game log file, relative to the working directory.
const LogFilePath = "logs/game.txt"

// maxLines bounds the in-memory history kept for Lines.
const maxLines = 256

// Logger is a slog.Logger whose records go to the console, are appended to a
// log file on disk, and are kept in memory for the most recent maxLines.
type Logger struct {
	*slog.Logger

	mu    sync.Mutex
	lines []string
	file  *os.File
}

// New opens (or creates) the log file at path, creating its directory, and
// returns a logger writing text records at level and above to console and file.
// An empty path disables the file sink.
func New(path string, level slog.Level, console io.Writer) (*Logger, error) {
	l := &Logger{lines: make([]string, 0, maxLines)}
	sinks := []io.Writer{lineWriter{l}}
	if console != nil {
		sinks = append(sinks, console)
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		sinks = append(sinks, f)
	}
	h := slog.NewTextHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{Level: level})
	l.Logger = slog.New(h)
	return l, nil
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: %w", err)
	}
	return lvl, nil
}

// Lines returns a copy of the most recent log lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// lineWriter records each handler write (one record per write) in l.lines.
type lineWriter struct{ l *Logger }

func (w lineWriter) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))
	w.l.mu.Lock()
	if len(w.l.lines) == maxLines {
		copy(w.l.lines, w.l.lines[1:])
		w.l.lines = w.l.lines[:maxLines-1]
	}
	w.l.lines = append(w.l.lines, line)
	w.l.mu.Unlock()
	return len(p), nil
}
