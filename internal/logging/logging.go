package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog with the log file location for diagnostics.
type Logger struct {
	*slog.Logger
	LogFile string
}

// New builds a JSON logger. With a directory it writes through a rotating
// file; otherwise it logs to stderr.
func New(level, dir string) *Logger {
	var w io.Writer = os.Stderr
	logFile := ""
	if dir != "" {
		lj := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "ballistics.slog"),
			MaxSize:    32, // MB
			MaxBackups: 2,
			Compress:   true,
		}
		w = lj
		logFile = lj.Filename
	}

	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(h), LogFile: logFile}
}

// Discard returns a logger that drops everything; used in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}
