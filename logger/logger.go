package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var log = newLogger(os.Stderr, defaultLevel)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// An empty string gives the build's default level.
func ParseLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return defaultLevel, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return defaultLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// Init replaces the package logger. It is meant to be called once at startup.
func Init(w io.Writer, level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	log = newLogger(w, l)
	return nil
}

func Logger() *slog.Logger {
	return log
}

func HandleLog(msg string, args ...any) {
	log.Info(msg, args...)
}

func HandleDebug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func HandleError(err error, args ...any) {
	if err == nil {
		return
	}
	log.Error(err.Error(), args...)
}
