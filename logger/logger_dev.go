//go:build dev
// +build dev

package logger

import "log/slog"

const defaultLevel = slog.LevelDebug
