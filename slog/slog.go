// Package slog provides log/slog decorators for docsearch services.
package slog

import "log/slog"

// levelFor logs failures at warn so they surface without --verbose.
func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
