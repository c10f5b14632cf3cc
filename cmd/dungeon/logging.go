package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

func setupLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return errors.InvalidArgumentf("invalid --log-level %q", logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return errors.InvalidArgumentf("invalid --log-format %q", logFormat)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
