package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// It is the default for every component that accepts a logger.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
