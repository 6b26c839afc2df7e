package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Tests pass it to
// services so normal operation stays quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
