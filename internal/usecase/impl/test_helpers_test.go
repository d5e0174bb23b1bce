package impl

import (
	"io"
	"log/slog"
)

// newTestLogger returns a logger that discards everything, keeping test
// output readable.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
