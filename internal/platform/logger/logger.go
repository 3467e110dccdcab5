package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Services receive it through functional
// options so tests can swap in a discard logger.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
