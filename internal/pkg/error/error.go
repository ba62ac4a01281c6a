package error

import (
	"context"
	"errors"
	"log/slog"
)

// IsContextError reports whether err comes from a cancelled or expired request context.
func IsContextError(err error) bool {
	switch {
	case errors.Is(err, context.Canceled):
		slog.Warn("Request cancelled.", "reason", err)
		return true
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("Request timed out.", "reason", err)
		return true
	default:
		return false
	}
}
