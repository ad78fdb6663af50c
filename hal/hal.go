// Package hal provides the native windows a surface.Surface presents into:
// an ebiten desktop window and a headless window for tests and batch runs.
package hal

import (
	"errors"
	"io"
	"log/slog"
)

// ErrNoWindow is returned by RunWindow when the build has no window backend.
var ErrNoWindow = errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")

// maxPending bounds the event queue between two Pump calls.
const maxPending = 1024

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
