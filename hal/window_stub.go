//go:build !cgo

package hal

import (
	"log/slog"

	"pixwin/surface"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Scale  int
	TPS    int
	Logger *slog.Logger
}

// RunWindow reports ErrNoWindow; this build has no window backend.
func RunWindow(_ WindowConfig, _ func(surface.Window) error) error {
	return ErrNoWindow
}
