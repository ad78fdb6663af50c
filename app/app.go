// Package app contains the demo scenes: small programs that exercise the
// surface the way an application would.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"pixwin/canvas"
	"pixwin/input"
	"pixwin/internal/buildinfo"
	"pixwin/surface"
)

// Run opens a surface on w and drives the configured scene until the window
// closes or Escape is pressed.
func Run(w surface.Window, cfg Config, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sc, _ := sceneByName(cfg.Scene)

	title := cfg.Title
	if title == "" {
		title = fmt.Sprintf("pixwin %s (%s)", sc.title, buildinfo.Short())
	}
	s, err := surface.New(w, cfg.Width, cfg.Height, title, cfg.pixelFormat(), surface.WithLogger(log))
	if err != nil {
		return err
	}
	defer s.Close()

	st, err := sc.setup(s, cfg, log)
	if err != nil {
		return err
	}
	log.Info("scene start", "scene", sc.name, "width", cfg.Width, "height", cfg.Height, "format", cfg.Format)

	c := canvas.New(s.Buffer())
	for s.IsOpen() {
		if s.Key(input.KeyEscape) {
			s.Close()
			break
		}
		if perr := stepSafely(sc.name, st, s, c); perr != nil {
			showPanic(s, c, perr, log)
			return perr
		}
		if cfg.HUD {
			drawHUD(s, c)
		}
		s.Present()
	}
	log.Info("scene done", "scene", sc.name, "frames", s.Frames())
	return nil
}

func hudText(frame time.Duration, x, y int, held []input.Key) string {
	var fps float64
	if frame > 0 {
		fps = float64(time.Second) / float64(frame)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f FPS %.1fms  %d,%d", fps, float64(frame)/float64(time.Millisecond), x, y)
	for i, k := range held {
		if i == 0 {
			b.WriteString("  ")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(k.String())
	}
	return b.String()
}

func drawHUD(s *surface.Surface, c *canvas.Canvas) {
	text := hudText(s.FrameTime(), s.MouseX(), s.MouseY(), s.HeldKeys())
	w := canvas.TextWidth(text)
	c.FillRectangle(0, 0, int16(w+4), int16(canvas.Font.GetYAdvance())+3, canvas.Black)
	c.Text(2, 1, text, canvas.White)
}
