package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"pixwin/canvas"
	"pixwin/input"
	"pixwin/surface"
)

// PanicError is returned by Run when a scene panics.
type PanicError struct {
	Scene string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("app: scene %s panicked: %v", e.Scene, e.Value)
}

// stepSafely runs one scene step, converting a panic into a PanicError.
func stepSafely(name string, st Stepper, s *surface.Surface, c *canvas.Canvas) (perr *PanicError) {
	defer func() {
		if v := recover(); v != nil {
			perr = &PanicError{Scene: name, Value: v, Stack: debug.Stack()}
		}
	}()
	st.Step(s, c)
	return nil
}

// showPanic logs the panic and keeps it on screen until the window closes
// or Escape is pressed.
func showPanic(s *surface.Surface, c *canvas.Canvas, perr *PanicError, log *slog.Logger) {
	log.Error("scene panic", "scene", perr.Scene, "panic", perr.Value)
	for _, line := range strings.Split(string(perr.Stack), "\n") {
		if line != "" {
			log.Debug(line)
		}
	}

	lines := []string{
		"PANIC",
		"scene: " + perr.Scene,
		fmt.Sprintf("panic: %v", perr.Value),
		"press escape to quit",
	}

	c.Fill(canvas.White)
	lineH := int(canvas.Font.GetYAdvance()) + 1
	cols := s.Width() / max(canvas.TextWidth("0"), 1)
	y := 0
	for _, line := range lines {
		for len(line) > 0 && y+lineH <= s.Height() {
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk, canvas.Black)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}

	for s.IsOpen() && !s.Key(input.KeyEscape) {
		s.Present()
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
