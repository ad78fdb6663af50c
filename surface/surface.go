// Package surface composes a pixel buffer, input state and frame clock into a
// window the application polls once per frame:
//
//	s, err := surface.New(w, 800, 600, "demo", pixel.RGB)
//	...
//	for s.IsOpen() {
//		// write s.Pix()
//		s.Present()
//	}
package surface

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pixwin/clock"
	"pixwin/input"
	"pixwin/pixel"
	"pixwin/sprite"
)

// ErrClosed is returned by operations that need an open window.
var ErrClosed = errors.New("surface: closed")

// Surface is a fixed-size pixel window.
type Surface struct {
	win    Window
	buf    *pixel.Buffer
	frame  []byte
	in     *input.State
	clk    *clock.Clock
	log    *slog.Logger
	title  string
	open   bool
	frames uint64
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces the wall clock used for DeltaTime.
func WithClock(now func() time.Time) Option {
	return func(s *Surface) { s.clk = clock.NewWithClock(now) }
}

// New validates the buffer geometry, then opens w. On error nothing is
// returned and the window is left unopened.
func New(w Window, width, height int, title string, format pixel.Format, opts ...Option) (*Surface, error) {
	if w == nil {
		return nil, errors.New("surface: nil window")
	}
	buf, err := pixel.New(width, height, format)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	s := &Surface{
		win:   w,
		buf:   buf,
		frame: make([]byte, buf.PresentSize()),
		in:    input.NewState(),
		clk:   clock.New(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		title: title,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := w.Open(title, width, height); err != nil {
		return nil, fmt.Errorf("surface: open window: %w", err)
	}
	s.open = true
	s.log.Debug("surface open", "width", width, "height", height, "format", format.String(), "bytes", len(buf.Pix))
	return s, nil
}

// Present converts the buffer, shows it, delivers queued events and ends
// the frame interval. After the surface closes it does nothing.
func (s *Surface) Present() {
	if !s.open {
		return
	}
	if err := pixel.Convert(s.frame, s.buf); err != nil {
		// The buffer was validated in New; reaching here is a bug.
		panic(err)
	}
	if err := s.win.Show(s.frame); err != nil {
		s.log.Error("present failed", "err", err)
		s.Close()
		return
	}
	s.win.Pump(s.handle)
	s.clk.Tick()
	s.frames++
}

func (s *Surface) handle(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		s.in.KeyDown(ev.Key)
	case EventKeyUp:
		s.in.KeyUp(ev.Key)
	case EventButtonDown:
		s.in.ButtonDown(ev.Button)
	case EventButtonUp:
		s.in.ButtonUp(ev.Button)
	case EventFocusLost:
		s.in.FocusLost()
		s.log.Debug("focus lost")
	case EventFocusGained:
		s.in.FocusGained()
		s.log.Debug("focus gained")
	case EventClose:
		s.Close()
	}
}

// Close moves the surface to the closed state and closes the window. Only
// the first call has any effect.
func (s *Surface) Close() {
	if !s.open {
		return
	}
	s.open = false
	if err := s.win.Close(); err != nil {
		s.log.Warn("close window", "err", err)
	}
	s.log.Debug("surface closed", "frames", s.frames)
}

func (s *Surface) IsOpen() bool { return s.open }

// Pix returns the application-owned pixel bytes.
func (s *Surface) Pix() []byte { return s.buf.Pix }

func (s *Surface) Buffer() *pixel.Buffer { return s.buf }
func (s *Surface) Width() int            { return s.buf.Width() }
func (s *Surface) Height() int           { return s.buf.Height() }
func (s *Surface) Format() pixel.Format  { return s.buf.Format() }
func (s *Surface) Title() string         { return s.title }
func (s *Surface) Frames() uint64        { return s.frames }

// Key reports whether k is held.
func (s *Surface) Key(k input.Key) bool { return s.in.Key(k) }

func (s *Surface) MouseLeft() bool   { return s.in.Button(input.ButtonLeft) }
func (s *Surface) MouseRight() bool  { return s.in.Button(input.ButtonRight) }
func (s *Surface) MouseMiddle() bool { return s.in.Button(input.ButtonMiddle) }
func (s *Surface) Focused() bool     { return s.in.Focused() }

// HeldKeys returns the keys currently down, in key order.
func (s *Surface) HeldKeys() []input.Key { return s.in.Held() }

// MouseX returns the cursor column relative to the client area.
func (s *Surface) MouseX() int {
	x, _ := s.win.CursorPosition()
	return x
}

// MouseY returns the cursor row relative to the client area.
func (s *Surface) MouseY() int {
	_, y := s.win.CursorPosition()
	return y
}

// DeltaTime returns the seconds between the last two Present calls. It is 0
// until the second Present.
func (s *Surface) DeltaTime() float64 { return s.clk.Seconds() }

// FrameTime is DeltaTime as a time.Duration.
func (s *Surface) FrameTime() time.Duration { return s.clk.Elapsed() }

func (s *Surface) SetTitle(title string) {
	s.title = title
	s.win.SetTitle(title)
}

// SetIcon loads a PNG or BMP file and uses it as the window icon.
func (s *Surface) SetIcon(path string) error {
	if !s.open {
		return ErrClosed
	}
	sp, err := sprite.Load(path)
	if err != nil {
		return fmt.Errorf("surface: icon: %w", err)
	}
	return s.win.SetIcon(sp.Image())
}

func (s *Surface) SetCursorVisible(visible bool) {
	s.win.SetCursorVisible(visible)
}
