package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"pixwin/surface"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz paces Show. Zero or negative runs unpaced.
	Hz int
	// Frames closes the window after N frames (0 = run until ctx ends).
	Frames uint64
	// Script injects events before the Pump of the given frame.
	Script []ScriptedEvent
	Logger *slog.Logger
}

// ScriptedEvent is an event delivered at a fixed frame number (1-based).
type ScriptedEvent struct {
	Frame uint64
	Event surface.Event
}

// Headless is a window without a screen. Frames are kept in memory and
// events are injected with Send.
type Headless struct {
	mu      sync.Mutex
	width   int
	height  int
	title   string
	opened  bool
	closed  bool
	frames  uint64
	last    []byte
	events  *eventQueue

	cursorX       int
	cursorY       int
	cursorVisible bool
	icon          image.Image

	ctx      context.Context
	tick     <-chan time.Time
	maxFrame uint64
	script   []ScriptedEvent
	log      *slog.Logger
}

// NewHeadless returns an unpaced headless window.
func NewHeadless() *Headless {
	log := discardLogger()
	return &Headless{cursorVisible: true, events: newEventQueue("headless", log), log: log}
}

// RunHeadless runs fn against a headless window paced at cfg.Hz. Cancelling
// ctx queues a close event, as does reaching cfg.Frames.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, fn func(surface.Window) error) error {
	h := NewHeadless()
	h.ctx = ctx
	h.maxFrame = cfg.Frames
	h.script = cfg.Script
	if cfg.Logger != nil {
		h.log = cfg.Logger
		h.events.log = cfg.Logger
	}
	if cfg.Hz > 0 {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		h.tick = t.C
	}

	err := fn(h)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

func (h *Headless) Open(title string, width, height int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.opened {
		return errors.New("hal: headless window already open")
	}
	h.opened = true
	h.title = title
	h.width = width
	h.height = height
	h.last = make([]byte, width*height*4)
	h.log.Info("headless window open", "title", title, "width", width, "height", height)
	return nil
}

func (h *Headless) Show(frame []byte) error {
	h.wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.opened {
		return errors.New("hal: show before open")
	}
	if h.closed {
		return nil
	}
	if len(frame) != len(h.last) {
		return fmt.Errorf("hal: frame is %d bytes, want %d", len(frame), len(h.last))
	}
	copy(h.last, frame)
	h.frames++

	for _, se := range h.script {
		if se.Frame == h.frames {
			h.events.push(se.Event)
		}
	}
	if h.maxFrame > 0 && h.frames >= h.maxFrame {
		h.events.push(surface.Event{Kind: surface.EventClose})
	}
	return nil
}

// wait blocks until the next pacing tick. A cancelled context queues a close
// instead of waiting.
func (h *Headless) wait() {
	if h.ctx == nil {
		return
	}
	if h.ctx.Err() != nil {
		h.Send(surface.Event{Kind: surface.EventClose})
		return
	}
	if h.tick == nil {
		return
	}
	select {
	case <-h.ctx.Done():
		h.Send(surface.Event{Kind: surface.EventClose})
	case <-h.tick:
	}
}

func (h *Headless) Pump(deliver func(surface.Event)) {
	h.events.drain(deliver)
}

// Send queues events for the next Pump.
func (h *Headless) Send(evs ...surface.Event) {
	h.events.push(evs...)
}

// MoveCursor sets the position reported by CursorPosition.
func (h *Headless) MoveCursor(x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursorX, h.cursorY = x, y
}

func (h *Headless) CursorPosition() (x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorX, h.cursorY
}

func (h *Headless) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.title = title
}

func (h *Headless) SetIcon(img image.Image) error {
	if img == nil {
		return errors.New("hal: nil icon")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.icon = img
	return nil
}

func (h *Headless) SetCursorVisible(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursorVisible = visible
}

func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.log.Info("headless window closed", "frames", h.frames)
	return nil
}

// Frame returns a copy of the last shown frame.
func (h *Headless) Frame() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]byte(nil), h.last...)
}

func (h *Headless) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

func (h *Headless) Title() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.title
}

func (h *Headless) Icon() image.Image {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.icon
}

func (h *Headless) CursorVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorVisible
}

func (h *Headless) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
