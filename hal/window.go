//go:build cgo

package hal

import (
	"errors"
	"image"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixwin/input"
	"pixwin/internal/buildinfo"
	"pixwin/surface"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	// Scale multiplies the window size; the buffer itself is not resized.
	Scale int
	// TPS is the input sampling rate in ticks per second.
	TPS    int
	Logger *slog.Logger
}

// RunWindow opens a desktop window and runs fn on its own goroutine; ebiten
// keeps the calling goroutine. It blocks until fn returns and the window is
// gone. fn must call Open on the window it is given before presenting.
func RunWindow(cfg WindowConfig, fn func(surface.Window) error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	w := newEbitenWindow(cfg.Logger)
	done := make(chan error, 1)
	go func() {
		err := fn(w)
		w.finish()
		done <- err
	}()

	select {
	case <-w.opened:
	case err := <-done:
		return err
	}

	w.mu.Lock()
	title, width, height := w.title, w.width, w.height
	w.mu.Unlock()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*cfg.Scale, height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	cfg.Logger.Info("window open", "title", title, "width", width, "height", height, "scale", cfg.Scale, "build", buildinfo.Short())

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		w.finish()
		return err
	}
	return <-done
}

// ebitenWindow bridges the application goroutine and ebiten's game loop.
// Update samples input into events; the application drains it in Pump, so
// input state is only ever written by the application goroutine. Show waits
// for the next Update, which paces the application at the window's TPS.
type ebitenWindow struct {
	mu      sync.Mutex
	width   int
	height  int
	title   string
	frame   []byte
	dirty   bool
	img     *ebiten.Image
	cursorX int
	cursorY int
	closing bool

	events   *eventQueue
	settings pendingSettings
	edges    []surface.Event // Update only

	gate     *frameGate
	opened   chan struct{}
	openOnce sync.Once
}

func newEbitenWindow(log *slog.Logger) *ebitenWindow {
	return &ebitenWindow{
		events: newEventQueue("window", log),
		gate:   newFrameGate(),
		opened: make(chan struct{}),
	}
}

func (w *ebitenWindow) Open(title string, width, height int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.frame != nil {
		return errors.New("hal: window already open")
	}
	w.title = title
	w.width = width
	w.height = height
	w.frame = make([]byte, width*height*4)
	w.openOnce.Do(func() { close(w.opened) })
	return nil
}

// Show hands frame to the game loop and blocks until the loop has polled
// input once more, or the window is closing.
func (w *ebitenWindow) Show(frame []byte) error {
	w.mu.Lock()
	if w.frame == nil {
		w.mu.Unlock()
		return errors.New("hal: show before open")
	}
	copy(w.frame, frame)
	w.dirty = true
	w.mu.Unlock()

	w.gate.wait()
	return nil
}

func (w *ebitenWindow) Pump(deliver func(surface.Event)) {
	w.events.drain(deliver)
}

func (w *ebitenWindow) CursorPosition() (x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursorX, w.cursorY
}

func (w *ebitenWindow) SetTitle(title string) {
	w.settings.setTitle(title)
}

func (w *ebitenWindow) SetIcon(img image.Image) error {
	if img == nil {
		return errors.New("hal: nil icon")
	}
	w.settings.setIcon(img)
	return nil
}

func (w *ebitenWindow) SetCursorVisible(visible bool) {
	w.settings.setCursorVisible(visible)
}

func (w *ebitenWindow) Close() error {
	w.finish()
	return nil
}

func (w *ebitenWindow) finish() {
	w.mu.Lock()
	w.closing = true
	w.mu.Unlock()
	w.gate.close()
}

func (w *ebitenWindow) Update() error {
	w.mu.Lock()
	closing := w.closing
	w.mu.Unlock()
	if closing {
		return ebiten.Termination
	}
	applyChanges(w.settings.take())

	w.edges = w.edges[:0]
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			w.edges = append(w.edges, surface.Event{Kind: surface.EventKeyDown, Key: m.logical})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			w.edges = append(w.edges, surface.Event{Kind: surface.EventKeyUp, Key: m.logical})
		}
	}
	for _, m := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(m.button) {
			w.edges = append(w.edges, surface.Event{Kind: surface.EventButtonDown, Button: m.logical})
		}
		if inpututil.IsMouseButtonJustReleased(m.button) {
			w.edges = append(w.edges, surface.Event{Kind: surface.EventButtonUp, Button: m.logical})
		}
	}
	w.events.sample(w.edges, ebiten.IsFocused(), ebiten.IsWindowBeingClosed())

	x, y := ebiten.CursorPosition()
	w.mu.Lock()
	w.cursorX, w.cursorY = x, y
	w.mu.Unlock()

	w.gate.signal()
	return nil
}

func applyChanges(c windowChanges) {
	if c.empty() {
		return
	}
	if c.titleSet {
		ebiten.SetWindowTitle(c.title)
	}
	if c.icon != nil {
		ebiten.SetWindowIcon([]image.Image{c.icon})
	}
	if c.cursorSet {
		if c.cursorVisible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
}

func (w *ebitenWindow) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}
	if w.dirty {
		w.img.WritePixels(w.frame)
		w.dirty = false
	}
	// Copy, not blend: alpha from RGBA buffers reaches the screen untouched.
	screen.DrawImage(w.img, &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy})
}

func (w *ebitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

var buttonMap = []struct {
	button  ebiten.MouseButton
	logical input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

// keyMap lists the platform keys that have a logical key. Everything else is
// never reported.
var keyMap = []struct {
	key     ebiten.Key
	logical input.Key
}{
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyB, input.KeyB},
	{ebiten.KeyC, input.KeyC},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyE, input.KeyE},
	{ebiten.KeyF, input.KeyF},
	{ebiten.KeyG, input.KeyG},
	{ebiten.KeyH, input.KeyH},
	{ebiten.KeyI, input.KeyI},
	{ebiten.KeyJ, input.KeyJ},
	{ebiten.KeyK, input.KeyK},
	{ebiten.KeyL, input.KeyL},
	{ebiten.KeyM, input.KeyM},
	{ebiten.KeyN, input.KeyN},
	{ebiten.KeyO, input.KeyO},
	{ebiten.KeyP, input.KeyP},
	{ebiten.KeyQ, input.KeyQ},
	{ebiten.KeyR, input.KeyR},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyT, input.KeyT},
	{ebiten.KeyU, input.KeyU},
	{ebiten.KeyV, input.KeyV},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyX, input.KeyX},
	{ebiten.KeyY, input.KeyY},
	{ebiten.KeyZ, input.KeyZ},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyEnter, input.KeyReturn},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
}
