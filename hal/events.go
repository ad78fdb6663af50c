package hal

import (
	"image"
	"log/slog"
	"sync"

	"pixwin/surface"
)

// eventQueue collects native events between two Pumps. Producers push from
// the window's own loop while drain runs on the application goroutine. The
// two backing slices trade places on every drain, so steady pumping does not
// allocate.
type eventQueue struct {
	mu        sync.Mutex
	pending   []surface.Event
	spare     []surface.Event
	focused   bool
	closeSent bool
	name      string
	log       *slog.Logger
}

func newEventQueue(name string, log *slog.Logger) *eventQueue {
	return &eventQueue{focused: true, name: name, log: log}
}

func (q *eventQueue) push(evs ...surface.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, ev := range evs {
		q.pushLocked(ev)
	}
}

func (q *eventQueue) pushLocked(ev surface.Event) {
	if len(q.pending) >= maxPending {
		q.log.Warn(q.name+" event queue full", "dropped", ev.Kind.String())
		return
	}
	q.pending = append(q.pending, ev)
}

// sample records one poll of the native window. edges are the key and button
// transitions seen in this poll; focused and closing are the current window
// levels. Edges are queued first so a focus loss in the same poll releases
// keys pressed during it. Focus and close events fire once per transition.
func (q *eventQueue) sample(edges []surface.Event, focused, closing bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, ev := range edges {
		q.pushLocked(ev)
	}
	if focused != q.focused {
		q.focused = focused
		if focused {
			q.pushLocked(surface.Event{Kind: surface.EventFocusGained})
		} else {
			q.pushLocked(surface.Event{Kind: surface.EventFocusLost})
		}
	}
	if closing && !q.closeSent {
		q.closeSent = true
		q.pushLocked(surface.Event{Kind: surface.EventClose})
	}
}

// drain hands every queued event to deliver, in arrival order.
func (q *eventQueue) drain(deliver func(surface.Event)) {
	q.mu.Lock()
	evs := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for _, ev := range evs {
		deliver(ev)
	}

	q.mu.Lock()
	q.spare = evs[:0]
	q.mu.Unlock()
}

// windowChanges are cosmetic requests not yet applied to the native window.
type windowChanges struct {
	title         string
	titleSet      bool
	icon          image.Image
	cursorVisible bool
	cursorSet     bool
}

func (c windowChanges) empty() bool {
	return !c.titleSet && c.icon == nil && !c.cursorSet
}

// pendingSettings buffers title, icon and cursor changes made by the
// application until the window loop picks them up. Later calls overwrite
// earlier ones.
type pendingSettings struct {
	mu sync.Mutex
	c  windowChanges
}

func (p *pendingSettings) setTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.title, p.c.titleSet = title, true
}

func (p *pendingSettings) setIcon(img image.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.icon = img
}

func (p *pendingSettings) setCursorVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.cursorVisible, p.c.cursorSet = visible, true
}

// take returns the changes since the previous take.
func (p *pendingSettings) take() windowChanges {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.c
	p.c = windowChanges{}
	return c
}

// frameGate paces presenting to the window loop: each poll signals once and
// a present waits for the next signal. Closing the gate releases waiters for
// good.
type frameGate struct {
	tick chan struct{}
	done chan struct{}
	once sync.Once
}

func newFrameGate() *frameGate {
	return &frameGate{
		tick: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (g *frameGate) signal() {
	select {
	case g.tick <- struct{}{}:
	default:
	}
}

// wait blocks until the next signal. It reports false once the gate is closed.
func (g *frameGate) wait() bool {
	select {
	case <-g.tick:
		return true
	case <-g.done:
		return false
	}
}

func (g *frameGate) close() {
	g.once.Do(func() { close(g.done) })
}
