// Package input tracks keyboard and mouse state between frames.
//
// State is mutated only by the event handlers below, which the surface calls
// from its event pump on the owning goroutine. It is not safe for concurrent
// use.
package input

// State is the polled input snapshot.
type State struct {
	keys    map[Key]bool
	buttons [buttonCount]bool
	focused bool
}

// NewState returns an empty state with focus assumed.
func NewState() *State {
	return &State{keys: make(map[Key]bool), focused: true}
}

func (s *State) KeyDown(k Key) {
	if !k.Valid() {
		return
	}
	s.keys[k] = true
}

func (s *State) KeyUp(k Key) {
	if !k.Valid() {
		return
	}
	s.keys[k] = false
}

func (s *State) ButtonDown(b Button) {
	if b < buttonCount {
		s.buttons[b] = true
	}
}

func (s *State) ButtonUp(b Button) {
	if b < buttonCount {
		s.buttons[b] = false
	}
}

// FocusLost drops every held key and button. A key released while another
// window had focus would otherwise stay held forever.
func (s *State) FocusLost() {
	clear(s.keys)
	s.buttons = [buttonCount]bool{}
	s.focused = false
}

// FocusGained marks the window focused. Nothing is restored.
func (s *State) FocusGained() {
	s.focused = true
}

// Key reports whether k is held. Keys never seen report false.
func (s *State) Key(k Key) bool {
	return s.keys[k]
}

// Button reports whether b is held.
func (s *State) Button(b Button) bool {
	if b >= buttonCount {
		return false
	}
	return s.buttons[b]
}

func (s *State) Focused() bool { return s.focused }

// Held returns the keys currently down, in declaration order.
func (s *State) Held() []Key {
	var out []Key
	for k := KeyA; k < keyCount; k++ {
		if s.keys[k] {
			out = append(out, k)
		}
	}
	return out
}
