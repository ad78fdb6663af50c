package input

import (
	"fmt"
	"strings"
)

// Key is a logical key, independent of platform key codes.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyReturn
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",
	KeySpace:   "space",
	KeyReturn:  "return",
	KeyEscape:  "escape",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
}

// Valid reports whether k is a tracked key.
func (k Key) Valid() bool { return k > KeyUnknown && k < keyCount }

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey maps a key name ("a", "space", "esc", "enter", ...) to a Key.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "enter":
		return KeyReturn, nil
	case "esc":
		return KeyEscape, nil
	}
	for k := KeyA; k < keyCount; k++ {
		if keyNames[k] == s {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("input: unknown key %q", s)
}

// Button is a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}
