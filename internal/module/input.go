package module

// Key identifies a keyboard key independent of the windowing backend.
type Key int

const (
	KeyTab Key = iota
	KeyShift
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyP
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyH
	KeyJ
	KeyC
	KeyT
	KeySpace
	KeyF12
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	keyCount
)

var keyNames = [...]string{
	"tab", "shift", "up", "down", "left", "right", "r", "p", "w", "a", "s", "d",
	"q", "e", "h", "j", "c", "t", "space", "f12", "1", "2", "3", "4",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey maps a name produced by Key.String back to the key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// Keys returns every known key.
func Keys() []Key {
	out := make([]Key, keyCount)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

// Input is the per-frame keyboard snapshot handed to modules.
type Input interface {
	// Pressed reports a key that went down this frame.
	Pressed(k Key) bool
	// Down reports a key that is currently held.
	Down(k Key) bool
}

// KeyState is a mutable Input. Drivers without native key polling, and tests,
// fill it before each frame and call EndFrame afterwards.
type KeyState struct {
	pressed [keyCount]bool
	down    [keyCount]bool
}

func (s *KeyState) Pressed(k Key) bool { return k >= 0 && k < keyCount && s.pressed[k] }
func (s *KeyState) Down(k Key) bool    { return k >= 0 && k < keyCount && s.down[k] }

// Press marks k as pressed this frame and held.
func (s *KeyState) Press(k Key) {
	if k >= 0 && k < keyCount {
		s.pressed[k] = true
		s.down[k] = true
	}
}

// Hold marks k as held without a press edge.
func (s *KeyState) Hold(k Key) {
	if k >= 0 && k < keyCount {
		s.down[k] = true
	}
}

func (s *KeyState) Release(k Key) {
	if k >= 0 && k < keyCount {
		s.down[k] = false
	}
}

// EndFrame clears press edges and, when release is set, held keys too.
func (s *KeyState) EndFrame(release bool) {
	s.pressed = [keyCount]bool{}
	if release {
		s.down = [keyCount]bool{}
	}
}

// NoInput is an Input with nothing pressed.
var NoInput Input = &KeyState{}
