package pong

// Key identifies the keys the game reacts to, independent of the platform.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// Keyboard answers whether a key is held right now.
type Keyboard interface {
	Pressed(k Key) bool
}

// KeySet is a Keyboard backed by a fixed set of held keys.
type KeySet map[Key]bool

func (s KeySet) Pressed(k Key) bool {
	return s[k]
}

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventClose
)

// Event is a discrete input notification: one key press, or the window
// being closed.
type Event struct {
	Kind EventKind
	Key  Key
}

func Press(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

func CloseWindow() Event {
	return Event{Kind: EventClose}
}

// Controls is the held-key mapping of one paddle.
type Controls struct {
	Up, Down, Left, Right Key
}

var (
	LeftControls  = Controls{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
	RightControls = Controls{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight}
)
