package platform

import "math"

type WindowConfig struct {
	Title    string
	NativeW  int
	NativeH  int
	Scale    int
	TPS      int
	Resizing bool
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

type Key string

const (
	KeyEscape   Key = "Escape"
	KeyEnter    Key = "Enter"
	KeyKPEnter  Key = "KPEnter"
	KeyUp       Key = "Up"
	KeyDown     Key = "Down"
	KeyPageUp   Key = "PageUp"
	KeyPageDown Key = "PageDown"
	KeyC        Key = "C"
	KeyF11      Key = "F11"
)

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Event is one input occurrence for the current frame. Pointer events carry
// X/Y in whatever space the producer works in; the frame loop rewrites them
// into virtual canvas coordinates before any widget sees them.
type Event struct {
	Type   EventType
	Width  int
	Height int
	DeltaY int
	X      int
	Y      int
	Button MouseButton
	Key    Key
	Ctrl   bool

	// VX, VY keep the virtual position of a pointer event that fell outside
	// the canvas, where X and Y are Nowhere.
	VX int
	VY int
}

// Nowhere is the coordinate given to pointers that fall outside the
// letterboxed canvas. It lies outside every widget rect.
const Nowhere = math.MinInt32 / 2

// Pointer is the sampled pointer state for one frame.
type Pointer struct {
	X      int
	Y      int
	Inside bool
	Down   bool

	// VX, VY keep the virtual position when the pointer is outside the
	// canvas and X, Y are Nowhere. Drags use it to keep tracking past the
	// edge.
	VX int
	VY int
}

// TrackY is the virtual y for drag tracking, valid inside or outside the
// canvas.
func (p Pointer) TrackY() int {
	if p.X == Nowhere {
		return p.VY
	}
	return p.Y
}

// IsPointer reports whether the event carries a pointer position.
func (e Event) IsPointer() bool {
	switch e.Type {
	case EventMouseMove, EventMouseDown, EventMouseUp, EventMouseWheel:
		return true
	}
	return false
}

// TrackY is the virtual y for drag tracking, valid inside or outside the
// canvas.
func (e Event) TrackY() int {
	if e.X == Nowhere {
		return e.VY
	}
	return e.Y
}

// IsPrimaryDown reports a left-button press edge.
func (e Event) IsPrimaryDown() bool {
	return e.Type == EventMouseDown && e.Button == ButtonLeft
}

// IsPrimaryUp reports a left-button release edge.
func (e Event) IsPrimaryUp() bool {
	return e.Type == EventMouseUp && e.Button == ButtonLeft
}

// IsKey reports a key-down event for any of keys.
func (e Event) IsKey(keys ...Key) bool {
	if e.Type != EventKeyDown {
		return false
	}
	for _, k := range keys {
		if e.Key == k {
			return true
		}
	}
	return false
}

// Window is the display collaborator: it owns the real OS window and the
// monitor it sits on. Implementations only change window geometry; scale
// bookkeeping lives in display.Context.
type Window interface {
	SetScaledWindow(scale int)
	SetFullscreen(on bool)
	DisplayBounds() (w, h int)
	Iconify()
}
