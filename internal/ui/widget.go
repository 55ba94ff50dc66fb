package ui

import (
	"image"

	"subpixel/internal/platform"
)

// Rect is an axis-aligned rectangle in virtual canvas pixels. Rects are
// rebuilt from layout constants every frame.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// State is a widget's interaction state. It doubles as the cell index into
// three-state skin atlases (idle, hover, pressed).
type State int

const (
	StateIdle State = iota
	StateHover
	StatePressed
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	}
	return "idle"
}

// SkinIndex maps a state onto an atlas cell. Disabled widgets use the idle
// cell; callers draw the disabled veil on top.
func (s State) SkinIndex() int {
	if s == StateDisabled {
		return int(StateIdle)
	}
	return int(s)
}

// StateOf derives a widget's state from this frame's pointer alone.
func StateOf(r Rect, p platform.Pointer, disabled bool) State {
	if disabled {
		return StateDisabled
	}
	if !r.Contains(p.X, p.Y) {
		return StateIdle
	}
	if p.Down {
		return StatePressed
	}
	return StateHover
}

// Clicker recognizes activation on the release edge: the release must land
// inside the same rect the press started in. A press that drags off the
// widget and is released elsewhere does nothing.
type Clicker struct {
	armed bool
}

// Feed processes one event and reports whether it activated the widget.
func (c *Clicker) Feed(r Rect, e platform.Event, disabled bool) bool {
	switch {
	case e.IsPrimaryDown():
		c.armed = !disabled && r.Contains(e.X, e.Y)
	case e.IsPrimaryUp():
		fire := c.armed && !disabled && r.Contains(e.X, e.Y)
		c.armed = false
		return fire
	}
	return false
}

// Armed reports whether a press started inside the widget and is still held.
func (c *Clicker) Armed() bool { return c.armed }

func (c *Clicker) Reset() { c.armed = false }
