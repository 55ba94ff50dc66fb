// Package display maps between the fixed virtual canvas and the physical
// window, and owns the process-wide scale state.
package display

import (
	"image"

	"subpixel/internal/platform"
)

const (
	NativeW = 480
	NativeH = 270
)

// Context holds the scale factor and physical window size. It is only
// mutated from the frame loop, in response to user actions.
type Context struct {
	Native image.Point
	Scale  int
	Window image.Point

	maximized    bool
	restoreScale int
}

// New returns a context whose window is exactly native*scale.
func New(nativeW, nativeH, scale int) *Context {
	if scale < 1 {
		scale = 1
	}
	return &Context{
		Native: image.Pt(nativeW, nativeH),
		Scale:  scale,
		Window: image.Pt(nativeW*scale, nativeH*scale),
	}
}

// BestFit returns the largest integer scale at which the native canvas
// fits the display on both axes, minimum 1.
func BestFit(nativeW, nativeH, displayW, displayH int) int {
	if nativeW <= 0 || nativeH <= 0 {
		return 1
	}
	s := displayW / nativeW
	if sy := displayH / nativeH; sy < s {
		s = sy
	}
	if s < 1 {
		return 1
	}
	return s
}

func (c *Context) SetWindowSize(w, h int) {
	c.Window = image.Pt(w, h)
}

// CanvasSize is the size of the scaled canvas in physical pixels.
func (c *Context) CanvasSize() image.Point {
	return c.Native.Mul(c.Scale)
}

// Offset centers the scaled canvas inside the window. Never negative.
func (c *Context) Offset() image.Point {
	cs := c.CanvasSize()
	off := c.Window.Sub(cs).Div(2)
	if off.X < 0 {
		off.X = 0
	}
	if off.Y < 0 {
		off.Y = 0
	}
	return off
}

// ToVirtual converts a physical point to virtual canvas coordinates. ok is
// false when the point lies in the letterbox bars or past the canvas.
func (c *Context) ToVirtual(p image.Point) (image.Point, bool) {
	rel := p.Sub(c.Offset())
	v := image.Pt(floorDiv(rel.X, c.Scale), floorDiv(rel.Y, c.Scale))
	return v, v.In(image.Rectangle{Max: c.Native})
}

// ToPhysical returns the top-left physical pixel of virtual pixel v.
func (c *Context) ToPhysical(v image.Point) image.Point {
	return v.Mul(c.Scale).Add(c.Offset())
}

// MapPointer rewrites a physical pointer sample into virtual space.
func (c *Context) MapPointer(p platform.Pointer) platform.Pointer {
	v, ok := c.ToVirtual(image.Pt(p.X, p.Y))
	if !ok {
		return platform.Pointer{X: platform.Nowhere, Y: platform.Nowhere, VX: v.X, VY: v.Y, Down: p.Down}
	}
	return platform.Pointer{X: v.X, Y: v.Y, VX: v.X, VY: v.Y, Inside: true, Down: p.Down}
}

// MapEvents returns a copy of events with every pointer position converted
// to virtual space. Positions outside the canvas become platform.Nowhere,
// with the unclamped virtual position kept in VX, VY.
func (c *Context) MapEvents(events []platform.Event) []platform.Event {
	out := make([]platform.Event, len(events))
	for i, e := range events {
		if e.IsPointer() {
			v, ok := c.ToVirtual(image.Pt(e.X, e.Y))
			e.VX, e.VY = v.X, v.Y
			if ok {
				e.X, e.Y = v.X, v.Y
			} else {
				e.X, e.Y = platform.Nowhere, platform.Nowhere
			}
		}
		out[i] = e
	}
	return out
}

func floorDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
