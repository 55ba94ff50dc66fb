package ui

import (
	"image"
	"time"
)

const (
	TooltipDelay    = 380 * time.Millisecond
	TooltipDistance = 60
)

// Tooltip tracks which item the pointer rests on and when its label should
// appear. Distances are measured in physical pixels.
type Tooltip struct {
	Delay    time.Duration
	Distance int

	idx    int
	since  time.Time
	active bool
	anchor image.Point
}

func NewTooltip() *Tooltip {
	return &Tooltip{Delay: TooltipDelay, Distance: TooltipDistance, idx: -1}
}

// Update feeds the hovered item index (-1 for none) for this frame.
func (t *Tooltip) Update(hovered int, now time.Time, physical image.Point) {
	if hovered < 0 {
		t.idx = -1
		t.active = false
		return
	}
	if hovered != t.idx {
		t.idx = hovered
		t.since = now
		t.active = false
		t.anchor = physical
		return
	}
	if !t.active {
		if now.Sub(t.since) >= t.Delay {
			t.active = true
			t.anchor = physical
		}
		return
	}
	d := physical.Sub(t.anchor)
	if abs(d.X) > t.Distance || abs(d.Y) > t.Distance {
		t.active = false
		t.idx = -1
	}
}

// Active returns the item whose tooltip is showing.
func (t *Tooltip) Active() (int, bool) {
	if !t.active {
		return -1, false
	}
	return t.idx, true
}

// Place positions a tooltip of size w x h centered above the pointer and
// clamped inside a canvas of the given size.
func (t *Tooltip) Place(pointer image.Point, w, h, canvasW int) image.Point {
	x := pointer.X - w/2
	y := pointer.Y - h - 8
	if x > canvasW-w {
		x = canvasW - w
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return image.Pt(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
