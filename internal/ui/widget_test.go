package ui

import (
	"image"
	"testing"
	"time"

	"subpixel/internal/platform"
)

func TestStateOf(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 8}
	cases := []struct {
		p        platform.Pointer
		disabled bool
		want     State
	}{
		{platform.Pointer{X: 0, Y: 0}, false, StateIdle},
		{platform.Pointer{X: 10, Y: 10}, false, StateHover},
		{platform.Pointer{X: 29, Y: 17, Down: true}, false, StatePressed},
		{platform.Pointer{X: 30, Y: 17, Down: true}, false, StateIdle},
		{platform.Pointer{X: 15, Y: 12, Down: true}, true, StateDisabled},
		{platform.Pointer{X: platform.Nowhere, Y: platform.Nowhere}, false, StateIdle},
	}
	for _, tc := range cases {
		if got := StateOf(r, tc.p, tc.disabled); got != tc.want {
			t.Fatalf("StateOf(%+v, disabled=%v) = %v, want %v", tc.p, tc.disabled, got, tc.want)
		}
	}
}

func TestStateSkinIndex(t *testing.T) {
	if StateDisabled.SkinIndex() != 0 || StatePressed.SkinIndex() != 2 || StateHover.SkinIndex() != 1 {
		t.Fatal("unexpected skin mapping")
	}
}

func press(x, y int) platform.Event {
	return platform.Event{Type: platform.EventMouseDown, Button: platform.ButtonLeft, X: x, Y: y}
}

func release(x, y int) platform.Event {
	return platform.Event{Type: platform.EventMouseUp, Button: platform.ButtonLeft, X: x, Y: y}
}

func TestClickerFiresOnReleaseInside(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	var c Clicker
	if c.Feed(r, press(5, 5), false) {
		t.Fatal("press must not activate")
	}
	if !c.Armed() {
		t.Fatal("expected armed after press inside")
	}
	if !c.Feed(r, release(6, 6), false) {
		t.Fatal("release inside should activate")
	}
	if c.Armed() {
		t.Fatal("release must disarm")
	}
}

func TestClickerIgnoresDragOff(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	var c Clicker
	c.Feed(r, press(5, 5), false)
	if c.Feed(r, release(50, 5), false) {
		t.Fatal("release outside must not activate")
	}
	c.Feed(r, press(50, 5), false)
	if c.Feed(r, release(5, 5), false) {
		t.Fatal("press outside then release inside must not activate")
	}
}

func TestClickerDisabled(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	var c Clicker
	c.Feed(r, press(5, 5), true)
	if c.Feed(r, release(5, 5), true) {
		t.Fatal("disabled widget must not activate")
	}
	c.Feed(r, press(5, 5), false)
	if c.Feed(r, release(5, 5), true) {
		t.Fatal("widget disabled before release must not activate")
	}
}

func TestTooltipDelayAndCancel(t *testing.T) {
	tt := NewTooltip()
	t0 := time.Unix(100, 0)
	at := image.Pt(200, 200)

	tt.Update(2, t0, at)
	if _, ok := tt.Active(); ok {
		t.Fatal("tooltip must wait for the delay")
	}
	tt.Update(2, t0.Add(300*time.Millisecond), at)
	if _, ok := tt.Active(); ok {
		t.Fatal("tooltip shown too early")
	}
	tt.Update(2, t0.Add(TooltipDelay), at)
	if idx, ok := tt.Active(); !ok || idx != 2 {
		t.Fatalf("expected tooltip for 2, got %d %v", idx, ok)
	}
	tt.Update(2, t0.Add(time.Second), at.Add(image.Pt(TooltipDistance, 0)))
	if _, ok := tt.Active(); !ok {
		t.Fatal("movement within the distance must keep the tooltip")
	}
	tt.Update(2, t0.Add(time.Second), at.Add(image.Pt(TooltipDistance+1, 0)))
	if _, ok := tt.Active(); ok {
		t.Fatal("movement past the distance must cancel")
	}
}

func TestTooltipLeaveResets(t *testing.T) {
	tt := NewTooltip()
	t0 := time.Unix(0, 0)
	tt.Update(1, t0, image.Point{})
	tt.Update(1, t0.Add(time.Second), image.Point{})
	tt.Update(-1, t0.Add(time.Second), image.Point{})
	if _, ok := tt.Active(); ok {
		t.Fatal("leaving the icon must hide the tooltip")
	}
	tt.Update(3, t0.Add(2*time.Second), image.Point{})
	if _, ok := tt.Active(); ok {
		t.Fatal("a new icon restarts the delay")
	}
}

func TestTooltipPlaceClamps(t *testing.T) {
	tt := NewTooltip()
	if p := tt.Place(image.Pt(2, 4), 40, 16, 480); p.X != 0 || p.Y != 0 {
		t.Fatalf("unexpected top-left clamp: %v", p)
	}
	if p := tt.Place(image.Pt(478, 100), 40, 16, 480); p.X != 440 || p.Y != 76 {
		t.Fatalf("unexpected right clamp: %v", p)
	}
}
