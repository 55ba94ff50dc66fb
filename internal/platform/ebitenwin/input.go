package ebitenwin

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"subpixel/internal/platform"
)

var keyMap = []struct {
	ebiten ebiten.Key
	key    platform.Key
}{
	{ebiten.KeyEscape, platform.KeyEscape},
	{ebiten.KeyEnter, platform.KeyEnter},
	{ebiten.KeyKPEnter, platform.KeyKPEnter},
	{ebiten.KeyArrowUp, platform.KeyUp},
	{ebiten.KeyArrowDown, platform.KeyDown},
	{ebiten.KeyPageUp, platform.KeyPageUp},
	{ebiten.KeyPageDown, platform.KeyPageDown},
	{ebiten.KeyC, platform.KeyC},
	{ebiten.KeyF11, platform.KeyF11},
}

var buttonMap = []struct {
	ebiten ebiten.MouseButton
	button platform.MouseButton
}{
	{ebiten.MouseButtonLeft, platform.ButtonLeft},
	{ebiten.MouseButtonRight, platform.ButtonRight},
	{ebiten.MouseButtonMiddle, platform.ButtonMiddle},
}

// Input turns ebiten's polled state into per-frame edge events in
// physical window coordinates.
type Input struct {
	wheel *rate.Limiter
	lastX int
	lastY int
	w     int
	h     int
}

// NewInput limits wheel steps to wheelHz so trackpads that report a
// fractional delta every frame do not race through long lists.
func NewInput(wheelHz int) *Input {
	if wheelHz <= 0 {
		wheelHz = 30
	}
	return &Input{wheel: rate.NewLimiter(rate.Every(time.Second/time.Duration(wheelHz)), 2)}
}

func (in *Input) Poll() (platform.Pointer, []platform.Event) {
	var events []platform.Event
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if ebiten.IsWindowBeingClosed() {
		events = append(events, platform.Event{Type: platform.EventClose})
	}
	if w, h := ebiten.WindowSize(); w != in.w || h != in.h {
		in.w, in.h = w, h
		events = append(events, platform.Event{Type: platform.EventResize, Width: w, Height: h})
	}

	x, y := ebiten.CursorPosition()
	if x != in.lastX || y != in.lastY {
		in.lastX, in.lastY = x, y
		events = append(events, platform.Event{Type: platform.EventMouseMove, X: x, Y: y})
	}
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, platform.Event{Type: platform.EventMouseDown, Button: b.button, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, platform.Event{Type: platform.EventMouseUp, Button: b.button, X: x, Y: y})
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 && in.wheel.Allow() {
		dy := 1
		if wy < 0 {
			dy = -1
		}
		events = append(events, platform.Event{Type: platform.EventMouseWheel, DeltaY: dy, X: x, Y: y})
	}
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			events = append(events, platform.Event{Type: platform.EventKeyDown, Key: k.key, Ctrl: ctrl})
		}
		if inpututil.IsKeyJustReleased(k.ebiten) {
			events = append(events, platform.Event{Type: platform.EventKeyUp, Key: k.key, Ctrl: ctrl})
		}
	}

	p := platform.Pointer{
		X:      x,
		Y:      y,
		Inside: true,
		Down:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	return p, events
}
