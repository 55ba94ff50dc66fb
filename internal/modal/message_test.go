package modal

import (
	"testing"

	"subpixel/internal/assets"
	"subpixel/internal/platform"
	"subpixel/internal/render"
	"subpixel/internal/ui"
)

func newTestMessage() *Message {
	return NewMessage("No ROM Files", "No ROM files found.\nPlace your ROMs here.", assets.Builtin(), ui.DefaultTheme())
}

func TestMessageDismissedByClick(t *testing.T) {
	for _, b := range []platform.MouseButton{platform.ButtonLeft, platform.ButtonRight} {
		m := newTestMessage()
		if st := m.Step(Frame{}); st != StatusOpen {
			t.Fatalf("empty frame should keep it open, got %v", st)
		}
		st := m.Step(Frame{Events: []platform.Event{{Type: platform.EventMouseDown, Button: b, X: 3, Y: 3}}})
		if st != StatusDismissed {
			t.Fatalf("button %d: expected dismissed, got %v", b, st)
		}
		if res := m.Result(); res.Confirmed() || res.Value != "" {
			t.Fatalf("dismissal carries no value: %+v", res)
		}
	}
}

func TestMessageDismissedByEscape(t *testing.T) {
	m := newTestMessage()
	if st := m.Step(keys(platform.KeyDown, platform.KeyEnter)); st != StatusOpen {
		t.Fatalf("other keys must not dismiss, got %v", st)
	}
	if st := m.Step(keys(platform.KeyEscape)); st != StatusDismissed {
		t.Fatalf("expected dismissed, got %v", st)
	}
}

func TestMessageRunsOutOfFrames(t *testing.T) {
	res := RunToCompletion(newTestMessage(), &ScriptedFrames{}, nil)
	if res.Status != StatusDismissed {
		t.Fatalf("expected dismissed, got %v", res.Status)
	}
}

func TestMessageDrawsInsidePopup(t *testing.T) {
	m := newTestMessage()
	fb := render.NewFrameBuffer(480, 270)
	fb.Clear(ui.DefaultTheme().Background)
	before := fb.Img.RGBAAt(2, 2)
	m.Draw(fb)
	r := m.Popup()
	if r.W != MessageW || r.H != MessageH || r.X != 80 || r.Y != 75 {
		t.Fatalf("unexpected popup rect %+v", r)
	}
	if after := fb.Img.RGBAAt(2, 2); after == before {
		t.Fatal("background should be dimmed")
	}
	if fb.Img.RGBAAt(r.X+r.W/2, r.Y+r.H-4) == fb.Img.RGBAAt(2, 2) {
		t.Fatal("popup body not drawn")
	}
}
