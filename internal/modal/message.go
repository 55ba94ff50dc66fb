package modal

import (
	"image"

	"subpixel/internal/assets"
	"subpixel/internal/display"
	"subpixel/internal/platform"
	"subpixel/internal/render"
	"subpixel/internal/ui"
)

const (
	MessageW     = 320
	MessageH     = 120
	MessageBodyX = 16
	MessageBodyY = 40
)

// Message shows a title and a multi-line body until any click or Escape.
type Message struct {
	title  string
	body   string
	canvas image.Point
	skin   *assets.Skin
	theme  ui.Theme
	status Status
}

func NewMessage(title, body string, skin *assets.Skin, theme ui.Theme) *Message {
	return &Message{
		title:  title,
		body:   body,
		canvas: image.Pt(display.NativeW, display.NativeH),
		skin:   skin,
		theme:  theme,
	}
}

func (m *Message) Popup() ui.Rect {
	return ui.Rect{
		X: (m.canvas.X - MessageW) / 2,
		Y: (m.canvas.Y - MessageH) / 2,
		W: MessageW,
		H: MessageH,
	}
}

func (m *Message) Step(f Frame) Status {
	if m.status != StatusOpen {
		return m.status
	}
	for _, e := range f.Events {
		if e.Type == platform.EventMouseDown || e.Type == platform.EventClose || e.IsKey(platform.KeyEscape) {
			m.status = StatusDismissed
			break
		}
	}
	return m.status
}

func (m *Message) Abandon() {
	if m.status == StatusOpen {
		m.status = StatusDismissed
	}
}

func (m *Message) Result() Result {
	return Result{Status: m.status, Index: -1}
}

func (m *Message) Draw(fb *render.FrameBuffer) {
	s := m.skin
	r := m.Popup()
	fb.Dim(m.theme.ModalDim)
	render.Draw9Slice(fb.Img, r.X, r.Y, r.W, r.H, s.Popup, assets.PopupCorner)
	render.Draw3SliceH(fb.Img, r.X, r.Y, r.W, s.PopupHeader, assets.HeaderCaps, assets.HeaderCaps)
	s.Bold.DrawString(fb.Img, m.title, r.X+MessageBodyX, r.Y+(HeaderH-s.Bold.Height())/2, m.theme.Warning)
	s.Regular.DrawString(fb.Img, m.body, r.X+MessageBodyX, r.Y+MessageBodyY, m.theme.Text)
}
