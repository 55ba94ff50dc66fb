package modal

import (
	"fmt"
	"image"
	"math"

	"github.com/dustin/go-humanize"

	"subpixel/internal/assets"
	"subpixel/internal/bitmapfont"
	"subpixel/internal/display"
	"subpixel/internal/platform"
	"subpixel/internal/render"
	"subpixel/internal/ui"
)

// Picker geometry in virtual pixels, relative to the popup origin.
const (
	PickerW        = 320
	HeaderH        = 21
	RowH           = 14
	ListTop        = 22
	ListX          = 24
	ListW          = PickerW - 80
	HighlightX     = 16
	HighlightR     = 5
	DividerGap     = 10
	ButtonPad      = 12
	ButtonGap      = 16
	ButtonH        = 16
	MinThumb       = 16
	DefaultVisible = 10
)

const DefaultPickerTitle = "Select a ROM file"

type PickerOptions struct {
	Title   string
	Visible int
	CanvasW int
	CanvasH int
}

// PickerLayout holds the rects of every picker part in canvas coordinates.
// Thumb depends on the scroll offset and is zero when the list fits.
type PickerLayout struct {
	Popup    ui.Rect
	Header   ui.Rect
	Close    ui.Rect
	List     ui.Rect
	Track    ui.Rect
	Thumb    ui.Rect
	OK       ui.Rect
	Cancel   ui.Rect
	DividerY int
}

// Picker is a scrollable single-selection list with OK and Cancel.
type Picker struct {
	title   string
	items   []string
	visible int
	canvas  image.Point
	skin    *assets.Skin
	theme   ui.Theme

	scroll   int
	selected int
	hover    int
	dragging bool
	pointer  platform.Pointer

	status Status
	index  int
}

func NewPicker(items []string, opts PickerOptions, skin *assets.Skin, theme ui.Theme) *Picker {
	if opts.Visible <= 0 {
		opts.Visible = DefaultVisible
	}
	if opts.CanvasW <= 0 || opts.CanvasH <= 0 {
		opts.CanvasW, opts.CanvasH = display.NativeW, display.NativeH
	}
	if opts.Title == "" {
		opts.Title = DefaultPickerTitle
	}
	return &Picker{
		title:    opts.Title,
		items:    append([]string(nil), items...),
		visible:  opts.Visible,
		canvas:   image.Pt(opts.CanvasW, opts.CanvasH),
		skin:     skin,
		theme:    theme,
		selected: -1,
		hover:    -1,
		index:    -1,
		pointer:  platform.Pointer{X: platform.Nowhere, Y: platform.Nowhere},
	}
}

func (p *Picker) Scroll() int { return p.scroll }

// Selected returns the selected index, or -1.
func (p *Picker) Selected() int { return p.selected }

// Hover returns the row under the pointer, or -1.
func (p *Picker) Hover() int { return p.hover }

func (p *Picker) Dragging() bool { return p.dragging }

func (p *Picker) Visible() int { return p.visible }

func (p *Picker) MaxScroll() int {
	return max(0, len(p.items)-p.visible)
}

func (p *Picker) scrollable() bool { return len(p.items) > p.visible }

func (p *Picker) Result() Result {
	r := Result{Status: p.status, Index: -1}
	if p.status == StatusConfirmed {
		r.Index = p.index
		r.Value = p.items[p.index]
	}
	return r
}

func (p *Picker) Abandon() {
	if p.status == StatusOpen {
		p.status = StatusCancelled
	}
}

func (p *Picker) Layout() PickerLayout {
	listH := p.visible * RowH
	dividerY := ListTop + listH + 2
	buttonY := dividerY + DividerGap
	h := buttonY + ButtonH + DividerGap

	px := (p.canvas.X - PickerW) / 2
	py := (p.canvas.Y - h) / 2

	l := PickerLayout{
		Popup:    ui.Rect{X: px, Y: py, W: PickerW, H: h},
		Header:   ui.Rect{X: px, Y: py, W: PickerW, H: HeaderH},
		Close:    ui.Rect{X: px + PickerW - 20, Y: py + 4, W: 12, H: 12},
		List:     ui.Rect{X: px + ListX, Y: py + ListTop, W: ListW, H: listH},
		DividerY: py + dividerY,
	}

	trackW := 5
	if p.skin != nil && p.skin.ScrollBar != nil {
		trackW = p.skin.ScrollBar.Bounds().Dx()
	}
	l.Track = ui.Rect{X: px + PickerW - trackW, Y: l.List.Y, W: trackW, H: listH}
	if p.scrollable() {
		th := min(max(MinThumb, listH*p.visible/len(p.items)), listH)
		ty := l.Track.Y + p.scroll*(listH-th)/max(1, p.MaxScroll())
		l.Thumb = ui.Rect{X: l.Track.X, Y: ty, W: trackW, H: th}
	}

	bw := p.buttonWidth()
	bx := px + (PickerW-(2*bw+ButtonGap))/2
	l.OK = ui.Rect{X: bx, Y: py + buttonY, W: bw, H: ButtonH}
	l.Cancel = ui.Rect{X: bx + bw + ButtonGap, Y: py + buttonY, W: bw, H: ButtonH}
	return l
}

// Both buttons share the width of the wider "Cancel" label.
func (p *Picker) buttonWidth() int {
	w := 6 * bitmapfont.FallbackWidth
	if p.skin != nil && p.skin.Bold != nil {
		w = p.skin.Bold.Width("Cancel")
	}
	return w + 2*ButtonPad
}

// rowAt returns the item index under (x, y), or -1.
func (p *Picker) rowAt(l PickerLayout, x, y int) int {
	if !l.List.Contains(x, y) {
		return -1
	}
	idx := (y-l.List.Y)/RowH + p.scroll
	if idx >= len(p.items) {
		return -1
	}
	return idx
}

func (p *Picker) Step(f Frame) Status {
	if p.status != StatusOpen {
		return p.status
	}
	p.pointer = f.Pointer
	p.hover = p.rowAt(p.Layout(), f.Pointer.X, f.Pointer.Y)
	for _, e := range f.Events {
		p.apply(e)
		if p.status != StatusOpen {
			return p.status
		}
	}
	if p.dragging && f.Pointer.Down {
		p.dragTo(f.Pointer.TrackY())
	}
	return p.status
}

func (p *Picker) apply(e platform.Event) {
	switch {
	case e.Type == platform.EventClose:
		p.status = StatusCancelled
	case e.IsPrimaryDown():
		p.press(e.X, e.Y)
	case e.IsPrimaryUp():
		p.dragging = false
	case e.Type == platform.EventMouseMove:
		if p.dragging {
			p.dragTo(e.TrackY())
		}
		p.hover = p.rowAt(p.Layout(), e.X, e.Y)
	case e.Type == platform.EventMouseWheel:
		switch {
		case e.DeltaY > 0:
			p.scrollBy(-1)
		case e.DeltaY < 0:
			p.scrollBy(1)
		}
	case e.Type == platform.EventKeyDown:
		p.key(e.Key)
	}
}

func (p *Picker) press(x, y int) {
	l := p.Layout()
	switch {
	case l.Close.Contains(x, y):
		p.status = StatusCancelled
		return
	case l.OK.Contains(x, y) && p.selected >= 0:
		p.confirm(p.selected)
		return
	case l.Cancel.Contains(x, y):
		p.status = StatusCancelled
		return
	}
	if p.scrollable() && l.Thumb.Contains(x, y) {
		p.dragging = true
	}
	row := p.rowAt(l, x, y)
	if row < 0 {
		return
	}
	if row == p.selected {
		p.confirm(row)
		return
	}
	p.selected = row
}

func (p *Picker) key(k platform.Key) {
	switch k {
	case platform.KeyEscape:
		p.status = StatusCancelled
	case platform.KeyEnter, platform.KeyKPEnter:
		if p.selected >= 0 {
			p.confirm(p.selected)
		}
	case platform.KeyDown:
		p.move(1)
	case platform.KeyUp:
		p.move(-1)
	case platform.KeyPageUp:
		p.scrollBy(-p.visible)
	case platform.KeyPageDown:
		p.scrollBy(p.visible)
	}
}

func (p *Picker) confirm(idx int) {
	p.index = idx
	p.status = StatusConfirmed
}

// move steps the selection by d and scrolls so the selection and, when the
// list has room, one neighbor in the direction of travel are both visible.
// With no selection it selects the first visible row and leaves the scroll
// alone.
func (p *Picker) move(d int) {
	n := len(p.items)
	if n == 0 {
		return
	}
	if p.selected < 0 {
		p.selected = min(p.scroll, n-1)
		p.hover = p.selected
		return
	}
	p.selected = min(max(p.selected+d, 0), n-1)
	lead := min(1, p.visible-1)
	a, b := p.selected, p.selected
	if d > 0 {
		b = min(p.selected+lead, n-1)
	} else {
		a = max(p.selected-lead, 0)
	}
	if b >= p.scroll+p.visible {
		p.scroll = b - p.visible + 1
	}
	if a < p.scroll {
		p.scroll = a
	}
	p.scroll = min(max(p.scroll, 0), p.MaxScroll())
	p.hover = p.selected
}

func (p *Picker) scrollBy(d int) {
	p.scroll = min(max(p.scroll+d, 0), p.MaxScroll())
}

// dragTo maps a pointer y onto the scroll range with the thumb centered on
// the pointer.
func (p *Picker) dragTo(y int) {
	if !p.scrollable() {
		return
	}
	l := p.Layout()
	span := l.Track.H - l.Thumb.H
	if span <= 0 {
		return
	}
	rel := float64(y-l.Track.Y-l.Thumb.H/2) / float64(span)
	rel = math.Max(0, math.Min(1, rel))
	p.scroll = int(math.Round(rel * float64(p.MaxScroll())))
}

func (p *Picker) Draw(fb *render.FrameBuffer) {
	s := p.skin
	l := p.Layout()

	fb.Dim(p.theme.ModalDim)
	render.Draw9Slice(fb.Img, l.Popup.X, l.Popup.Y, l.Popup.W, l.Popup.H, s.Popup, assets.PopupCorner)
	render.Draw3SliceH(fb.Img, l.Header.X, l.Header.Y, l.Header.W, s.PopupHeader, assets.HeaderCaps, assets.HeaderCaps)
	ui.DrawTextCentered(fb, s.Bold, p.title, l.Header, p.theme.Gold)
	closeState := ui.StateOf(l.Close, p.pointer, false)
	render.DrawStateCell(fb.Img, l.Close.X, l.Close.Y, s.CloseButton, closeState.SkinIndex())

	hx := l.Popup.X + HighlightX
	hw := l.Popup.W - 2*HighlightX
	textW := l.Track.X - hx - 10
	for i := 0; i < p.visible; i++ {
		idx := p.scroll + i
		if idx >= len(p.items) {
			break
		}
		y := l.List.Y + i*RowH
		switch {
		case idx == p.selected:
			fb.BlendRoundRect(hx, y-1, hw, RowH-2, HighlightR, p.theme.RowSelected)
		case idx == p.hover:
			fb.BlendRoundRect(hx, y-1, hw, RowH-2, HighlightR, p.theme.RowHover)
		}
		s.Regular.DrawString(fb.Img, ui.FitText(s.Regular, p.items[idx], textW), hx+6, y, p.theme.Text)
	}

	if p.scrollable() {
		render.Draw3SliceV(fb.Img, l.Track.X, l.Track.Y, l.Track.H, s.ScrollBar, assets.ScrollCaps, assets.ScrollCaps)
		render.Draw3SliceV(fb.Img, l.Thumb.X, l.Thumb.Y, l.Thumb.H, s.ScrollThumb, assets.ScrollCaps, assets.ScrollCaps)
	}

	render.BlitScaled(fb.Img, s.Divider, s.Divider.Bounds(), image.Rect(hx, l.DividerY, hx+hw, l.DividerY+2))

	okState := ui.StateDisabled
	if p.selected >= 0 {
		okState = ui.StateOf(l.OK, p.pointer, false)
	}
	ui.DrawButton(fb, s.StdButton, l.OK, okState, "OK", s.Bold, p.theme)
	ui.DrawButton(fb, s.StdButton, l.Cancel, ui.StateOf(l.Cancel, p.pointer, false), "Cancel", s.Bold, p.theme)

	count := fmt.Sprintf("%s files", humanize.Comma(int64(len(p.items))))
	if len(p.items) == 1 {
		count = "1 file"
	}
	count = ui.FitText(s.Regular, count, l.OK.X-hx-4)
	s.Regular.DrawString(fb.Img, count, hx, l.OK.Y+(ButtonH-s.Regular.Height())/2, p.theme.TextMuted)
}
