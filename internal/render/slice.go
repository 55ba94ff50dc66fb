package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Blit copies src unscaled with its top-left at (x, y).
func Blit(dst draw.Image, src image.Image, x, y int) {
	BlitRegion(dst, src, src.Bounds(), x, y)
}

// BlitRegion copies the sr part of src unscaled to (x, y).
func BlitRegion(dst draw.Image, src image.Image, sr image.Rectangle, x, y int) {
	if sr.Empty() {
		return
	}
	dr := image.Rect(x, y, x+sr.Dx(), y+sr.Dy())
	draw.Draw(dst, dr, src, sr.Min, draw.Over)
}

// BlitScaled draws the sr part of src stretched into dr with nearest-neighbor
// sampling, so pixel art stays crisp.
func BlitScaled(dst draw.Image, src image.Image, sr, dr image.Rectangle) {
	if sr.Empty() || dr.Empty() {
		return
	}
	if sr.Dx() == dr.Dx() && sr.Dy() == dr.Dy() {
		draw.Draw(dst, dr, src, sr.Min, draw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dr, src, sr, draw.Over, nil)
}

// Draw9Slice draws src as a 3x3 grid: corners of corner x corner pixels are
// copied unscaled, edges stretch along their own axis, the center stretches
// both ways. A destination smaller than two corners shrinks the corners.
func Draw9Slice(dst draw.Image, x, y, w, h int, src image.Image, corner int) {
	draw9(dst, x, y, w, h, src, src.Bounds(), corner)
}

func draw9(dst draw.Image, x, y, w, h int, src image.Image, sb image.Rectangle, c int) {
	if w <= 0 || h <= 0 || sb.Empty() {
		return
	}
	c = min(c, sb.Dx()/2, sb.Dy()/2, w/2, h/2)
	if c < 0 {
		c = 0
	}
	sx0, sx1, sx2, sx3 := sb.Min.X, sb.Min.X+c, sb.Max.X-c, sb.Max.X
	sy0, sy1, sy2, sy3 := sb.Min.Y, sb.Min.Y+c, sb.Max.Y-c, sb.Max.Y
	dx0, dx1, dx2, dx3 := x, x+c, x+w-c, x+w
	dy0, dy1, dy2, dy3 := y, y+c, y+h-c, y+h

	cols := [3][4]int{{sx0, sx1, dx0, dx1}, {sx1, sx2, dx1, dx2}, {sx2, sx3, dx2, dx3}}
	rows := [3][4]int{{sy0, sy1, dy0, dy1}, {sy1, sy2, dy1, dy2}, {sy2, sy3, dy2, dy3}}
	for _, r := range rows {
		for _, col := range cols {
			sr := image.Rect(col[0], r[0], col[1], r[1])
			dr := image.Rect(col[2], r[2], col[3], r[3])
			BlitScaled(dst, src, sr, dr)
		}
	}
}

// Draw3SliceH draws a horizontal strip w pixels wide. The left and right
// caps are copied unscaled; only the middle stretches. Height always equals
// the source height.
func Draw3SliceH(dst draw.Image, x, y, w int, src image.Image, lsize, rsize int) {
	draw3h(dst, x, y, w, src, src.Bounds(), lsize, rsize)
}

func draw3h(dst draw.Image, x, y, w int, src image.Image, sb image.Rectangle, l, r int) {
	if w <= 0 || sb.Empty() {
		return
	}
	l, r = fitCaps(l, r, sb.Dx(), w)
	h := sb.Dy()
	BlitRegion(dst, src, image.Rect(sb.Min.X, sb.Min.Y, sb.Min.X+l, sb.Max.Y), x, y)
	BlitScaled(dst, src,
		image.Rect(sb.Min.X+l, sb.Min.Y, sb.Max.X-r, sb.Max.Y),
		image.Rect(x+l, y, x+w-r, y+h))
	BlitRegion(dst, src, image.Rect(sb.Max.X-r, sb.Min.Y, sb.Max.X, sb.Max.Y), x+w-r, y)
}

// Draw3SliceV is the vertical counterpart of Draw3SliceH: width always
// equals the source width and only the middle stretches to h.
func Draw3SliceV(dst draw.Image, x, y, h int, src image.Image, tsize, bsize int) {
	sb := src.Bounds()
	if h <= 0 || sb.Empty() {
		return
	}
	t, b := fitCaps(tsize, bsize, sb.Dy(), h)
	w := sb.Dx()
	BlitRegion(dst, src, image.Rect(sb.Min.X, sb.Min.Y, sb.Max.X, sb.Min.Y+t), x, y)
	BlitScaled(dst, src,
		image.Rect(sb.Min.X, sb.Min.Y+t, sb.Max.X, sb.Max.Y-b),
		image.Rect(x, y+t, x+w, y+h-b))
	BlitRegion(dst, src, image.Rect(sb.Min.X, sb.Max.Y-b, sb.Max.X, sb.Max.Y), x, y+h-b)
}

// fitCaps keeps each cap within half the source and the pair within the
// destination length.
func fitCaps(a, b, srcLen, dstLen int) (int, int) {
	a = max(0, min(a, srcLen/2))
	b = max(0, min(b, srcLen/2))
	if a+b > dstLen {
		a = dstLen / 2
		b = dstLen - a
	}
	return a, b
}

// StateAtlas is a strip of equally wide widget skins laid side by side, one
// per interaction state (idle, hover, pressed, ...).
type StateAtlas struct {
	Image  image.Image
	States int
}

func NewStateAtlas(img image.Image, states int) StateAtlas {
	if states < 1 {
		states = 1
	}
	return StateAtlas{Image: img, States: states}
}

func (a StateAtlas) CellWidth() int {
	if a.Image == nil || a.States < 1 {
		return 0
	}
	return a.Image.Bounds().Dx() / a.States
}

func (a StateAtlas) Height() int {
	if a.Image == nil {
		return 0
	}
	return a.Image.Bounds().Dy()
}

// ClampState maps any index onto a valid cell; skins are cosmetic so an out
// of range state falls back to the nearest one instead of failing.
func (a StateAtlas) ClampState(state int) int {
	if state < 0 {
		return 0
	}
	if state >= a.States {
		return a.States - 1
	}
	return state
}

// Cell returns the source rectangle of a state's skin.
func (a StateAtlas) Cell(state int) image.Rectangle {
	b := a.Image.Bounds()
	cw := a.CellWidth()
	x := b.Min.X + a.ClampState(state)*cw
	return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
}

// DrawStateCell copies one state's cell unscaled to (x, y).
func DrawStateCell(dst draw.Image, x, y int, atlas StateAtlas, state int) {
	if atlas.Image == nil {
		return
	}
	BlitRegion(dst, atlas.Image, atlas.Cell(state), x, y)
}

// Draw3SliceButton draws a horizontally stretched button using the cell of
// the atlas that matches state.
func Draw3SliceButton(dst draw.Image, x, y, w int, atlas StateAtlas, state, caps int) {
	if atlas.Image == nil {
		return
	}
	draw3h(dst, x, y, w, atlas.Image, atlas.Cell(state), caps, caps)
}
