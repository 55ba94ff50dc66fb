package render

import (
	"image"
	"image/color"
	"image/draw"
)

// FrameBuffer is the fixed-size virtual canvas every screen draws into. It
// is uploaded to the GPU once per frame and scaled to the window there.
type FrameBuffer struct {
	W   int
	H   int
	Img *image.RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Pixels exposes the RGBA bytes in row-major order with stride 4*W.
func (fb *FrameBuffer) Pixels() []uint8 { return fb.Img.Pix }

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Img.Pix); i += 4 {
		fb.Img.Pix[i+0] = c.R
		fb.Img.Pix[i+1] = c.G
		fb.Img.Pix[i+2] = c.B
		fb.Img.Pix[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	r, ok := fb.clip(x, y, w, h)
	if !ok {
		return
	}
	for row := r.Min.Y; row < r.Max.Y; row++ {
		off := fb.Img.PixOffset(r.Min.X, row)
		for col := 0; col < r.Dx(); col++ {
			idx := off + col*4
			fb.Img.Pix[idx+0] = c.R
			fb.Img.Pix[idx+1] = c.G
			fb.Img.Pix[idx+2] = c.B
			fb.Img.Pix[idx+3] = c.A
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// BlendRect composites a translucent color over the existing pixels.
func (fb *FrameBuffer) BlendRect(x, y, w, h int, c color.NRGBA) {
	r, ok := fb.clip(x, y, w, h)
	if !ok {
		return
	}
	draw.Draw(fb.Img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// BlendRoundRect is BlendRect with corners cut to the given radius.
func (fb *FrameBuffer) BlendRoundRect(x, y, w, h, radius int, c color.NRGBA) {
	if radius <= 0 {
		fb.BlendRect(x, y, w, h, c)
		return
	}
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	for row := 0; row < h; row++ {
		inset := 0
		if row < radius {
			inset = cornerInset(radius, radius-row)
		} else if row >= h-radius {
			inset = cornerInset(radius, row-(h-radius)+1)
		}
		fb.BlendRect(x+inset, y+row, w-2*inset, 1, c)
	}
}

// cornerInset returns how many pixels to skip on a row that is dy rows into
// the curved part of a corner of radius r.
func cornerInset(r, dy int) int {
	for dx := 0; dx < r; dx++ {
		ex := r - dx
		if ex*ex+dy*dy <= r*r+r {
			return dx
		}
	}
	return r
}

// Dim darkens the whole canvas, used behind modal popups.
func (fb *FrameBuffer) Dim(alpha uint8) {
	fb.BlendRect(0, 0, fb.W, fb.H, color.NRGBA{A: alpha})
}

func (fb *FrameBuffer) clip(x, y, w, h int) (image.Rectangle, bool) {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.Img.Bounds())
	return r, !r.Empty()
}
