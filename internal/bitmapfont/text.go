package bitmapfont

import (
	"image"
	"image/color"
	"image/draw"

	"subpixel/internal/render"
)

// Measure returns the advance width of a single line of text. Newlines are
// not counted; split multi-line text first.
func (f *Font) Measure(text string, scale, spaceWidth int) int {
	if scale < 1 {
		scale = 1
	}
	w := 0
	for _, r := range text {
		switch {
		case r == '\n':
		case r == ' ':
			w += spaceWidth * scale
		default:
			if g, ok := f.glyphs[r]; ok {
				w += (g.W + 1) * scale
			} else {
				w += FallbackWidth * scale
			}
		}
	}
	return w
}

// Width measures text at scale 1 with the default space width.
func (f *Font) Width(text string) int {
	return f.Measure(text, 1, DefaultSpaceWidth)
}

// LineAdvance is the vertical distance between successive lines.
func (f *Font) LineAdvance(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return f.height*scale + f.LineGap
}

// Render draws text with its top-left at (x, y). Glyphs are scaled with
// nearest-neighbor sampling and multiplied by c, so a white atlas can be
// drawn in any color. Drawing is idempotent for the same surface region.
func (f *Font) Render(dst draw.Image, text string, x, y int, c color.Color, scale, spaceWidth int) {
	if scale < 1 {
		scale = 1
	}
	tint := color.RGBAModel.Convert(c).(color.RGBA)
	cx := x
	for _, r := range text {
		switch r {
		case '\n':
			y += f.LineAdvance(scale)
			cx = x
			continue
		case ' ':
			cx += spaceWidth * scale
			continue
		}
		g, ok := f.glyphs[r]
		if !ok {
			cx += FallbackWidth * scale
			continue
		}
		if g.W > 0 && g.H > 0 {
			tinted := f.tintGlyph(g, tint)
			dr := image.Rect(cx, y, cx+g.W*scale, y+g.H*scale)
			render.BlitScaled(dst, tinted, tinted.Bounds(), dr)
		}
		cx += (g.W + 1) * scale
	}
}

// DrawString renders at scale 1 with the default space width.
func (f *Font) DrawString(dst draw.Image, text string, x, y int, c color.Color) {
	f.Render(dst, text, x, y, c, 1, DefaultSpaceWidth)
}

// tintGlyph multiplies each premultiplied atlas pixel by the tint color.
func (f *Font) tintGlyph(g Glyph, tint color.RGBA) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	b := f.atlas.Bounds()
	for yy := 0; yy < g.H; yy++ {
		for xx := 0; xx < g.W; xx++ {
			sr, sg, sb, sa := f.atlas.At(b.Min.X+g.X+xx, b.Min.Y+g.Y+yy).RGBA()
			if sa == 0 {
				continue
			}
			out.SetRGBA(xx, yy, color.RGBA{
				R: uint8(sr * uint32(tint.R) / 0xffff),
				G: uint8(sg * uint32(tint.G) / 0xffff),
				B: uint8(sb * uint32(tint.B) / 0xffff),
				A: uint8(sa * uint32(tint.A) / 0xffff),
			})
		}
	}
	return out
}
