package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"subpixel/internal/bitmapfont"
	"subpixel/internal/render"
)

var (
	inkDark   = color.RGBA{0x10, 0x12, 0x1C, 0xFF}
	inkPanel  = color.RGBA{0x1E, 0x24, 0x3A, 0xFF}
	inkEdge   = color.RGBA{0x5A, 0x6C, 0xA8, 0xFF}
	inkLight  = color.RGBA{0x9C, 0xB4, 0xF0, 0xFF}
	inkHeader = color.RGBA{0x2C, 0x3C, 0x78, 0xFF}
	inkTrack  = color.RGBA{0x14, 0x18, 0x28, 0xFF}
	inkThumb  = color.RGBA{0x7C, 0x90, 0xD0, 0xFF}
	inkGreen  = color.RGBA{0x40, 0xC0, 0x60, 0xFF}
	inkYellow = color.RGBA{0xE0, 0xC0, 0x40, 0xFF}
	inkRed    = color.RGBA{0xD0, 0x40, 0x40, 0xFF}

	buttonFaces = []color.RGBA{
		{0x34, 0x44, 0x80, 0xFF},
		{0x48, 0x5C, 0xA8, 0xFF},
		{0x22, 0x2C, 0x58, 0xFF},
	}
)

// Builtin returns a procedurally drawn skin with fonts rasterized from the
// basicfont 7x13 face. It needs no files on disk.
func Builtin() *Skin {
	s := &Skin{
		Popup:       panel(24, 24, PopupCorner, inkPanel, inkEdge),
		PopupHeader: panel(24, 21, HeaderCaps, inkHeader, inkEdge),
		ScrollBar:   panel(5, 24, 2, inkTrack, inkEdge),
		ScrollThumb: panel(5, 24, 2, inkThumb, inkLight),
		Divider:     solid(8, 2, inkEdge),
		CloseButton: stateStrip(12, 12, 3, true),
		StdButton:   stateStrip(16, 16, 3, false),
		LargeButton: stateStrip(24, 35, 3, false),

		Shell:         panel(32, 32, ShellCorner, inkDark, inkEdge),
		ShellHeader:   panel(ShellHeaderLeft+32+ShellHeaderRight, 32, 4, inkHeader, inkEdge),
		ShadeSide:     solid(6, 20, color.RGBA{0x08, 0x0A, 0x12, 0xFF}),
		HeaderIcon:    solid(16, 16, inkLight),
		NoticeIcon:    solid(8, 8, inkYellow),
		Logo:          panel(64, 32, 4, inkHeader, inkLight),
		Tray:          panel(24, 18, BarCaps, inkPanel, inkEdge),
		InfoBar:       panel(24, 16, BarCaps, inkTrack, inkEdge),
		ProgressBar:   panel(24, 10, BarCaps, inkTrack, inkEdge),
		ProgressFills: fills(6, []color.RGBA{inkGreen, inkYellow, inkRed}),
		Tooltip:       panel(24, 2*TooltipCorner, TooltipCorner, inkPanel, inkLight),

		WinMinimize: stateStrip(17, 16, 3, false),
		WinMaximize: stateStrip(17, 16, 3, false),
		WinWindowed: stateStrip(17, 16, 3, false),
		WinExit:     stateStrip(17, 16, 3, true),

		Bold:    rasterFont(true),
		Regular: rasterFont(false),
	}
	for range TrayIconFiles {
		s.TrayIcons = append(s.TrayIcons, panel(12, 12, 2, inkHeader, inkLight))
	}
	return s
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// panel draws a filled rectangle with a one-pixel border and a lighter
// inner bevel inside the corner region.
func panel(w, h, corner int, fill, edge color.RGBA) *image.RGBA {
	img := solid(w, h, fill)
	for x := 0; x < w; x++ {
		img.SetRGBA(x, 0, edge)
		img.SetRGBA(x, h-1, edge)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(0, y, edge)
		img.SetRGBA(w-1, y, edge)
	}
	if corner > 2 && w > 4 && h > 4 {
		for x := 1; x < w-1; x++ {
			img.SetRGBA(x, 1, inkLight)
		}
	}
	return img
}

func stateStrip(cellW, h, states int, cross bool) render.StateAtlas {
	img := image.NewRGBA(image.Rect(0, 0, cellW*states, h))
	for i := 0; i < states; i++ {
		cell := panel(cellW, h, 0, buttonFaces[i%len(buttonFaces)], inkLight)
		if cross {
			for d := 3; d < min(cellW, h)-3; d++ {
				cell.SetRGBA(d, d, inkLight)
				cell.SetRGBA(cellW-1-d, d, inkLight)
			}
		}
		draw.Draw(img, image.Rect(i*cellW, 0, (i+1)*cellW, h), cell, image.Point{}, draw.Src)
	}
	return render.NewStateAtlas(img, states)
}

func fills(h int, colors []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2*len(colors), h))
	for i, c := range colors {
		draw.Draw(img, image.Rect(i*2, 0, i*2+2, h), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

// rasterFont renders printable ASCII from basicfont into a white-on-clear
// atlas and trims each glyph to its inked columns.
func rasterFont(bold bool) *bitmapfont.Font {
	face := basicfont.Face7x13
	const first, last = 33, 126
	cell := face.Advance + 1
	atlas := image.NewRGBA(image.Rect(0, 0, cell*(last-first+1), face.Height))
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: face}

	glyphs := make([]bitmapfont.Glyph, 0, last-first+1)
	for r := rune(first); r <= last; r++ {
		x0 := int(r-first) * cell
		d.Dot = fixed.P(x0, face.Ascent)
		d.DrawString(string(r))
		if bold {
			d.Dot = fixed.P(x0+1, face.Ascent)
			d.DrawString(string(r))
		}
		lo, hi := inkColumns(atlas, x0, cell)
		glyphs = append(glyphs, bitmapfont.Glyph{Char: r, X: lo, W: hi - lo + 1})
	}
	f, err := bitmapfont.New(atlas, glyphs)
	if err != nil {
		panic("assets: builtin font: " + err.Error())
	}
	return f
}

func inkColumns(img *image.RGBA, x0, w int) (int, int) {
	lo, hi := -1, -1
	for x := x0; x < x0+w; x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			if img.RGBAAt(x, y).A != 0 {
				if lo < 0 {
					lo = x
				}
				hi = x
				break
			}
		}
	}
	if lo < 0 {
		return x0, x0
	}
	return lo, hi
}
