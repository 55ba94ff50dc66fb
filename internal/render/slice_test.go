package render

import (
	"image"
	"image/color"
	"testing"
)

// patterned returns an opaque image where every pixel is distinct, so any
// misplaced copy shows up as a mismatch.
func patterned(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 13), G: uint8(y * 29), B: uint8(x*7 + y*3), A: 0xFF})
		}
	}
	return img
}

func sameRegion(t *testing.T, got *image.RGBA, gx, gy int, want *image.RGBA, wx, wy, w, h int) {
	t.Helper()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := got.RGBAAt(gx+x, gy+y)
			e := want.RGBAAt(wx+x, wy+y)
			if g != e {
				t.Fatalf("pixel (%d,%d): got %v want %v", gx+x, gy+y, g, e)
			}
		}
	}
}

func TestDraw9SliceCornersAreUnscaled(t *testing.T) {
	const c = 4
	src := patterned(12, 12)
	sizes := [][2]int{{8, 8}, {9, 20}, {33, 11}, {120, 64}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		dst := image.NewRGBA(image.Rect(0, 0, w+10, h+10))
		Draw9Slice(dst, 5, 5, w, h, src, c)

		sameRegion(t, dst, 5, 5, src, 0, 0, c, c)
		sameRegion(t, dst, 5+w-c, 5, src, 12-c, 0, c, c)
		sameRegion(t, dst, 5, 5+h-c, src, 0, 12-c, c, c)
		sameRegion(t, dst, 5+w-c, 5+h-c, src, 12-c, 12-c, c, c)
	}
}

func TestDraw9SliceFillsDestinationOnly(t *testing.T) {
	src := patterned(12, 12)
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	Draw9Slice(dst, 3, 4, 30, 20, src, 4)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			inside := x >= 3 && x < 33 && y >= 4 && y < 24
			a := dst.RGBAAt(x, y).A
			if inside && a != 0xFF {
				t.Fatalf("pixel (%d,%d) inside destination left empty", x, y)
			}
			if !inside && a != 0 {
				t.Fatalf("pixel (%d,%d) outside destination was drawn", x, y)
			}
		}
	}
}

func TestDraw9SliceEdgesStretchOneAxis(t *testing.T) {
	src := patterned(12, 12)
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	Draw9Slice(dst, 0, 0, 50, 50, src, 4)
	// The top edge keeps source rows: every pixel in dst row 1 between the
	// corners comes from source row 1.
	for x := 4; x < 46; x++ {
		if got := dst.RGBAAt(x, 1).G; got != uint8(1*29) {
			t.Fatalf("top edge row sampled wrong source row at x=%d: %d", x, got)
		}
	}
	// The left edge keeps source columns.
	for y := 4; y < 46; y++ {
		if got := dst.RGBAAt(2, y).R; got != uint8(2*13) {
			t.Fatalf("left edge column sampled wrong source column at y=%d: %d", y, got)
		}
	}
}

func TestDraw3SliceHKeepsSourceHeight(t *testing.T) {
	src := patterned(20, 7)
	for _, w := range []int{16, 17, 40, 200} {
		dst := image.NewRGBA(image.Rect(0, 0, 220, 20))
		Draw3SliceH(dst, 0, 2, w, src, 8, 8)
		for x := 0; x < w; x++ {
			if dst.RGBAAt(x, 1).A != 0 || dst.RGBAAt(x, 9).A != 0 {
				t.Fatalf("w=%d: drew outside source height at x=%d", w, x)
			}
			for y := 2; y < 9; y++ {
				if dst.RGBAAt(x, y).A != 0xFF {
					t.Fatalf("w=%d: hole at (%d,%d)", w, x, y)
				}
			}
		}
		if dst.RGBAAt(w, 3).A != 0 {
			t.Fatalf("w=%d: drew past destination width", w)
		}
		sameRegion(t, dst, 0, 2, src, 0, 0, 8, 7)
		sameRegion(t, dst, w-8, 2, src, 12, 0, 8, 7)
	}
}

func TestDraw3SliceVKeepsSourceWidth(t *testing.T) {
	src := patterned(5, 20)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 100))
	Draw3SliceV(dst, 2, 0, 90, src, 8, 8)
	for y := 0; y < 90; y++ {
		if dst.RGBAAt(1, y).A != 0 || dst.RGBAAt(7, y).A != 0 {
			t.Fatalf("drew outside source width at y=%d", y)
		}
		if dst.RGBAAt(2, y).A != 0xFF || dst.RGBAAt(6, y).A != 0xFF {
			t.Fatalf("hole at y=%d", y)
		}
	}
	sameRegion(t, dst, 2, 0, src, 0, 0, 5, 8)
	sameRegion(t, dst, 2, 82, src, 0, 12, 5, 8)
}

func TestDraw3SliceZeroInterior(t *testing.T) {
	src := patterned(20, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 30, 4))
	Draw3SliceH(dst, 0, 0, 16, src, 8, 8)
	sameRegion(t, dst, 0, 0, src, 0, 0, 8, 4)
	sameRegion(t, dst, 8, 0, src, 12, 0, 8, 4)
}

func TestStateAtlasClampsState(t *testing.T) {
	atlas := NewStateAtlas(patterned(36, 12), 3)
	if atlas.CellWidth() != 12 {
		t.Fatalf("unexpected cell width: %d", atlas.CellWidth())
	}
	if got := atlas.Cell(7); got != image.Rect(24, 0, 36, 12) {
		t.Fatalf("out of range state not clamped: %v", got)
	}
	if got := atlas.Cell(-2); got != image.Rect(0, 0, 12, 12) {
		t.Fatalf("negative state not clamped: %v", got)
	}
}

func TestDrawStateCellPicksCell(t *testing.T) {
	src := patterned(36, 12)
	atlas := NewStateAtlas(src, 3)
	dst := image.NewRGBA(image.Rect(0, 0, 12, 12))
	DrawStateCell(dst, 0, 0, atlas, 1)
	sameRegion(t, dst, 0, 0, src, 12, 0, 12, 12)
}

func TestDraw3SliceButtonUsesStateCell(t *testing.T) {
	src := patterned(60, 16)
	atlas := NewStateAtlas(src, 3)
	dst := image.NewRGBA(image.Rect(0, 0, 64, 16))
	Draw3SliceButton(dst, 0, 0, 64, atlas, 2, 4)
	sameRegion(t, dst, 0, 0, src, 40, 0, 4, 16)
	sameRegion(t, dst, 60, 0, src, 56, 0, 4, 16)
}

func TestFrameBufferBlendRect(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Clear(color.RGBA{R: 200, G: 200, B: 200, A: 255})
	fb.Dim(128)
	got := fb.Img.RGBAAt(1, 1)
	if got.R < 95 || got.R > 105 || got.A != 255 {
		t.Fatalf("unexpected dimmed pixel: %v", got)
	}
}

func TestFrameBufferFillRectClips(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillRect(-5, -5, 8, 8, color.RGBA{R: 1, A: 255})
	if fb.Img.RGBAAt(2, 2).R != 1 || fb.Img.RGBAAt(3, 3).R != 0 {
		t.Fatal("unexpected clipped fill")
	}
	fb.FillRect(8, 8, 10, 10, color.RGBA{G: 1, A: 255})
	if fb.Img.RGBAAt(9, 9).G != 1 {
		t.Fatal("fill at the far edge missing")
	}
}

func TestBlendRoundRectCutsCorners(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	fb.BlendRoundRect(0, 0, 20, 12, 5, color.NRGBA{R: 255, A: 255})
	if fb.Img.RGBAAt(0, 0).A != 0 {
		t.Fatal("corner pixel must stay clear")
	}
	if fb.Img.RGBAAt(10, 0).A == 0 || fb.Img.RGBAAt(0, 6).A == 0 {
		t.Fatal("edge pixels must be filled")
	}
}
