package bitmapfont

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testAtlas is 10x5: an "A" block at x 0..3 and an "i" column at x 5.
func testAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
		img.SetRGBA(5, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return img
}

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := New(testAtlas(), []Glyph{
		{Char: 'A', X: 0, W: 3},
		{Char: 'i', X: 5, W: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestMeasureSingleGlyph(t *testing.T) {
	f := testFont(t)
	g, _ := f.Glyph('A')
	if got := f.Measure("A", 1, DefaultSpaceWidth); got != g.W+1 {
		t.Fatalf("unexpected width: got %d want %d", got, g.W+1)
	}
}

func TestMeasureMixed(t *testing.T) {
	f := testFont(t)
	// A(4) + space(3) + i(2) + missing(8), all times 2
	if got := f.Measure("A i?", 2, 3); got != 34 {
		t.Fatalf("unexpected width: %d", got)
	}
	if got := f.Measure("A\ni", 1, 3); got != 6 {
		t.Fatalf("newline must not count: %d", got)
	}
	if a, b := f.Measure("Ai Ai", 1, 4), f.Measure("Ai Ai", 1, 4); a != b {
		t.Fatalf("measure not deterministic: %d vs %d", a, b)
	}
}

func TestRenderTintsAndAdvances(t *testing.T) {
	f := testFont(t)
	dst := image.NewRGBA(image.Rect(0, 0, 30, 20))
	red := color.RGBA{R: 200, A: 255}
	f.Render(dst, "A i", 1, 2, red, 1, 3)

	if got := dst.RGBAAt(1, 2); got != red {
		t.Fatalf("glyph pixel not tinted: %v", got)
	}
	if got := dst.RGBAAt(4, 2); got.A != 0 {
		t.Fatalf("gap after glyph must stay clear: %v", got)
	}
	// A advances 4, space 3: "i" starts at x=8.
	if got := dst.RGBAAt(8, 6); got != red {
		t.Fatalf("second glyph misplaced: %v", got)
	}
}

func TestRenderScalesNearest(t *testing.T) {
	f := testFont(t)
	dst := image.NewRGBA(image.Rect(0, 0, 30, 20))
	f.Render(dst, "i", 0, 0, color.White, 3, 4)
	for y := 0; y < 15; y++ {
		for x := 0; x < 3; x++ {
			if dst.RGBAAt(x, y).A != 0xFF {
				t.Fatalf("scaled glyph has hole at (%d,%d)", x, y)
			}
		}
		if dst.RGBAAt(3, y).A != 0 {
			t.Fatalf("scaled glyph bled at (3,%d)", y)
		}
	}
}

func TestRenderNewlineResetsX(t *testing.T) {
	f := testFont(t)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	f.Render(dst, "i\nA", 2, 0, color.White, 1, 4)
	y := f.LineAdvance(1)
	if dst.RGBAAt(2, y).A != 0xFF || dst.RGBAAt(4, y).A != 0xFF {
		t.Fatal("second line must start at the original x")
	}
}

func TestRenderIdempotent(t *testing.T) {
	f := testFont(t)
	a := image.NewRGBA(image.Rect(0, 0, 20, 8))
	f.DrawString(a, "Ai", 0, 0, color.RGBA{G: 90, B: 200, A: 255})
	b := image.NewRGBA(image.Rect(0, 0, 20, 8))
	copy(b.Pix, a.Pix)
	f.DrawString(b, "Ai", 0, 0, color.RGBA{G: 90, B: 200, A: 255})
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("redraw changed opaque output")
		}
	}
}

func TestParseTableDefaults(t *testing.T) {
	glyphs, err := ParseTable([]byte(`[{"char":"A","x":0,"width":3},{"char":"i","x":5,"y":1,"width":1,"height":3}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 2 || glyphs[0].Y != 0 || glyphs[0].H != 0 {
		t.Fatalf("unexpected glyphs: %+v", glyphs)
	}
	f, err := New(testAtlas(), glyphs)
	if err != nil {
		t.Fatal(err)
	}
	if g, _ := f.Glyph('A'); g.H != 5 {
		t.Fatalf("missing height must default to atlas height, got %d", g.H)
	}
	if g, _ := f.Glyph('i'); g.Y != 1 || g.H != 3 {
		t.Fatalf("explicit y/height lost: %+v", g)
	}
}

func TestParseTableRejectsMalformed(t *testing.T) {
	cases := []struct {
		data string
		want error
	}{
		{`{"char":"A"}`, ErrMalformedTable},
		{`not json`, ErrMalformedTable},
		{`[]`, ErrEmptyTable},
		{`[{"x":0,"width":3}]`, ErrMissingField},
		{`[{"char":"A","width":3}]`, ErrMissingField},
		{`[{"char":"A","x":1}]`, ErrMissingField},
		{`[{"char":"AB","x":1,"width":2}]`, ErrBadChar},
	}
	for _, c := range cases {
		if _, err := ParseTable([]byte(c.data)); !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v want %v", c.data, err, c.want)
		}
	}
}

func TestNewRejectsDuplicatesAndBounds(t *testing.T) {
	if _, err := New(testAtlas(), []Glyph{{Char: 'A', W: 3}, {Char: 'A', X: 4, W: 1}}); !errors.Is(err, ErrDuplicateGlyph) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := New(testAtlas(), []Glyph{{Char: 'A', X: 8, W: 4}}); !errors.Is(err, ErrGlyphBounds) {
		t.Fatalf("expected bounds error, got %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "font.png")
	fh, err := os.Create(imgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fh, testAtlas()); err != nil {
		t.Fatal(err)
	}
	fh.Close()
	tablePath := filepath.Join(dir, "font.json")
	if err := os.WriteFile(tablePath, []byte(`[{"char":"A","x":0,"width":3}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(imgPath, tablePath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if f.Width("AA") != 8 {
		t.Fatalf("unexpected width: %d", f.Width("AA"))
	}
	if _, err := Load(filepath.Join(dir, "missing.png"), tablePath); err == nil {
		t.Fatal("expected error for missing atlas")
	}
	if err := os.WriteFile(tablePath, []byte(`[{"x":0}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(imgPath, tablePath); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected missing field error, got %v", err)
	}
}
