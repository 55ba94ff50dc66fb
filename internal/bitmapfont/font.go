// Package bitmapfont lays out and draws text from a glyph atlas plus a side
// table describing where each character lives in it.
package bitmapfont

import (
	"errors"
	"fmt"
	"image"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	_ "image/png"
)

const (
	DefaultSpaceWidth = 4
	DefaultLineGap    = 2
	// FallbackWidth is the advance of characters missing from the table.
	FallbackWidth = 8
)

var (
	ErrEmptyTable     = errors.New("glyph table has no entries")
	ErrMalformedTable = errors.New("glyph table is not a JSON array")
	ErrMissingField   = errors.New("glyph entry missing required field")
	ErrBadChar        = errors.New("glyph entry char must be a single character")
	ErrDuplicateGlyph = errors.New("duplicate glyph entry")
	ErrGlyphBounds    = errors.New("glyph lies outside the atlas")
)

// Glyph locates one character in the atlas.
type Glyph struct {
	Char rune
	X    int
	Y    int
	W    int
	H    int
}

// Font is immutable once built.
type Font struct {
	atlas   image.Image
	glyphs  map[rune]Glyph
	height  int
	LineGap int
}

// New builds a font from an atlas and its glyph entries.
func New(atlas image.Image, glyphs []Glyph) (*Font, error) {
	if len(glyphs) == 0 {
		return nil, ErrEmptyTable
	}
	b := atlas.Bounds()
	f := &Font{
		atlas:   atlas,
		glyphs:  make(map[rune]Glyph, len(glyphs)),
		height:  b.Dy(),
		LineGap: DefaultLineGap,
	}
	for _, g := range glyphs {
		if _, dup := f.glyphs[g.Char]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGlyph, g.Char)
		}
		if g.H == 0 {
			g.H = b.Dy()
		}
		r := image.Rect(g.X, g.Y, g.X+g.W, g.Y+g.H).Add(b.Min)
		if g.W < 0 || !r.In(b) {
			return nil, fmt.Errorf("%w: %q at %v", ErrGlyphBounds, g.Char, r)
		}
		f.glyphs[g.Char] = g
	}
	return f, nil
}

// ParseTable reads the side table: a JSON array of
// {"char","x","y","width","height"} records where y and height are optional.
// A missing height means the glyph spans the whole atlas height.
func ParseTable(data []byte) ([]Glyph, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedTable
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrMalformedTable
	}
	entries := root.Array()
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	glyphs := make([]Glyph, 0, len(entries))
	for i, e := range entries {
		for _, field := range []string{"char", "x", "width"} {
			if !e.Get(field).Exists() {
				return nil, fmt.Errorf("%w: entry %d has no %q", ErrMissingField, i, field)
			}
		}
		ch := e.Get("char").String()
		if utf8.RuneCountInString(ch) != 1 {
			return nil, fmt.Errorf("%w: entry %d %q", ErrBadChar, i, ch)
		}
		r, _ := utf8.DecodeRuneInString(ch)
		glyphs = append(glyphs, Glyph{
			Char: r,
			X:    int(e.Get("x").Int()),
			Y:    int(e.Get("y").Int()),
			W:    int(e.Get("width").Int()),
			H:    int(e.Get("height").Int()),
		})
	}
	return glyphs, nil
}

// Load reads an atlas image and its glyph table from disk.
func Load(imagePath, tablePath string) (*Font, error) {
	atlas, err := decodeImage(imagePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("read glyph table: %w", err)
	}
	glyphs, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("parse glyph table %s: %w", tablePath, err)
	}
	f, err := New(atlas, glyphs)
	if err != nil {
		return nil, fmt.Errorf("build font %s: %w", imagePath, err)
	}
	return f, nil
}

func decodeImage(path string) (image.Image, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font atlas: %w", err)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode font atlas %s: %w", path, err)
	}
	return img, nil
}

func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Height is the line height at scale 1: the atlas height.
func (f *Font) Height() int { return f.height }
