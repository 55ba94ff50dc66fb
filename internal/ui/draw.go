package ui

import (
	"image/color"

	"subpixel/internal/assets"
	"subpixel/internal/bitmapfont"
	"subpixel/internal/render"
)

// DrawButton draws a 3-slice state button stretched to r.W with its label
// centered. Disabled buttons use the idle cell under a grey veil and a
// muted label.
func DrawButton(fb *render.FrameBuffer, atlas render.StateAtlas, r Rect, st State, label string, f *bitmapfont.Font, theme Theme) {
	render.Draw3SliceButton(fb.Img, r.X, r.Y, r.W, atlas, st.SkinIndex(), assets.ButtonCaps)
	if st == StateDisabled {
		fb.BlendRect(r.X, r.Y, r.W, atlas.Height(), theme.DisabledVeil)
	}
	if label == "" || f == nil {
		return
	}
	c := theme.Text
	if st == StateDisabled {
		c = theme.TextMuted
	}
	DrawTextCentered(fb, f, label, r, c)
}

// DrawTextCentered draws a single line centered inside r.
func DrawTextCentered(fb *render.FrameBuffer, f *bitmapfont.Font, text string, r Rect, c color.Color) {
	tw := f.Width(text)
	tx := r.X + (r.W-tw)/2
	ty := r.Y + (r.H-f.Height())/2
	f.DrawString(fb.Img, text, tx, ty, c)
}

// TooltipSize returns the panel size needed for label: two rows of
// TooltipCorner pixels, wide enough for the text plus padding.
func TooltipSize(f *bitmapfont.Font, label string) (int, int) {
	return f.Width(label) + 2*assets.TooltipCorner, 2 * assets.TooltipCorner
}

// DrawTooltip draws label on a tooltip panel with its top-left at (x, y).
func DrawTooltip(fb *render.FrameBuffer, skin *assets.Skin, x, y int, label string, theme Theme) {
	w, h := TooltipSize(skin.Regular, label)
	render.Draw9Slice(fb.Img, x, y, w, h, skin.Tooltip, assets.TooltipCorner)
	DrawTextCentered(fb, skin.Regular, label, Rect{X: x, Y: y, W: w, H: h}, theme.Text)
}

// FitText shortens text with a trailing ".." until it measures at most w.
func FitText(f *bitmapfont.Font, text string, w int) string {
	if f.Width(text) <= w {
		return text
	}
	rs := []rune(text)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		if s := string(rs) + ".."; f.Width(s) <= w {
			return s
		}
	}
	return ""
}
