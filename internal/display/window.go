package display

import "subpixel/internal/platform"

func (c *Context) Maximized() bool { return c.maximized }

// ToggleMaximize switches between fullscreen at the best-fit scale and the
// windowed scale that was active before maximizing.
func (c *Context) ToggleMaximize(win platform.Window) {
	if !c.maximized {
		c.restoreScale = c.Scale
		dw, dh := win.DisplayBounds()
		c.Scale = BestFit(c.Native.X, c.Native.Y, dw, dh)
		win.SetFullscreen(true)
		c.SetWindowSize(dw, dh)
		c.maximized = true
		return
	}
	c.Scale = c.restoreScale
	if c.Scale < 1 {
		c.Scale = 1
	}
	win.SetFullscreen(false)
	win.SetScaledWindow(c.Scale)
	cs := c.CanvasSize()
	c.SetWindowSize(cs.X, cs.Y)
	c.maximized = false
}

// ApplyInitialScale resolves a configured scale (0 means best fit) against
// the display and sizes the window to match.
func (c *Context) ApplyInitialScale(win platform.Window, configured int) {
	scale := configured
	if scale <= 0 {
		dw, dh := win.DisplayBounds()
		scale = BestFit(c.Native.X, c.Native.Y, dw, dh)
	}
	c.Scale = scale
	win.SetScaledWindow(scale)
	cs := c.CanvasSize()
	c.SetWindowSize(cs.X, cs.Y)
}
