// Package ebitenwin backs the platform contracts with ebiten's window and
// input state.
package ebitenwin

import (
	"github.com/hajimehoshi/ebiten/v2"

	"subpixel/internal/platform"
)

type Window struct {
	nativeW int
	nativeH int
}

// Open applies cfg to the ebiten window. It must run before ebiten.RunGame.
func Open(cfg platform.WindowConfig) *Window {
	w := &Window{nativeW: cfg.NativeW, nativeH: cfg.NativeH}
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizing {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowSizeLimits(cfg.NativeW, cfg.NativeH, -1, -1)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowClosingHandled(true)
	if cfg.Scale > 0 {
		w.SetScaledWindow(cfg.Scale)
	}
	return w
}

func (w *Window) SetScaledWindow(scale int) {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(w.nativeW*scale, w.nativeH*scale)
}

func (w *Window) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
}

func (w *Window) DisplayBounds() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return w.nativeW, w.nativeH
}

func (w *Window) Iconify() {
	ebiten.MinimizeWindow()
}
