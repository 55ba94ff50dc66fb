package app

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/browser"

	"subpixel/internal/assets"
	"subpixel/internal/config"
	"subpixel/internal/display"
	"subpixel/internal/modal"
	"subpixel/internal/platform"
	"subpixel/internal/platform/ebitenwin"
	"subpixel/internal/render"
	"subpixel/internal/sfx"
	"subpixel/internal/ui"
)

const (
	Title       = "Subpixel Depths"
	Version     = "Version 1.03a"
	WindowTitle = "SubpixelDepths - ROM Analyzer"
)

// TraySounds are the click effects for the tray icons, in icon order.
var TraySounds = [ui.TrayCount]string{
	"sfx_main_undo.wav",
	"sfx_main_redo.wav",
	"sfx_main_save.wav",
	"sfx_main_back.wav",
	"sfx_main_preferences.wav",
	"sfx_main_help.wav",
}

type screenID int

const (
	screenTitle screenID = iota
	screenDashboard
)

type App struct {
	cfg    config.Config
	theme  ui.Theme
	skin   *assets.Skin
	disp   *display.Context
	win    platform.Window
	input  *ebitenwin.Input
	sounds *sfx.Player

	fb     *render.FrameBuffer
	canvas *ebiten.Image

	screen   screenID
	pointer  platform.Pointer
	physical image.Point
	title    titleScreen
	dash     *dashboard

	modal   modal.Modal
	onModal func(modal.Result)

	status    string
	quit      bool
	frameTick uint64

	openURL func(string) error
}

// New builds the application. sounds may be nil for silent operation.
func New(cfg config.Config, skin *assets.Skin, sounds *sfx.Player) *App {
	return &App{
		cfg:     cfg,
		theme:   ui.DefaultTheme(),
		skin:    skin,
		disp:    display.New(display.NativeW, display.NativeH, max(cfg.Scale, 1)),
		sounds:  sounds,
		fb:      render.NewFrameBuffer(display.NativeW, display.NativeH),
		pointer: platform.Pointer{X: platform.Nowhere, Y: platform.Nowhere},
		status:  "Ready",
		openURL: browser.OpenURL,
	}
}

func (a *App) Run() error {
	win := ebitenwin.Open(platform.WindowConfig{
		Title:   WindowTitle,
		NativeW: display.NativeW,
		NativeH: display.NativeH,
		TPS:     a.cfg.TPS,
	})
	a.win = win
	a.input = ebitenwin.NewInput(30)
	a.disp.ApplyInitialScale(win, a.cfg.Scale)
	logDebug("window scale %dx (configured %d)", a.disp.Scale, a.cfg.Scale)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.frameTick++
	raw, events := a.input.Poll()
	a.frame(raw, events, time.Now())
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// frame advances the application by one frame of physical input. While a
// modal is open it receives every event and the screen below is frozen.
func (a *App) frame(raw platform.Pointer, events []platform.Event, now time.Time) {
	for _, e := range events {
		if e.Type == platform.EventClose {
			a.quit = true
		}
	}
	ptr := a.disp.MapPointer(raw)
	virtual := a.disp.MapEvents(events)

	if a.modal != nil {
		a.stepModal(modal.Frame{Pointer: ptr, Events: virtual})
		return
	}

	a.pointer = ptr
	a.physical = image.Pt(raw.X, raw.Y)
	for _, e := range virtual {
		if e.IsKey(platform.KeyF11) {
			a.toggleMaximize()
		}
	}
	switch a.screen {
	case screenTitle:
		a.updateTitle(virtual)
	case screenDashboard:
		a.updateDashboard(virtual, now)
	}
}

func (a *App) showModal(m modal.Modal, done func(modal.Result)) {
	a.modal = m
	a.onModal = done
}

func (a *App) stepModal(f modal.Frame) {
	if !a.modal.Step(f).Terminal() {
		return
	}
	res := a.modal.Result()
	done := a.onModal
	a.modal, a.onModal = nil, nil
	logDebug("modal closed: %v", res.Status)
	if done != nil {
		done(res)
	}
}

func (a *App) toggleMaximize() {
	if a.win == nil {
		return
	}
	a.disp.ToggleMaximize(a.win)
	if a.disp.Maximized() {
		a.setStatus(fmt.Sprintf("Maximized at %dx", a.disp.Scale))
	} else {
		a.setStatus(fmt.Sprintf("Windowed at %dx", a.disp.Scale))
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	logDebug("status: %s", msg)
}

// renderFrame draws the current screen and any modal into the virtual
// canvas.
func (a *App) renderFrame() {
	switch a.screen {
	case screenTitle:
		a.drawTitle()
	case screenDashboard:
		a.drawDashboard()
	}
	if a.modal != nil {
		a.modal.Draw(a.fb)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		a.canvas = ebiten.NewImage(a.fb.W, a.fb.H)
	}
	a.renderFrame()
	a.canvas.WritePixels(a.fb.Pixels())

	screen.Fill(a.theme.Letterbox)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(a.disp.Scale), float64(a.disp.Scale))
	off := a.disp.Offset()
	op.GeoM.Translate(float64(off.X), float64(off.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(a.canvas, op)

	if a.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.1f  scale %dx  window %dx%d  virtual %d,%d",
			ebiten.ActualTPS(), a.disp.Scale, a.disp.Window.X, a.disp.Window.Y, a.pointer.X, a.pointer.Y), 4, 4)
	}
}

// Layout hands the physical window size back to ebiten so the app owns
// scaling and letterboxing.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.disp.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
