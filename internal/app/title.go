package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sqweek/dialog"

	"subpixel/internal/assets"
	"subpixel/internal/bitmapfont"
	"subpixel/internal/discover"
	"subpixel/internal/modal"
	"subpixel/internal/platform"
	"subpixel/internal/render"
	"subpixel/internal/ui"
)

type titleScreen struct {
	clickers [ui.TitleButtonCnt]ui.Clicker
}

func (a *App) updateTitle(events []platform.Event) {
	buttons := ui.ComputeTitleButtons()
	for _, e := range events {
		if e.IsKey(platform.KeyEscape) {
			a.quit = true
			return
		}
		for i, r := range buttons {
			if a.title.clickers[i].Feed(r, e, false) {
				a.titleAction(i)
				return
			}
		}
	}
}

func (a *App) titleAction(i int) {
	switch i {
	case ui.TitleOpen:
		a.openPicker()
	case ui.TitleBrowse:
		a.browse()
	case ui.TitleQuit:
		a.quit = true
	}
}

// openPicker lists the ROM directory and opens the picker, or the message
// modal when nothing matches.
func (a *App) openPicker() {
	dir := a.cfg.RomDir
	entries, err := discover.List(dir, a.cfg.Extensions)
	if err != nil {
		logError("list roms: %v", err)
		a.showModal(modal.NewMessage("No ROM Files", fmt.Sprintf("Could not read %s.\nCheck the -roms setting.", dir), a.skin, a.theme), nil)
		return
	}
	if len(entries) == 0 {
		a.setStatus("No ROM files found")
		a.showModal(modal.NewMessage("No ROM Files", "No ROM files found.\nPlace your ROMs next to the program\nand try again.", a.skin, a.theme), nil)
		return
	}
	logDebug("found %d rom files in %s", len(entries), dir)
	p := modal.NewPicker(discover.Names(entries), modal.PickerOptions{Visible: a.cfg.VisibleRows}, a.skin, a.theme)
	a.showModal(p, func(res modal.Result) {
		if !res.Confirmed() {
			a.setStatus("No ROM selected")
			return
		}
		a.openROM(filepath.Join(dir, res.Value), entries[res.Index].Size)
	})
}

// browse opens the native file dialog filtered to the ROM extensions.
func (a *App) browse() {
	path, err := dialog.File().
		Title("Open ROM").
		Filter("ROM images", a.cfg.Extensions...).
		SetStartDir(a.cfg.RomDir).
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		a.setStatus("Browse cancelled")
		return
	}
	if err != nil {
		logError("browse: %v", err)
		a.setStatus(fmt.Sprintf("Browse failed: %v", err))
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		logError("stat rom: %v", err)
		a.setStatus(fmt.Sprintf("Cannot open %s", filepath.Base(path)))
		return
	}
	a.openROM(path, info.Size())
}

func (a *App) openROM(path string, size int64) {
	fp, err := discover.Fingerprint(path)
	if err != nil {
		logWarn("fingerprint %s: %v", path, err)
		fp = "unknown"
	}
	a.dash = newDashboard(path, size, fp)
	a.screen = screenDashboard
	a.setStatus(fmt.Sprintf("Loaded %s (%s)", filepath.Base(path), humanize.Bytes(uint64(size))))
}

func (a *App) drawTitle() {
	fb := a.fb
	s := a.skin
	fb.Clear(a.theme.Background)
	render.Draw9Slice(fb.Img, 0, 0, fb.W, fb.H, s.Shell, assets.ShellCorner)

	if s.Logo != nil {
		lb := s.Logo.Bounds()
		render.Blit(fb.Img, s.Logo, fb.W-lb.Dx()-40, (fb.H-lb.Dy())/2)
	}

	tw := s.Bold.Measure(Title, 2, bitmapfont.DefaultSpaceWidth)
	s.Bold.Render(fb.Img, Title, (fb.W-tw)/2, 14, a.theme.Title, 2, bitmapfont.DefaultSpaceWidth)
	vw := s.Regular.Width(Version)
	s.Regular.DrawString(fb.Img, Version, fb.W-vw-16, fb.H-s.Regular.Height()-14, a.theme.TextMuted)

	for i, r := range ui.ComputeTitleButtons() {
		ui.DrawButton(fb, s.LargeButton, r, ui.StateOf(r, a.pointer, false), ui.TitleLabels[i], s.Bold, a.theme)
	}
	status := ui.FitText(s.Regular, a.status, fb.W/2)
	s.Regular.DrawString(fb.Img, status, ui.TitleMarginX, fb.H-s.Regular.Height()-14, a.theme.TextMuted)
}
