package app

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"subpixel/internal/assets"
	"subpixel/internal/display"
	"subpixel/internal/platform"
	"subpixel/internal/render"
	"subpixel/internal/ui"
)

// Placeholder notices; nothing in the program produces real ones yet.
var notices = []string{
	"Routine 'Jump' assigned twice to enemy objects.",
	"Object 'Magic Key' is missing animation frames.",
	"Ability 'Wall Slide' has no assigned button.",
}

// Cosmetic progress split, in percent of the bar.
var progressSplit = []int{62, 23, 15}

const (
	winMinimize = iota
	winMaximize
	winExit
)

type dashboard struct {
	path        string
	rom         string
	size        int64
	fingerprint string

	win     [3]ui.Clicker
	notices ui.Clicker
	tray    [ui.TrayCount]ui.Clicker
	tooltip *ui.Tooltip

	noticesOpen bool
	noticeClose ui.Clicker
	noticeSel   int
	noticeHover int
}

func newDashboard(path string, size int64, fingerprint string) *dashboard {
	return &dashboard{
		path:        path,
		rom:         filepath.Base(path),
		size:        size,
		fingerprint: fingerprint,
		tooltip:     ui.NewTooltip(),
		noticeSel:   -1,
		noticeHover: -1,
	}
}

func (a *App) updateDashboard(events []platform.Event, now time.Time) {
	d := a.dash
	if d.noticesOpen {
		d.tooltip.Update(-1, now, a.physical)
		a.updateNotices(events)
		return
	}
	l := ui.ComputeDashboard(display.NativeW, display.NativeH)
	d.tooltip.Update(l.HitIcon(a.pointer.X, a.pointer.Y), now, a.physical)

	for _, e := range events {
		switch {
		case e.IsKey(platform.KeyEscape):
			a.leaveDashboard()
			return
		case e.IsKey(platform.KeyC) && e.Ctrl:
			a.copyText(d.rom)
		}
		if d.win[winMinimize].Feed(l.Minimize, e, false) && a.win != nil {
			a.win.Iconify()
		}
		if d.win[winMaximize].Feed(l.Maximize, e, false) {
			a.toggleMaximize()
		}
		if d.win[winExit].Feed(l.Exit, e, false) {
			a.leaveDashboard()
			return
		}
		if d.notices.Feed(l.Notices, e, false) {
			d.noticesOpen = true
			d.noticeSel = -1
			return
		}
		for i, r := range l.Icons {
			if d.tray[i].Feed(r, e, false) {
				a.trayAction(i)
				if a.screen != screenDashboard {
					return
				}
			}
		}
	}
}

func (a *App) trayAction(i int) {
	if err := a.sounds.Play(TraySounds[i]); err != nil {
		logDebug("tray sound: %v", err)
	}
	a.setStatus(ui.TrayLabels[i])
	switch i {
	case ui.TrayBack:
		a.leaveDashboard()
	case ui.TrayHelp:
		if a.cfg.HelpURL == "" {
			return
		}
		if err := a.openURL(a.cfg.HelpURL); err != nil {
			logWarn("open help: %v", err)
			a.setStatus("Could not open help page")
		}
	}
}

func (a *App) leaveDashboard() {
	a.screen = screenTitle
	a.dash = nil
	a.title = titleScreen{}
}

func (a *App) updateNotices(events []platform.Event) {
	d := a.dash
	nl := ui.ComputeNotices(display.NativeW, display.NativeH, len(notices))
	d.noticeHover = hitRow(nl.Rows, a.pointer)
	for _, e := range events {
		switch {
		case e.IsKey(platform.KeyEscape):
			d.noticesOpen = false
			return
		case e.IsKey(platform.KeyC) && e.Ctrl:
			if d.noticeSel >= 0 {
				a.copyText(notices[d.noticeSel])
			} else {
				a.copyText(strings.Join(notices, "\n"))
			}
		case e.IsPrimaryDown():
			if row := hitRow(nl.Rows, platform.Pointer{X: e.X, Y: e.Y}); row >= 0 {
				d.noticeSel = row
			}
		}
		if d.noticeClose.Feed(nl.Close, e, false) {
			d.noticesOpen = false
			return
		}
	}
}

func hitRow(rows []ui.Rect, p platform.Pointer) int {
	for i, r := range rows {
		if r.Contains(p.X, p.Y) {
			return i
		}
	}
	return -1
}

func (a *App) copyText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		logWarn("clipboard: %v", err)
		a.setStatus("Clipboard unavailable")
		return
	}
	a.setStatus("Copied to clipboard")
}

func (a *App) drawDashboard() {
	fb := a.fb
	s := a.skin
	d := a.dash
	th := a.theme
	l := ui.ComputeDashboard(fb.W, fb.H)

	fb.Clear(th.Background)
	render.Draw9Slice(fb.Img, 0, 0, fb.W, fb.H, s.Shell, assets.ShellCorner)
	render.Draw3SliceH(fb.Img, l.Header.X, l.Header.Y, l.Header.W, s.ShellHeader, assets.ShellHeaderLeft, assets.ShellHeaderRight)
	if s.ShadeSide != nil {
		sw := s.ShadeSide.Bounds().Dx()
		render.Blit(fb.Img, s.ShadeSide, 0, l.Header.H)
		render.Blit(fb.Img, s.ShadeSide, fb.W-sw, l.Header.H)
	}

	ib := s.HeaderIcon.Bounds()
	render.Blit(fb.Img, s.HeaderIcon, 14, (l.Header.H-ib.Dy())/2)
	tx := 14 + ib.Dx() + 6
	header := ui.FitText(s.Bold, "Dashboard | ROM: "+d.rom, l.Notices.X-tx-8)
	s.Bold.DrawString(fb.Img, header, tx, (l.Header.H-s.Bold.Height())/2, th.Title)

	info := fmt.Sprintf("%s  blake2b %s", humanize.Bytes(uint64(d.size)), d.fingerprint)
	s.Regular.DrawString(fb.Img, info, l.Content.X, l.Content.Y, th.TextMuted)
	s.Regular.DrawString(fb.Img, ui.FitText(s.Regular, d.path, l.Content.W), l.Content.X, l.Content.Y+s.Regular.LineAdvance(1), th.TextMuted)

	ui.DrawButton(fb, s.StdButton, l.Notices, ui.StateOf(l.Notices, a.pointer, false), "", nil, th)
	nb := s.NoticeIcon.Bounds()
	render.Blit(fb.Img, s.NoticeIcon, l.Notices.X+7, l.Notices.Y+(l.Notices.H-nb.Dy())/2+1)
	s.Regular.DrawString(fb.Img, fmt.Sprintf("(x%d)", len(notices)), l.Notices.X+7+nb.Dx()+5, l.Notices.Y+(l.Notices.H-s.Regular.Height())/2, th.Gold)

	maxAtlas := s.WinMaximize
	if a.disp.Maximized() {
		maxAtlas = s.WinWindowed
	}
	render.DrawStateCell(fb.Img, l.Minimize.X, l.Minimize.Y, s.WinMinimize, ui.StateOf(l.Minimize, a.pointer, false).SkinIndex())
	render.DrawStateCell(fb.Img, l.Maximize.X, l.Maximize.Y, maxAtlas, ui.StateOf(l.Maximize, a.pointer, false).SkinIndex())
	render.DrawStateCell(fb.Img, l.Exit.X, l.Exit.Y, s.WinExit, ui.StateOf(l.Exit, a.pointer, false).SkinIndex())

	render.Draw3SliceH(fb.Img, l.Tray.X, l.Tray.Y, l.Tray.W, s.Tray, assets.BarCaps, assets.BarCaps)
	for i, r := range l.Icons {
		switch ui.StateOf(r, a.pointer, d.noticesOpen) {
		case ui.StatePressed:
			fb.BlendRoundRect(r.X-2, r.Y-2, r.W+4, r.H+4, 3, th.TrayHeld)
		case ui.StateHover:
			fb.BlendRoundRect(r.X-2, r.Y-2, r.W+4, r.H+4, 3, th.TrayHover)
		}
		if i < len(s.TrayIcons) {
			render.Blit(fb.Img, s.TrayIcons[i], r.X, r.Y)
		}
	}

	render.Draw3SliceH(fb.Img, l.InfoBar.X, l.InfoBar.Y, l.InfoBar.W, s.InfoBar, assets.BarCaps, assets.BarCaps)
	status := ui.FitText(s.Regular, a.status, l.InfoBar.W-12)
	s.Regular.DrawString(fb.Img, status, l.InfoBar.X+6, l.InfoBar.Y+(l.InfoBar.H-s.Regular.Height())/2, th.Text)

	render.Draw3SliceH(fb.Img, l.Progress.X, l.Progress.Y, l.Progress.W, s.ProgressBar, assets.BarCaps, assets.BarCaps)
	a.drawProgressFill(l.Progress)

	if idx, ok := d.tooltip.Active(); ok && !d.noticesOpen {
		label := ui.TrayLabels[idx]
		w, h := ui.TooltipSize(s.Regular, label)
		pos := d.tooltip.Place(image.Pt(a.pointer.X, a.pointer.Y), w, h, fb.W)
		ui.DrawTooltip(fb, s, pos.X, pos.Y, label, th)
	}
	if d.noticesOpen {
		a.drawNotices()
	}
}

// drawProgressFill stretches one column of each fill color across its
// share of the bar interior.
func (a *App) drawProgressFill(bar ui.Rect) {
	fills := a.skin.ProgressFills
	if fills == nil {
		return
	}
	fb := fills.Bounds()
	cols := fb.Dx() / 2
	inner := image.Rect(bar.X+2, bar.Y+2, bar.X+bar.W-2, bar.Y+bar.H-2)
	x := inner.Min.X
	for i, pct := range progressSplit {
		if i >= cols {
			break
		}
		w := inner.Dx() * pct / 100
		if i == len(progressSplit)-1 {
			w = inner.Max.X - x
		}
		src := image.Rect(fb.Min.X+2*i, fb.Min.Y, fb.Min.X+2*i+2, fb.Max.Y)
		render.BlitScaled(a.fb.Img, fills, src, image.Rect(x, inner.Min.Y, x+w, inner.Max.Y))
		x += w
	}
}

func (a *App) drawNotices() {
	fb := a.fb
	s := a.skin
	d := a.dash
	th := a.theme
	nl := ui.ComputeNotices(fb.W, fb.H, len(notices))
	p := nl.Popup

	render.Draw9Slice(fb.Img, p.X, p.Y, p.W, p.H, s.Popup, assets.PopupCorner)
	cs := ui.StateOf(nl.Close, a.pointer, false)
	ui.DrawButton(fb, s.StdButton, nl.Close, cs, "", nil, th)
	cw := s.CloseButton.CellWidth()
	render.DrawStateCell(fb.Img, nl.Close.X+(nl.Close.W-cw)/2, nl.Close.Y+(nl.Close.H-s.CloseButton.Height())/2, s.CloseButton, cs.SkinIndex())
	s.Bold.DrawString(fb.Img, "Notices", p.X+12, p.Y+8, th.Accent)

	for i, r := range nl.Rows {
		if i == d.noticeHover {
			fb.BlendRoundRect(r.X, r.Y, r.W, r.H, 4, th.NoticeHover)
		}
		if i == d.noticeSel {
			fb.BlendRoundRect(r.X, r.Y, r.W, r.H, 4, th.NoticeSelected)
		}
		s.Regular.DrawString(fb.Img, ui.FitText(s.Regular, notices[i], r.W-8), r.X+4, r.Y+2, th.Text)
	}
}
