package ui

// Window chrome and tray geometry in virtual pixels.
const (
	WinButtonW    = 17
	WinButtonH    = 16
	WinButtonY    = 12
	WinButtonGap  = 1
	WinButtonEdge = 13

	NoticesW      = 53
	NoticesH      = 16
	NoticesRightX = 130

	HeaderH = 32

	TrayW         = 133
	TrayH         = 18
	TrayIconSize  = 12
	TrayIconPitch = 21
	TrayIconX     = 7

	InfoBarH     = 16
	ProgressX    = 374
	ProgressW    = 106
	ProgressH    = 10
	BottomMargin = 8
)

// Tray actions in icon order.
const (
	TrayUndo = iota
	TrayRedo
	TraySave
	TrayBack
	TrayPreferences
	TrayHelp
	TrayCount
)

var TrayLabels = [TrayCount]string{
	"Undo",
	"Redo",
	"Save project",
	"Back to Dashboard",
	"Open Preferences",
	"Show Help",
}

type DashboardLayout struct {
	Shell    Rect
	Header   Rect
	Minimize Rect
	Maximize Rect
	Exit     Rect
	Notices  Rect
	Tray     Rect
	Icons    [TrayCount]Rect
	InfoBar  Rect
	Progress Rect
	Content  Rect
}

// ComputeDashboard lays out the dashboard for a w x h canvas.
func ComputeDashboard(w, h int) DashboardLayout {
	var l DashboardLayout
	l.Shell = Rect{X: 0, Y: 0, W: w, H: h}
	l.Header = Rect{X: 0, Y: 0, W: w, H: HeaderH}

	exitX := w - WinButtonEdge - WinButtonW
	l.Exit = Rect{X: exitX, Y: WinButtonY, W: WinButtonW, H: WinButtonH}
	l.Maximize = l.Exit.Offset(-(WinButtonW + WinButtonGap), 0)
	l.Minimize = l.Maximize.Offset(-(WinButtonW + WinButtonGap), 0)
	l.Notices = Rect{X: w - NoticesRightX, Y: WinButtonY, W: NoticesW, H: NoticesH}

	bottom := h - BottomMargin
	l.InfoBar = Rect{X: BottomMargin, Y: bottom - InfoBarH, W: ProgressX - 2*BottomMargin, H: InfoBarH}
	l.Progress = Rect{X: ProgressX, Y: l.InfoBar.Y + (InfoBarH-ProgressH)/2, W: ProgressW - BottomMargin, H: ProgressH}
	l.Tray = Rect{X: (w - TrayW) / 2, Y: l.InfoBar.Y - TrayH - 4, W: TrayW, H: TrayH}
	for i := range l.Icons {
		l.Icons[i] = Rect{
			X: l.Tray.X + TrayIconX + i*TrayIconPitch,
			Y: l.Tray.Y + (TrayH-TrayIconSize)/2,
			W: TrayIconSize,
			H: TrayIconSize,
		}
	}
	l.Content = Rect{X: 16, Y: HeaderH + 8, W: w - 32, H: l.Tray.Y - HeaderH - 16}
	return l
}

// HitIcon returns the tray icon under (x, y), or -1.
func (l DashboardLayout) HitIcon(x, y int) int {
	for i, r := range l.Icons {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Title screen buttons.
const (
	TitleButtonW   = 108
	TitleButtonH   = 35
	TitleSpacing   = 22
	TitleMarginX   = 30
	TitleMarginY   = 48
	TitleOpen      = 0
	TitleBrowse    = 1
	TitleQuit      = 2
	TitleButtonCnt = 3
)

var TitleLabels = [TitleButtonCnt]string{"Open ROM", "Browse", "Quit"}

func ComputeTitleButtons() [TitleButtonCnt]Rect {
	var out [TitleButtonCnt]Rect
	for i := range out {
		out[i] = Rect{
			X: TitleMarginX,
			Y: TitleMarginY + i*(TitleButtonH+TitleSpacing),
			W: TitleButtonW,
			H: TitleButtonH,
		}
	}
	return out
}

// Notices popup geometry, relative to the popup origin.
const (
	NoticesPopupW = 240
	NoticesPopupH = 110
	NoticeRowH    = 16
	NoticeRowGap  = 18
	NoticeRowTop  = 32
	NoticeClose   = 16
)

type NoticesLayout struct {
	Popup Rect
	Close Rect
	Rows  []Rect
}

func ComputeNotices(w, h, count int) NoticesLayout {
	p := Rect{X: (w - NoticesPopupW) / 2, Y: (h - NoticesPopupH) / 2, W: NoticesPopupW, H: NoticesPopupH}
	l := NoticesLayout{
		Popup: p,
		Close: Rect{X: p.X + p.W - NoticeClose - 4, Y: p.Y + 4, W: NoticeClose, H: NoticeClose},
	}
	for i := 0; i < count; i++ {
		r := Rect{X: p.X + 16, Y: p.Y + NoticeRowTop + i*NoticeRowGap, W: p.W - 32, H: NoticeRowH}
		if r.Y+r.H > p.Y+p.H-4 {
			break
		}
		l.Rows = append(l.Rows, r)
	}
	return l
}
