// Package assets loads the images and fonts that make up the UI skin.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"subpixel/internal/bitmapfont"
	"subpixel/internal/render"

	_ "image/png"
)

var ErrMissingAsset = errors.New("missing asset")

// Slice geometry baked into the artwork. The files do not encode it.
const (
	PopupCorner   = 8
	ShellCorner   = 12
	TooltipCorner = 8
	HeaderCaps    = 8
	ScrollCaps    = 8
	ButtonCaps    = 4
	BarCaps       = 8

	ShellHeaderLeft  = 45
	ShellHeaderRight = 13
)

// Tray icons in display order.
var TrayIconFiles = []string{
	"icon_system_main_undo.png",
	"icon_system_main_redo.png",
	"icon_system_main_save.png",
	"icon_system_main_backtodashboard.png",
	"icon_system_main_preferences.png",
	"icon_system_main_help.png",
}

// Skin is the full visual vocabulary of the application. It is read-only
// after loading.
type Skin struct {
	Popup       image.Image
	PopupHeader image.Image
	ScrollBar   image.Image
	ScrollThumb image.Image
	Divider     image.Image
	CloseButton render.StateAtlas
	StdButton   render.StateAtlas
	LargeButton render.StateAtlas

	Shell         image.Image
	ShellHeader   image.Image
	ShadeSide     image.Image
	HeaderIcon    image.Image
	NoticeIcon    image.Image
	Logo          image.Image
	Tray          image.Image
	InfoBar       image.Image
	ProgressBar   image.Image
	ProgressFills image.Image
	Tooltip       image.Image
	TrayIcons     []image.Image

	WinMinimize render.StateAtlas
	WinMaximize render.StateAtlas
	WinWindowed render.StateAtlas
	WinExit     render.StateAtlas

	Bold    *bitmapfont.Font
	Regular *bitmapfont.Font
}

type loader struct {
	dir string
	err error
}

func (l *loader) image(name string) image.Image {
	if l.err != nil {
		return nil
	}
	path := filepath.Join(l.dir, name)
	fh, err := os.Open(path)
	if err != nil {
		l.err = fmt.Errorf("%w: %s: %v", ErrMissingAsset, path, err)
		return nil
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		l.err = fmt.Errorf("decode %s: %w", path, err)
		return nil
	}
	return img
}

func (l *loader) atlas(name string, states int) render.StateAtlas {
	img := l.image(name)
	if img == nil {
		return render.StateAtlas{}
	}
	return render.NewStateAtlas(img, states)
}

func (l *loader) font(base string) *bitmapfont.Font {
	if l.err != nil {
		return nil
	}
	f, err := bitmapfont.Load(filepath.Join(l.dir, base+".png"), filepath.Join(l.dir, base+".json"))
	if err != nil {
		l.err = fmt.Errorf("load font %s: %w", base, err)
		return nil
	}
	return f
}

// Load reads every skin file from dir. Any missing or unreadable file is an
// error: the UI cannot run without its artwork.
func Load(dir string) (*Skin, error) {
	l := &loader{dir: dir}
	s := &Skin{
		Popup:       l.image("popup_main_9slice.png"),
		PopupHeader: l.image("panel_headerspecial_3slice.png"),
		ScrollBar:   l.image("button_scroll_bar.png"),
		ScrollThumb: l.image("button_scroll_position.png"),
		Divider:     l.image("divider.png"),
		CloseButton: l.atlas("button_closepopup_3state.png", 3),
		StdButton:   l.atlas("button_standard_3state.png", 3),
		LargeButton: l.atlas("button_large_3state.png", 3),

		Shell:         l.image("shell_main_9slice.png"),
		ShellHeader:   l.image("shell_header_3slice.png"),
		ShadeSide:     l.image("shell_headershadesides.png"),
		HeaderIcon:    l.image("icon_header_dashboard.png"),
		NoticeIcon:    l.image("icon_system_warning.png"),
		Logo:          l.image("logo.png"),
		Tray:          l.image("panel_traymenu_3slice.png"),
		InfoBar:       l.image("box_embeddedtext_3slice.png"),
		ProgressBar:   l.image("system_progressbar_bar_3slice.png"),
		ProgressFills: l.image("system_progressbar_fills.png"),
		Tooltip:       l.image("popup_tooltips_9slice.png"),

		WinMinimize: l.atlas("button_shell_minimize_3state.png", 3),
		WinMaximize: l.atlas("button_shell_maximize_3state.png", 3),
		WinWindowed: l.atlas("button_shell_windowed_3state.png", 3),
		WinExit:     l.atlas("button_shell_exit_3state.png", 3),

		Bold:    l.font("font_bold"),
		Regular: l.font("font_regular"),
	}
	for _, name := range TrayIconFiles {
		s.TrayIcons = append(s.TrayIcons, l.image(name))
	}
	if l.err != nil {
		return nil, l.err
	}
	return s, nil
}
