package ui

import "image/color"

type Theme struct {
	Background     color.RGBA
	Letterbox      color.RGBA
	Title          color.RGBA
	Text           color.RGBA
	TextMuted      color.RGBA
	Accent         color.RGBA
	Gold           color.RGBA
	Warning        color.RGBA
	Good           color.RGBA
	Bad            color.RGBA
	RowSelected    color.NRGBA
	RowHover       color.NRGBA
	NoticeHover    color.NRGBA
	NoticeSelected color.NRGBA
	TrayHover      color.NRGBA
	TrayHeld       color.NRGBA
	DisabledVeil   color.NRGBA
	ModalDim       uint8
}

func DefaultTheme() Theme {
	return Theme{
		Background:     color.RGBA{0x10, 0x10, 0x10, 0xFF},
		Letterbox:      color.RGBA{0x00, 0x00, 0x00, 0xFF},
		Title:          color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Text:           color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		TextMuted:      color.RGBA{0xB4, 0xB4, 0xB4, 0xFF},
		Accent:         color.RGBA{0x80, 0xC0, 0xFF, 0xFF},
		Gold:           color.RGBA{0xFF, 0xE0, 0x80, 0xFF},
		Warning:        color.RGBA{0xFF, 0x80, 0x80, 0xFF},
		Good:           color.RGBA{0x80, 0xFF, 0x80, 0xFF},
		Bad:            color.RGBA{0xFF, 0x40, 0x40, 0xFF},
		RowSelected:    color.NRGBA{0x28, 0x46, 0x8C, 0xFF},
		RowHover:       color.NRGBA{0x20, 0x28, 0x50, 0xFF},
		NoticeHover:    color.NRGBA{0x3C, 0x5A, 0xA0, 0xFF},
		NoticeSelected: color.NRGBA{0x28, 0x46, 0x82, 0xFF},
		TrayHover:      color.NRGBA{0x46, 0x6E, 0xB4, 0x50},
		TrayHeld:       color.NRGBA{0xAA, 0xEB, 0xFF, 0x8C},
		DisabledVeil:   color.NRGBA{0x64, 0x64, 0x64, 0x8C},
		ModalDim:       140,
	}
}
