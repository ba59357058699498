package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the torch-lit palette shared by the menus and the side column.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
	InputBG     tcell.Color
	Warning     tcell.Color
}{
	Border:      tcell.PaletteColor(95),
	BorderFocus: tcell.PaletteColor(173),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(230),
	TitleAccent: tcell.PaletteColor(172),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(244),
	Selected:    tcell.PaletteColor(215),
	Unselected:  tcell.PaletteColor(244),
	ButtonFocus: tcell.PaletteColor(130),
	ButtonText:  tcell.PaletteColor(231),
	InputBG:     tcell.PaletteColor(238),
	Warning:     tcell.PaletteColor(203),
}
