package ui

import (
	"fmt"

	"raidterm/types"
)

// choiceWidth returns the width of the improvement panel for set.
func choiceWidth(set *types.ChoiceSet) int {
	w := len([]rune(set.Header)) + 10
	for _, opt := range set.Options {
		if n := len([]rune(opt)) + 4; n > w {
			w = n
		}
	}
	return w
}

// drawChoicePanel draws the header line and one line per option.
// The cursor marker sits in column 0; the picked bullet in column 2.
func drawChoicePanel(f *Frame, set *types.ChoiceSet, picks *SelectionAccumulator, cursor types.ScreenCoord) {
	b := ChoosingBounds(len(set.Options))

	col := b.OriginX
	f.Put(col, b.OriginY, '◈', MenuColors.TitleAccent)
	col += 2
	col += f.PutText(col, b.OriginY, set.Header, MenuColors.Title)
	f.PutText(col+1, b.OriginY, fmt.Sprintf("(%d/%d)", picks.Len(), set.Pick), MenuColors.Hint)

	for i, opt := range set.Options {
		cell := MenuCell(i, b)
		style := MenuColors.Unselected
		bullet := '○'
		if picks.Contains(i) {
			bullet = '●'
			style = MenuColors.Selected
		}
		if cell == cursor {
			f.Put(cell.X, cell.Y, '▸', MenuColors.Selected)
		}
		f.Put(cell.X+2, cell.Y, bullet, style)
		f.PutText(cell.X+4, cell.Y, opt, style)
	}
}
