package ui

import (
	"github.com/rivo/tview"

	"raidterm/engine"
)

// HintText returns the key help shown under the board.
func HintText(eng engine.GameEngine) string {
	if eng == nil {
		return ""
	}
	if eng.Finished() {
		return "  ───────── Run Complete ─────────\n  q · quit"
	}
	if ModeOf(eng).Choosing {
		return "  j/k/↑↓ move   ␣/⏎ pick\n  q quit"
	}
	return "  hjkl/↑↓←→ move   x mark   ␣/⏎ strike\n  1-4 abilities   q quit"
}

// CreateGameLayout creates the game screen: board widget on top, key help below.
func CreateGameLayout(board *RaidBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(board.Box, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)
	return mainFlex
}

// CreateCenteredForm creates a centered container for a setup card.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer
	return centered
}
