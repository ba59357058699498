package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raidterm/record"
	"raidterm/types"
)

// HistoryBrowserUI lists recorded runs with a preview of the final board.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	runList  *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	runs     []record.RunInfo
	selected int
	glyphs   map[types.TileKind]rune
	onDone   func()
	sink     EventSink
}

// NewHistoryBrowser creates the history screen over the records in dir.
func NewHistoryBrowser(dir string, glyphs map[types.TileKind]rune, sink EventSink, onDone func()) *HistoryBrowserUI {
	if sink == nil {
		sink = NopSink{}
	}
	hb := &HistoryBrowserUI{
		dir:    dir,
		glyphs: glyphs,
		onDone: onDone,
		sink:   sink,
	}

	hb.runList = tview.NewList()
	hb.runList.SetBorder(true)
	hb.runList.SetTitle(" Past Runs ")
	hb.runList.ShowSecondaryText(false)
	hb.runList.SetHighlightFullLine(true)
	hb.runList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.runList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Final Board ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetText("  [gray]d[-] delete  [gray]q[-] back")

	hb.runList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})
	hb.runList.SetInputCapture(hb.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.runList, 44, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadRuns()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the run list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.loadRuns()
}

// Runs returns the runs currently listed.
func (hb *HistoryBrowserUI) Runs() []record.RunInfo {
	return hb.runs
}

func (hb *HistoryBrowserUI) loadRuns() {
	hb.runList.Clear()
	hb.runs = nil
	hb.selected = 0

	runs, err := record.List(hb.dir)
	if err != nil {
		hb.sink.Event("history_error", "err", err)
	}
	if len(runs) == 0 {
		hb.runList.AddItem("[gray]No runs yet[-]", "", 0, nil)
		return
	}
	hb.runs = runs
	for _, r := range runs {
		label := fmt.Sprintf("%s  %dx%d  %-11s t%d", r.Date, r.Width, r.Height, r.Outcome, r.Turns)
		hb.runList.AddItem(label, "", 0, nil)
	}
}

func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		hb.done()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			hb.done()
			return nil
		case 'd':
			hb.DeleteSelected()
			return nil
		}
	}
	return event
}

func (hb *HistoryBrowserUI) done() {
	if hb.onDone != nil {
		hb.onDone()
	}
}

// DeleteSelected removes the highlighted run's file and reloads the list.
func (hb *HistoryBrowserUI) DeleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.runs) {
		return
	}
	run := hb.runs[hb.selected]
	if err := os.Remove(run.FilePath); err != nil {
		hb.sink.Event("history_delete_failed", "file", run.FileName, "err", err)
	} else {
		hb.sink.Event("history_deleted", "file", run.FileName)
	}
	hb.loadRuns()
}

// ComposePreview draws the selected run's final board and tally.
func (hb *HistoryBrowserUI) ComposePreview(width, height int) *Frame {
	f := NewFrame(width, height)
	if hb.selected < 0 || hb.selected >= len(hb.runs) {
		return f
	}
	run := hb.runs[hb.selected]
	kinds := run.Kinds()
	for row, line := range kinds {
		for col, k := range line {
			r, ok := hb.glyphs[k]
			if !ok {
				r = '·'
			}
			f.Put(col*2, row, r, MenuColors.Label)
		}
	}

	y := len(kinds) + 1
	f.PutText(0, y, fmt.Sprintf("%dx%d  difficulty %d  seed %d", run.Width, run.Height, run.Difficulty, run.Seed), MenuColors.Label)
	f.PutText(0, y+1, fmt.Sprintf("%d turns  %d kills  %d gold  level %d", run.Turns, run.Kills, run.Gold, run.Level), MenuColors.Hint)
	f.PutText(0, y+2, "Outcome: "+run.Outcome, MenuColors.Selected)
	return f
}

func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 6 || height < 4 {
		return x, y, width, height
	}
	hb.ComposePreview(width-4, height-2).Blit(screen, x+2, y+1)
	return x, y, width, height
}
