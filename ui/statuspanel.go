package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"raidterm/engine"
)

// statusGap separates the board or menu from the status column.
const statusGap = 3

// StatusLine is one line of the status column.
type StatusLine struct {
	Text  string
	Color tcell.Color
}

// StatusLines builds the status column. A line is only present when the
// engine has data for it.
func StatusLines(eng engine.GameEngine, notice string) []StatusLine {
	var lines []StatusLine
	add := func(c tcell.Color, format string, args ...any) {
		lines = append(lines, StatusLine{Text: fmt.Sprintf(format, args...), Color: c})
	}

	st := eng.Stats()
	if dmg := eng.IncomingDamage(); dmg > 0 {
		add(tcell.ColorRed, "Incoming  %d", dmg)
	}
	add(tcell.ColorWhite, "HP        %d/%d", st.HP, st.MaxHP)
	if st.MaxShields > 0 {
		add(tcell.ColorLightBlue, "Shields   %d/%d", st.Shields, st.MaxShields)
	}
	if st.Gold > 0 {
		add(tcell.ColorGold, "Gold      %d", st.Gold)
	}
	if st.UpgradePoints > 0 {
		add(tcell.ColorLightBlue, "Upgrades  %d", st.UpgradePoints)
	}
	add(tcell.ColorWhite, "Level %d   xp %d/%d", st.Level, st.Experience, st.NextLevel)

	if len(st.Abilities) > 0 {
		add(tcell.ColorDefault, "")
		for i, ab := range st.Abilities {
			if ab.Ready() {
				add(tcell.ColorGreen, "%d %-9s ready", i+1, ab.Name)
			} else {
				add(tcell.ColorGray, "%d %-9s (%d)", i+1, ab.Name, ab.Remaining)
			}
		}
	}

	if enc := eng.Encounters(); len(enc) > 0 {
		add(tcell.ColorDefault, "")
		for _, e := range enc {
			add(tcell.ColorOrange, "! %s", e)
		}
	}

	if notice != "" {
		add(tcell.ColorDefault, "")
		add(tcell.ColorYellow, "» %s", notice)
	}

	if eng.Finished() {
		sum := eng.Summary()
		add(tcell.ColorDefault, "")
		if sum.Died {
			add(tcell.ColorRed, "You died on turn %d.", sum.Turns)
		} else {
			add(tcell.ColorRed, "Run over after %d turns.", sum.Turns)
		}
		add(tcell.ColorWhite, "%d kills  %d gold", sum.Kills, sum.Gold)
		add(tcell.ColorGray, "q to quit")
	}
	return lines
}

// drawStatus writes the status column with its left edge at x.
func drawStatus(f *Frame, x int, lines []StatusLine) {
	for i, line := range lines {
		f.PutText(x, i, line.Text, line.Color)
	}
}
