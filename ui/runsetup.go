package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raidterm/engine"
)

const (
	setupWidth  = 52
	setupHeight = 22
)

type boardPreset struct {
	width, height int
	note          string
}

var boardPresets = []boardPreset{
	{6, 6, "cramped"},
	{8, 6, "classic"},
	{8, 8, "sprawling"},
}

type setupControl interface {
	SetFocused(focused bool)
	HandleKey(event *tcell.EventKey) bool
}

// RunSetupUI is the card shown before a run: board size, difficulty, seed and
// the Start / Colours / History / Quit buttons.
type RunSetupUI struct {
	*tview.Box
	card     *MenuCard
	size     *RadioSelect
	level    *LevelSlider
	seed     *SeedInput
	buttons  []*MenuButton
	controls []setupControl
	presets  []boardPreset
	focus    int
	onQuit   func()
}

// NewRunSetup creates the setup card with defaults preselected.
func NewRunSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onColors, onHistory, onQuit func()) *RunSetupUI {
	s := &RunSetupUI{
		Box:     tview.NewBox(),
		card:    NewMenuCard("R A I D T E R M"),
		presets: append([]boardPreset(nil), boardPresets...),
		onQuit:  onQuit,
	}

	initial := -1
	for i, p := range s.presets {
		if p.width == defaults.Width && p.height == defaults.Height {
			initial = i
		}
	}
	if initial < 0 && defaults.Width > 0 && defaults.Height > 0 {
		s.presets = append(s.presets, boardPreset{defaults.Width, defaults.Height, "from config"})
		initial = len(s.presets) - 1
	}
	if initial < 0 {
		initial = 1
	}
	options := make([]RadioOption, len(s.presets))
	for i, p := range s.presets {
		options[i] = RadioOption{Label: fmt.Sprintf("%dx%d", p.width, p.height), Description: p.note}
	}

	s.size = NewRadioSelect("Board", options, initial, nil)
	s.level = NewLevelSlider("Difficulty", 1, 10, defaults.Difficulty, nil)
	s.seed = NewSeedInput("Seed", defaults.Seed, nil)
	s.buttons = []*MenuButton{
		NewMenuButton("Start", true, func() {
			if onStart != nil {
				onStart(s.Config())
			}
		}),
		NewMenuButton("Colours", false, onColors),
		NewMenuButton("History", false, onHistory),
		NewMenuButton("Quit", false, onQuit),
	}
	s.controls = []setupControl{s.size, s.level, s.seed}
	for _, b := range s.buttons {
		s.controls = append(s.controls, b)
	}
	s.setFocus(len(s.controls) - len(s.buttons))
	return s
}

// Config returns the run configuration currently chosen on the card.
func (s *RunSetupUI) Config() engine.GameConfig {
	p := s.presets[s.size.Selected()]
	return engine.GameConfig{
		Width:      p.width,
		Height:     p.height,
		Difficulty: s.level.Value(),
		Seed:       s.seed.Value(),
	}
}

func (s *RunSetupUI) setFocus(i int) {
	s.focus = clampInt(i, 0, len(s.controls)-1)
	for j, c := range s.controls {
		c.SetFocused(j == s.focus)
	}
}

func (s *RunSetupUI) firstButton() int {
	return len(s.controls) - len(s.buttons)
}

// HandleKey moves focus between controls or hands the key to the focused one.
func (s *RunSetupUI) HandleKey(event *tcell.EventKey) {
	onButton := s.focus >= s.firstButton()
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		if onButton && event.Key() == tcell.KeyDown {
			return
		}
		s.setFocus(s.focus + 1)
		return
	case tcell.KeyBacktab:
		s.setFocus(s.focus - 1)
		return
	case tcell.KeyUp:
		if onButton {
			s.setFocus(s.firstButton() - 1)
		} else {
			s.setFocus(s.focus - 1)
		}
		return
	case tcell.KeyEscape:
		if s.onQuit != nil {
			s.onQuit()
		}
		return
	case tcell.KeyLeft, tcell.KeyRight:
		if onButton {
			if event.Key() == tcell.KeyLeft && s.focus > s.firstButton() {
				s.setFocus(s.focus - 1)
			} else if event.Key() == tcell.KeyRight {
				s.setFocus(s.focus + 1)
			}
			return
		}
	case tcell.KeyRune:
		if event.Rune() == 'q' && s.onQuit != nil {
			s.onQuit()
			return
		}
	}
	s.controls[s.focus].HandleKey(event)
}

// InputHandler returns the handler for this primitive.
func (s *RunSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		s.HandleKey(event)
	})
}

// Compose draws the card into a frame.
func (s *RunSetupUI) Compose(width, height int) *Frame {
	f := NewFrame(min(width, setupWidth), min(height, setupHeight))
	row := s.card.Draw(f)
	if row == 0 {
		return f
	}
	row++
	row += s.size.Draw(f, 3, row) + 1
	row += s.level.Draw(f, 1, row) + 1
	row += s.seed.Draw(f, 1, row) + 1
	s.card.DrawDivider(f, row)
	row += 2

	col := 3
	for _, b := range s.buttons {
		col += b.Draw(f, col, row) + 2
	}
	f.PutText(3, f.Height-2, "tab/↑↓ move  ←→ change  ⏎ select", MenuColors.Hint)
	return f
}

// Draw draws the card centred in the primitive's rectangle.
func (s *RunSetupUI) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	f := s.Compose(width, height)
	f.Blit(screen, x+(width-f.Width)/2, y+(height-f.Height)/2)
}
