package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider picks an integer in [min, max] with left and right.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	onChange func(int)
}

// NewLevelSlider creates a slider. initial is clamped into range.
func NewLevelSlider(label string, min, max, initial int, onChange func(int)) *LevelSlider {
	s := &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		onChange: onChange,
	}
	s.value = clampInt(initial, min, max)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetFocused sets the focus state.
func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes ←/→ and h/l. Returns true if handled.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	step := 0
	switch event.Key() {
	case tcell.KeyLeft:
		step = -1
	case tcell.KeyRight:
		step = 1
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			step = -1
		case 'l':
			step = 1
		}
	}
	if step == 0 {
		return false
	}
	s.SetValue(s.value + step)
	return true
}

// Draw draws the slider on row y and returns the rows used.
func (s *LevelSlider) Draw(f *Frame, x, y int) int {
	col := x
	if s.focused {
		f.Put(col, y, '▸', MenuColors.Selected)
	}
	col += 2
	f.Put(col, y, '◈', MenuColors.TitleAccent)
	col += 2
	col += f.PutText(col, y, s.label, MenuColors.Label)
	col += 3

	arrow := MenuColors.Unselected
	if s.focused {
		arrow = MenuColors.Selected
	}
	f.Put(col, y, '◀', arrow)
	col += 2
	for v := s.min; v <= s.max; v++ {
		if v <= s.value {
			f.Put(col, y, '█', MenuColors.Selected)
		} else {
			f.Put(col, y, '░', MenuColors.Unselected)
		}
		col++
	}
	col++
	col += f.PutText(col, y, fmt.Sprintf("%d", s.value), MenuColors.Label)
	col++
	f.Put(col, y, '▶', arrow)
	return 1
}

// Value returns the current value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the value if it is in range.
func (s *LevelSlider) SetValue(v int) {
	if v < s.min || v > s.max || v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
