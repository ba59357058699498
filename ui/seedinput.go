package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

const seedFieldWidth = 12

// SeedInput edits the RNG seed of a new run. An empty field means a random seed.
type SeedInput struct {
	label    string
	text     string
	cursor   int
	focused  bool
	onChange func(int64)
}

// NewSeedInput creates a seed field. A zero initial seed leaves the field empty.
func NewSeedInput(label string, initial int64, onChange func(int64)) *SeedInput {
	s := &SeedInput{label: label, onChange: onChange}
	if initial != 0 {
		s.text = strconv.FormatInt(initial, 10)
	}
	s.cursor = len(s.text)
	return s
}

// SetFocused sets the focus state.
func (s *SeedInput) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey edits the field. Only digits are accepted. Returns true if handled.
func (s *SeedInput) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
		return true
	case tcell.KeyRight:
		if s.cursor < len(s.text) {
			s.cursor++
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursor > 0 {
			s.text = s.text[:s.cursor-1] + s.text[s.cursor:]
			s.cursor--
			s.changed()
		}
		return true
	case tcell.KeyDelete:
		if s.cursor < len(s.text) {
			s.text = s.text[:s.cursor] + s.text[s.cursor+1:]
			s.changed()
		}
		return true
	case tcell.KeyRune:
		ch := event.Rune()
		if ch < '0' || ch > '9' {
			return false
		}
		if len(s.text) >= seedFieldWidth {
			return true
		}
		s.text = s.text[:s.cursor] + string(ch) + s.text[s.cursor:]
		s.cursor++
		s.changed()
		return true
	}
	return false
}

func (s *SeedInput) changed() {
	if s.onChange != nil {
		s.onChange(s.Value())
	}
}

// Value returns the seed, or 0 when the field is empty.
func (s *SeedInput) Value() int64 {
	v, err := strconv.ParseInt(s.text, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Draw draws the field on row y and returns the rows used.
func (s *SeedInput) Draw(f *Frame, x, y int) int {
	col := x
	if s.focused {
		f.Put(col, y, '▸', MenuColors.Selected)
	}
	col += 2
	f.Put(col, y, '◈', MenuColors.TitleAccent)
	col += 2
	col += f.PutText(col, y, s.label, MenuColors.Label)
	col += 3

	f.Put(col, y, '[', MenuColors.Label)
	col++
	start := col
	f.HighlightRow(y, start, start+seedFieldWidth+2, MenuColors.InputBG)
	col++
	if s.text == "" && !s.focused {
		f.PutText(col, y, "random", MenuColors.Hint)
	} else {
		f.PutText(col, y, s.text, MenuColors.Label)
		if s.focused {
			f.Highlight(col+s.cursor, y, MenuColors.Selected)
		}
	}
	f.Put(start+seedFieldWidth+2, y, ']', MenuColors.Label)
	return 1
}
