package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption is one choice in a RadioSelect.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a single-choice group. Left and right change the choice so
// up and down stay free for moving between controls.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a radio group with initial selected.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	r := &RadioSelect{
		label:    label,
		options:  options,
		onChange: onChange,
	}
	r.selected = clampInt(initial, 0, len(options)-1)
	return r
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey processes ←/→ and h/l. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch {
	case event.Key() == tcell.KeyLeft, event.Key() == tcell.KeyRune && event.Rune() == 'h':
		r.SetSelected(r.selected - 1)
		return true
	case event.Key() == tcell.KeyRight, event.Key() == tcell.KeyRune && event.Rune() == 'l':
		r.SetSelected(r.selected + 1)
		return true
	}
	return false
}

// Draw draws the label line and one line per option. Returns the rows used.
func (r *RadioSelect) Draw(f *Frame, x, y int) int {
	row := y
	f.Put(x, row, '◈', MenuColors.TitleAccent)
	f.PutText(x+2, row, r.label, MenuColors.Label)
	row++

	for i, opt := range r.options {
		col := x + 2
		if r.focused && i == r.selected {
			f.Put(col, row, '▸', MenuColors.Selected)
		}
		col += 2

		fg := MenuColors.Unselected
		bullet := '○'
		if i == r.selected {
			bullet = '●'
			fg = MenuColors.Selected
		}
		f.Put(col, row, bullet, fg)
		col += 2
		col += f.PutText(col, row, opt.Label, fg)
		if opt.Description != "" {
			f.PutText(col+1, row, opt.Description, MenuColors.Hint)
		}
		row++
	}
	return row - y
}

// Selected returns the selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected selects index if it is in range.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}
