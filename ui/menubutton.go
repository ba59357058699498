package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a pill-shaped button on the setup card.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a button. Primary buttons carry a ▶ marker.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey fires the button on Enter or Space. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter || (event.Key() == tcell.KeyRune && event.Rune() == ' ') {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Width returns the number of cells the button takes.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}

// Draw draws the button at (x, y) and returns its width.
// A focused button is filled; an unfocused one is bracketed.
func (b *MenuButton) Draw(f *Frame, x, y int) int {
	w := b.Width()
	if b.focused {
		f.HighlightRow(y, x, x+w, MenuColors.ButtonFocus)
		f.PutText(x+1, y, b.text(), MenuColors.ButtonText)
		return w
	}
	f.Put(x, y, '[', MenuColors.Border)
	f.PutText(x+1, y, b.text(), MenuColors.Hint)
	f.Put(x+w-1, y, ']', MenuColors.Border)
	return w
}
