package ui

// MenuCard is a rounded frame with a centred title and a divider under it.
type MenuCard struct {
	title   string
	focused bool
}

// NewMenuCard creates a card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{title: title}
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

// Draw fills f with the card and returns the first row below the title divider.
// Frames too small to hold a card are left blank and 0 is returned.
func (c *MenuCard) Draw(f *Frame) int {
	w, h := f.Width, f.Height
	if w < 10 || h < 5 {
		return 0
	}
	for y := 0; y < h; y++ {
		f.HighlightRow(y, 0, w, MenuColors.CardBG)
	}

	border := MenuColors.Border
	if c.focused {
		border = MenuColors.BorderFocus
	}
	f.Put(0, 0, '╭', border)
	f.Put(w-1, 0, '╮', border)
	f.Put(0, h-1, '╰', border)
	f.Put(w-1, h-1, '╯', border)
	for x := 1; x < w-1; x++ {
		f.Put(x, 0, '─', border)
		f.Put(x, h-1, '─', border)
	}
	for y := 1; y < h-1; y++ {
		f.Put(0, y, '│', border)
		f.Put(w-1, y, '│', border)
	}

	if c.title == "" {
		return 1
	}
	titleX := (w - len([]rune(c.title)) - 3) / 2
	f.Put(titleX, 2, '⚔', MenuColors.TitleAccent)
	for i, ch := range c.title {
		f.PutBold(titleX+3+i, 2, ch, MenuColors.Title)
	}
	c.DrawDivider(f, 4)
	return 5
}

// DrawDivider draws a horizontal rule across the card at row y.
func (c *MenuCard) DrawDivider(f *Frame, y int) {
	border := MenuColors.Border
	if c.focused {
		border = MenuColors.BorderFocus
	}
	f.Put(0, y, '├', border)
	for x := 1; x < f.Width-1; x++ {
		f.Put(x, y, '─', border)
	}
	f.Put(f.Width-1, y, '┤', border)
}
