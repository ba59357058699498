package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type frameCell struct {
	r    rune
	fg   tcell.Color
	bg   tcell.Color
	bold bool
}

// Frame is an off-screen buffer composed once per frame and then blitted.
// Writes outside the frame are dropped.
type Frame struct {
	Width  int
	Height int
	cells  []frameCell
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{Width: width, Height: height, cells: make([]frameCell, width*height)}
	for i := range f.cells {
		f.cells[i] = frameCell{r: ' ', fg: tcell.ColorDefault, bg: tcell.ColorDefault}
	}
	return f
}

func (f *Frame) cell(x, y int) *frameCell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return nil
	}
	return &f.cells[y*f.Width+x]
}

// Put writes a rune and its foreground, keeping the cell's background.
func (f *Frame) Put(x, y int, r rune, fg tcell.Color) {
	if c := f.cell(x, y); c != nil {
		c.r = r
		c.fg = fg
	}
}

// PutBold is Put with the bold attribute set.
func (f *Frame) PutBold(x, y int, r rune, fg tcell.Color) {
	if c := f.cell(x, y); c != nil {
		c.r = r
		c.fg = fg
		c.bold = true
	}
}

// PutText writes s starting at (x, y) and returns the number of cells used.
func (f *Frame) PutText(x, y int, s string, fg tcell.Color) int {
	n := 0
	for _, ch := range s {
		f.Put(x+n, y, ch, fg)
		n++
	}
	return n
}

// Highlight sets the background of one cell.
func (f *Frame) Highlight(x, y int, bg tcell.Color) {
	if c := f.cell(x, y); c != nil {
		c.bg = bg
	}
}

// HighlightRow sets the background of cells x0..x1-1 on row y.
func (f *Frame) HighlightRow(y, x0, x1 int, bg tcell.Color) {
	for x := x0; x < x1; x++ {
		f.Highlight(x, y, bg)
	}
}

// Rune returns the rune at (x, y), or 0 outside the frame.
func (f *Frame) Rune(x, y int) rune {
	if c := f.cell(x, y); c != nil {
		return c.r
	}
	return 0
}

// Foreground returns the foreground colour at (x, y).
func (f *Frame) Foreground(x, y int) tcell.Color {
	if c := f.cell(x, y); c != nil {
		return c.fg
	}
	return tcell.ColorDefault
}

// Background returns the background colour at (x, y).
func (f *Frame) Background(x, y int) tcell.Color {
	if c := f.cell(x, y); c != nil {
		return c.bg
	}
	return tcell.ColorDefault
}

// Line returns row y with trailing spaces trimmed.
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < f.Width; x++ {
		b.WriteRune(f.cells[y*f.Width+x].r)
	}
	return strings.TrimRight(b.String(), " ")
}

// Blit copies the frame onto the screen with its top-left corner at (x, y).
func (f *Frame) Blit(screen tcell.Screen, x, y int) {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			c := f.cells[row*f.Width+col]
			style := tcell.StyleDefault.Foreground(c.fg).Background(c.bg).Bold(c.bold)
			screen.SetContent(x+col, y+row, c.r, nil, style)
		}
	}
}
