package ui

import (
	"fmt"

	"raidterm/types"
)

// Connector glyphs drawn between chained tiles.
const (
	GlyphVertical   = '|'
	GlyphHorizontal = '-'
	GlyphBackslash  = '\\'
	GlyphSlash      = '/'
	GlyphCrossing   = 'X'
)

// connectorGlyphs maps a (dy, dx) step to its connector.
var connectorGlyphs = map[[2]int]rune{
	{-1, 0}:  GlyphVertical,
	{1, 0}:   GlyphVertical,
	{0, -1}:  GlyphHorizontal,
	{0, 1}:   GlyphHorizontal,
	{-1, -1}: GlyphBackslash,
	{1, 1}:   GlyphBackslash,
	{-1, 1}:  GlyphSlash,
	{1, -1}:  GlyphSlash,
}

// ConnectorGlyph returns the connector for a unit step.
func ConnectorGlyph(dy, dx int) (rune, bool) {
	r, ok := connectorGlyphs[[2]int{dy, dx}]
	return r, ok
}

// ChainError reports a successor direction that can't be drawn.
// It means the chain is corrupt; the frame must not be shown.
type ChainError struct {
	Pos types.TilePosition
	Dir types.Direction
	Msg string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("chain corrupt at %v (%v): %s", e.Pos, e.Dir, e.Msg)
}

// ChainSource is the part of the engine the renderer reads.
type ChainSource interface {
	Width() int
	Height() int
	TileAt(pos types.TilePosition) types.Tile
	Successor(pos types.TilePosition) types.Direction
}

// Grid is a rectangle of single-rune cells.
type Grid struct {
	Width  int
	Height int
	cells  []rune
}

// NewGrid creates a grid filled with spaces.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, cells: make([]rune, width*height)}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	return g
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the rune at (x, y), or 0 outside the grid.
func (g *Grid) Get(x, y int) rune {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.Width+x]
}

// Set writes r at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, r rune) {
	if g.InBounds(x, y) {
		g.cells[y*g.Width+x] = r
	}
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.Width : (y+1)*g.Width])
}

// ChainPathRenderer draws tile glyphs and the connectors between chained tiles.
type ChainPathRenderer struct {
	// Glyph picks the rune for a tile.
	Glyph func(t types.Tile) rune
	// StickyCrossings keeps an X once written. When false, a connector
	// landing on an X overwrites it without inspecting it.
	StickyCrossings bool
}

// Render scans the board row by row. Each tile writes its glyph, then its
// connector if it has a successor. A connector landing on a diagonal becomes X.
func (r ChainPathRenderer) Render(src ChainSource) (*Grid, error) {
	w, h := src.Width(), src.Height()
	bounds := PlayingBounds(w, h)
	grid := NewGrid(2*w-1, 2*h-1)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			pos := types.TilePosition{Row: row, Col: col}
			cell := GlyphCell(pos, bounds)
			grid.Set(cell.X, cell.Y, r.glyph(src.TileAt(pos)))

			dir := src.Successor(pos)
			if dir == types.DirNone {
				continue
			}
			dy, dx, ok := dir.Offset()
			if !ok {
				return nil, &ChainError{Pos: pos, Dir: dir, Msg: "direction does not decode"}
			}
			connector, ok := ConnectorGlyph(dy, dx)
			if !ok {
				return nil, &ChainError{Pos: pos, Dir: dir, Msg: "no connector for offset"}
			}
			x, y := cell.X+dx, cell.Y+dy
			if !grid.InBounds(x, y) {
				return nil, &ChainError{Pos: pos, Dir: dir, Msg: "successor is off the board"}
			}
			switch grid.Get(x, y) {
			case GlyphSlash, GlyphBackslash:
				connector = GlyphCrossing
			case GlyphCrossing:
				if r.StickyCrossings {
					connector = GlyphCrossing
				}
			}
			grid.Set(x, y, connector)
		}
	}
	return grid, nil
}

func (r ChainPathRenderer) glyph(t types.Tile) rune {
	if r.Glyph != nil {
		return r.Glyph(t)
	}
	return rune(t.Kind.Letter())
}
