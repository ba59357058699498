package ui

import "raidterm/types"

// ChoiceHeaderRows is the number of lines above the first improvement option.
const ChoiceHeaderRows = 1

// ModeBounds describes where the cursor may rest in one mode, in widget cells.
// A coordinate is in bounds when MinX <= X <= MaxX and MinY <= Y <= MaxY.
type ModeBounds struct {
	OriginX, OriginY int
	Step             int
	MinX, MaxX       int
	MinY, MaxY       int
	Horizontal       bool // false pins X to OriginX
}

// PlayingBounds returns the board-mode bounds for a width x height board.
// Tiles sit two cells apart so the odd rows and columns hold connectors.
func PlayingBounds(width, height int) ModeBounds {
	return ModeBounds{
		Step:       2,
		MinX:       0,
		MaxX:       2*width - 1,
		MinY:       0,
		MaxY:       2*height - 1,
		Horizontal: true,
	}
}

// ChoosingBounds returns the menu-mode bounds for an n-option choice set.
func ChoosingBounds(n int) ModeBounds {
	return ModeBounds{
		Step:       1,
		MinY:       ChoiceHeaderRows,
		MaxY:       ChoiceHeaderRows + n - 1,
		Horizontal: false,
	}
}

// Contains reports whether c is inside the bounds.
func (b ModeBounds) Contains(c types.ScreenCoord) bool {
	if b.Horizontal {
		if c.X < b.MinX || c.X > b.MaxX {
			return false
		}
	} else if c.X != b.OriginX {
		return false
	}
	return c.Y >= b.MinY && c.Y <= b.MaxY
}

// First returns the first resting cell: the top-left tile or the first option.
func (b ModeBounds) First() types.ScreenCoord {
	if b.Horizontal {
		return types.ScreenCoord{X: b.MinX, Y: b.MinY}
	}
	return types.ScreenCoord{X: b.OriginX, Y: b.MinY}
}

// TileFromCursor maps a board-mode cursor to the tile under it.
// c must be a glyph cell; the cursor state machine guarantees that.
func TileFromCursor(c types.ScreenCoord, b ModeBounds) types.TilePosition {
	return types.TilePosition{
		Row: (c.Y - b.OriginY) / 2,
		Col: (c.X - b.OriginX) / 2,
	}
}

// GlyphCell returns the cell holding a tile's glyph.
func GlyphCell(pos types.TilePosition, b ModeBounds) types.ScreenCoord {
	return types.ScreenCoord{
		X: b.OriginX + 2*pos.Col,
		Y: b.OriginY + 2*pos.Row,
	}
}

// MenuIndexFromCursor maps a menu-mode cursor to the option under it.
func MenuIndexFromCursor(c types.ScreenCoord, b ModeBounds) int {
	return c.Y - b.OriginY - ChoiceHeaderRows
}

// MenuCell returns the cell of the option with the given index.
func MenuCell(index int, b ModeBounds) types.ScreenCoord {
	return types.ScreenCoord{X: b.OriginX, Y: b.OriginY + ChoiceHeaderRows + index}
}
