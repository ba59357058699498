package ui

import "raidterm/types"

// MoveDir is one of the four cursor directions.
type MoveDir int

const (
	MoveUp MoveDir = iota
	MoveRight
	MoveDown
	MoveLeft
)

// StepCursor moves c one step in d. A step that would leave the bounds, or a
// horizontal step in a vertical-only mode, leaves c unchanged.
func StepCursor(c types.ScreenCoord, d MoveDir, b ModeBounds) types.ScreenCoord {
	next := c
	switch d {
	case MoveUp:
		next.Y -= b.Step
	case MoveDown:
		next.Y += b.Step
	case MoveLeft:
		if !b.Horizontal {
			return c
		}
		next.X -= b.Step
	case MoveRight:
		if !b.Horizontal {
			return c
		}
		next.X += b.Step
	}
	if !b.Contains(next) {
		return c
	}
	return next
}

// CursorStateMachine keeps one cursor per mode.
// The board cursor survives trips through the improvement menu; the menu
// cursor starts at the first option whenever a new choice set appears.
type CursorStateMachine struct {
	width  int
	height int
	board  types.ScreenCoord
	menu   types.ScreenCoord
	last   CursorMode
}

// NewCursorStateMachine creates a cursor resting on the top-left tile.
func NewCursorStateMachine(width, height int) *CursorStateMachine {
	return &CursorStateMachine{
		width:  width,
		height: height,
		board:  PlayingBounds(width, height).First(),
	}
}

// Sync records the mode for this frame. Entering a choice set, or the engine
// replacing one set with another, puts the menu cursor on the first option
// and returns true.
func (c *CursorStateMachine) Sync(mode CursorMode) bool {
	fresh := mode.Choosing && (!c.last.Choosing || mode.Serial != c.last.Serial)
	if fresh {
		c.menu = ChoosingBounds(mode.Options).First()
	}
	c.last = mode
	return fresh
}

// Move steps the cursor of the given mode.
func (c *CursorStateMachine) Move(d MoveDir, mode CursorMode) {
	c.Sync(mode)
	b := mode.Bounds(c.width, c.height)
	if mode.Choosing {
		c.menu = StepCursor(c.menu, d, b)
		return
	}
	c.board = StepCursor(c.board, d, b)
}

// Position returns the cursor cell for the mode.
func (c *CursorStateMachine) Position(mode CursorMode) types.ScreenCoord {
	if mode.Choosing {
		return c.menu
	}
	return c.board
}

// HoveredTile returns the tile under the board cursor.
func (c *CursorStateMachine) HoveredTile() types.TilePosition {
	return TileFromCursor(c.board, PlayingBounds(c.width, c.height))
}

// HoveredOption returns the option index under the menu cursor.
func (c *CursorStateMachine) HoveredOption(mode CursorMode) int {
	return MenuIndexFromCursor(c.menu, mode.Bounds(c.width, c.height))
}

// ResetMenu puts the menu cursor back on the first option.
func (c *CursorStateMachine) ResetMenu(mode CursorMode) {
	c.menu = ChoosingBounds(mode.Options).First()
}
