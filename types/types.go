// Package types contains shared data structures for raidterm.
package types

import "fmt"

// TilePosition is a row/column index into the board.
type TilePosition struct {
	Row int
	Col int
}

// String renders the position as a column letter and 1-based row, e.g. "C4".
func (p TilePosition) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}

// Add returns the position offset by (dy, dx).
func (p TilePosition) Add(dy, dx int) TilePosition {
	return TilePosition{Row: p.Row + dy, Col: p.Col + dx}
}

// ScreenCoord is a terminal cell, relative to the widget that owns it.
type ScreenCoord struct {
	X int
	Y int
}

// Direction points from a tile to the tile selected right after it.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

var dirOffsets = [...][2]int{
	DirUp:        {-1, 0},
	DirUpRight:   {-1, 1},
	DirRight:     {0, 1},
	DirDownRight: {1, 1},
	DirDown:      {1, 0},
	DirDownLeft:  {1, -1},
	DirLeft:      {0, -1},
	DirUpLeft:    {-1, -1},
}

// Offset returns the unit step (dy, dx) for d.
// ok is false for DirNone and for any value outside the 8 compass directions.
func (d Direction) Offset() (dy, dx int, ok bool) {
	if d == DirNone || int(d) >= len(dirOffsets) {
		return 0, 0, false
	}
	o := dirOffsets[d]
	return o[0], o[1], true
}

func (d Direction) String() string {
	names := [...]string{"none", "up", "up-right", "right", "down-right", "down", "down-left", "left", "up-left"}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionBetween returns the direction from one tile to an 8-adjacent one.
// Non-adjacent or identical positions yield DirNone.
func DirectionBetween(from, to TilePosition) Direction {
	dy, dx := to.Row-from.Row, to.Col-from.Col
	for d := DirUp; d <= DirUpLeft; d++ {
		o := dirOffsets[d]
		if o[0] == dy && o[1] == dx {
			return d
		}
	}
	return DirNone
}

// Adjacent reports whether two positions touch, diagonals included.
func Adjacent(a, b TilePosition) bool {
	return DirectionBetween(a, b) != DirNone
}

// TileKind identifies what a tile is.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindSword
	KindShield
	KindPotion
	KindCoin
	KindSkull
)

func (k TileKind) String() string {
	switch k {
	case KindSword:
		return "Sword"
	case KindShield:
		return "Shield"
	case KindPotion:
		return "Potion"
	case KindCoin:
		return "Coin"
	case KindSkull:
		return "Skull"
	}
	return "Empty"
}

// Letter is the single-letter code used in saved run records.
func (k TileKind) Letter() byte {
	return ".WSPCK"[k]
}

// KindFromLetter is the inverse of Letter. Unknown letters map to KindEmpty.
func KindFromLetter(b byte) TileKind {
	switch b {
	case 'W':
		return KindSword
	case 'S':
		return KindShield
	case 'P':
		return KindPotion
	case 'C':
		return KindCoin
	case 'K':
		return KindSkull
	}
	return KindEmpty
}

// Tile is one board cell's game content.
type Tile struct {
	Kind TileKind
	// Next points at the tile selected after this one in the current chain.
	Next Direction
	// Skull stats, zero for other kinds.
	Attack int
	HP     int
	MaxHP  int
	// Special is a short name for enemies with an end-of-turn effect.
	Special string
}

// Describe returns the one-line description shown for a hovered tile.
func (t Tile) Describe() string {
	if t.Kind != KindSkull {
		return t.Kind.String()
	}
	name := t.Kind.String()
	if t.Special != "" {
		name = t.Special
	}
	return fmt.Sprintf("%s  atk %d  hp %d/%d", name, t.Attack, t.HP, t.MaxHP)
}

// Ability is one numbered ability slot.
type Ability struct {
	Name      string
	Cooldown  int
	Remaining int
}

// Ready returns true if the ability can be cast now.
func (a Ability) Ready() bool {
	return a.Remaining == 0
}

// PlayerStats holds the values shown in the status block.
type PlayerStats struct {
	HP            int
	MaxHP         int
	Shields       int
	MaxShields    int
	Gold          int
	UpgradePoints int
	Experience    int
	NextLevel     int
	Level         int
	Abilities     []Ability
}

// ChoiceSet is a pending menu of improvements the player must pick from.
// Serial changes every time the engine offers a new set.
type ChoiceSet struct {
	Serial  uint64
	Header  string
	Options []string
	Pick    int
}

// RunSummary is the end-of-run tally persisted in run records.
type RunSummary struct {
	Turns int
	Kills int
	Gold  int
	Level int
	Died  bool
}
