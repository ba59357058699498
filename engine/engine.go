// Package engine defines the interface between the terminal UI and a game engine.
package engine

import "raidterm/types"

// GameEngine is the query/command surface the UI drives.
// All calls are synchronous and complete before the next frame is drawn.
type GameEngine interface {
	// Width and Height return the board size in tiles.
	Width() int
	Height() int

	// TileAt returns the tile at pos. pos must be on the board.
	TileAt(pos types.TilePosition) types.Tile

	// ChainStart returns the first tile of the current selection chain.
	ChainStart() (types.TilePosition, bool)

	// Successor returns the direction from pos to the next tile in the chain.
	Successor(pos types.TilePosition) types.Direction

	// PendingChoice returns the improvement set awaiting a decision, or nil.
	PendingChoice() *types.ChoiceSet

	// Stats returns the player's current stats.
	Stats() types.PlayerStats

	// IncomingDamage returns the damage the board deals at the end of this turn.
	IncomingDamage() int

	// Encounters describes active special enemies, one line each.
	Encounters() []string

	// SelectTile begins or extends the selection chain at pos.
	// Returns false if the selection was refused.
	SelectTile(pos types.TilePosition) bool

	// CommitSelection resolves the current chain.
	// Returns true if any tiles were consumed.
	CommitSelection() bool

	// ApplyIncomingDamage applies IncomingDamage to the player.
	ApplyIncomingDamage()

	// ApplyGravityAndRefill drops tiles into gaps and fills the top with new ones.
	ApplyGravityAndRefill()

	// RunEndOfTurnEffects runs special-enemy effects and ticks cooldowns.
	RunEndOfTurnEffects()

	// CastAbility casts the ability in the given 0-based slot.
	CastAbility(slot int) error

	// CommitImprovements resolves the pending choice set with the given option indices.
	CommitImprovements(picks []int) error

	// Finished returns true once the run is over.
	Finished() bool

	// Summary returns the run tally so far.
	Summary() types.RunSummary
}

// GameConfig holds configuration for starting a new run.
type GameConfig struct {
	Width      int   // Board width in tiles
	Height     int   // Board height in tiles
	Difficulty int   // 1-10, scales enemy stats and spawn rate
	Seed       int64 // RNG seed; 0 picks one from the clock
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:      8,
		Height:     6,
		Difficulty: 3,
	}
}
