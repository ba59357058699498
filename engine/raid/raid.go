// Package raid provides a local, synchronous tile-matching engine.
package raid

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"raidterm/engine"
	"raidterm/types"
)

// MinChain is the shortest chain that consumes tiles when committed.
const MinChain = 3

const (
	startHP         = 20
	startMaxShields = 3
	baseAttack      = 1
	shopCost        = 10
	armouryCost     = 5
)

var (
	// ErrGameOver is returned by commands issued after the player died.
	ErrGameOver = errors.New("run is over")
	// ErrNoChoicePending is returned by CommitImprovements when nothing is offered.
	ErrNoChoicePending = errors.New("no improvement choice pending")
	// ErrBadPicks is returned when the picked option indices don't fit the pending set.
	ErrBadPicks = errors.New("invalid improvement picks")
)

// Engine implements engine.GameEngine with an in-process board.
type Engine struct {
	cfg  engine.GameConfig
	seed int64
	rng  *rand.Rand

	tiles [][]types.Tile // [row][col]
	chain []types.TilePosition

	stats      types.PlayerStats
	swordDmg   int
	potionHeal int
	coinValue  int
	turn       int
	kills      int
	died       bool

	pending []*pendingChoice
	serial  uint64
}

var _ engine.GameEngine = (*Engine)(nil)

// New creates an engine with a freshly filled board.
func New(cfg engine.GameConfig) *Engine {
	def := engine.DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Difficulty <= 0 {
		cfg.Difficulty = def.Difficulty
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:        cfg,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		swordDmg:   1,
		potionHeal: 2,
		coinValue:  1,
		stats: types.PlayerStats{
			HP:         startHP,
			MaxHP:      startHP,
			MaxShields: startMaxShields,
			Level:      1,
			NextLevel:  levelStep(1),
			Abilities: []types.Ability{
				newAbility("Heal"),
				newAbility("Shuffle"),
			},
		},
	}

	e.tiles = make([][]types.Tile, cfg.Height)
	for row := range e.tiles {
		e.tiles[row] = make([]types.Tile, cfg.Width)
		for col := range e.tiles[row] {
			e.tiles[row][col] = e.spawnTile()
		}
	}
	return e
}

// Seed returns the RNG seed the run was started with.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Config returns the configuration the run was started with.
func (e *Engine) Config() engine.GameConfig {
	return e.cfg
}

// Width returns the board width in tiles.
func (e *Engine) Width() int {
	return e.cfg.Width
}

// Height returns the board height in tiles.
func (e *Engine) Height() int {
	return e.cfg.Height
}

func (e *Engine) inBounds(pos types.TilePosition) bool {
	return pos.Row >= 0 && pos.Row < e.cfg.Height && pos.Col >= 0 && pos.Col < e.cfg.Width
}

func (e *Engine) tile(pos types.TilePosition) *types.Tile {
	if !e.inBounds(pos) {
		panic(fmt.Sprintf("raid: tile query out of bounds: %+v", pos))
	}
	return &e.tiles[pos.Row][pos.Col]
}

// TileAt returns the tile at pos. It panics if pos is off the board.
func (e *Engine) TileAt(pos types.TilePosition) types.Tile {
	return *e.tile(pos)
}

// Successor returns the chain direction stored on the tile at pos.
func (e *Engine) Successor(pos types.TilePosition) types.Direction {
	return e.tile(pos).Next
}

// ChainStart returns the first tile of the current chain.
func (e *Engine) ChainStart() (types.TilePosition, bool) {
	if len(e.chain) == 0 {
		return types.TilePosition{}, false
	}
	return e.chain[0], true
}

// Chain returns a copy of the current chain in selection order.
func (e *Engine) Chain() []types.TilePosition {
	return append([]types.TilePosition(nil), e.chain...)
}

// Stats returns a copy of the player's stats.
func (e *Engine) Stats() types.PlayerStats {
	s := e.stats
	s.Abilities = append([]types.Ability(nil), e.stats.Abilities...)
	return s
}

// Finished returns true once the player has died.
func (e *Engine) Finished() bool {
	return e.died
}

// Summary returns the run tally so far.
func (e *Engine) Summary() types.RunSummary {
	return types.RunSummary{
		Turns: e.turn,
		Kills: e.kills,
		Gold:  e.stats.Gold,
		Level: e.stats.Level,
		Died:  e.died,
	}
}

// sameFamily reports whether b may follow a chain started with a.
// Swords and skulls chain together so that swords can strike.
func sameFamily(a, b types.TileKind) bool {
	attack := func(k types.TileKind) bool { return k == types.KindSword || k == types.KindSkull }
	if attack(a) {
		return attack(b)
	}
	return a == b
}

func (e *Engine) chainIndex(pos types.TilePosition) int {
	for i, p := range e.chain {
		if p == pos {
			return i
		}
	}
	return -1
}

// truncateChain keeps the first n chain tiles and clears dangling directions.
func (e *Engine) truncateChain(n int) {
	for _, p := range e.chain[n:] {
		e.tile(p).Next = types.DirNone
	}
	e.chain = e.chain[:n]
	if n > 0 {
		e.tile(e.chain[n-1]).Next = types.DirNone
	}
}

func (e *Engine) clearChain() {
	e.truncateChain(0)
}

// SelectTile begins or extends the chain at pos.
// Reselecting the last tile removes it, reselecting an earlier tile truncates
// back to it, and a tile that can't extend the chain starts a new one.
func (e *Engine) SelectTile(pos types.TilePosition) bool {
	if e.died || len(e.pending) > 0 || !e.inBounds(pos) {
		return false
	}
	if e.tile(pos).Kind == types.KindEmpty {
		return false
	}
	if len(e.chain) == 0 {
		e.chain = append(e.chain, pos)
		return true
	}
	if i := e.chainIndex(pos); i >= 0 {
		if i == len(e.chain)-1 {
			e.truncateChain(i)
		} else {
			e.truncateChain(i + 1)
		}
		return true
	}

	last := e.chain[len(e.chain)-1]
	if types.Adjacent(last, pos) && sameFamily(e.tile(e.chain[0]).Kind, e.tile(pos).Kind) {
		e.tile(last).Next = types.DirectionBetween(last, pos)
		e.chain = append(e.chain, pos)
		return true
	}

	e.clearChain()
	e.chain = append(e.chain, pos)
	return true
}

// CommitSelection resolves the chain. Chains shorter than MinChain are dropped
// without consuming anything.
func (e *Engine) CommitSelection() bool {
	if e.died || len(e.chain) == 0 {
		return false
	}
	if len(e.chain) < MinChain {
		e.clearChain()
		return false
	}

	counts := map[types.TileKind]int{}
	for _, p := range e.chain {
		counts[e.tile(p).Kind]++
	}
	dmg := baseAttack + e.swordDmg*counts[types.KindSword]

	for _, p := range e.chain {
		t := e.tile(p)
		t.Next = types.DirNone
		if t.Kind == types.KindSkull {
			t.HP -= dmg
			if t.HP > 0 {
				continue
			}
			e.kills++
			e.stats.Experience++
		}
		*t = types.Tile{}
	}
	e.chain = e.chain[:0]

	e.heal(counts[types.KindPotion] * e.potionHeal)
	e.addShields(counts[types.KindShield])
	e.stats.Gold += counts[types.KindCoin] * e.coinValue
	e.checkThresholds()
	e.turn++
	return true
}

func (e *Engine) heal(n int) {
	e.stats.HP = min(e.stats.MaxHP, e.stats.HP+n)
}

func (e *Engine) addShields(n int) {
	total := e.stats.Shields + n
	if total > e.stats.MaxShields {
		e.stats.UpgradePoints += total - e.stats.MaxShields
		total = e.stats.MaxShields
	}
	e.stats.Shields = total
}

// checkThresholds queues a choice set for every threshold crossed.
func (e *Engine) checkThresholds() {
	for e.stats.Experience >= e.stats.NextLevel {
		e.stats.Level++
		e.stats.NextLevel += levelStep(e.stats.Level)
		e.offer(fmt.Sprintf("Level %d! Choose %d:", e.stats.Level, 2), 2, 4, levelUpPool)
	}
	for e.stats.Gold >= shopCost {
		e.stats.Gold -= shopCost
		e.offer("Shop: choose 1:", 1, 3, shopPool)
	}
	for e.stats.UpgradePoints >= armouryCost {
		e.stats.UpgradePoints -= armouryCost
		e.offer("Armoury: choose 1:", 1, 3, armouryPool)
	}
}

func levelStep(level int) int {
	return 3 + 2*level
}

// IncomingDamage is the total attack of every skull on the board.
func (e *Engine) IncomingDamage() int {
	total := 0
	for _, row := range e.tiles {
		for _, t := range row {
			if t.Kind == types.KindSkull {
				total += t.Attack
			}
		}
	}
	return total
}

// ApplyIncomingDamage hits the player, shields first.
func (e *Engine) ApplyIncomingDamage() {
	if e.died {
		return
	}
	dmg := e.IncomingDamage()
	absorbed := min(dmg, e.stats.Shields)
	e.stats.Shields -= absorbed
	e.stats.HP -= dmg - absorbed
	if e.stats.HP <= 0 {
		e.stats.HP = 0
		e.died = true
		e.clearChain()
		e.pending = nil
	}
}

// ApplyGravityAndRefill drops tiles down each column and spawns new ones on top.
func (e *Engine) ApplyGravityAndRefill() {
	e.clearChain()
	for col := 0; col < e.cfg.Width; col++ {
		write := e.cfg.Height - 1
		for row := e.cfg.Height - 1; row >= 0; row-- {
			if e.tiles[row][col].Kind != types.KindEmpty {
				e.tiles[write][col] = e.tiles[row][col]
				write--
			}
		}
		for row := write; row >= 0; row-- {
			e.tiles[row][col] = e.spawnTile()
		}
	}
}

// RunEndOfTurnEffects lets special enemies act and ticks ability cooldowns.
func (e *Engine) RunEndOfTurnEffects() {
	if e.died {
		return
	}
	for row := range e.tiles {
		for col := range e.tiles[row] {
			t := &e.tiles[row][col]
			if t.Kind == types.KindSkull && t.Special == trollName {
				t.HP = min(t.MaxHP, t.HP+trollRegen)
			}
		}
	}
	for i := range e.stats.Abilities {
		if e.stats.Abilities[i].Remaining > 0 {
			e.stats.Abilities[i].Remaining--
		}
	}
}

// Encounters describes every special enemy on the board.
func (e *Engine) Encounters() []string {
	var out []string
	for row := range e.tiles {
		for col, t := range e.tiles[row] {
			if t.Kind == types.KindSkull && t.Special == trollName {
				pos := types.TilePosition{Row: row, Col: col}
				out = append(out, fmt.Sprintf("%s at %s regenerates %d HP per turn", t.Special, pos, trollRegen))
			}
		}
	}
	return out
}
