package ui

import (
	"fmt"

	"raidterm/sound"
	"raidterm/types"
)

// fakeEngine is a scriptable GameEngine that records the commands it receives.
type fakeEngine struct {
	w, h       int
	tiles      map[types.TilePosition]types.Tile
	next       map[types.TilePosition]types.Direction
	start      *types.TilePosition
	choice     *types.ChoiceSet
	stats      types.PlayerStats
	incoming   int
	encounters []string
	finished   bool
	commitOK   bool
	selectOK   bool
	castErr    error
	improveErr error
	calls      []string
	improved   [][]int
	// afterCommit runs once tiles are consumed, to script level-ups and the like.
	afterCommit func()
}

func newFakeEngine(w, h int) *fakeEngine {
	e := &fakeEngine{
		w:        w,
		h:        h,
		tiles:    map[types.TilePosition]types.Tile{},
		next:     map[types.TilePosition]types.Direction{},
		selectOK: true,
		commitOK: true,
		stats: types.PlayerStats{
			HP: 10, MaxHP: 10, Level: 1, NextLevel: 5,
		},
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			e.tiles[types.TilePosition{Row: r, Col: c}] = types.Tile{Kind: types.KindCoin}
		}
	}
	return e
}

func (e *fakeEngine) Width() int  { return e.w }
func (e *fakeEngine) Height() int { return e.h }

func (e *fakeEngine) TileAt(pos types.TilePosition) types.Tile {
	if pos.Row < 0 || pos.Row >= e.h || pos.Col < 0 || pos.Col >= e.w {
		panic(fmt.Sprintf("TileAt out of bounds: %v", pos))
	}
	return e.tiles[pos]
}

func (e *fakeEngine) ChainStart() (types.TilePosition, bool) {
	if e.start == nil {
		return types.TilePosition{}, false
	}
	return *e.start, true
}

func (e *fakeEngine) Successor(pos types.TilePosition) types.Direction {
	return e.next[pos]
}

func (e *fakeEngine) PendingChoice() *types.ChoiceSet { return e.choice }
func (e *fakeEngine) Stats() types.PlayerStats        { return e.stats }
func (e *fakeEngine) IncomingDamage() int             { return e.incoming }
func (e *fakeEngine) Encounters() []string            { return e.encounters }
func (e *fakeEngine) Finished() bool                  { return e.finished }

func (e *fakeEngine) Summary() types.RunSummary {
	return types.RunSummary{Turns: 4, Kills: 2, Gold: 3, Level: e.stats.Level, Died: e.finished}
}

func (e *fakeEngine) SelectTile(pos types.TilePosition) bool {
	e.calls = append(e.calls, "select "+pos.String())
	return e.selectOK
}

func (e *fakeEngine) CommitSelection() bool {
	e.calls = append(e.calls, "commit")
	if e.commitOK && e.afterCommit != nil {
		e.afterCommit()
	}
	return e.commitOK
}

func (e *fakeEngine) ApplyIncomingDamage() {
	e.calls = append(e.calls, "damage")
	e.stats.HP -= e.incoming
}

func (e *fakeEngine) ApplyGravityAndRefill() {
	e.calls = append(e.calls, "gravity")
}

func (e *fakeEngine) RunEndOfTurnEffects() {
	e.calls = append(e.calls, "endturn")
}

func (e *fakeEngine) CastAbility(slot int) error {
	e.calls = append(e.calls, fmt.Sprintf("cast %d", slot))
	return e.castErr
}

func (e *fakeEngine) CommitImprovements(picks []int) error {
	e.calls = append(e.calls, fmt.Sprintf("improve %v", picks))
	e.improved = append(e.improved, append([]int(nil), picks...))
	if e.improveErr != nil {
		return e.improveErr
	}
	e.choice = nil
	return nil
}

// chain links the given tiles into a selection chain.
func (e *fakeEngine) chain(ps ...types.TilePosition) {
	start := ps[0]
	e.start = &start
	for i := 0; i+1 < len(ps); i++ {
		e.next[ps[i]] = types.DirectionBetween(ps[i], ps[i+1])
	}
}

type recordedCues struct {
	cues []sound.Cue
}

func (r *recordedCues) Play(c sound.Cue) {
	r.cues = append(r.cues, c)
}

type recordedEvents struct {
	names []string
}

func (r *recordedEvents) Event(name string, kv ...any) {
	r.names = append(r.names, name)
}

func tp(row, col int) types.TilePosition {
	return types.TilePosition{Row: row, Col: col}
}
