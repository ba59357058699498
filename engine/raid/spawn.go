package raid

import "raidterm/types"

const (
	trollName  = "Troll"
	trollRegen = 2
)

// spawnWeights are relative odds for a new tile; skulls scale with difficulty.
func (e *Engine) spawnWeights() [6]int {
	var w [6]int
	w[types.KindSword] = 20
	w[types.KindShield] = 18
	w[types.KindPotion] = 16
	w[types.KindCoin] = 18
	w[types.KindSkull] = 14 + 2*e.cfg.Difficulty
	return w
}

func (e *Engine) spawnTile() types.Tile {
	weights := e.spawnWeights()
	total := 0
	for _, w := range weights {
		total += w
	}
	n := e.rng.Intn(total)
	for k, w := range weights {
		if n < w {
			kind := types.TileKind(k)
			if kind == types.KindSkull {
				return e.spawnSkull()
			}
			return types.Tile{Kind: kind}
		}
		n -= w
	}
	return types.Tile{Kind: types.KindSword}
}

func (e *Engine) spawnSkull() types.Tile {
	d := e.cfg.Difficulty
	hp := 2 + e.turn/12 + (d-1)/3
	t := types.Tile{
		Kind:   types.KindSkull,
		Attack: 1 + e.turn/20 + (d-1)/4,
		HP:     hp,
		MaxHP:  hp,
	}
	if e.turn > 0 && e.rng.Intn(30) < d {
		t.Special = trollName
		t.Attack++
		t.HP += 2
		t.MaxHP += 2
	}
	return t
}
