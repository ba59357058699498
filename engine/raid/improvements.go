package raid

import (
	"fmt"

	"raidterm/types"
)

// improvement is one option in a choice set.
type improvement struct {
	desc  string
	apply func(e *Engine)
	// avail filters the pool; nil means always offered.
	avail func(e *Engine) bool
}

type pendingChoice struct {
	set     types.ChoiceSet
	effects []improvement
}

var levelUpPool = []improvement{
	{desc: "+1 sword damage", apply: func(e *Engine) { e.swordDmg++ }},
	{desc: "+4 max HP", apply: func(e *Engine) { e.stats.MaxHP += 4; e.heal(4) }},
	{desc: "+1 max shields", apply: func(e *Engine) { e.stats.MaxShields++ }},
	{desc: "Potions heal +1", apply: func(e *Engine) { e.potionHeal++ }},
	{
		desc:  "Learn Fireball",
		apply: func(e *Engine) { e.learn("Fireball") },
		avail: func(e *Engine) bool { return e.canLearn("Fireball") },
	},
	{
		desc:  "Learn Bulwark",
		apply: func(e *Engine) { e.learn("Bulwark") },
		avail: func(e *Engine) bool { return e.canLearn("Bulwark") },
	},
	{
		desc:  "Ability cooldowns -1",
		apply: func(e *Engine) { e.shortenCooldowns() },
		avail: func(e *Engine) bool { return e.canShortenCooldowns() },
	},
}

var shopPool = []improvement{
	{desc: "Whetstone: +1 sword damage", apply: func(e *Engine) { e.swordDmg++ }},
	{desc: "Elixir: full heal", apply: func(e *Engine) { e.heal(e.stats.MaxHP) }},
	{desc: "Coin purse: coins worth +1", apply: func(e *Engine) { e.coinValue++ }},
	{desc: "Buckler: +1 max shields", apply: func(e *Engine) { e.stats.MaxShields++ }},
}

var armouryPool = []improvement{
	{desc: "Repair: refill shields", apply: func(e *Engine) { e.stats.Shields = e.stats.MaxShields }},
	{desc: "Spiked rim: +1 max shields", apply: func(e *Engine) { e.stats.MaxShields++ }},
	{desc: "Plate: +3 max HP", apply: func(e *Engine) { e.stats.MaxHP += 3 }},
}

// offer queues a choice of count random options from pool, pick of which must be chosen.
func (e *Engine) offer(header string, pick, count int, pool []improvement) {
	var candidates []improvement
	for _, imp := range pool {
		if imp.avail == nil || imp.avail(e) {
			candidates = append(candidates, imp)
		}
	}
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	if len(candidates) == 0 {
		return
	}
	pick = min(pick, len(candidates))

	e.serial++
	pc := &pendingChoice{
		set: types.ChoiceSet{
			Serial: e.serial,
			Header: header,
			Pick:   pick,
		},
		effects: candidates,
	}
	for _, c := range candidates {
		pc.set.Options = append(pc.set.Options, c.desc)
	}
	e.pending = append(e.pending, pc)
}

// PendingChoice returns the oldest unresolved choice set, or nil.
func (e *Engine) PendingChoice() *types.ChoiceSet {
	if len(e.pending) == 0 {
		return nil
	}
	set := e.pending[0].set
	return &set
}

// CommitImprovements applies the picked options of the pending set and drops it.
func (e *Engine) CommitImprovements(picks []int) error {
	if e.died {
		return ErrGameOver
	}
	if len(e.pending) == 0 {
		return ErrNoChoicePending
	}
	pc := e.pending[0]
	if len(picks) != pc.set.Pick {
		return fmt.Errorf("%w: want %d, got %d", ErrBadPicks, pc.set.Pick, len(picks))
	}
	seen := map[int]bool{}
	for _, i := range picks {
		if i < 0 || i >= len(pc.effects) {
			return fmt.Errorf("%w: option %d out of range", ErrBadPicks, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: option %d picked twice", ErrBadPicks, i)
		}
		seen[i] = true
	}
	for _, i := range picks {
		pc.effects[i].apply(e)
	}
	e.pending = e.pending[1:]
	return nil
}
