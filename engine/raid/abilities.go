package raid

import (
	"fmt"

	"raidterm/types"
)

// MaxAbilities is the number of numbered ability slots.
const MaxAbilities = 4

const (
	healAmount  = 6
	fireballDmg = 3
	minCooldown = 2
)

var abilityCooldowns = map[string]int{
	"Heal":     8,
	"Shuffle":  6,
	"Fireball": 12,
	"Bulwark":  10,
}

// AbilityError explains why a cast was refused.
type AbilityError struct {
	Slot   int
	Name   string
	Reason string
}

func (e *AbilityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("ability %d: %s", e.Slot+1, e.Reason)
	}
	return fmt.Sprintf("ability %d (%s): %s", e.Slot+1, e.Name, e.Reason)
}

func newAbility(name string) types.Ability {
	return types.Ability{Name: name, Cooldown: abilityCooldowns[name]}
}

func (e *Engine) knows(name string) bool {
	for _, a := range e.stats.Abilities {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (e *Engine) canLearn(name string) bool {
	return !e.knows(name) && len(e.stats.Abilities) < MaxAbilities
}

func (e *Engine) learn(name string) {
	if e.canLearn(name) {
		e.stats.Abilities = append(e.stats.Abilities, newAbility(name))
	}
}

func (e *Engine) canShortenCooldowns() bool {
	for _, a := range e.stats.Abilities {
		if a.Cooldown > minCooldown {
			return true
		}
	}
	return false
}

func (e *Engine) shortenCooldowns() {
	for i := range e.stats.Abilities {
		a := &e.stats.Abilities[i]
		if a.Cooldown > minCooldown {
			a.Cooldown--
		}
		a.Remaining = min(a.Remaining, a.Cooldown)
	}
}

// CastAbility casts the ability in the given 0-based slot and starts its cooldown.
func (e *Engine) CastAbility(slot int) error {
	if e.died {
		return ErrGameOver
	}
	if slot < 0 || slot >= len(e.stats.Abilities) {
		return &AbilityError{Slot: slot, Reason: "empty slot"}
	}
	if len(e.pending) > 0 {
		return &AbilityError{Slot: slot, Name: e.stats.Abilities[slot].Name, Reason: "choose an improvement first"}
	}
	a := &e.stats.Abilities[slot]
	if !a.Ready() {
		return &AbilityError{Slot: slot, Name: a.Name, Reason: fmt.Sprintf("cooling down (%d)", a.Remaining)}
	}
	a.Remaining = a.Cooldown
	e.cast(a.Name)
	return nil
}

func (e *Engine) cast(name string) {
	switch name {
	case "Heal":
		e.heal(healAmount)
	case "Shuffle":
		e.shuffleBoard()
	case "Fireball":
		e.fireball()
	case "Bulwark":
		e.stats.Shields = e.stats.MaxShields
	}
}

func (e *Engine) shuffleBoard() {
	e.clearChain()
	flat := make([]types.Tile, 0, e.cfg.Width*e.cfg.Height)
	for _, row := range e.tiles {
		flat = append(flat, row...)
	}
	e.rng.Shuffle(len(flat), func(i, j int) { flat[i], flat[j] = flat[j], flat[i] })
	for row := range e.tiles {
		copy(e.tiles[row], flat[row*e.cfg.Width:(row+1)*e.cfg.Width])
	}
}

func (e *Engine) fireball() {
	killed := 0
	for row := range e.tiles {
		for col := range e.tiles[row] {
			t := &e.tiles[row][col]
			if t.Kind != types.KindSkull {
				continue
			}
			t.HP -= fireballDmg
			if t.HP <= 0 {
				*t = types.Tile{}
				killed++
			}
		}
	}
	if killed == 0 {
		return
	}
	e.kills += killed
	e.stats.Experience += killed
	e.ApplyGravityAndRefill()
	e.checkThresholds()
}
