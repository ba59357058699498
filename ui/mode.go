package ui

import "raidterm/engine"

// CursorMode is either Playing or ChoosingImprovement.
// It is derived from the engine every frame and never cached.
type CursorMode struct {
	Choosing bool
	Options  int    // n, the number of options on offer
	Pick     int    // how many options must be chosen
	Serial   uint64 // identifies the choice set
}

// ModeOf derives the current mode from the engine's pending choice set.
func ModeOf(eng engine.GameEngine) CursorMode {
	set := eng.PendingChoice()
	if set == nil {
		return CursorMode{}
	}
	return CursorMode{
		Choosing: true,
		Options:  len(set.Options),
		Pick:     set.Pick,
		Serial:   set.Serial,
	}
}

// Bounds returns the cursor bounds for the mode on a width x height board.
func (m CursorMode) Bounds(width, height int) ModeBounds {
	if m.Choosing {
		return ChoosingBounds(m.Options)
	}
	return PlayingBounds(width, height)
}

func (m CursorMode) String() string {
	if m.Choosing {
		return "choosing"
	}
	return "playing"
}
