package ui

import (
	"math/rand"
	"testing"

	"raidterm/types"
)

func TestStepCursorSoftClamp(t *testing.T) {
	b := PlayingBounds(8, 6)
	tests := []struct {
		from types.ScreenCoord
		d    MoveDir
		want types.ScreenCoord
	}{
		{types.ScreenCoord{X: 14, Y: 0}, MoveRight, types.ScreenCoord{X: 14, Y: 0}},
		{types.ScreenCoord{X: 0, Y: 0}, MoveUp, types.ScreenCoord{X: 0, Y: 0}},
		{types.ScreenCoord{X: 0, Y: 0}, MoveLeft, types.ScreenCoord{X: 0, Y: 0}},
		{types.ScreenCoord{X: 0, Y: 10}, MoveDown, types.ScreenCoord{X: 0, Y: 10}},
		{types.ScreenCoord{X: 4, Y: 4}, MoveRight, types.ScreenCoord{X: 6, Y: 4}},
		{types.ScreenCoord{X: 4, Y: 4}, MoveUp, types.ScreenCoord{X: 4, Y: 2}},
	}
	for _, tt := range tests {
		if got := StepCursor(tt.from, tt.d, b); got != tt.want {
			t.Errorf("StepCursor(%v, %d) = %v, want %v", tt.from, tt.d, got, tt.want)
		}
	}
}

func TestStepCursorMenuIgnoresHorizontal(t *testing.T) {
	b := ChoosingBounds(4)
	c := b.First()
	for _, d := range []MoveDir{MoveLeft, MoveRight} {
		if got := StepCursor(c, d, b); got != c {
			t.Errorf("StepCursor(%v, %d) = %v in menu mode", c, d, got)
		}
	}
	if got := StepCursor(c, MoveUp, b); got != c {
		t.Errorf("moving above the first option gave %v", got)
	}
}

func TestRandomMovesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCursorStateMachine(8, 6)
	playing := CursorMode{}
	choosing := CursorMode{Choosing: true, Options: 4, Pick: 2, Serial: 1}

	for i := 0; i < 2000; i++ {
		mode := playing
		if rng.Intn(3) == 0 {
			mode = choosing
		}
		c.Sync(mode)
		c.Move(MoveDir(rng.Intn(4)), mode)

		b := mode.Bounds(8, 6)
		pos := c.Position(mode)
		if !b.Contains(pos) {
			t.Fatalf("step %d: %v out of bounds in %v mode", i, pos, mode)
		}
		if !mode.Choosing && (pos.X%2 != 0 || pos.Y%2 != 0) {
			t.Fatalf("step %d: board cursor %v off a glyph cell", i, pos)
		}
	}
}

func TestMenuCursorResetsOnNewChoiceSet(t *testing.T) {
	c := NewCursorStateMachine(8, 6)
	first := CursorMode{Choosing: true, Options: 4, Pick: 1, Serial: 1}
	if !c.Sync(first) {
		t.Error("entering a choice set should report a fresh set")
	}
	c.Move(MoveDown, first)
	c.Move(MoveDown, first)
	if got := c.HoveredOption(first); got != 2 {
		t.Fatalf("HoveredOption = %d, want 2", got)
	}
	if c.Sync(first) {
		t.Error("same set reported as fresh")
	}
	if got := c.HoveredOption(first); got != 2 {
		t.Errorf("same serial moved the cursor to %d", got)
	}

	second := CursorMode{Choosing: true, Options: 3, Pick: 1, Serial: 2}
	if !c.Sync(second) {
		t.Error("new serial should report a fresh set")
	}
	if got := c.Position(second); got != (types.ScreenCoord{X: 0, Y: ChoiceHeaderRows}) {
		t.Errorf("menu cursor at %v after a new set", got)
	}
}

func TestBoardCursorSurvivesMenu(t *testing.T) {
	c := NewCursorStateMachine(8, 6)
	playing := CursorMode{}
	c.Sync(playing)
	c.Move(MoveRight, playing)
	c.Move(MoveDown, playing)

	choosing := CursorMode{Choosing: true, Options: 3, Pick: 1, Serial: 5}
	c.Sync(choosing)
	c.Move(MoveDown, choosing)
	c.Sync(playing)

	if got := c.HoveredTile(); got != tp(1, 1) {
		t.Errorf("HoveredTile = %v, want B2", got)
	}
}
