package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"raidterm/sound"
	"raidterm/types"
)

func newTestDispatcher(e *fakeEngine) (*InputDispatcher, *PlayState, *recordedCues) {
	state := NewPlayState(e)
	cues := &recordedCues{}
	return NewInputDispatcher(state, nil, cues), state, cues
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Action{Kind: ActQuit}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Action{Kind: ActConfirm}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Action{Kind: ActConfirm}},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Action{Kind: ActMark}},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), Action{Kind: ActMove, Dir: MoveLeft}},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), Action{Kind: ActMove, Dir: MoveDown}},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Action{Kind: ActMove, Dir: MoveUp}},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), Action{Kind: ActMove, Dir: MoveRight}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Action{Kind: ActMove, Dir: MoveUp}},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Action{Kind: ActMove, Dir: MoveLeft}},
		{tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), Action{Kind: ActAbility, Slot: 0}},
		{tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), Action{Kind: ActAbility, Slot: 3}},
		{tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), Action{}},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Action{}},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), Action{}},
	}
	for _, tt := range tests {
		if got := ActionForKey(tt.ev); got != tt.want {
			t.Errorf("ActionForKey(%s) = %+v, want %+v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestQuitInEitherMode(t *testing.T) {
	e := newFakeEngine(4, 4)
	d, _, _ := newTestDispatcher(e)
	if !d.Dispatch(Action{Kind: ActQuit}) {
		t.Error("quit ignored while playing")
	}
	e.choice = &types.ChoiceSet{Serial: 1, Options: []string{"a", "b"}, Pick: 1}
	if !d.Dispatch(Action{Kind: ActQuit}) {
		t.Error("quit ignored while choosing")
	}
}

func TestConfirmRunsTurnInOrder(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.chain(tp(0, 0), tp(0, 1), tp(0, 2))
	e.incoming = 3
	d, state, cues := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActConfirm})

	want := []string{"commit", "damage", "gravity", "endturn"}
	if !reflect.DeepEqual(e.calls, want) {
		t.Errorf("calls = %v, want %v", e.calls, want)
	}
	if state.Notice != "" {
		t.Errorf("Notice = %q", state.Notice)
	}
	wantCues := []sound.Cue{sound.CueChain, sound.CueHit}
	if !reflect.DeepEqual(cues.cues, wantCues) {
		t.Errorf("cues = %v, want %v", cues.cues, wantCues)
	}
}

func TestConfirmWithoutChainDoesNothing(t *testing.T) {
	e := newFakeEngine(4, 4)
	d, _, _ := newTestDispatcher(e)
	d.Dispatch(Action{Kind: ActConfirm})
	if len(e.calls) != 0 {
		t.Errorf("calls = %v, want none", e.calls)
	}
}

func TestConfirmShortChainSkipsTurn(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.chain(tp(0, 0), tp(0, 1))
	e.commitOK = false
	d, state, cues := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActConfirm})

	if !reflect.DeepEqual(e.calls, []string{"commit"}) {
		t.Errorf("calls = %v", e.calls)
	}
	if state.Notice == "" {
		t.Error("no notice for a refused chain")
	}
	if len(cues.cues) != 1 || cues.cues[0] != sound.CueRefused {
		t.Errorf("cues = %v", cues.cues)
	}
}

func TestMarkSelectsHoveredTile(t *testing.T) {
	e := newFakeEngine(4, 4)
	d, _, _ := newTestDispatcher(e)
	d.Dispatch(Action{Kind: ActMove, Dir: MoveRight})
	d.Dispatch(Action{Kind: ActMove, Dir: MoveRight})
	d.Dispatch(Action{Kind: ActMove, Dir: MoveDown})
	d.Dispatch(Action{Kind: ActMark})

	if !reflect.DeepEqual(e.calls, []string{"select C2"}) {
		t.Errorf("calls = %v", e.calls)
	}
}

func TestAbilityRefusalBecomesNotice(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.castErr = errors.New("Heal: cooling down (3)")
	d, state, cues := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActAbility, Slot: 0})

	if state.Notice != "Heal: cooling down (3)" {
		t.Errorf("Notice = %q", state.Notice)
	}
	if !reflect.DeepEqual(e.calls, []string{"cast 0"}) {
		t.Errorf("calls = %v", e.calls)
	}
	if len(cues.cues) != 1 || cues.cues[0] != sound.CueRefused {
		t.Errorf("cues = %v", cues.cues)
	}

	e.castErr = nil
	d.Dispatch(Action{Kind: ActAbility, Slot: 1})
	if state.Notice != "" {
		t.Errorf("Notice not cleared after a successful cast: %q", state.Notice)
	}
}

func TestChoosingCommitsAtPickCount(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.choice = &types.ChoiceSet{Serial: 9, Header: "Level 2! Choose 2:", Options: []string{"a", "b", "c", "d"}, Pick: 2}
	d, state, _ := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActMove, Dir: MoveDown})
	d.Dispatch(Action{Kind: ActConfirm})
	if state.Picks.Len() != 1 || !state.Picks.Contains(1) {
		t.Fatalf("picks after first confirm = %v", state.Picks.Indices())
	}
	d.Dispatch(Action{Kind: ActMove, Dir: MoveDown})
	d.Dispatch(Action{Kind: ActMove, Dir: MoveDown})
	d.Dispatch(Action{Kind: ActConfirm})

	if !reflect.DeepEqual(e.improved, [][]int{{1, 3}}) {
		t.Errorf("CommitImprovements got %v", e.improved)
	}
	if state.Picks.Len() != 0 {
		t.Error("picks not reset after commit")
	}
	mode := CursorMode{Choosing: true, Options: 4, Pick: 2, Serial: 9}
	if got := state.Cursor.HoveredOption(mode); got != 0 {
		t.Errorf("menu cursor on option %d after commit", got)
	}
}

func TestChoosingToggleTwiceUnpicks(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.choice = &types.ChoiceSet{Serial: 1, Options: []string{"a", "b", "c"}, Pick: 2}
	d, state, _ := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActConfirm})
	d.Dispatch(Action{Kind: ActConfirm})

	if state.Picks.Len() != 0 {
		t.Errorf("picks = %v, want none", state.Picks.Indices())
	}
	if len(e.improved) != 0 {
		t.Error("committed without reaching the pick count")
	}
}

func TestChoosingIgnoresBoardActions(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.choice = &types.ChoiceSet{Serial: 1, Options: []string{"a", "b", "c"}, Pick: 1}
	d, state, _ := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActMark})
	d.Dispatch(Action{Kind: ActAbility, Slot: 0})
	d.Dispatch(Action{Kind: ActMove, Dir: MoveRight})
	d.Dispatch(Action{Kind: ActMove, Dir: MoveLeft})

	if len(e.calls) != 0 {
		t.Errorf("calls = %v, want none", e.calls)
	}
	mode := ModeOf(e)
	if got := state.Cursor.Position(mode); got != ChoosingBounds(3).First() {
		t.Errorf("menu cursor moved to %v", got)
	}
}

func TestImprovementErrorBecomesNotice(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.choice = &types.ChoiceSet{Serial: 1, Options: []string{"a", "b"}, Pick: 1}
	e.improveErr = errors.New("bad picks")
	d, state, _ := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActConfirm})

	if state.Notice != "bad picks" {
		t.Errorf("Notice = %q", state.Notice)
	}
	if state.Picks.Len() != 0 {
		t.Error("picks kept after a refused commit")
	}
}

func TestOnlyQuitAfterGameOver(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.chain(tp(0, 0), tp(0, 1), tp(0, 2))
	e.finished = true
	d, _, _ := newTestDispatcher(e)

	for _, a := range []Action{
		{Kind: ActConfirm},
		{Kind: ActMark},
		{Kind: ActAbility, Slot: 0},
		{Kind: ActMove, Dir: MoveDown},
	} {
		if d.Dispatch(a) {
			t.Errorf("%+v asked to quit", a)
		}
	}
	if len(e.calls) != 0 {
		t.Errorf("calls = %v, want none", e.calls)
	}
	if !d.Dispatch(Action{Kind: ActQuit}) {
		t.Error("quit ignored after game over")
	}
}

func TestNewChoiceSetPlaysCue(t *testing.T) {
	e := newFakeEngine(4, 4)
	e.chain(tp(0, 0), tp(0, 1), tp(0, 2))
	e.afterCommit = func() {
		e.choice = &types.ChoiceSet{Serial: 3, Options: []string{"a", "b"}, Pick: 1}
	}
	d, state, cues := newTestDispatcher(e)

	d.Dispatch(Action{Kind: ActConfirm})

	found := false
	for _, c := range cues.cues {
		if c == sound.CueChoice {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, want a choice cue", cues.cues)
	}
	if mode := state.Sync(); !mode.Choosing || mode.Serial != 3 {
		t.Errorf("mode after level-up = %+v", mode)
	}
}
