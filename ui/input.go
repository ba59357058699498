package ui

import (
	"github.com/gdamore/tcell/v2"

	"raidterm/sound"
)

// ActionKind identifies what a key press asks for.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActQuit
	ActConfirm
	ActMark
	ActMove
	ActAbility
)

// Action is a decoded key press.
type Action struct {
	Kind ActionKind
	Dir  MoveDir
	Slot int
}

// ActionForKey maps a key event to an action.
func ActionForKey(event *tcell.EventKey) Action {
	switch event.Key() {
	case tcell.KeyEnter:
		return Action{Kind: ActConfirm}
	case tcell.KeyUp:
		return Action{Kind: ActMove, Dir: MoveUp}
	case tcell.KeyDown:
		return Action{Kind: ActMove, Dir: MoveDown}
	case tcell.KeyLeft:
		return Action{Kind: ActMove, Dir: MoveLeft}
	case tcell.KeyRight:
		return Action{Kind: ActMove, Dir: MoveRight}
	case tcell.KeyRune:
	default:
		return Action{}
	}
	switch r := event.Rune(); r {
	case 'q':
		return Action{Kind: ActQuit}
	case ' ':
		return Action{Kind: ActConfirm}
	case 'x':
		return Action{Kind: ActMark}
	case 'k':
		return Action{Kind: ActMove, Dir: MoveUp}
	case 'j':
		return Action{Kind: ActMove, Dir: MoveDown}
	case 'h':
		return Action{Kind: ActMove, Dir: MoveLeft}
	case 'l':
		return Action{Kind: ActMove, Dir: MoveRight}
	case '1', '2', '3', '4':
		return Action{Kind: ActAbility, Slot: int(r - '1')}
	}
	return Action{}
}

// CuePlayer plays a short audio cue. *sound.Manager satisfies it.
type CuePlayer interface {
	Play(c sound.Cue)
}

type silentCues struct{}

func (silentCues) Play(sound.Cue) {}

// InputDispatcher applies actions to the engine and the shared UI state.
type InputDispatcher struct {
	state *PlayState
	sink  EventSink
	cues  CuePlayer
}

// NewInputDispatcher creates a dispatcher. sink and cues may be nil.
func NewInputDispatcher(state *PlayState, sink EventSink, cues CuePlayer) *InputDispatcher {
	if sink == nil {
		sink = NopSink{}
	}
	if cues == nil {
		cues = silentCues{}
	}
	return &InputDispatcher{state: state, sink: sink, cues: cues}
}

// HandleKey decodes and dispatches a key event. Returns true to quit.
func (d *InputDispatcher) HandleKey(event *tcell.EventKey) bool {
	return d.Dispatch(ActionForKey(event))
}

// Dispatch applies one action against the mode the engine is in right now.
// Returns true when the action asks to quit.
func (d *InputDispatcher) Dispatch(a Action) bool {
	if a.Kind == ActQuit {
		d.sink.Event("quit")
		return true
	}
	eng := d.state.Engine
	if a.Kind == ActNone || eng.Finished() {
		return false
	}
	mode := d.state.Sync()

	switch a.Kind {
	case ActMove:
		if mode.Choosing && (a.Dir == MoveLeft || a.Dir == MoveRight) {
			return false
		}
		d.state.Cursor.Move(a.Dir, mode)
	case ActConfirm:
		if mode.Choosing {
			d.togglePick(mode)
		} else {
			d.commitChain()
		}
	case ActMark:
		if mode.Choosing {
			return false
		}
		pos := d.state.Cursor.HoveredTile()
		ok := eng.SelectTile(pos)
		d.sink.Event("select", "pos", pos, "accepted", ok)
		if !ok {
			d.cues.Play(sound.CueRefused)
		}
	case ActAbility:
		if mode.Choosing {
			return false
		}
		if err := eng.CastAbility(a.Slot); err != nil {
			d.state.Notice = err.Error()
			d.sink.Event("ability_refused", "slot", a.Slot+1, "err", err)
			d.cues.Play(sound.CueRefused)
		} else {
			d.state.Notice = ""
			d.sink.Event("ability", "slot", a.Slot+1)
			d.cues.Play(sound.CueAbility)
		}
	}

	if after := ModeOf(eng); after.Choosing && (!mode.Choosing || after.Serial != mode.Serial) {
		d.sink.Event("choice_offered", "serial", after.Serial, "options", after.Options, "pick", after.Pick)
		d.cues.Play(sound.CueChoice)
	}
	return false
}

func (d *InputDispatcher) commitChain() {
	eng := d.state.Engine
	start, ok := eng.ChainStart()
	if !ok {
		return
	}
	if !eng.CommitSelection() {
		d.state.Notice = "That chain is too short."
		d.sink.Event("commit_refused", "start", start)
		d.cues.Play(sound.CueRefused)
		return
	}
	before := eng.Stats()
	eng.ApplyIncomingDamage()
	eng.ApplyGravityAndRefill()
	eng.RunEndOfTurnEffects()
	after := eng.Stats()

	d.state.Notice = ""
	d.sink.Event("commit", "start", start, "hp", after.HP, "shields", after.Shields)
	d.cues.Play(sound.CueChain)
	if after.HP+after.Shields < before.HP+before.Shields {
		d.cues.Play(sound.CueHit)
	}
	if eng.Finished() {
		sum := eng.Summary()
		d.sink.Event("game_over", "turns", sum.Turns, "kills", sum.Kills, "gold", sum.Gold)
	}
}

func (d *InputDispatcher) togglePick(mode CursorMode) {
	if mode.Pick <= 0 {
		return
	}
	idx := d.state.Cursor.HoveredOption(mode)
	if idx < 0 || idx >= mode.Options {
		return
	}
	d.state.Picks.Toggle(idx, d.state.Cursor.Position(mode), mode.Pick)
	if d.state.Picks.Len() < mode.Pick {
		return
	}
	picks := d.state.Picks.Indices()
	err := d.state.Engine.CommitImprovements(picks)
	d.state.Picks.Reset()
	d.state.Cursor.ResetMenu(mode)
	if err != nil {
		d.state.Notice = err.Error()
		d.sink.Event("improvements_refused", "picks", picks, "err", err)
		return
	}
	d.state.Notice = ""
	d.sink.Event("improvements", "serial", mode.Serial, "picks", picks)
}
