// Package ui specifies custom controls for tview to play a tile-chaining dungeon raid in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raidterm/config"
	"raidterm/engine"
	"raidterm/types"
)

// PlayState is the UI state shared by the board widget and the input dispatcher.
type PlayState struct {
	Engine engine.GameEngine
	Cursor *CursorStateMachine
	Picks  SelectionAccumulator
	Notice string
}

// NewPlayState creates UI state for a fresh run on eng.
func NewPlayState(eng engine.GameEngine) *PlayState {
	s := &PlayState{}
	s.Reset(eng)
	return s
}

// Reset points the state at a new run.
func (s *PlayState) Reset(eng engine.GameEngine) {
	s.Engine = eng
	s.Cursor = NewCursorStateMachine(eng.Width(), eng.Height())
	s.Picks.Reset()
	s.Notice = ""
}

// Sync derives this frame's mode from the engine. Picks left over from an
// earlier choice set are dropped when a new set appears.
func (s *PlayState) Sync() CursorMode {
	mode := ModeOf(s.Engine)
	if s.Cursor.Sync(mode) {
		s.Picks.Reset()
	}
	return mode
}

type tileStyles struct {
	board     tcell.Color
	connector tcell.Color
	crossing  tcell.Color
	cursorFG  tcell.Color
	cursorBG  tcell.Color
	pickedBG  tcell.Color
	kinds     map[types.TileKind]tcell.Color
	symbols   map[types.TileKind]rune
}

// RaidBoardUI draws the board, the chain path, the improvement menu and the status column.
type RaidBoardUI struct {
	Box      *tview.Box
	State    *PlayState
	cfg      *config.Config
	styles   tileStyles
	renderer ChainPathRenderer
	sink     EventSink
	lastErr  string
}

// NewRaidBoard creates the board widget. state may be nil until a run starts.
func NewRaidBoard(c *config.Config, state *PlayState, sink EventSink) *RaidBoardUI {
	if sink == nil {
		sink = NopSink{}
	}
	board := &RaidBoardUI{
		Box:   tview.NewBox(),
		State: state,
		sink:  sink,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.State == nil || board.State.Engine == nil {
			return x, y, width, height
		}
		f, cursor, err := board.Compose(width, height)
		if err != nil {
			if err.Error() != board.lastErr {
				board.sink.Event("render_aborted", "err", err)
				board.lastErr = err.Error()
			}
			f = NewFrame(width, height)
			f.PutText(0, 0, "cannot draw board: "+err.Error(), tcell.ColorRed)
			f.Blit(screen, x, y)
			screen.HideCursor()
			return x, y, width, height
		}
		board.lastErr = ""
		f.Blit(screen, x, y)
		screen.ShowCursor(x+cursor.X, y+cursor.Y)
		return x, y, width, height
	})
	return board
}

// SetConfig applies a theme.
func (g *RaidBoardUI) SetConfig(c *config.Config) {
	g.styles = newTileStyles(c.Theme)
	g.renderer = ChainPathRenderer{
		Glyph:           g.styles.symbol,
		StickyCrossings: c.Theme.StickyCrossings,
	}
	g.cfg = c
}

func newTileStyles(theme config.Theme) tileStyles {
	col := theme.Colors
	sym := theme.Symbols
	return tileStyles{
		board:     tcell.PaletteColor(col.BoardColor),
		connector: tcell.PaletteColor(col.ConnectorColor),
		crossing:  tcell.PaletteColor(col.CrossingColor),
		cursorFG:  tcell.PaletteColor(col.CursorColorFG),
		cursorBG:  tcell.PaletteColor(col.CursorColorBG),
		pickedBG:  tcell.PaletteColor(col.PickedColorBG),
		kinds: map[types.TileKind]tcell.Color{
			types.KindSword:  tcell.PaletteColor(col.SwordColor),
			types.KindShield: tcell.PaletteColor(col.ShieldColor),
			types.KindPotion: tcell.PaletteColor(col.PotionColor),
			types.KindCoin:   tcell.PaletteColor(col.CoinColor),
			types.KindSkull:  tcell.PaletteColor(col.SkullColor),
		},
		symbols: map[types.TileKind]rune{
			types.KindSword:  sym.Sword,
			types.KindShield: sym.Shield,
			types.KindPotion: sym.Potion,
			types.KindCoin:   sym.Coin,
			types.KindSkull:  sym.Skull,
		},
	}
}

func (st tileStyles) symbol(t types.Tile) rune {
	if r, ok := st.symbols[t.Kind]; ok {
		return r
	}
	return ' '
}

// Compose draws one frame and returns it with the cursor cell.
// A corrupt chain aborts the frame with a *ChainError.
func (g *RaidBoardUI) Compose(width, height int) (*Frame, types.ScreenCoord, error) {
	eng := g.State.Engine
	mode := g.State.Sync()
	cursor := g.State.Cursor.Position(mode)
	f := NewFrame(width, height)

	var set *types.ChoiceSet
	panelW := 2*eng.Width() - 1
	if mode.Choosing {
		set = eng.PendingChoice()
		panelW = choiceWidth(set)
		for _, c := range g.State.Picks.Coords() {
			f.HighlightRow(c.Y, c.X, c.X+panelW, g.styles.pickedBG)
		}
	}

	drawStatus(f, panelW+statusGap, StatusLines(eng, g.State.Notice))

	if mode.Choosing {
		drawChoicePanel(f, set, &g.State.Picks, cursor)
		return f, cursor, nil
	}
	if err := g.drawBoard(f, cursor); err != nil {
		return nil, cursor, err
	}
	return f, cursor, nil
}

func (g *RaidBoardUI) drawBoard(f *Frame, cursor types.ScreenCoord) error {
	eng := g.State.Engine
	grid, err := g.renderer.Render(eng)
	if err != nil {
		return err
	}
	paintGrid(f, grid, eng, g.styles, chainTiles(eng))

	if g.cfg.Theme.DrawCursorBackground {
		f.Highlight(cursor.X, cursor.Y, g.styles.cursorBG)
		if f.Rune(cursor.X, cursor.Y) == ' ' {
			f.Put(cursor.X, cursor.Y, ' ', g.styles.cursorFG)
		}
	}

	pos := g.State.Cursor.HoveredTile()
	hover := fmt.Sprintf("%v  %s", pos, eng.TileAt(pos).Describe())
	f.PutText(0, grid.Height+1, hover, MenuColors.Label)
	return nil
}

// paintGrid copies a rendered grid into f, colouring tiles by kind and
// connectors by type. Tiles on the chain are bold.
func paintGrid(f *Frame, grid *Grid, src ChainSource, st tileStyles, chain map[types.TilePosition]bool) {
	b := PlayingBounds(src.Width(), src.Height())
	for y := 0; y < grid.Height; y++ {
		f.HighlightRow(y, 0, grid.Width, st.board)
		for x := 0; x < grid.Width; x++ {
			r := grid.Get(x, y)
			if r == ' ' {
				continue
			}
			if x%2 == 0 && y%2 == 0 {
				pos := TileFromCursor(types.ScreenCoord{X: x, Y: y}, b)
				fg := st.kinds[src.TileAt(pos).Kind]
				if chain[pos] {
					f.PutBold(x, y, r, fg)
				} else {
					f.Put(x, y, r, fg)
				}
				continue
			}
			fg := st.connector
			if r == GlyphCrossing {
				fg = st.crossing
			}
			f.Put(x, y, r, fg)
		}
	}
}

// chainTiles follows the chain from its start and returns the tiles on it.
func chainTiles(eng engine.GameEngine) map[types.TilePosition]bool {
	tiles := map[types.TilePosition]bool{}
	pos, ok := eng.ChainStart()
	if !ok {
		return tiles
	}
	limit := eng.Width() * eng.Height()
	for i := 0; i < limit; i++ {
		tiles[pos] = true
		dy, dx, ok := eng.Successor(pos).Offset()
		if !ok {
			break
		}
		pos = pos.Add(dy, dx)
		if pos.Row < 0 || pos.Row >= eng.Height() || pos.Col < 0 || pos.Col >= eng.Width() {
			break
		}
	}
	return tiles
}
