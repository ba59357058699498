package ui

import (
	"errors"
	"testing"

	"raidterm/types"
)

func TestConnectorGlyph(t *testing.T) {
	tests := []struct {
		dy, dx int
		want   rune
	}{
		{-1, 0, '|'},
		{1, 0, '|'},
		{0, -1, '-'},
		{0, 1, '-'},
		{-1, -1, '\\'},
		{1, 1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tt := range tests {
		got, ok := ConnectorGlyph(tt.dy, tt.dx)
		if !ok || got != tt.want {
			t.Errorf("ConnectorGlyph(%d, %d) = %q, %v; want %q", tt.dy, tt.dx, got, ok, tt.want)
		}
	}
	if _, ok := ConnectorGlyph(0, 0); ok {
		t.Error("ConnectorGlyph(0, 0) should not exist")
	}
}

func TestRenderWithoutChain(t *testing.T) {
	e := newFakeEngine(3, 2)
	e.tiles[tp(1, 2)] = types.Tile{Kind: types.KindSkull}
	grid, err := ChainPathRenderer{}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width != 5 || grid.Height != 3 {
		t.Fatalf("grid is %dx%d, want 5x3", grid.Width, grid.Height)
	}
	want := []string{"C C C", "     ", "C C K"}
	for y, row := range want {
		if got := grid.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestRenderUpRightConnector(t *testing.T) {
	e := newFakeEngine(3, 3)
	e.next[tp(1, 0)] = types.DirUpRight
	grid, err := ChainPathRenderer{}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	// glyph of (1,0) is at x=0, y=2; the connector goes one right, one up
	if got := grid.Get(1, 1); got != '/' {
		t.Errorf("connector = %q, want '/'", got)
	}
}

func TestRenderChain(t *testing.T) {
	e := newFakeEngine(3, 2)
	e.chain(tp(0, 0), tp(0, 1), tp(1, 2), tp(1, 1))
	grid, err := ChainPathRenderer{}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"C-C C", "   \\ ", "C C-C"}
	for y, row := range want {
		if got := grid.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestRenderCrossing(t *testing.T) {
	e := newFakeEngine(2, 2)
	e.chain(tp(0, 0), tp(1, 1), tp(0, 1), tp(1, 0))
	grid, err := ChainPathRenderer{}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.Get(1, 1); got != GlyphCrossing {
		t.Errorf("crossing cell = %q, want X", got)
	}
	if got := grid.Get(2, 1); got != '|' {
		t.Errorf("up connector = %q, want '|'", got)
	}
}

func TestRenderCrossingPolicy(t *testing.T) {
	// Three diagonals meet in the same cell; the last one lands on the X.
	e := newFakeEngine(2, 2)
	e.next[tp(0, 0)] = types.DirDownRight
	e.next[tp(0, 1)] = types.DirDownLeft
	e.next[tp(1, 1)] = types.DirUpLeft

	legacy, err := ChainPathRenderer{}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if got := legacy.Get(1, 1); got != '\\' {
		t.Errorf("legacy policy: cell = %q, want '\\'", got)
	}

	sticky, err := ChainPathRenderer{StickyCrossings: true}.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if got := sticky.Get(1, 1); got != GlyphCrossing {
		t.Errorf("sticky policy: cell = %q, want X", got)
	}
}

func TestRenderCustomGlyph(t *testing.T) {
	e := newFakeEngine(2, 1)
	r := ChainPathRenderer{Glyph: func(types.Tile) rune { return '$' }}
	grid, err := r.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.Row(0); got != "$ $" {
		t.Errorf("row = %q", got)
	}
}

func TestRenderChainErrors(t *testing.T) {
	tests := []struct {
		name string
		pos  types.TilePosition
		dir  types.Direction
	}{
		{"undecodable", tp(1, 1), types.Direction(42)},
		{"off the top", tp(0, 0), types.DirUp},
		{"off the right", tp(1, 2), types.DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newFakeEngine(3, 3)
			e.next[tt.pos] = tt.dir
			grid, err := ChainPathRenderer{}.Render(e)
			if grid != nil {
				t.Error("grid returned alongside an error")
			}
			var ce *ChainError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ChainError", err)
			}
			if ce.Pos != tt.pos || ce.Dir != tt.dir {
				t.Errorf("ChainError at %v (%v), want %v (%v)", ce.Pos, ce.Dir, tt.pos, tt.dir)
			}
		})
	}
}
