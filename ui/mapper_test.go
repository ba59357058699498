package ui

import (
	"testing"

	"raidterm/types"
)

func TestPlayingBoundsRoundTrip(t *testing.T) {
	sizes := [][2]int{{3, 3}, {6, 6}, {8, 6}, {8, 8}, {12, 5}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		b := PlayingBounds(w, h)
		if b.MaxX != 2*w-1 || b.MaxY != 2*h-1 || b.Step != 2 {
			t.Errorf("PlayingBounds(%d, %d) = %+v", w, h, b)
		}
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				pos := tp(row, col)
				cell := GlyphCell(pos, b)
				if !b.Contains(cell) {
					t.Errorf("%dx%d: glyph cell %v of %v out of bounds", w, h, cell, pos)
				}
				if got := TileFromCursor(cell, b); got != pos {
					t.Errorf("%dx%d: TileFromCursor(%v) = %v, want %v", w, h, cell, got, pos)
				}
			}
		}
	}
}

func TestTileFromCursor(t *testing.T) {
	b := PlayingBounds(8, 6)
	tests := []struct {
		c    types.ScreenCoord
		want types.TilePosition
	}{
		{types.ScreenCoord{X: 0, Y: 0}, tp(0, 0)},
		{types.ScreenCoord{X: 4, Y: 6}, tp(3, 2)},
		{types.ScreenCoord{X: 14, Y: 10}, tp(5, 7)},
	}
	for _, tt := range tests {
		if got := TileFromCursor(tt.c, b); got != tt.want {
			t.Errorf("TileFromCursor(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestChoosingBounds(t *testing.T) {
	b := ChoosingBounds(3)
	if b.MinY != ChoiceHeaderRows || b.MaxY != ChoiceHeaderRows+2 {
		t.Fatalf("ChoosingBounds(3) Y range = [%d, %d]", b.MinY, b.MaxY)
	}
	if b.Horizontal {
		t.Error("ChoosingBounds allows horizontal movement")
	}
	if b.Contains(types.ScreenCoord{X: 1, Y: 1}) {
		t.Error("off-origin X should be out of bounds")
	}
	for i := 0; i < 3; i++ {
		cell := MenuCell(i, b)
		if !b.Contains(cell) {
			t.Errorf("MenuCell(%d) = %v out of bounds", i, cell)
		}
		if got := MenuIndexFromCursor(cell, b); got != i {
			t.Errorf("MenuIndexFromCursor(%v) = %d, want %d", cell, got, i)
		}
	}
	if got := b.First(); got != (types.ScreenCoord{X: 0, Y: 1}) {
		t.Errorf("First() = %v", got)
	}
}
