package ui

import (
	"reflect"
	"testing"

	"raidterm/types"
)

func TestSelectionToggleTwiceIsIdentity(t *testing.T) {
	var s SelectionAccumulator
	s.Toggle(1, types.ScreenCoord{Y: 2}, 2)
	before := s.Indices()

	s.Toggle(3, types.ScreenCoord{Y: 4}, 2)
	s.Toggle(3, types.ScreenCoord{Y: 4}, 2)

	if got := s.Indices(); !reflect.DeepEqual(got, before) {
		t.Errorf("Indices = %v, want %v", got, before)
	}
	if s.Contains(3) {
		t.Error("index 3 still picked")
	}
}

func TestSelectionLimit(t *testing.T) {
	var s SelectionAccumulator
	if !s.Toggle(0, types.ScreenCoord{Y: 1}, 1) {
		t.Fatal("first pick refused")
	}
	if s.Toggle(2, types.ScreenCoord{Y: 3}, 1) {
		t.Error("pick beyond the limit accepted")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if !s.Toggle(0, types.ScreenCoord{Y: 1}, 1) {
		t.Error("unpicking at the limit refused")
	}
}

func TestSelectionKeepsOrderAndCoords(t *testing.T) {
	var s SelectionAccumulator
	s.Toggle(2, types.ScreenCoord{Y: 3}, 3)
	s.Toggle(0, types.ScreenCoord{Y: 1}, 3)

	if got := s.Indices(); !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("Indices = %v", got)
	}
	want := []types.ScreenCoord{{Y: 3}, {Y: 1}}
	if got := s.Coords(); !reflect.DeepEqual(got, want) {
		t.Errorf("Coords = %v", got)
	}

	s.Reset()
	if s.Len() != 0 || s.Contains(2) {
		t.Error("Reset left picks behind")
	}
}
