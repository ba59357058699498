package ui

import "raidterm/types"

// SelectionAccumulator collects improvement picks and the menu cells they were made on.
type SelectionAccumulator struct {
	indices []int
	coords  []types.ScreenCoord
}

// Toggle adds index (picked at coord) or removes it if already chosen.
// Adding is refused once limit picks are held. Returns true if the set changed.
func (s *SelectionAccumulator) Toggle(index int, coord types.ScreenCoord, limit int) bool {
	for i, v := range s.indices {
		if v == index {
			s.indices = append(s.indices[:i], s.indices[i+1:]...)
			s.coords = append(s.coords[:i], s.coords[i+1:]...)
			return true
		}
	}
	if len(s.indices) >= limit {
		return false
	}
	s.indices = append(s.indices, index)
	s.coords = append(s.coords, coord)
	return true
}

// Contains reports whether index has been picked.
func (s *SelectionAccumulator) Contains(index int) bool {
	for _, v := range s.indices {
		if v == index {
			return true
		}
	}
	return false
}

// Len returns the number of picks held.
func (s *SelectionAccumulator) Len() int {
	return len(s.indices)
}

// Indices returns a copy of the picked indices in pick order.
func (s *SelectionAccumulator) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Coords returns a copy of the cells the picks were made on.
func (s *SelectionAccumulator) Coords() []types.ScreenCoord {
	return append([]types.ScreenCoord(nil), s.coords...)
}

// Reset drops all picks.
func (s *SelectionAccumulator) Reset() {
	s.indices = nil
	s.coords = nil
}
