package engine

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange  = errors.New("slot index out of range")
	ErrSlotOccupied     = errors.New("slot already occupied")
	ErrInvalidPlacement = errors.New("placement violates slot ordering")
	ErrInvalidSize      = errors.New("grid size must be positive")
)

// PlacementGrid owns a fixed-size ordered sequence of optional integer slots.
// A value may only occupy a slot if every occupied slot to its left holds a
// smaller or equal value and every occupied slot to its right holds a larger
// or equal value, so the occupied slots read left to right always form a
// non-decreasing sequence. Comparisons are strict, which means duplicate
// values are tolerated rather than rejected.
//
// The grid is not safe for concurrent use; callers that share a grid across
// goroutines must serialize access externally.
type PlacementGrid struct {
	slots    []int
	occupied []bool
	placed   int
}

// NewPlacementGrid creates a grid with the given number of empty slots.
func NewPlacementGrid(size int) (*PlacementGrid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &PlacementGrid{
		slots:    make([]int, size),
		occupied: make([]bool, size),
	}, nil
}

// RestoreGrid rebuilds a grid from a snapshot produced by Snapshot.
// EmptySlot entries mark unoccupied slots. The occupied values must read
// left to right as a non-decreasing sequence.
func RestoreGrid(snapshot []int) (*PlacementGrid, error) {
	g, err := NewPlacementGrid(len(snapshot))
	if err != nil {
		return nil, err
	}
	if err := g.Restore(snapshot); err != nil {
		return nil, err
	}
	return g, nil
}

// Size returns the number of slots in the grid.
func (g *PlacementGrid) Size() int {
	return len(g.slots)
}

// PlacedCount returns the number of occupied slots.
func (g *PlacementGrid) PlacedCount() int {
	return g.placed
}

// IsFull reports whether every slot is occupied.
func (g *PlacementGrid) IsFull() bool {
	return g.placed == len(g.slots)
}

// Value returns the value at index and whether the slot is occupied.
func (g *PlacementGrid) Value(index int) (int, bool) {
	if index < 0 || index >= len(g.slots) {
		return 0, false
	}
	if !g.occupied[index] {
		return 0, false
	}
	return g.slots[index], true
}

// IsValidPlacement reports whether value may occupy the slot at index.
// An occupied slot never accepts a new value. Otherwise the placement is
// valid unless an occupied slot at a lower index holds a strictly greater
// value, or an occupied slot at a higher index holds a strictly smaller one.
// It is a pure query with no side effects; the only error is an index
// outside [0, Size), which is a caller contract violation rather than an
// invalid-placement outcome.
func (g *PlacementGrid) IsValidPlacement(index, value int) (bool, error) {
	if index < 0 || index >= len(g.slots) {
		return false, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(g.slots))
	}

	if g.occupied[index] {
		return false, nil
	}

	for i := 0; i < index; i++ {
		if g.occupied[i] && g.slots[i] > value {
			return false, nil
		}
	}

	for i := index + 1; i < len(g.slots); i++ {
		if g.occupied[i] && g.slots[i] < value {
			return false, nil
		}
	}

	return true, nil
}

// HasValidMove reports whether at least one empty slot accepts value.
// This is a total scan over every slot: a false result definitively ends
// the round, so no slot may be skipped.
func (g *PlacementGrid) HasValidMove(value int) bool {
	for i := range g.slots {
		if g.occupied[i] {
			continue
		}
		if ok, _ := g.IsValidPlacement(i, value); ok {
			return true
		}
	}
	return false
}

// ValidSlots returns every index that currently accepts value, in order.
func (g *PlacementGrid) ValidSlots(value int) []int {
	var valid []int
	for i := range g.slots {
		if g.occupied[i] {
			continue
		}
		if ok, _ := g.IsValidPlacement(i, value); ok {
			valid = append(valid, i)
		}
	}
	return valid
}

// Place occupies the slot at index with value. It re-validates the placement
// and fails loudly instead of trusting callers: ErrIndexOutOfRange for an
// index outside the grid, ErrSlotOccupied for an already occupied slot, and
// ErrInvalidPlacement when the value would break the ordering invariant.
// Negative values are rejected outright; they would collide with the
// EmptySlot marker in snapshots.
func (g *PlacementGrid) Place(index, value int) error {
	if index < 0 || index >= len(g.slots) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(g.slots))
	}
	if value < 0 {
		return fmt.Errorf("%w: negative value %d", ErrInvalidPlacement, value)
	}
	if g.occupied[index] {
		return fmt.Errorf("%w: index %d holds %d", ErrSlotOccupied, index, g.slots[index])
	}

	ok, err := g.IsValidPlacement(index, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: value %d at index %d", ErrInvalidPlacement, value, index)
	}

	g.slots[index] = value
	g.occupied[index] = true
	g.placed++
	return nil
}

// Reset clears every slot back to empty. Idempotent.
func (g *PlacementGrid) Reset() {
	for i := range g.slots {
		g.slots[i] = 0
		g.occupied[i] = false
	}
	g.placed = 0
}

// Snapshot returns the slot contents with EmptySlot marking unoccupied
// slots. Occupied values are always non-negative, so the marker never
// collides with a placed value.
func (g *PlacementGrid) Snapshot() []int {
	snapshot := make([]int, len(g.slots))
	for i := range g.slots {
		if g.occupied[i] {
			snapshot[i] = g.slots[i]
		} else {
			snapshot[i] = EmptySlot
		}
	}
	return snapshot
}

// Restore replaces the grid contents with a snapshot of the same size.
// It rejects snapshots whose occupied values do not read left to right as
// a non-decreasing sequence, so a restored grid always satisfies the same
// invariant incremental placement maintains.
func (g *PlacementGrid) Restore(snapshot []int) error {
	if len(snapshot) != len(g.slots) {
		return fmt.Errorf("snapshot size %d does not match grid size %d", len(snapshot), len(g.slots))
	}

	prev := 0
	hasPrev := false
	for i, v := range snapshot {
		if v == EmptySlot {
			continue
		}
		if v < 0 {
			return fmt.Errorf("%w: negative snapshot value %d at index %d", ErrInvalidPlacement, v, i)
		}
		if hasPrev && v < prev {
			return fmt.Errorf("%w: snapshot value %d at index %d after %d", ErrInvalidPlacement, v, i, prev)
		}
		prev = v
		hasPrev = true
	}

	g.placed = 0
	for i, v := range snapshot {
		if v == EmptySlot {
			g.slots[i] = 0
			g.occupied[i] = false
			continue
		}
		g.slots[i] = v
		g.occupied[i] = true
		g.placed++
	}
	return nil
}
