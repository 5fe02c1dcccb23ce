package main

import "testing"

func TestProportionalStrategy_TargetSlot(t *testing.T) {
	s := NewProportionalStrategy(1, 1000, 20)

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"minimum value", 1, 0},
		{"maximum value", 1000, 19},
		{"below minimum clamps", -5, 0},
		{"above maximum clamps", 2000, 19},
		{"midpoint", 500, 9},
		{"low quarter", 250, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.targetSlot(tt.value); got != tt.want {
				t.Errorf("targetSlot(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestProportionalStrategy_TargetSlot_DegenerateRange(t *testing.T) {
	s := NewProportionalStrategy(5, 5, 10)
	if got := s.targetSlot(5); got != 0 {
		t.Errorf("targetSlot(5) = %d, want 0", got)
	}

	single := NewProportionalStrategy(1, 100, 1)
	if got := single.targetSlot(50); got != 0 {
		t.Errorf("targetSlot(50) on single slot = %d, want 0", got)
	}
}

func TestProportionalStrategy_NextSlot(t *testing.T) {
	s := NewProportionalStrategy(1, 1000, 20)

	state := &GameState{
		CurrentValue: 500,
		ValidSlots:   []int{2, 3, 11, 15},
	}
	// Target for 500 is slot 9, closest valid is 11.
	if got := s.NextSlot(state); got != 11 {
		t.Errorf("NextSlot() = %d, want 11", got)
	}

	state.ValidSlots = nil
	if got := s.NextSlot(state); got != -1 {
		t.Errorf("NextSlot() with no valid slots = %d, want -1", got)
	}

	state.CurrentValue = 1
	state.ValidSlots = []int{0, 5, 19}
	if got := s.NextSlot(state); got != 0 {
		t.Errorf("NextSlot() for minimum value = %d, want 0", got)
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input, want int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}
	for _, tt := range tests {
		if got := abs(tt.input); got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
