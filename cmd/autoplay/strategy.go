package main

import "log"

// ProportionalStrategy maps each drawn value to a target slot by scaling the
// value range across the board, then plays the valid slot closest to that
// target. Occupied slots in the valid set are never chosen because the server
// only reports empty, order-preserving indices in valid_slots.
type ProportionalStrategy struct {
	minValue  int
	maxValue  int
	slotCount int
}

func NewProportionalStrategy(minValue, maxValue, slotCount int) *ProportionalStrategy {
	s := &ProportionalStrategy{
		minValue:  minValue,
		maxValue:  maxValue,
		slotCount: slotCount,
	}
	log.Printf("📊 Proportional Strategy: %d slots over values %d-%d", slotCount, minValue, maxValue)
	return s
}

// NextSlot picks the slot to play for the current value, or -1 when the
// server reports no valid slot.
func (s *ProportionalStrategy) NextSlot(state *GameState) int {
	if len(state.ValidSlots) == 0 {
		return -1
	}

	target := s.targetSlot(state.CurrentValue)

	best := state.ValidSlots[0]
	bestDist := abs(best - target)
	for _, idx := range state.ValidSlots[1:] {
		if d := abs(idx - target); d < bestDist {
			best = idx
			bestDist = d
		}
	}
	return best
}

// targetSlot scales value into [0, slotCount-1].
func (s *ProportionalStrategy) targetSlot(value int) int {
	width := s.maxValue - s.minValue
	if width <= 0 || s.slotCount <= 1 {
		return 0
	}
	if value <= s.minValue {
		return 0
	}
	if value >= s.maxValue {
		return s.slotCount - 1
	}
	// Round to nearest slot rather than truncating.
	return ((value-s.minValue)*(s.slotCount-1) + width/2) / width
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
