package engine

import "time"

// AddPlacementToHistory records a placement attempt in the game's history
func (gs *GameState) AddPlacementToHistory(index, value int, success bool) {
	entry := PlacementEntry{
		Index:           index,
		Value:           value,
		Success:         success,
		Timestamp:       time.Now().Unix(),
		PlacementNumber: gs.TotalAttempts + 1,
	}
	// Append to cumulative history (never cleared by reset) and increment total
	gs.PlacementHistory = append(gs.PlacementHistory, entry)
	gs.TotalAttempts++

	// Append to current segment history and increment its counter
	gs.CurrentPlacements = append(gs.CurrentPlacements, entry)
	gs.CurrentPlacementsCount++
}

// SlotAt returns the value at index and whether the slot is occupied.
func (gs *GameState) SlotAt(index int) (int, bool) {
	if index < 0 || index >= len(gs.Slots) {
		return 0, false
	}
	if gs.Slots[index] == EmptySlot {
		return 0, false
	}
	return gs.Slots[index], true
}

// EmptyCount returns the number of unoccupied slots in the state snapshot.
func (gs *GameState) EmptyCount() int {
	count := 0
	for _, v := range gs.Slots {
		if v == EmptySlot {
			count++
		}
	}
	return count
}
