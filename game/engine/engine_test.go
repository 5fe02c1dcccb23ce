package engine

import (
	"strings"
	"testing"
)

func testConfig(rows, columns, minValue, maxValue int) *GameConfig {
	config := DefaultConfig()
	config.Rows = rows
	config.Columns = columns
	config.MinValue = minValue
	config.MaxValue = maxValue
	return config
}

func newTestEngine(t *testing.T, config *GameConfig, values ...int) *GameEngine {
	t.Helper()
	engine, err := NewEngineWithGenerator(config, NewSequenceGenerator(values...))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	state := engine.GetState()
	if state.GameOver {
		t.Error("Expected new game not to be over")
	}
	if state.PlacedCount != 0 {
		t.Errorf("Expected empty board, got %d placed", state.PlacedCount)
	}
	if state.CurrentValue < 1 || state.CurrentValue > 1000 {
		t.Errorf("First value %d outside configured range", state.CurrentValue)
	}
	if len(state.Slots) != 20 {
		t.Errorf("Expected 20 slots, got %d", len(state.Slots))
	}
	for i, slot := range state.Slots {
		if slot != EmptySlot {
			t.Errorf("Expected slot %d to be empty, got %d", i, slot)
		}
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := testConfig(0, 5, 1, 1000)
	if _, err := NewEngine(config); err == nil {
		t.Error("Expected error for zero rows")
	}
}

func TestNewEngineWithGenerator_NilGenerator(t *testing.T) {
	if _, err := NewEngineWithGenerator(DefaultConfig(), nil); err == nil {
		t.Error("Expected error for nil generator")
	}
}

func TestEngine_WinningRound(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 10, 20, 30, 40)

	for i := 0; i < 4; i++ {
		if engine.IsGameOver() {
			t.Fatalf("Game over after %d placements", i)
		}
		if !engine.Place(i) {
			t.Fatalf("Place(%d) failed with value %d", i, engine.GetCurrentValue())
		}
	}

	if !engine.IsGameOver() {
		t.Error("Expected game over after filling the board")
	}
	if !engine.IsVictory() {
		t.Error("Expected victory after filling the board")
	}
	if got := engine.GetState().Message; got != "You win! All 4 numbers placed." {
		t.Errorf("Unexpected victory message: %q", got)
	}
	if engine.GetPlacedCount() != 4 {
		t.Errorf("Expected 4 placed, got %d", engine.GetPlacedCount())
	}
}

func TestEngine_LosingRound(t *testing.T) {
	// 50 occupies slot 0; the follow-up 40 has no slot to its right that
	// keeps the order, so the round ends.
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 40)

	if !engine.Place(0) {
		t.Fatal("First placement failed")
	}

	if !engine.IsGameOver() {
		t.Error("Expected game over when the drawn value has no valid slot")
	}
	if engine.IsVictory() {
		t.Error("Expected a loss, not a victory")
	}
	if got := engine.GetState().Message; got != "Impossible to place the next number: 40" {
		t.Errorf("Unexpected loss message: %q", got)
	}
}

func TestEngine_PlaceAfterGameOver(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 40)
	engine.Place(0)

	if !engine.IsGameOver() {
		t.Fatal("Expected game over")
	}

	historyLen := len(engine.GetPlacementHistory())
	if engine.Place(1) {
		t.Error("Expected Place to fail after game over")
	}
	if len(engine.GetPlacementHistory()) != historyLen {
		t.Error("Expected no history entry for a post-game placement")
	}
	if engine.CanPlace(1) {
		t.Error("Expected CanPlace to be false after game over")
	}
	if engine.GetValidSlots() != nil {
		t.Error("Expected no valid slots after game over")
	}
	if engine.HasValidMove() {
		t.Error("Expected HasValidMove to be false after game over")
	}
}

func TestEngine_FailedPlacementMessages(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 60, 55)

	if !engine.Place(1) {
		t.Fatal("First placement failed")
	}

	// Same slot again
	if engine.Place(1) {
		t.Error("Expected placement into occupied slot to fail")
	}
	if got := engine.GetState().Message; got != "That slot is already taken." {
		t.Errorf("Unexpected occupied message: %q", got)
	}

	// Slot 0 is left of 50 but the current value is 60
	if engine.Place(0) {
		t.Error("Expected out-of-order placement to fail")
	}
	if got := engine.GetState().Message; got != "That slot would break the ascending order." {
		t.Errorf("Unexpected ordering message: %q", got)
	}

	// Failed attempts do not consume the value
	if engine.GetCurrentValue() != 60 {
		t.Errorf("Expected current value to stay 60, got %d", engine.GetCurrentValue())
	}
	if engine.GetPlacedCount() != 1 {
		t.Errorf("Expected 1 placed, got %d", engine.GetPlacedCount())
	}
}

func TestEngine_PlacementHistory(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 60)

	engine.Place(1) // success, 50
	engine.Place(1) // failure, occupied
	engine.Place(3) // success, 60

	history := engine.GetPlacementHistory()
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}

	wants := []struct {
		index   int
		value   int
		success bool
	}{
		{1, 50, true},
		{1, 60, false},
		{3, 60, true},
	}
	for i, want := range wants {
		entry := history[i]
		if entry.Index != want.index || entry.Value != want.value || entry.Success != want.success {
			t.Errorf("Entry %d = {index:%d value:%d success:%v}, want %+v",
				i, entry.Index, entry.Value, entry.Success, want)
		}
		if entry.PlacementNumber != i+1 {
			t.Errorf("Entry %d: placement number %d, want %d", i, entry.PlacementNumber, i+1)
		}
	}

	last := engine.GetLastPlacement()
	if last == nil || last.Index != 3 || !last.Success {
		t.Errorf("Unexpected last placement: %+v", last)
	}

	state := engine.GetState()
	if state.TotalAttempts != 3 {
		t.Errorf("Expected 3 total attempts, got %d", state.TotalAttempts)
	}
	if state.CurrentPlacementsCount != 3 {
		t.Errorf("Expected 3 current placements, got %d", state.CurrentPlacementsCount)
	}
}

func TestEngine_Reset(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 60, 70)

	engine.Place(0)
	engine.Place(1)

	state := engine.Reset()

	if state.GameOver || state.Victory {
		t.Error("Expected fresh round after reset")
	}
	if state.PlacedCount != 0 {
		t.Errorf("Expected empty board after reset, got %d placed", state.PlacedCount)
	}
	for i, slot := range state.Slots {
		if slot != EmptySlot {
			t.Errorf("Expected slot %d to be empty after reset, got %d", i, slot)
		}
	}

	// Cumulative history survives; the per-round segment starts over
	if len(state.PlacementHistory) != 2 {
		t.Errorf("Expected cumulative history of 2 after reset, got %d", len(state.PlacementHistory))
	}
	if state.TotalAttempts != 2 {
		t.Errorf("Expected 2 total attempts after reset, got %d", state.TotalAttempts)
	}
	if len(state.CurrentPlacements) != 0 || state.CurrentPlacementsCount != 0 {
		t.Errorf("Expected empty current segment after reset, got %d entries", len(state.CurrentPlacements))
	}

	// A fresh value was drawn
	if state.CurrentValue != 70 {
		t.Errorf("Expected value 70 after reset, got %d", state.CurrentValue)
	}
	if !strings.Contains(state.Message, "70") {
		t.Errorf("Expected next-value message to mention 70, got %q", state.Message)
	}
}

func TestEngine_CanPlaceAndValidSlots(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 60)

	engine.Place(1) // 50 at slot 1; current value is now 60

	if engine.CanPlace(0) {
		t.Error("Expected slot 0 (left of 50) to reject 60")
	}
	if engine.CanPlace(1) {
		t.Error("Expected occupied slot 1 to reject 60")
	}
	if !engine.CanPlace(2) || !engine.CanPlace(3) {
		t.Error("Expected slots 2 and 3 to accept 60")
	}
	if engine.CanPlace(-1) || engine.CanPlace(4) {
		t.Error("Expected out-of-range indices to be unplaceable")
	}

	valid := engine.GetValidSlots()
	if len(valid) != 2 || valid[0] != 2 || valid[1] != 3 {
		t.Errorf("GetValidSlots() = %v, want [2 3]", valid)
	}
	if !engine.HasValidMove() {
		t.Error("Expected a valid move for 60")
	}
}

func TestEngine_SetState(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50, 60, 70)
	engine.Place(0)
	engine.Place(2)

	saved := engine.GetState()

	restored := newTestEngine(t, testConfig(2, 2, 1, 100), 10)
	if err := restored.SetState(saved); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}

	if restored.GetPlacedCount() != 2 {
		t.Errorf("Expected 2 placed after restore, got %d", restored.GetPlacedCount())
	}
	if restored.GetCurrentValue() != 70 {
		t.Errorf("Expected current value 70 after restore, got %d", restored.GetCurrentValue())
	}
	if restored.IsGameOver() {
		t.Error("Expected restored game not to be over")
	}
}

func TestEngine_SetState_InvalidSnapshot(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 10)

	bad := InitGameStateFromConfig(testConfig(2, 2, 1, 100))
	bad.Slots = []int{80, 20, EmptySlot, EmptySlot}

	if err := engine.SetState(bad); err == nil {
		t.Error("Expected error for a snapshot violating the ordering invariant")
	}
	if err := engine.SetState(nil); err == nil {
		t.Error("Expected error for nil state")
	}
}

func TestEngine_SetConfig(t *testing.T) {
	engine := newTestEngine(t, testConfig(2, 2, 1, 100), 50)
	engine.Place(0)

	newConfig := testConfig(3, 3, 1, 500)
	if err := engine.SetConfig(newConfig); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}

	state := engine.GetState()
	if len(state.Slots) != 9 {
		t.Errorf("Expected 9 slots after config change, got %d", len(state.Slots))
	}
	if state.PlacedCount != 0 {
		t.Errorf("Expected empty board after config change, got %d placed", state.PlacedCount)
	}

	if err := engine.SetConfig(testConfig(0, 3, 1, 500)); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine == nil {
		t.Fatal("Expected engine")
	}
	if engine.GetConfig().Name != "Classic 20" {
		t.Errorf("Unexpected default config name: %q", engine.GetConfig().Name)
	}
}
