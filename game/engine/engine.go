package engine

import (
	"errors"
	"fmt"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsVictory() bool
	GetCurrentValue() int
	GetPlacedCount() int

	// Placement operations
	Place(index int) bool
	CanPlace(index int) bool
	GetValidSlots() []int
	HasValidMove() bool

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetPlacementHistory() []PlacementEntry
	GetLastPlacement() *PlacementEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	grid   *PlacementGrid
	state  *GameState
	config *GameConfig
	values ValueGenerator
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	return newEngine(config, newGeneratorFromConfig(config))
}

// NewEngineWithGenerator creates a new game engine with the provided
// configuration and value generator. Deterministic generators make rounds
// reproducible.
func NewEngineWithGenerator(config *GameConfig, values ValueGenerator) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if values == nil {
		return nil, fmt.Errorf("value generator cannot be nil")
	}
	return newEngine(config, values)
}

// NewEngineWithDefaults creates a new game engine with the built-in classic configuration
func NewEngineWithDefaults() *GameEngine {
	config := DefaultConfig()
	engine, _ := newEngine(config, newGeneratorFromConfig(config))
	return engine
}

func newEngine(config *GameConfig, values ValueGenerator) (*GameEngine, error) {
	grid, err := NewPlacementGrid(config.SlotCount())
	if err != nil {
		return nil, err
	}

	engine := &GameEngine{
		grid:   grid,
		config: config,
		values: values,
		state:  InitGameStateFromConfig(config),
	}
	engine.drawNextValue()
	return engine, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading). The slot
// snapshot must satisfy the ordering invariant; the internal grid is rebuilt
// from it.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}

	grid, err := RestoreGrid(state.Slots)
	if err != nil {
		return fmt.Errorf("failed to restore grid: %w", err)
	}

	e.grid = grid
	e.state = state
	e.state.PlacedCount = grid.PlacedCount()
	return nil
}

// Reset resets the game to initial state and draws a fresh first value
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.PlacementHistory
	prevTotal := e.state.TotalAttempts

	// Reinitialize core state from config
	e.grid.Reset()
	e.state = InitGameStateFromConfig(e.config)

	// Restore cumulative history and totals; clear only the current segment
	e.state.PlacementHistory = prevHistory
	e.state.TotalAttempts = prevTotal
	e.state.CurrentPlacements = []PlacementEntry{}
	e.state.CurrentPlacementsCount = 0

	e.drawNextValue()
	return e.state
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.state.Victory
}

// GetCurrentValue returns the value waiting to be placed
func (e *GameEngine) GetCurrentValue() int {
	return e.state.CurrentValue
}

// GetPlacedCount returns the number of occupied slots in the current round
func (e *GameEngine) GetPlacedCount() int {
	return e.grid.PlacedCount()
}

// Place attempts to place the current value at the given slot index. On a
// successful placement the next value is drawn; filling the last slot wins
// the round, and drawing a value with no valid slot loses it. Every attempt,
// successful or not, is recorded in the placement history.
func (e *GameEngine) Place(index int) bool {
	if e.state.GameOver {
		return false
	}

	value := e.state.CurrentValue
	err := e.grid.Place(index, value)
	e.state.AddPlacementToHistory(index, value, err == nil)

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotOccupied):
			e.state.Message = e.config.Messages.SlotOccupied
		default:
			e.state.Message = e.config.Messages.InvalidSlot
		}
		return false
	}

	e.state.Slots = e.grid.Snapshot()
	e.state.PlacedCount = e.grid.PlacedCount()

	if e.grid.IsFull() {
		e.state.Victory = true
		e.state.GameOver = true
		e.state.Message = fmt.Sprintf(e.config.Messages.Victory, e.grid.Size())
		return true
	}

	e.drawNextValue()
	return true
}

// CanPlace checks if the current value may be placed at the given slot index
func (e *GameEngine) CanPlace(index int) bool {
	if e.state.GameOver {
		return false
	}
	ok, err := e.grid.IsValidPlacement(index, e.state.CurrentValue)
	return err == nil && ok
}

// GetValidSlots returns all slot indices that accept the current value
func (e *GameEngine) GetValidSlots() []int {
	if e.state.GameOver {
		return nil
	}
	return e.grid.ValidSlots(e.state.CurrentValue)
}

// HasValidMove reports whether the current value can be placed anywhere
func (e *GameEngine) HasValidMove() bool {
	if e.state.GameOver {
		return false
	}
	return e.grid.HasValidMove(e.state.CurrentValue)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	grid, err := NewPlacementGrid(config.SlotCount())
	if err != nil {
		return err
	}

	e.config = config
	e.grid = grid
	e.values = newGeneratorFromConfig(config)
	e.state = InitGameStateFromConfig(config)
	e.drawNextValue()
	return nil
}

// GetPlacementHistory returns the complete placement history
func (e *GameEngine) GetPlacementHistory() []PlacementEntry {
	return e.state.PlacementHistory
}

// GetLastPlacement returns the last placement attempt, or nil if none
func (e *GameEngine) GetLastPlacement() *PlacementEntry {
	if len(e.state.PlacementHistory) == 0 {
		return nil
	}
	return &e.state.PlacementHistory[len(e.state.PlacementHistory)-1]
}

// drawNextValue pulls the next candidate value and checks for the loss
// condition. An empty board accepts any value, so the first draw of a round
// never ends it.
func (e *GameEngine) drawNextValue() {
	value := e.values.Next()
	e.state.CurrentValue = value

	if !e.grid.HasValidMove(value) {
		e.state.GameOver = true
		e.state.Message = fmt.Sprintf(e.config.Messages.NoValidMoves, value)
		return
	}
	e.state.Message = fmt.Sprintf(e.config.Messages.NextValue, value)
}
