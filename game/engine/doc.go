// Package engine provides the core game logic for the Number Challenge.
//
// The engine package implements the game mechanics including:
//   - Placement validity and ordering enforcement on the slot grid
//   - Candidate value generation
//   - Win and loss detection
//   - Game state management and persistence
//   - Configuration loading and validation
//   - Performance statistics accumulation
//
// Core Types:
//
// PlacementGrid is the rule core: a fixed-size ordered sequence of optional
// integer slots where every placement must keep the occupied values, read
// left to right, non-decreasing. The Engine interface defines the session
// round contract, implemented by GameEngine, which pairs a PlacementGrid
// with a ValueGenerator. GameState represents the current game state, while
// GameConfig defines the board shape and value range loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Place the current value at slot 10
//	success := gameEngine.Place(10)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// The game draws random numbers one at a time and the player chooses a slot
// for each. A number may only go where every occupied slot to its left holds
// a smaller or equal value and every occupied slot to its right holds a
// larger or equal one. Filling the whole board wins the round; drawing a
// number that fits nowhere loses it.
package engine
