// Package config provides configuration management for the Number Challenge game.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//   - Persisting new configurations to disk
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board shape (rows and columns, which fix the slot count)
//   - Value range for the random draw (min_value, max_value)
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships with several board sizes:
//   - classic: 4x5 board, values 1-1000, the standard 20-number challenge
//   - compact: 2x5 board with a narrow range for quick rounds
//   - marathon: large board requiring long-range planning
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("compact")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Board dimensions within supported limits
//   - A value range at least as wide as the slot count (winnable boards)
//   - Required message templates and their format placeholders
package config
