package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and winnability
func ValidateGameConfig(config *GameConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate grid shape
	if config.Rows < MinRows || config.Rows > MaxRows {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinRows, MaxRows, config.Rows)
	}
	if config.Columns < MinColumns || config.Columns > MaxColumns {
		return fmt.Errorf("config validation: columns must be between %d and %d, got %d", MinColumns, MaxColumns, config.Columns)
	}
	if config.SlotCount() < MinSlotCount || config.SlotCount() > MaxSlotCount {
		return fmt.Errorf("config validation: slot count must be between %d and %d, got %d",
			MinSlotCount, MaxSlotCount, config.SlotCount())
	}

	// Validate value range
	if config.MinValue < 0 {
		return fmt.Errorf("config validation: min_value must be non-negative, got %d", config.MinValue)
	}
	if config.MaxValue < config.MinValue {
		return fmt.Errorf("config validation: max_value (%d) must not be less than min_value (%d)",
			config.MaxValue, config.MinValue)
	}

	// Validate winnability - a full board needs at least slot-count distinct values
	rangeWidth := config.MaxValue - config.MinValue + 1
	if rangeWidth < config.SlotCount() {
		return fmt.Errorf("config validation: value range [%d, %d] offers %d distinct values but the board has %d slots",
			config.MinValue, config.MaxValue, rangeWidth, config.SlotCount())
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}
	if config.Messages.NoValidMoves == "" {
		return fmt.Errorf("config validation: messages.no_valid_moves is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.NextValue, "%d") {
		return fmt.Errorf("config validation: messages.next_value must contain %%d for the drawn value")
	}
	if !strings.Contains(config.Messages.Victory, "%d") {
		return fmt.Errorf("config validation: messages.victory must contain %%d for slot count")
	}
	if !strings.Contains(config.Messages.NoValidMoves, "%d") {
		return fmt.Errorf("config validation: messages.no_valid_moves must contain %%d for the stuck value")
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		// If filename starts with "configs/", replace with CONFIG_DIR
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Validate the loaded configuration
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a game configuration by name from the configs directory
func LoadConfigByName(configName string) (*GameConfig, error) {
	// Add .json extension if not present
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	// Load and parse the config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	// Validate the config
	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// DefaultConfig returns the built-in classic 20-number configuration used
// when no config is provided.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "Classic 20",
		Description: "The classic 20-number challenge on a 4x5 board with values 1-1000",
		Rows:        4,
		Columns:     5,
		MinValue:    1,
		MaxValue:    1000,
	}
	config.Messages.Welcome = "Welcome to the Number Challenge! Place every number in ascending order."
	config.Messages.NextValue = "Next number: %d - select a slot."
	config.Messages.SlotOccupied = "That slot is already taken."
	config.Messages.InvalidSlot = "That slot would break the ascending order."
	config.Messages.Victory = "You win! All %d numbers placed."
	config.Messages.NoValidMoves = "Impossible to place the next number: %d"
	return config
}

// InitGameStateFromConfig creates a new game state using the provided configuration
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	slots := make([]int, config.SlotCount())
	for i := range slots {
		slots[i] = EmptySlot
	}

	return &GameState{
		Slots:                  slots,
		Rows:                   config.Rows,
		Columns:                config.Columns,
		CurrentValue:           0,
		PlacedCount:            0,
		Message:                config.Messages.Welcome,
		GameOver:               false,
		Victory:                false,
		ConfigName:             config.Name,
		PlacementHistory:       []PlacementEntry{},
		TotalAttempts:          0,
		CurrentPlacements:      []PlacementEntry{},
		CurrentPlacementsCount: 0,
	}
}
