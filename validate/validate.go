// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions within supported limits
//   - Value range sanity (min <= max, non-negative)
//   - Winnability: the value range must fit at least one value per slot
//   - Required message keys and their format placeholders
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	MinValue    int               `json:"min_value"`
	MaxValue    int               `json:"max_value"`
	Messages    map[string]string `json:"messages"`
}

const (
	minRows      = 1
	maxRows      = 10
	minColumns   = 1
	maxColumns   = 20
	minSlotCount = 4
	maxSlotCount = 100
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, board/range validation, message presence,
// and a winnability analysis for the value range.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Config name is required")
	}

	// Validate board shape
	if config.Rows < minRows || config.Rows > maxRows {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("rows must be between %d and %d, got %d", minRows, maxRows, config.Rows))
	}
	if config.Columns < minColumns || config.Columns > maxColumns {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("columns must be between %d and %d, got %d", minColumns, maxColumns, config.Columns))
	}

	slotCount := config.Rows * config.Columns
	if slotCount < minSlotCount || slotCount > maxSlotCount {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("slot count must be between %d and %d, got %d", minSlotCount, maxSlotCount, slotCount))
	}

	// Validate value range
	if config.MinValue < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("min_value must be non-negative, got %d", config.MinValue))
	}
	if config.MaxValue < config.MinValue {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_value (%d) cannot be below min_value (%d)", config.MaxValue, config.MinValue))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"next_value",
		"slot_occupied",
		"invalid_slot",
		"victory",
		"no_valid_moves",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Messages that interpolate a number need a %d placeholder
	placeholderMessages := []string{"next_value", "victory", "no_valid_moves"}
	for _, msg := range placeholderMessages {
		if text, exists := config.Messages[msg]; exists && !strings.Contains(text, "%d") {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Message %s must contain a %%d placeholder", msg))
		}
	}

	// Winnability analysis for the value range vs board size
	if result.Valid {
		winnability := validateWinnability(config.MinValue, config.MaxValue, slotCount)
		if !winnability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, winnability.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d slots)", config.Rows, config.Columns, slotCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Values: %d-%d", config.MinValue, config.MaxValue))
	}

	return result
}

// validateWinnability checks that the configured value range can fill the
// board at all, and reports the range density (distinct values per slot) as
// a rough difficulty indicator.
func validateWinnability(minValue, maxValue, slotCount int) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if slotCount <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Cannot validate winnability: no slots")
		return result
	}

	rangeWidth := maxValue - minValue + 1
	if rangeWidth < slotCount {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Winnability failure: %d distinct values cannot fill %d slots", rangeWidth, slotCount))
		return result
	}

	density := float64(rangeWidth) / float64(slotCount)
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Winnability: %d distinct values for %d slots (%.1f per slot)", rangeWidth, slotCount, density))
	if density < 2.0 {
		result.Errors = append(result.Errors, "✓ Note: very tight range, rounds will be extremely hard")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
