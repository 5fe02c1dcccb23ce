// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes board dimensions and
// value ranges, and highlights configurations whose value range is tight enough
// to make games noticeably harder to win.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// AnalysisConfig mirrors the on-disk config schema closely enough to analyze.
type AnalysisConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	MinValue    int               `json:"min_value"`
	MaxValue    int               `json:"max_value"`
	Messages    map[string]string `json:"messages"`
}

func (c *AnalysisConfig) slotCount() int {
	return c.Rows * c.Columns
}

func (c *AnalysisConfig) rangeWidth() int {
	return c.MaxValue - c.MinValue + 1
}

func main() {
	configFiles := []string{
		"classic.json",
		"compact.json",
		"marathon.json",
	}

	fmt.Println("=== Config Analysis ===")
	fmt.Println()

	for _, file := range configFiles {
		path := filepath.Join("configs", file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("--- %s: not found, skipping ---\n\n", file)
			continue
		}
		analyzeConfig(path)
		fmt.Println()
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read %s: %v", path, err))
	}

	var cfg AnalysisConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse %s: %v", path, err))
	}

	slots := cfg.slotCount()
	width := cfg.rangeWidth()

	fmt.Printf("--- %s ---\n", cfg.Name)
	if cfg.Description != "" {
		fmt.Printf("Description: %s\n", cfg.Description)
	}
	fmt.Printf("Board: %dx%d (%d slots)\n", cfg.Rows, cfg.Columns, slots)
	fmt.Printf("Values: %d to %d (%d distinct)\n", cfg.MinValue, cfg.MaxValue, width)

	if slots <= 0 {
		fmt.Println("⚠️  WARNING: board has no slots")
		return
	}
	if width < slots {
		fmt.Printf("⚠️  WARNING: only %d distinct values for %d slots, unwinnable\n", width, slots)
		return
	}

	density := valueDensity(cfg.MinValue, cfg.MaxValue, slots)
	fmt.Printf("Density: %.1f values per slot\n", density)

	dupes := expectedDuplicates(width, slots)
	fmt.Printf("Expected duplicate draws per game: %.2f\n", dupes)

	switch {
	case density < 2.0:
		fmt.Println("⚠️  WARNING: very tight value range, most games will be lost")
	case density < 10.0:
		fmt.Println("Difficulty: hard")
	case density < 50.0:
		fmt.Println("Difficulty: moderate")
	default:
		fmt.Println("Difficulty: standard")
	}

	missing := missingMessages(cfg.Messages)
	if len(missing) > 0 {
		fmt.Printf("⚠️  WARNING: missing messages: %v\n", missing)
	}
}

// valueDensity is the number of distinct drawable values per board slot. A
// density below 2 leaves almost no slack for unlucky draws.
func valueDensity(minValue, maxValue, slots int) float64 {
	if slots <= 0 {
		return 0
	}
	return float64(maxValue-minValue+1) / float64(slots)
}

// expectedDuplicates estimates how many of the game's draws repeat an earlier
// value, assuming uniform draws with replacement: n - r*(1-(1-1/r)^n).
func expectedDuplicates(rangeWidth, draws int) float64 {
	if rangeWidth <= 0 || draws <= 0 {
		return 0
	}
	r := float64(rangeWidth)
	n := float64(draws)
	distinct := r * (1 - math.Pow(1-1/r, n))
	return n - distinct
}

func missingMessages(messages map[string]string) []string {
	required := []string{
		"welcome",
		"next_value",
		"slot_occupied",
		"invalid_slot",
		"victory",
		"no_valid_moves",
	}
	var missing []string
	for _, key := range required {
		if messages[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
