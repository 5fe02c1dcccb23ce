package service

import (
	"time"

	"github.com/apanich/number-challenge/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
	Stats          *engine.Stats      `json:"stats,omitempty"`
}

// PlacementResult contains the result of a single placement attempt
type PlacementResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Step      *StepInfo         `json:"step,omitempty"`
	Attempted *AttemptInfo      `json:"attempted,omitempty"`
}

// BulkPlacementResult contains the result of placing a sequence of values
type BulkPlacementResult struct {
	// Summary
	PlacementsExecuted  int               `json:"placements_executed"`
	RequestedPlacements int               `json:"requested_placements"` // The number of placements requested in this call
	Success             bool              `json:"success"`
	GameState           *engine.GameState `json:"game_state"`
	Events              []GameEvent       `json:"events"`
	StoppedReason       string            `json:"stopped_reason,omitempty"`       // Human-readable reason
	StopReasonCode      string            `json:"stop_reason_code,omitempty"`     // Machine-friendly code: slot_occupied|order_violation|index_out_of_range|no_valid_moves|game_over|victory
	StoppedOnPlacement  int               `json:"stopped_on_placement,omitempty"` // 1-based index of the placement that caused stop
	Truncated           bool              `json:"truncated,omitempty"`
	Limit               int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartPlaced int `json:"start_placed"`
	EndPlaced   int `json:"end_placed"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Failure diagnostics
	Attempted *AttemptInfo `json:"attempted,omitempty"`

	// Final status aids
	GameOver     bool   `json:"game_over"`
	GameOverCode string `json:"game_over_code,omitempty"`
	Message      string `json:"message,omitempty"`
	ValidSlots   []int  `json:"valid_slots,omitempty"`
	NextValue    int    `json:"next_value,omitempty"`
}

// StepInfo is a compact record for each placement executed in the bulk call
type StepInfo struct {
	Idx         int  `json:"idx"`
	SlotIndex   int  `json:"slot_index"`
	Value       int  `json:"value"`
	PlacedCount int  `json:"placed_count"`
	Success     bool `json:"success"`
	Victory     bool `json:"victory,omitempty"`
}

// AttemptInfo details the first failed slot attempted
type AttemptInfo struct {
	SlotIndex  int    `json:"slot_index"`
	Value      int    `json:"value"`
	SlotValue  int    `json:"slot_value,omitempty"`
	Occupied   bool   `json:"occupied"`
	Reason     string `json:"reason"` // "slot_occupied", "order_violation", "index_out_of_range"
	ValidSlots []int  `json:"valid_slots,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "placement", "invalid_placement", "game_over", "victory", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	SlotIndex int       `json:"slot_index,omitempty"`
	Value     int       `json:"value,omitempty"`
}

// HistoryOptions configures placement history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated placement history
type HistoryResponse struct {
	Placements      []engine.PlacementEntry `json:"placements"`
	TotalPlacements int                     `json:"total_placements"`
	Page            int                     `json:"page"`
	PageSize        int                     `json:"page_size"`
	TotalPages      int                     `json:"total_pages"`
	HasNext         bool                    `json:"has_next"`
	HasPrevious     bool                    `json:"has_previous"`
}

// StatsInfo reports cumulative performance for a session
type StatsInfo struct {
	SessionID string       `json:"session_id"`
	Stats     engine.Stats `json:"stats"`
	GamesLost int          `json:"games_lost"`
	Average   float64      `json:"average_placements"`
	Summary   string       `json:"summary"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	SlotCount   int    `json:"slot_count"`
	MinValue    int    `json:"min_value"`
	MaxValue    int    `json:"max_value"`
}
