package engine

const (
	// EmptySlot marks an unoccupied slot in serialized state.
	EmptySlot = -1

	// Validation constants
	MinRows             = 1
	MaxRows             = 10
	MinColumns          = 1
	MaxColumns          = 20
	MinSlotCount        = 4
	MaxSlotCount        = 100
	MaxBulkPlacements   = 50
	WebSocketBufferSize = 256
)

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	MinValue    int    `json:"min_value"`
	MaxValue    int    `json:"max_value"`
	Messages    struct {
		Welcome      string `json:"welcome"`
		NextValue    string `json:"next_value"`
		SlotOccupied string `json:"slot_occupied"`
		InvalidSlot  string `json:"invalid_slot"`
		Victory      string `json:"victory"`
		NoValidMoves string `json:"no_valid_moves"`
	} `json:"messages"`
}

// SlotCount returns the number of slots implied by the grid shape.
func (c *GameConfig) SlotCount() int {
	return c.Rows * c.Columns
}

// GameState represents the complete game state
type GameState struct {
	Slots        []int  `json:"slots"` // EmptySlot marks unoccupied slots
	Rows         int    `json:"rows"`
	Columns      int    `json:"columns"`
	CurrentValue int    `json:"current_value"`
	PlacedCount  int    `json:"placed_count"`
	Message      string `json:"message"`
	GameOver     bool   `json:"game_over"`
	Victory      bool   `json:"victory"`
	ConfigName   string `json:"config_name"`

	PlacementHistory []PlacementEntry `json:"placement_history"`
	TotalAttempts    int              `json:"total_attempts"`

	// CurrentPlacements tracks only the attempts since the last reset. It
	// mirrors PlacementHistory entries but gets cleared on reset while
	// PlacementHistory remains cumulative.
	CurrentPlacements      []PlacementEntry `json:"current_placements"`
	CurrentPlacementsCount int              `json:"current_placements_count"`

	// Computed helper view (not required for core game logic)
	ValidSlots []int `json:"valid_slots,omitempty"`
}

// PlacementEntry represents a single placement attempt in the game history
type PlacementEntry struct {
	Index           int   `json:"index"`
	Value           int   `json:"value"`
	Success         bool  `json:"success"`
	Timestamp       int64 `json:"timestamp"`
	PlacementNumber int   `json:"placement_number"`
}
