package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apanich/number-challenge/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
		Stats:          session.Stats,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name), // Return config_id consistently
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
		Stats:          session.Stats,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name), // Return config_id consistently
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
			Stats:          sess.Stats,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Place attempts to place the session's current value at a slot
func (s *gameServiceImpl) Place(ctx context.Context, sessionID string, slotIndex int, reset bool) (*PlacementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Get session
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed time
	s.sessions.UpdateLastAccessed(sessionID)

	// Collect events
	events := []GameEvent{}

	// Handle reset if requested
	if reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Execute placement
	wasOver := sess.Engine.IsGameOver()
	value := sess.Engine.GetCurrentValue()
	success := sess.Engine.Place(slotIndex)
	state := sess.Engine.GetState()

	// Build result
	result := &PlacementResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}

	if success {
		placementEvents := s.extractPlacementEvents(sess, slotIndex, value)
		result.Events = append(result.Events, placementEvents...)

		result.Step = &StepInfo{
			Idx:         1,
			SlotIndex:   slotIndex,
			Value:       value,
			PlacedCount: state.PlacedCount,
			Success:     true,
			Victory:     state.Victory,
		}
	} else {
		result.Attempted = buildAttemptInfo(sess.Engine, slotIndex, value)
		result.Events = append(result.Events, GameEvent{
			Type:      "invalid_placement",
			Message:   state.Message,
			Timestamp: time.Now(),
			SlotIndex: slotIndex,
			Value:     value,
		})
	}

	// Record stats when this call completed the round
	s.recordOutcome(sess, wasOver)

	// Enrich state with decision aids
	state.ValidSlots = sess.Engine.GetValidSlots()

	// Auto-save session after placement
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after placement: %v\n", sessionID, err)
	}

	return result, nil
}

// BulkPlace attempts a sequence of slot placements
func (s *gameServiceImpl) BulkPlace(ctx context.Context, sessionID string, slotIndexes []int, reset bool) (*BulkPlacementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed
	s.sessions.UpdateLastAccessed(sessionID)

	// Initialize result and capture start snapshot
	state := sess.Engine.GetState()
	wasOver := state.GameOver

	result := &BulkPlacementResult{
		RequestedPlacements: len(slotIndexes),
		Events:              make([]GameEvent, 0),
		Success:             true,
		StartPlaced:         state.PlacedCount,
		GameOver:            state.GameOver,
		Message:             state.Message,
	}

	// Handle reset
	if reset {
		sess.Engine.Reset()
		wasOver = false
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Limit placements to prevent abuse
	if len(slotIndexes) > engine.MaxBulkPlacements {
		result.Truncated = true
		result.Limit = engine.MaxBulkPlacements
		slotIndexes = slotIndexes[:engine.MaxBulkPlacements]
	}

	// Execute placements
	for i, slotIndex := range slotIndexes {
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game over"
			result.StopReasonCode = "game_over"
			result.StoppedOnPlacement = result.PlacementsExecuted + 1
			break
		}

		value := sess.Engine.GetCurrentValue()
		success := sess.Engine.Place(slotIndex)

		if !success {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("placement %d rejected at slot %d", i+1, slotIndex)
			result.StoppedOnPlacement = i + 1
			result.Attempted = buildAttemptInfo(sess.Engine, slotIndex, value)
			result.StopReasonCode = result.Attempted.Reason
			result.Events = append(result.Events, GameEvent{
				Type:      "invalid_placement",
				Message:   sess.Engine.GetState().Message,
				Timestamp: time.Now(),
				SlotIndex: slotIndex,
				Value:     value,
			})
			break
		}

		result.PlacementsExecuted++

		// Collect events for this placement
		events := s.extractPlacementEvents(sess, slotIndex, value)
		result.Events = append(result.Events, events...)

		currState := sess.Engine.GetState()
		result.Steps = append(result.Steps, StepInfo{
			Idx:         i + 1,
			SlotIndex:   slotIndex,
			Value:       value,
			PlacedCount: currState.PlacedCount,
			Success:     true,
			Victory:     currState.Victory,
		})
	}

	result.GameState = sess.Engine.GetState()

	// Finalize snapshots
	endState := result.GameState
	result.EndPlaced = endState.PlacedCount
	result.GameOver = endState.GameOver
	result.Message = endState.Message

	// If we ended due to game over without explicit stop reason code
	if result.GameOver && result.StopReasonCode == "" {
		if endState.Victory {
			result.StopReasonCode = "victory"
			result.GameOverCode = "victory"
		} else {
			result.StopReasonCode = "no_valid_moves"
			result.GameOverCode = "no_valid_moves"
		}
	}

	// Record stats when this call completed the round
	s.recordOutcome(sess, wasOver)

	// Decision aids
	result.ValidSlots = sess.Engine.GetValidSlots()
	if !endState.GameOver {
		result.NextValue = endState.CurrentValue
	}

	// Also expose decision aids on the returned state for parity
	endState.ValidSlots = result.ValidSlots

	// Auto-save session after bulk placements
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk placements: %v\n", sessionID, err)
	}

	return result, nil
}

// Reset resets a game session to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()
	// Enrich state with decision aids
	state.ValidSlots = sess.Engine.GetValidSlots()

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.GetState()
	// Enrich state with decision aids
	state.ValidSlots = sess.Engine.GetValidSlots()
	return state, nil
}

// GetPlacementHistory returns paginated placement history
func (s *gameServiceImpl) GetPlacementHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetPlacementHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of placements
	var placements []engine.PlacementEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			placements = append(placements, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			placements = history[start:end]
		}
	}

	// Ensure placements is not nil
	if placements == nil {
		placements = []engine.PlacementEntry{}
	}

	return &HistoryResponse{
		Placements:      placements,
		TotalPlacements: total,
		Page:            opts.Page,
		PageSize:        opts.Limit,
		TotalPages:      totalPages,
		HasNext:         opts.Page < totalPages,
		HasPrevious:     opts.Page > 1,
	}, nil
}

// GetStats returns cumulative performance stats for a session
func (s *gameServiceImpl) GetStats(ctx context.Context, sessionID string) (*StatsInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	stats := sess.Stats
	if stats == nil {
		stats = &engine.Stats{}
	}

	return &StatsInfo{
		SessionID: sessionID,
		Stats:     *stats,
		GamesLost: stats.GamesLost(),
		Average:   stats.AveragePlacements(),
		Summary:   stats.Summary(),
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// recordOutcome updates session stats when the round transitioned to a
// terminal state during this call. Wins and losses count the round's
// successful placements.
func (s *gameServiceImpl) recordOutcome(sess *Session, wasOver bool) {
	if wasOver || !sess.Engine.IsGameOver() {
		return
	}
	if sess.Stats == nil {
		sess.Stats = &engine.Stats{}
	}
	placed := sess.Engine.GetPlacedCount()
	if sess.Engine.IsVictory() {
		sess.Stats.RecordWin(placed)
	} else {
		sess.Stats.RecordLoss(placed)
	}
}

// extractPlacementEvents generates events from a successful placement
func (s *gameServiceImpl) extractPlacementEvents(sess *Session, slotIndex, value int) []GameEvent {
	events := []GameEvent{}
	state := sess.Engine.GetState()

	// Basic placement event
	events = append(events, GameEvent{
		Type:      "placement",
		Message:   fmt.Sprintf("Placed %d at slot %d", value, slotIndex),
		Timestamp: time.Now(),
		SlotIndex: slotIndex,
		Value:     value,
	})

	// Check for game over events
	if state.GameOver {
		if state.Victory {
			events = append(events, GameEvent{
				Type:      "victory",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		} else {
			events = append(events, GameEvent{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}
	}

	return events
}

// buildAttemptInfo details why a placement at slotIndex was rejected
func buildAttemptInfo(eng *engine.GameEngine, slotIndex, value int) *AttemptInfo {
	state := eng.GetState()

	if slotIndex < 0 || slotIndex >= len(state.Slots) {
		return &AttemptInfo{
			SlotIndex:  slotIndex,
			Value:      value,
			Reason:     "index_out_of_range",
			ValidSlots: eng.GetValidSlots(),
		}
	}

	if slotValue, occupied := state.SlotAt(slotIndex); occupied {
		return &AttemptInfo{
			SlotIndex:  slotIndex,
			Value:      value,
			SlotValue:  slotValue,
			Occupied:   true,
			Reason:     "slot_occupied",
			ValidSlots: eng.GetValidSlots(),
		}
	}

	return &AttemptInfo{
		SlotIndex:  slotIndex,
		Value:      value,
		Reason:     "order_violation",
		ValidSlots: eng.GetValidSlots(),
	}
}
