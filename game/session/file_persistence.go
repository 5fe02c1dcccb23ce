package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apanich/number-challenge/game/engine"
	"github.com/apanich/number-challenge/game/service"
)

// FilePersistence stores each session as <id>.json under a single directory.
// The file holds the board snapshot, the stats, and the config's ID; the
// config itself stays in the config manager so edits to a board layout apply
// to resumed games too.
type FilePersistence struct {
	dir     string
	configs service.ConfigManager
}

// NewFilePersistence creates the sessions directory if needed and returns a
// persistence layer writing into it.
func NewFilePersistence(sessionsDir string, configManager service.ConfigManager) (*FilePersistence, error) {
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		dir:     sessionsDir,
		configs: configManager,
	}, nil
}

// Save writes the session's board and stats to its JSON file, replacing any
// previous snapshot.
func (fp *FilePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	configID, err := fp.resolveConfigID(session.Config.Name)
	if err != nil {
		return fmt.Errorf("failed to resolve config ID: %w", err)
	}

	record := sessionRecord{
		ID:             session.ID,
		ConfigID:       configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		Stats:          session.Stats,
	}

	// Indented so a stored board is readable when debugging by hand.
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(fp.pathFor(session.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load rebuilds a session from its file: a fresh engine for the recorded
// config, with the saved board replayed into it.
func (fp *FilePersistence) Load(id string) (*service.Session, error) {
	data, err := os.ReadFile(fp.pathFor(id))
	if os.IsNotExist(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	gameConfig, err := fp.configs.LoadConfig(record.ConfigID)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", record.ConfigID, err)
	}

	gameEngine, err := engine.NewEngine(gameConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create game engine: %w", err)
	}

	if record.GameState != nil {
		if err := gameEngine.SetState(record.GameState); err != nil {
			return nil, fmt.Errorf("failed to restore game state: %w", err)
		}
	}

	stats := record.Stats
	if stats == nil {
		stats = &engine.Stats{}
	}

	return &service.Session{
		ID:             record.ID,
		Engine:         gameEngine,
		Config:         gameConfig,
		Stats:          stats,
		CreatedAt:      record.CreatedAt,
		LastAccessedAt: record.LastAccessedAt,
	}, nil
}

// Delete removes the session file.
func (fp *FilePersistence) Delete(id string) error {
	if !fp.Exists(id) {
		return ErrSessionNotFound
	}

	if err := os.Remove(fp.pathFor(id)); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// ListAll returns the ID of every stored session, taken from the .json
// filenames in the sessions directory.
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return ids, nil
}

// Exists reports whether a session file is present for the given ID.
func (fp *FilePersistence) Exists(id string) bool {
	_, err := os.Stat(fp.pathFor(id))
	return err == nil
}

func (fp *FilePersistence) pathFor(id string) string {
	return filepath.Join(fp.dir, id+".json")
}

// resolveConfigID maps a config's display name back to the ID used to load
// it. Sessions created straight from an ID pass through unchanged.
func (fp *FilePersistence) resolveConfigID(displayName string) (string, error) {
	configs, err := fp.configs.ListConfigs()
	if err != nil {
		return "", fmt.Errorf("failed to list configs: %w", err)
	}

	for _, c := range configs {
		if c.Name == displayName {
			return c.ConfigID, nil
		}
	}
	return displayName, nil
}
