package session

import (
	"time"

	"github.com/apanich/number-challenge/game/engine"
	"github.com/apanich/number-challenge/game/service"
)

// SessionPersistence is the storage backend for game sessions. The manager
// writes through on every mutation and reads through on lookup misses, so
// implementations only need durable single-session operations, not
// transactions.
type SessionPersistence interface {
	// Save writes the session's board, stats, and timestamps.
	Save(session *service.Session) error
	// Load rebuilds a full session, engine included, from storage.
	Load(id string) (*service.Session, error)
	// Delete removes the stored session. Deleting a missing ID is an error.
	Delete(id string) error
	// ListAll returns the IDs of every stored session.
	ListAll() ([]string, error)
	// Exists reports whether a session is stored under the given ID.
	Exists(id string) bool
}

// sessionRecord is the serialized form of a session. The engine itself is
// never stored; Load builds a fresh one from the config and replays the
// saved board state into it.
type sessionRecord struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Stats          *engine.Stats     `json:"stats,omitempty"`
}
