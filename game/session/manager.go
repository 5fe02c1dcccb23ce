package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/apanich/number-challenge/game/engine"
	"github.com/apanich/number-challenge/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Manager is the registry of running games. Each session couples one game
// engine (board, current value, history) with its cumulative stats and access
// timestamps. Lookups are case-insensitive: IDs are short hex strings players
// type by hand, so "AB12" and "ab12" name the same board.
//
// With a persistence backend attached, every session mutation is written
// through to storage and misses fall back to loading from disk, so a server
// restart does not abandon boards in progress.
type Manager struct {
	mu      sync.RWMutex
	games   map[string]*service.Session
	storage SessionPersistence
}

// NewManager creates an in-memory manager with no persistence.
func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*service.Session),
	}
}

// NewManagerWithPersistence creates a manager that writes every session
// through to storage and falls back to it on lookup misses.
func NewManagerWithPersistence(storage SessionPersistence) *Manager {
	return &Manager{
		games:   make(map[string]*service.Session),
		storage: storage,
	}
}

// key normalizes a session ID to its canonical map key.
func key(id string) string {
	return strings.ToLower(id)
}

// Create starts a new game session for the given board config. An empty id
// asks the manager to mint a fresh one.
func (m *Manager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = m.newIDLocked()
	} else if _, taken := m.games[key(id)]; taken {
		return nil, ErrSessionAlreadyExists
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	now := time.Now()
	sess := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		Stats:          &engine.Stats{},
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.games[key(id)] = sess

	if m.storage != nil {
		if err := m.storage.Save(sess); err != nil {
			// The board is playable from memory; losing the initial
			// snapshot only matters if the server dies before the next
			// write-through.
			log.Printf("Warning: failed to persist new session %s: %v", id, err)
		}
	}

	return sess, nil
}

// Get returns the session with the given ID, loading it from storage if it
// is not in memory.
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	sess, ok := m.games[key(id)]
	m.mu.RUnlock()
	if ok {
		return sess, nil
	}

	if m.storage == nil || !m.storage.Exists(id) {
		return nil, ErrSessionNotFound
	}

	loaded, err := m.storage.Load(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted session: %w", err)
	}

	m.mu.Lock()
	// Another goroutine may have loaded it first; keep the copy that won.
	if racer, ok := m.games[key(id)]; ok {
		m.mu.Unlock()
		return racer, nil
	}
	m.games[key(id)] = loaded
	m.mu.Unlock()

	return loaded, nil
}

// GetOrCreate returns the existing session or starts a new one under the
// given ID.
func (m *Manager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	sess, err := m.Get(id)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return m.Create(id, config)
	}
	return nil, err
}

// List returns every session currently in memory, in no particular order.
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*service.Session, 0, len(m.games))
	for _, sess := range m.games {
		all = append(all, sess)
	}
	return all
}

// Delete removes a session from memory and storage.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, inMemory := m.games[key(id)]
	delete(m.games, key(id))

	if m.storage != nil && m.storage.Exists(id) {
		if err := m.storage.Delete(id); err != nil {
			return fmt.Errorf("failed to delete persisted session: %w", err)
		}
		return nil
	}

	if !inMemory {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteFromMemory drops a session from memory while leaving storage alone.
// The filesystem sync routine uses it the other way around: when the session
// file disappears, the in-memory copy follows.
func (m *Manager) DeleteFromMemory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[key(id)]; !ok {
		return ErrSessionNotFound
	}
	delete(m.games, key(id))
	return nil
}

// UpdateLastAccessed marks the session as just touched, which keeps it clear
// of the expiry cleanup, and writes the refreshed timestamp through.
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.games[key(id)]
	if !ok {
		return ErrSessionNotFound
	}
	sess.LastAccessedAt = time.Now()

	if m.storage != nil {
		if err := m.storage.Save(sess); err != nil {
			log.Printf("Warning: failed to persist session %s after touch: %v", id, err)
		}
	}
	return nil
}

// Save writes one session's current board and stats to storage. A manager
// without persistence treats this as a no-op.
func (m *Manager) Save(id string) error {
	if m.storage == nil {
		return nil
	}

	m.mu.RLock()
	sess, ok := m.games[key(id)]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	return m.storage.Save(sess)
}

// CleanupExpiredSessions drops every in-memory session that has not been
// touched within maxAge and reports how many were dropped. Persisted files
// are left in place so an expired board can still be resumed by ID.
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for k, sess := range m.games {
		if sess.LastAccessedAt.Before(cutoff) {
			delete(m.games, k)
			removed++
		}
	}
	return removed
}

// Count returns the number of sessions in memory.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// newIDLocked mints an unused 4-hex-character session ID. Short IDs are a
// deliberate usability tradeoff; retrying on collision keeps them safe.
// Callers must hold m.mu.
func (m *Manager) newIDLocked() string {
	for {
		b := make([]byte, 2)
		rand.Read(b)
		id := hex.EncodeToString(b)
		if _, taken := m.games[id]; !taken {
			return id
		}
	}
}

// LoadPersistedSessions pulls every stored session into memory. Sessions
// that fail to load are skipped with a warning so one corrupt file does not
// block server startup.
func (m *Manager) LoadPersistedSessions() error {
	if m.storage == nil {
		return nil
	}

	ids, err := m.storage.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list persisted sessions: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	loaded := 0
	for _, id := range ids {
		if _, ok := m.games[key(id)]; ok {
			continue
		}

		sess, err := m.storage.Load(id)
		if err != nil {
			log.Printf("Warning: skipping persisted session %s: %v", id, err)
			continue
		}

		m.games[key(id)] = sess
		loaded++
	}

	if loaded > 0 {
		log.Printf("Restored %d sessions from storage", loaded)
	}
	return nil
}

// SaveAllSessions flushes every in-memory session to storage, continuing
// past individual failures and reporting them collectively.
func (m *Manager) SaveAllSessions() error {
	if m.storage == nil {
		return nil
	}

	failed := 0
	for _, sess := range m.List() {
		if err := m.storage.Save(sess); err != nil {
			log.Printf("Warning: failed to save session %s: %v", sess.ID, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to save %d sessions", failed)
	}
	return nil
}
