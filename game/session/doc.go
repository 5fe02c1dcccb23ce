// Package session tracks the games in progress on a server.
//
// A session ties one board to everything a returning player needs: the
// engine holding the slots and the value waiting to be placed, the config
// the board was built from, cumulative win/loss stats, and access
// timestamps. Players address sessions by short hex IDs (e.g. "a3f1") that
// are matched case-insensitively, since they are read aloud and retyped.
//
// Manager is the concurrency-safe registry. Handlers on different
// goroutines can create, fetch, and delete sessions freely; the manager
// serializes its own bookkeeping, while play on an individual board is
// guarded by the game service layer.
//
// Persistence is optional. A manager built with
// NewManagerWithPersistence writes every session change through to a
// SessionPersistence backend and falls back to it when an ID is not in
// memory, so a player can resume a half-filled board after a server
// restart. FilePersistence is the shipped backend: one JSON file per
// session, holding the board snapshot and the ID of the config to rebuild
// the engine from.
//
// Typical server startup:
//
//	store, _ := session.NewFilePersistence("sessions", configManager)
//	manager := session.NewManagerWithPersistence(store)
//	manager.LoadPersistedSessions()
//
// Boards idle past a deadline are dropped from memory by
// CleanupExpiredSessions; their files stay on disk so the game is still
// resumable by ID.
package session
