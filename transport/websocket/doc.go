// Package websocket pushes live board updates to spectators of running
// Number Challenge sessions.
//
// A single Hub owns all open connections. Each connection watches exactly one
// session, named by the ?session= query parameter at upgrade time, and
// receives the full board state every time a placement, bulk placement, or
// reset lands on that session. Watchers are strictly read-only: the hub
// drains and discards anything a client sends, because placements only enter
// the system through the REST API.
//
// Wire format is a JSON Update envelope:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Custom events (for example a session deletion notice) use the same envelope
// with the payload under "data" instead of "game_state".
//
// All watcher bookkeeping lives on the Run goroutine; BroadcastToSession and
// BroadcastEvent only enqueue, so API handlers can call them without
// synchronization. A watcher whose outbox stays full is dropped rather than
// allowed to stall the fan-out, and the next placement resends the complete
// board anyway.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// in an HTTP handler, after validating the session:
//	hub.ServeWS(w, r, sessionID)
package websocket
