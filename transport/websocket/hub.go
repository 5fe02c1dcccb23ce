package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/apanich/number-challenge/game/engine"
	"github.com/gorilla/websocket"
)

const (
	// Deadline for a single write to a watcher connection.
	writeTimeout = 10 * time.Second

	// A watcher that has not answered a ping within this window is dropped.
	pongTimeout = 60 * time.Second

	// Must be shorter than pongTimeout.
	pingInterval = (pongTimeout * 9) / 10

	// Watchers never send board commands, so inbound frames stay tiny.
	maxInboundBytes = 512

	// Buffered updates per watcher before the hub gives up on it.
	outboxSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Update is the envelope pushed to everyone watching a session's board.
// Event is "state_update" for full-board pushes after a placement or reset;
// other events carry their payload in Data.
type Update struct {
	SessionID string            `json:"session_id"`
	Event     string            `json:"event,omitempty"`
	GameState *engine.GameState `json:"game_state,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
}

// watcher is one open socket observing a single session's board.
type watcher struct {
	hub       *Hub
	conn      *websocket.Conn
	outbox    chan []byte
	sessionID string
}

// Hub fans board updates out to the watchers of each session. All bookkeeping
// happens on the Run goroutine; the exported broadcast methods only enqueue,
// so they are safe to call from any request handler.
type Hub struct {
	watchers map[string]map[*watcher]struct{}

	join    chan *watcher
	leave   chan *watcher
	updates chan *Update
}

// NewHub creates a hub with no watchers. Call Run on its own goroutine
// before serving connections.
func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[*watcher]struct{}),
		join:     make(chan *watcher),
		leave:    make(chan *watcher),
		updates:  make(chan *Update, 64),
	}
}

// Run drives the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case w := <-h.join:
			h.addWatcher(w)

		case w := <-h.leave:
			h.removeWatcher(w)

		case update := <-h.updates:
			h.fanOut(update)
		}
	}
}

// ServeWS upgrades the request and attaches the connection as a watcher of
// sessionID's board.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for session %s: %v", sessionID, err)
		return
	}

	wt := &watcher{
		hub:       h,
		conn:      conn,
		outbox:    make(chan []byte, outboxSize),
		sessionID: sessionID,
	}

	h.join <- wt

	go wt.flushOutbox()
	go wt.discardIncoming()
}

// BroadcastToSession pushes the full board state to every watcher of the
// session. Called by the API after each placement, bulk placement, and reset.
func (h *Hub) BroadcastToSession(sessionID string, state *engine.GameState) {
	h.enqueue(&Update{
		SessionID: sessionID,
		Event:     "state_update",
		GameState: state,
	})
}

// BroadcastEvent pushes a named event with an arbitrary payload to every
// watcher of the session.
func (h *Hub) BroadcastEvent(sessionID string, event string, data interface{}) {
	h.enqueue(&Update{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	})
}

// enqueue hands an update to the Run loop without blocking the caller. A
// full queue means the hub is not keeping up; dropping a board push is
// acceptable because the next placement sends the complete state again.
func (h *Hub) enqueue(update *Update) {
	select {
	case h.updates <- update:
	default:
		log.Printf("Update queue full, dropping %s for session %s", update.Event, update.SessionID)
	}
}

func (h *Hub) addWatcher(w *watcher) {
	if h.watchers[w.sessionID] == nil {
		h.watchers[w.sessionID] = make(map[*watcher]struct{})
	}
	h.watchers[w.sessionID][w] = struct{}{}

	log.Printf("Watcher joined session %s (%d watching)", w.sessionID, len(h.watchers[w.sessionID]))
}

func (h *Hub) removeWatcher(w *watcher) {
	group, ok := h.watchers[w.sessionID]
	if !ok {
		return
	}
	if _, ok := group[w]; !ok {
		return
	}

	delete(group, w)
	close(w.outbox)
	if len(group) == 0 {
		delete(h.watchers, w.sessionID)
	}

	log.Printf("Watcher left session %s (%d watching)", w.sessionID, len(group))
}

// fanOut marshals the update once and hands it to every watcher of the
// session. A watcher whose outbox is full is removed; its connection is torn
// down when flushOutbox sees the closed channel.
func (h *Hub) fanOut(update *Update) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal %s update for session %s: %v", update.Event, update.SessionID, err)
		return
	}

	for w := range h.watchers[update.SessionID] {
		select {
		case w.outbox <- data:
		default:
			h.removeWatcher(w)
		}
	}
}

// discardIncoming drains the connection so pongs and close frames are
// processed. Watchers are read-only: placements arrive over the REST API,
// never over the socket, so every data frame is dropped on the floor.
func (w *watcher) discardIncoming() {
	defer func() {
		w.hub.leave <- w
		w.conn.Close()
	}()

	w.conn.SetReadLimit(maxInboundBytes)
	w.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	w.conn.SetPongHandler(func(string) error {
		w.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Watcher read error on session %s: %v", w.sessionID, err)
			}
			return
		}
	}
}

// flushOutbox writes queued updates to the connection and keeps the peer
// alive with periodic pings. Each update goes out as its own text frame.
func (w *watcher) flushOutbox() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		w.conn.Close()
	}()

	for {
		select {
		case data, ok := <-w.outbox:
			w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				w.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := w.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
