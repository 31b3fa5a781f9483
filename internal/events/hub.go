package events

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"battleforge/internal/logging"
)

// Hub fans battle events out to websocket spectators. Subscribers are keyed
// by battle UUID; events without a battle UUID are not streamed. The hub
// implements Sink so it can sit directly behind the service layer.
type Hub struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	subs     map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		subs: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Subscribe upgrades the request to a websocket and registers it as a
// spectator of the given battle. The connection is held open until the
// client goes away; inbound messages are drained and discarded.
func (h *Hub) Subscribe(battleUUID string, w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.subs[battleUUID] == nil {
		h.subs[battleUUID] = make(map[*websocket.Conn]struct{})
	}
	h.subs[battleUUID][conn] = struct{}{}
	h.mu.Unlock()

	go h.drain(battleUUID, conn)
	return nil
}

func (h *Hub) drain(battleUUID string, conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	if set, ok := h.subs[battleUUID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.subs, battleUUID)
		}
	}
	h.mu.Unlock()
	conn.Close()
}

// Publish broadcasts the event to every spectator of its battle. Failed
// writes drop the subscriber.
func (h *Hub) Publish(e Event) {
	if e.BattleUUID == "" {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		logging.Error("failed to marshal event", err, logging.Fields{"event": string(e.Type)})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[e.BattleUUID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.subs[e.BattleUUID], conn)
			conn.Close()
		}
	}
}
