package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string
	Conn   *websocket.Conn
}

// ProgressHub fans ledger/log change payloads out to a user's connected
// clients, so a second open tab sees mirrored updates as they arrive.
type ProgressHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *ProgressHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ProgressHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *ProgressHub) BroadcastProgress(userID string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
