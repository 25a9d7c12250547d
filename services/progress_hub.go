package services

import (
	"encoding/json"
	"sync"

	"github.com/12Danish/NextRepBackend-sub000/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// ProgressHub fans out tracker updates to a user's connected clients so
// open dashboards refresh without polling.
type ProgressHub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*WSClient]struct{}
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[uuid.UUID]map[*WSClient]struct{})}
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

func (h *ProgressHub) Broadcast(userID uuid.UUID, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

var _hub *ProgressHub

func InitProgressHub(hub *ProgressHub) { _hub = hub }

// EmitTrackerUpdate is safe to call anywhere; it is a no-op before the
// hub is initialized.
func EmitTrackerUpdate(userID uuid.UUID, tracker *models.Tracker) {
	if _hub == nil {
		return
	}
	_hub.Broadcast(userID, map[string]any{
		"kind":    "tracker.created",
		"tracker": tracker,
	})
}
