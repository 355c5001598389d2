package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans job events out to connected clients. Rooms are keyed by user id;
// a user may hold several connections (tabs).
type Hub struct {
	mu    sync.RWMutex
	rooms map[int]map[*websocket.Conn]bool
	log   *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		rooms: make(map[int]map[*websocket.Conn]bool),
		log:   log,
	}
}

func (h *Hub) Register(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[userID]; !ok {
		h.rooms[userID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[userID][conn] = true
	h.log.Debugw("ws register", "user", userID, "conns", len(h.rooms[userID]))
}

func (h *Hub) Unregister(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[userID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
	}
	if len(conns) == 0 {
		delete(h.rooms, userID)
	}
	h.log.Debugw("ws unregister", "user", userID, "conns", len(conns))
}

func (h *Hub) SendToUser(userID int, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.rooms[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Debugw("ws send failed", "user", userID, "err", err)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
