package web

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the open live index sessions. Sessions never share state; the
// hub only exists so /ready can report how many are connected.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	delete(h.sessions, s.id)
	h.mu.Unlock()
	_ = s.ws.Close()
}

// Count is the number of connected live sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// session is one websocket connection and the index view it mounted.
type session struct {
	id string
	ws *websocket.Conn

	writeMu sync.Mutex
}

func (s *session) send(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.ws.WriteJSON(v)
}
