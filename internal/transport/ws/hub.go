// Package ws empuja notificaciones en vivo por websocket.
// El polling de /me/notifications sigue siendo la fuente de verdad; el socket es un atajo.
package ws

import (
	"encoding/json"
	"sync"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/platform/logger"
)

// Hub registra las conexiones por usuario (un usuario puede tener varias pestañas).
type Hub struct {
	log logger.Logger

	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		log:     log,
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.log.Debug("ws client connected", map[string]any{"user_id": c.userID, "connections": len(set)})
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	c.close()
	h.log.Debug("ws client disconnected", map[string]any{"user_id": c.userID})
}

// Publish implementa notifications.Publisher. Nunca bloquea: un cliente lento se desconecta.
func (h *Hub) Publish(userID string, n notifications.Notification) {
	evt, err := NewEvent(EventTypeNotification, n)
	if err != nil {
		h.log.Error("ws marshal error", map[string]any{"error": err})
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		h.log.Error("ws marshal error", map[string]any{"error": err})
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.enqueue(data) {
			h.log.Warn("ws client buffer full, dropping connection", map[string]any{"user_id": userID})
			h.unregister(c)
		}
	}
}

// Connections devuelve cuántos sockets abiertos tiene el usuario.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close desconecta a todos (apagado del servidor).
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for uid, set := range h.clients {
		for c := range set {
			c.close()
		}
		delete(h.clients, uid)
	}
}

var _ notifications.Publisher = (*Hub)(nil)

