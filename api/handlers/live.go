package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rousseauplant/plant-cover-api/models"
)

// LiveHub pushes gallery events to connected storefront embeds so open
// galleries update without polling
type LiveHub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewLiveHub creates an empty hub
func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// the embed is cross-origin from the shop, same policy as the rest api
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the connection and keeps it registered until the client
// goes away. Clients only listen; inbound messages are discarded.
func (h *LiveHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("failed to upgrade live gallery connection", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	clientCount := len(h.clients)
	h.mu.Unlock()
	zap.S().Debugw("live gallery client connected", "clients", clientCount)

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// EmitCoverCreated notifies listeners that a new cover joined the gallery
func (h *LiveHub) EmitCoverCreated(cover models.Cover) {
	h.broadcast("cover_created", cover)
}

// EmitCoverHidden notifies listeners that a cover crossed the hide threshold
// and should be dropped from any open gallery
func (h *LiveHub) EmitCoverHidden(coverID string) {
	h.broadcast("cover_hidden", map[string]string{"coverId": coverID})
}

func (h *LiveHub) broadcast(event string, data interface{}) {
	if h == nil {
		return
	}
	msg := map[string]interface{}{
		"event": event,
		"data":  data,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			zap.S().Debugw("dropping live gallery client", "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
