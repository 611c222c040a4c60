package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "document_events"

// Hub tracks live connections per session id and fans progress updates out
// to them. With Redis configured it also relays updates across instances,
// since the client may be connected to a different process than the one
// that handled the mutation.
type Hub struct {
	// session id -> connected clients (one session can have several tabs)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session fully disconnected", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send implements the ProgressDelivery contract: push a progress snapshot
// to every connection of the session, then relay through Redis so other
// instances can do the same.
func (h *Hub) Send(sessionID string, progress *dto.ProgressResponse) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "progress",
		"data": progress,
	})

	h.sendLocal(sessionID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"session_id": sessionID,
			"message":    json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

func (h *Hub) sendLocal(sessionID string, data []byte) {
	h.mu.RLock()
	clients := h.clients[sessionID]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// The unregister path owns close(client.Send); closing here too
			// would close the channel twice and panic the hub goroutine.
			h.logger.Warn("Hub", "Client buffer full, dropping connection", map[string]interface{}{"session_id": sessionID})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			SessionID string          `json:"session_id"`
			Message   json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Bad relay payload", map[string]interface{}{"error": err.Error()})
			continue
		}
		h.sendLocal(payload.SessionID, payload.Message)
	}
}
