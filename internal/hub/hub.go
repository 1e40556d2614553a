package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types published after catalog changes.
const (
	EventGames  = "games"
	EventTags   = "tags"
	EventFilter = "filter"
	EventRandom = "random"
)

// Event represents a catalog change to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single subscriber connection.
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub fans catalog events out to every subscribed client.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers a new client and returns it.
func (h *Hub) Subscribe(buffer int) Client {
	client := make(Client, buffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client) // Close the channel to signal the SSE handler to stop.
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all clients.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Warning: dropping %s event: %v", event.Type, err)
		return
	}

	for client := range h.clients {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- messageBytes:
		default:
			// Client channel is full; it will catch up on the next event.
		}
	}
}
