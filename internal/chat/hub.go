// Package chat streams family messages to connected websocket clients.
package chat

import (
	"context"
	"encoding/json"
	"log"

	"otbasy/internal/models"
)

// Hub fans chat messages out to the websocket clients subscribed to each
// family. Registration, unregistration and broadcast all flow through the
// hub goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.Message
}

// NewHub creates an empty hub. Run must be started before clients connect.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.Message),
	}
}

// Run processes hub events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			payload, err := json.Marshal(message)
			if err != nil {
				log.Printf("chat: failed to encode message %s: %v", message.ID, err)
				continue
			}
			for client := range h.clients {
				if client.familyID != message.FamilyID {
					continue
				}
				select {
				case client.send <- payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast hands a message to the hub goroutine. Safe for concurrent use;
// wired as the state store's message listener.
func (h *Hub) Broadcast(message models.Message) {
	h.broadcast <- message
}
