package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"otbasy/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// MessageSender posts an inbound chat message on behalf of the session
// user. Satisfied by the state store.
type MessageSender interface {
	SendMessage(ctx context.Context, familyID, text string) (*models.Message, error)
	MessagesForFamily(familyID string) []models.Message
}

// Client is the middleman between one websocket connection and the hub.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	familyID string
	sender   MessageSender
}

// inboundFrame is what a connected client writes on the socket.
type inboundFrame struct {
	Text string `json:"text"`
}

// ServeWS upgrades an HTTP request to a websocket subscribed to one
// family's chat. The family's history is replayed before live messages.
func ServeWS(hub *Hub, sender MessageSender, familyID string, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		familyID: familyID,
		sender:   sender,
	}
	client.hub.register <- client

	// The write pump must be draining before the replay, or a history
	// longer than the send buffer would block the upgrade handler.
	go client.writePump()

	for _, message := range sender.MessagesForFamily(familyID) {
		payload, err := json.Marshal(message)
		if err != nil {
			continue
		}
		client.send <- payload
	}

	go client.readPump()
}

// readPump pumps frames from the websocket into the state store. The hub
// broadcast loops the stored message back to every subscriber, this client
// included.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("chat: read error: %v", err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil || frame.Text == "" {
			continue
		}
		if _, err := c.sender.SendMessage(context.Background(), c.familyID, frame.Text); err != nil {
			log.Printf("chat: failed to store message: %v", err)
		}
	}
}

// writePump pumps hub messages out to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(payload)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
