/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package web

import (
	"sync"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	messageTypeChange = "change"
	messageTypeHello  = "hello"

	clientBuffer = 16
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
)

// StreamMessage is one websocket frame. Change frames carry only the store name;
// clients re-read over the JSON API.
type StreamMessage struct {
	Type     string    `json:"type"`
	Store    string    `json:"store,omitempty"`
	ClientID string    `json:"clientId,omitempty"`
	Time     time.Time `json:"timestamp"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan StreamMessage
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans store change notifications out to websocket clients. A client that falls
// behind is disconnected rather than blocking the store.
type Hub struct {
	logger logger.Logger

	mu      sync.Mutex
	clients map[string]*client
	closed  bool

	unsubscribe []func()
}

// NewHub creates a hub with no subscriptions.
func NewHub(log logger.Logger) *Hub {
	return &Hub{
		logger:  logger.OrNop(log),
		clients: make(map[string]*client),
	}
}

// Watch subscribes the hub to every store.
func (h *Hub) Watch(stores ...*store.Store) {
	for _, s := range stores {
		s := s
		id := s.AddChangeListener(func() { h.Broadcast(s.Name()) })

		h.mu.Lock()
		h.unsubscribe = append(h.unsubscribe, func() { s.RemoveChangeListener(id) })
		h.mu.Unlock()
	}
}

// Broadcast queues a change frame for every client.
func (h *Hub) Broadcast(storeName string) {
	msg := StreamMessage{Type: messageTypeChange, Store: storeName, Time: time.Now().UTC()}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn().Str("client_id", id).Msg("WebSocket client too slow, disconnecting")
			delete(h.clients, id)
			c.close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) (*client, bool) {
	c := &client{id: uuid.New().String(), conn: conn, send: make(chan StreamMessage, clientBuffer)}
	c.send <- StreamMessage{Type: messageTypeHello, ClientID: c.id, Time: time.Now().UTC()}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}

	h.clients[c.id] = c

	return c, true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.id] == c {
		delete(h.clients, c.id)
		c.close()
	}
}

// Close unsubscribes from the stores and disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	unsubscribe := h.unsubscribe
	h.unsubscribe = nil
	h.closed = true

	for id, c := range h.clients {
		delete(h.clients, id)
		c.close()
	}
	h.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
}

// serve runs one client until it disconnects. The hello frame tells the client its ID.
func (h *Hub) serve(conn *websocket.Conn) {
	c, ok := h.add(conn)
	if !ok {
		_ = conn.Close()
		return
	}

	clientAddr := conn.RemoteAddr().String()

	h.logger.Info().
		Str("client_id", c.id).
		Str("client_addr", clientAddr).
		Msg("WebSocket client connected")

	go h.readLoop(c)

	h.writeLoop(c)

	h.logger.Info().
		Str("client_id", c.id).
		Str("client_addr", clientAddr).
		Msg("WebSocket client disconnected")
}

// readLoop discards client frames and detects disconnection.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).Str("client_id", c.id).Msg("WebSocket read error")
			}

			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		h.remove(c)
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				h.logger.Debug().Err(err).Str("client_id", c.id).Msg("WebSocket write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
