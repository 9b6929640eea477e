/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"itam-api/src/internal/utils"

	"github.com/gorilla/websocket"
)

// Event is a notification pushed to connected admin dashboards when a
// ticket is created or updated or when a vault record is accessed.
type Event struct {
	Type       string    `json:"type"`
	EntityUUID string    `json:"entity_uuid"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Event types pushed over the admin feed
const (
	EventTicketCreated = "ticket_created"
	EventTicketUpdated = "ticket_updated"
	EventVaultRevealed = "vault_revealed"
	EventVaultDenied   = "vault_denied"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	sendBufferSize = 16
)

// Manager tracks connected dashboard clients and fans events out to them.
// Delivery is best-effort: a client that cannot keep up is disconnected
// rather than allowed to block the rest.
type Manager struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewManager creates a new event feed manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[*client]struct{}),
	}
}

// Register adds a connection to the feed and starts its write pump.
// The caller retains responsibility for reading (and discarding) inbound
// frames so that close and ping control messages are processed.
func (m *Manager) Register(conn *websocket.Conn) {
	cl := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	m.mu.Lock()
	m.clients[cl] = struct{}{}
	count := len(m.clients)
	m.mu.Unlock()

	utils.LogInfo(fmt.Sprintf("Event feed client connected (active: %d)", count))

	go m.writePump(cl)
	go m.readPump(cl)
}

// Broadcast sends an event to every connected client. It never blocks the
// caller; slow clients are dropped.
func (m *Manager) Broadcast(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		utils.LogError("Failed to marshal event for broadcast", err)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for cl := range m.clients {
		select {
		case cl.send <- payload:
		default:
			// Buffer full, the write pump will clean up on close
			go m.remove(cl)
		}
	}
}

// ClientCount returns the number of currently connected clients
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (m *Manager) remove(cl *client) {
	m.mu.Lock()
	_, present := m.clients[cl]
	if present {
		delete(m.clients, cl)
	}
	count := len(m.clients)
	m.mu.Unlock()

	if present {
		close(cl.send)
		cl.conn.Close()
		utils.LogInfo(fmt.Sprintf("Event feed client disconnected (active: %d)", count))
	}
}

func (m *Manager) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		m.remove(cl)
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			if !ok {
				cl.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return
			}
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains inbound frames so control messages are handled and
// detects client disconnects.
func (m *Manager) readPump(cl *client) {
	defer m.remove(cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
