package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"repodash/internal/application/dto"
	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/events"
)

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID        string
	SessionID string
	Channel   chan string
}

// SSEManager manages SSE connections per dashboard session
type SSEManager struct {
	clients map[string][]*SSEClient // sessionID -> clients
	mu      sync.RWMutex
	timeout time.Duration
}

// NewSSEManager creates a new SSE manager
func NewSSEManager() *SSEManager {
	return &SSEManager{
		clients: make(map[string][]*SSEClient),
		timeout: time.Second,
	}
}

// Subscribe registers a new client for a session
func (m *SSEManager) Subscribe(sessionID string) *SSEClient {
	client := &SSEClient{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Channel:   make(chan string, 16),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[sessionID] = append(m.clients[sessionID], client)
	return client
}

// RemoveClient removes an SSE client. Removing an unknown client is a no-op.
func (m *SSEManager) RemoveClient(sessionID, clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clients := m.clients[sessionID]
	for i, client := range clients {
		if client.ID == clientID {
			close(client.Channel)
			m.clients[sessionID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}

	if len(m.clients[sessionID]) == 0 {
		delete(m.clients, sessionID)
	}
}

// CloseSession disconnects every client of a session
func (m *SSEManager) CloseSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, client := range m.clients[sessionID] {
		close(client.Channel)
	}
	delete(m.clients, sessionID)
}

// Broadcast sends a payload to all clients watching a session
func (m *SSEManager) Broadcast(sessionID, payload string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, client := range m.clients[sessionID] {
		select {
		case client.Channel <- payload:
		case <-time.After(m.timeout):
			log.Debug().Str("session_id", sessionID).Str("client_id", client.ID).Msg("slow SSE client, dropping view")
		}
	}
}

// GetClientCount returns the number of clients watching a session
func (m *SSEManager) GetClientCount(sessionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[sessionID])
}

// ViewReader reads the current view of a session
type ViewReader interface {
	GetView(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error)
}

// Register subscribes the manager to dashboard events. Every view change is
// pushed to the session's clients as a full view snapshot.
func (m *SSEManager) Register(d *events.Dispatcher, views ViewReader) {
	d.Register(func(ctx context.Context, event events.DomainEvent) error {
		switch e := event.(type) {
		case *dashboard.ViewChangedEvent:
			if m.GetClientCount(e.SessionID) == 0 {
				return nil
			}
			view, err := views.GetView(ctx, e.SessionID)
			if err != nil {
				if dashboard.IsNotFound(err) {
					return nil
				}
				return err
			}
			payload, err := json.Marshal(view)
			if err != nil {
				return fmt.Errorf("failed to encode view: %w", err)
			}
			m.Broadcast(e.SessionID, string(payload))
		case *dashboard.SessionClosedEvent:
			m.CloseSession(e.SessionID)
		}
		return nil
	}, dashboard.EventTypeViewChanged, dashboard.EventTypeSessionClosed)
}

// StreamSession handles SSE streaming of session views
// @Summary Stream session views
// @Description Streams the session's derived view in real-time using Server-Sent Events. The current view is sent on connect.
// @Tags Dashboard
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Param token query string false "Session token (if not in header)"
// @Success 200 {string} string "SSE stream"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/sessions/{id}/stream [get]
func (h *DashboardHandler) StreamSession(c *gin.Context) {
	sessionID := c.Param("id")

	// Subscribe before reading so a close in between still reaches this stream
	client := h.sse.Subscribe(sessionID)
	defer h.sse.RemoveClient(sessionID, client.ID)

	current, err := h.dashboardService.GetView(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("view", current)
	c.Writer.Flush()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case payload, ok := <-client.Channel:
			if !ok {
				c.SSEvent("closed", sessionID)
				c.Writer.Flush()
				return
			}
			c.SSEvent("view", payload)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("heartbeat", "ping")
			c.Writer.Flush()
		}
	}
}
