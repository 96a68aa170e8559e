package delivery

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Hub tracks live websocket connections per user and fans messages out to
// them. A user may hold several connections (multiple tabs); a send
// succeeds when at least one connection took the message.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}

	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewHub creates a connection hub.
func NewHub(writeTimeout time.Duration, logger *slog.Logger) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		conns:        make(map[string]map[*websocket.Conn]struct{}),
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Connect registers a connection for the user.
func (h *Hub) Connect(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[userID]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		h.conns[userID] = set
	}
	set[conn] = struct{}{}
	h.logger.Info("websocket connected",
		slog.String("user_id", userID),
		slog.Int("connections", len(set)))
}

// Disconnect removes a connection. Closing the socket is the caller's job.
func (h *Hub) Disconnect(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[userID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, userID)
	}
	h.logger.Info("websocket disconnected",
		slog.String("user_id", userID),
		slog.Int("connections", len(set)))
}

// IsConnected reports whether the user has at least one live connection.
func (h *Hub) IsConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID]) > 0
}

// ConnectionCount returns the total live connections, for health reporting.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.conns {
		n += len(set)
	}
	return n
}

// SendStructured is a typed convenience over SendToUser for complete
// assistant messages with enrichments.
func (h *Hub) SendStructured(ctx context.Context, userID, title, message, category string, richContent map[string]interface{}, suggestions []string) bool {
	md := make(map[string]interface{})
	if richContent != nil {
		md["rich_content"] = richContent
	}
	if len(suggestions) > 0 {
		md["suggestions"] = suggestions
	}
	if len(md) == 0 {
		md = nil
	}
	return h.SendToUser(ctx, userID, MessagePayload{
		Type:     TypeMessage,
		Title:    title,
		Content:  message,
		Category: category,
		Metadata: md,
	})
}

// SendToUser marshals the payload and writes it to every connection the
// user holds. Returns true when at least one write succeeded; an offline
// user is a silent false, not an error.
func (h *Hub) SendToUser(ctx context.Context, userID string, payload interface{}) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal websocket payload",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return false
	}

	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	delivered := false
	for _, conn := range targets {
		writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
		err := conn.Write(writeCtx, websocket.MessageText, data)
		cancel()
		if err != nil {
			// A dead connection gets cleaned up when its reader exits.
			h.logger.Warn("websocket write failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			continue
		}
		delivered = true
	}
	return delivered
}
