package api

import (
	"context"
	"encoding/json"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ariahq/aria/pkg/delivery"
)

// inboundMessage is the envelope for every client-to-server frame. Fields
// beyond type are populated per message kind.
type inboundMessage struct {
	Type           string `json:"type"`
	Message        string `json:"message,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	ActionID       string `json:"action_id,omitempty"`
	Route          string `json:"route,omitempty"`
	Modality       string `json:"modality,omitempty"`
}

// handleWebSocket serves GET /ws/:user_id. The token rides in the query
// string; auth failure, a missing token, or a user mismatch all close the
// socket with 1008 after the upgrade.
func (s *Server) handleWebSocket(c *gin.Context) {
	urlUserID := c.Param("user_id")
	token := c.Query("token")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin allowlisting happens at the edge proxy
	})
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	if token == "" {
		conn.Close(websocket.StatusPolicyViolation, "missing token")
		return
	}
	userID, err := s.auth.Authenticate(token)
	if err != nil {
		conn.Close(websocket.StatusPolicyViolation, "authentication failed")
		return
	}
	if userID != urlUserID {
		conn.Close(websocket.StatusPolicyViolation, "user mismatch")
		return
	}

	s.serveConnection(c.Request.Context(), conn, userID)
}

// serveConnection runs one authenticated websocket session: register with
// the hub, greet, replay the login queue, then pump inbound frames until
// the socket closes.
func (s *Server) serveConnection(ctx context.Context, conn *websocket.Conn, userID string) {
	s.hub.Connect(userID, conn)
	defer func() {
		s.hub.Disconnect(userID, conn)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	sessionID := uuid.New().String()
	s.hub.SendToUser(ctx, userID, delivery.ConnectedPayload{
		Type:      delivery.TypeConnected,
		UserID:    userID,
		SessionID: sessionID,
	})

	if err := s.chat.ReplayLoginQueue(ctx, userID); err != nil {
		s.logger.Warn("login queue replay failed",
			"user_id", userID, "error", err)
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Malformed frames are dropped, not fatal.
			s.logger.Debug("dropping malformed websocket frame",
				"user_id", userID, "error", err)
			continue
		}
		s.dispatch(ctx, userID, msg)
	}
}

// dispatch routes one inbound frame. Chat turns run in their own
// goroutine so a long stream never blocks the read loop (and with it,
// heartbeats).
func (s *Server) dispatch(ctx context.Context, userID string, msg inboundMessage) {
	switch msg.Type {
	case "ping", "heartbeat":
		s.hub.SendToUser(ctx, userID, delivery.PongPayload{Type: delivery.TypePong})

	case "user.message":
		go func() {
			if err := s.chat.HandleUserMessage(ctx, userID, msg.ConversationID, msg.Message); err != nil {
				s.logger.Warn("chat turn failed",
					"user_id", userID,
					"conversation_id", msg.ConversationID,
					"error", err)
			}
		}()

	case "user.approve":
		result, err := s.approvals.Approve(ctx, userID, msg.ActionID)
		payload := delivery.ActionCompletedPayload{
			Type:     delivery.TypeActionCompleted,
			ActionID: msg.ActionID,
			Status:   "completed",
			Result:   result,
		}
		if err != nil {
			payload.Status = "failed"
			payload.Result = nil
			payload.Error = err.Error()
		}
		s.hub.SendToUser(ctx, userID, payload)

	case "user.reject":
		payload := delivery.ActionCompletedPayload{
			Type:     delivery.TypeActionCompleted,
			ActionID: msg.ActionID,
			Status:   "rejected",
		}
		if err := s.approvals.Reject(ctx, userID, msg.ActionID); err != nil {
			payload.Status = "failed"
			payload.Error = err.Error()
		}
		s.hub.SendToUser(ctx, userID, payload)

	case "user.navigate":
		// Presence context for future proactive relevance; nothing to do
		// server-side yet beyond the trace.
		s.logger.Debug("user navigated", "user_id", userID, "route", msg.Route)

	case "modality.change":
		s.logger.Debug("modality changed", "user_id", userID, "modality", msg.Modality)

	default:
		s.logger.Debug("ignoring unknown websocket message type", "user_id", userID, "type", msg.Type)
	}
}
