// Package delivery implements the proactive router and its channels: live
// websocket push, the notifications inbox, the briefing queue, and the
// login queue.
package delivery

import "time"

// Outbound websocket message types.
const (
	TypeConnected       = "connected"
	TypeThinking        = "aria.thinking"
	TypeToken           = "aria.token"
	TypeStreamComplete  = "aria.stream_complete"
	TypeStreamError     = "aria.stream_error"
	TypeMessage         = "aria.message"
	TypeSignalDetected  = "signal.detected"
	TypeActionCompleted = "action.completed"
	TypePong            = "pong"
)

// ConnectedPayload greets a client after a successful handshake.
type ConnectedPayload struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// ThinkingPayload signals that the assistant started working on a reply.
type ThinkingPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
}

// TokenPayload carries one streamed response fragment.
type TokenPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

// StreamCompletePayload terminates a successful stream.
type StreamCompletePayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id,omitempty"`
}

// StreamErrorPayload terminates a failed stream. Recoverable errors invite
// the client to retry the same turn.
type StreamErrorPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Error          string `json:"error"`
	Recoverable    bool   `json:"recoverable"`
}

// MessagePayload is a complete assistant message pushed outside a stream:
// login-queue replays and non-signal proactive insights.
type MessagePayload struct {
	Type           string                 `json:"type"`
	ConversationID string                 `json:"conversation_id,omitempty"`
	Title          string                 `json:"title,omitempty"`
	Content        string                 `json:"content"`
	Category       string                 `json:"category,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// SignalPayload pushes a detected market signal to a live session.
type SignalPayload struct {
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Link       string                 `json:"link,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	DetectedAt time.Time              `json:"detected_at"`
}

// ActionCompletedPayload reports the outcome of an approved or rejected
// action.
type ActionCompletedPayload struct {
	Type     string                 `json:"type"`
	ActionID string                 `json:"action_id"`
	Status   string                 `json:"status"`
	Result   map[string]interface{} `json:"result,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// PongPayload answers a client heartbeat.
type PongPayload struct {
	Type string `json:"type"`
}
