// Package llm provides the gateway that mediates every LLM vendor call:
// budget checks, effort selection, extended thinking, streaming, retry,
// and circuit-break protection.
package llm

import (
	"context"

	"github.com/ariahq/aria/pkg/models"
)

// Role values for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation sent to the vendor.
type Message struct {
	Role    string
	Content string
}

// ToolDefinition describes a tool offered to the LLM.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// ToolCall is the LLM's request to invoke a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Call is the envelope around one vendor request.
type Call struct {
	// UserID enables budget enforcement; empty skips the governor.
	UserID string

	// AgentID and TaskType attribute usage for analytics. They are not
	// routing signals.
	AgentID  string
	TaskType string

	System   string
	Messages []Message

	// MaxTokens caps the completion; zero uses the gateway default.
	MaxTokens int

	// Temperature must be nil when extended thinking is enabled; the
	// gateway enforces this before the request is built.
	Temperature *float64

	Tools []ToolDefinition
}

// Response is the envelope around one vendor response.
type Response struct {
	Text      string
	Thinking  string
	ToolCalls []ToolCall
	Usage     models.Usage
}

// StreamChunk is one fragment of a streamed response. The channel closes
// after the final chunk; a chunk with Err set terminates the stream.
type StreamChunk struct {
	Content  string
	Thinking bool

	// Usage arrives on the final chunk when the vendor reports it.
	Usage *models.Usage

	Err error
}

// Vendor is the narrow surface of the LLM provider the gateway drives.
// thinkingBudget > 0 enables extended thinking with that token budget.
type Vendor interface {
	Complete(ctx context.Context, call *Call, thinkingBudget int) (*Response, error)
	Stream(ctx context.Context, call *Call) (<-chan StreamChunk, error)
}
