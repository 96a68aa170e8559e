// Package chat runs live conversations: turn serialization, working
// memory, token streaming, and login-queue replay.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/delivery"
	"github.com/ariahq/aria/pkg/llm"
	"github.com/ariahq/aria/pkg/services"
)

// memoryWindow is how many recent messages feed the LLM context.
const memoryWindow = 20

// budgetLimitMessage is what the assistant says when the user's daily
// budget is exhausted. Delivered as a normal message, never as an error.
const budgetLimitMessage = "I've used up my daily thinking budget for your account. " +
	"I'll be back at full capacity tomorrow. Anything urgent will still be captured " +
	"and waiting in your briefing."

// systemPrompt frames the assistant for chat turns.
const systemPrompt = "You are ARIA, a proactive sales assistant. You are concise, " +
	"concrete, and honest about what you do not know. You have background context " +
	"from the user's accounts and recent signals."

// Streamer is the gateway surface the chat service uses.
type Streamer interface {
	Stream(ctx context.Context, call *llm.Call) (<-chan llm.StreamChunk, error)
}

// ConversationStore is the persistence surface for conversations.
// Implemented by services.ConversationService.
type ConversationStore interface {
	CreateConversation(ctx context.Context, userID string) (*ent.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error)
	MostRecent(ctx context.Context, userID string) (*ent.Conversation, error)
	AppendMessage(ctx context.Context, conversationID, role, content string) (*ent.Message, error)
	History(ctx context.Context, conversationID string, limit int) ([]*ent.Message, error)
}

// LoginReplayStore drains parked messages on session start. Implemented
// by services.LoginQueueService.
type LoginReplayStore interface {
	Undelivered(ctx context.Context, userID string) ([]*ent.LoginMessage, error)
	MarkDelivered(ctx context.Context, ids []string) error
}

// Sender pushes payloads to the user's live connections. Implemented by
// delivery.Hub.
type Sender interface {
	SendToUser(ctx context.Context, userID string, payload interface{}) bool
}

// Service handles chat turns. Turns within one conversation are
// serialized; turns across conversations run freely.
type Service struct {
	gateway       Streamer
	conversations ConversationStore
	loginQueue    LoginReplayStore
	hub           Sender
	logger        *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a chat service.
func NewService(gateway Streamer, conversations ConversationStore, loginQueue LoginReplayStore, hub Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway:       gateway,
		conversations: conversations,
		loginQueue:    loginQueue,
		hub:           hub,
		logger:        logger,
		locks:         make(map[string]*sync.Mutex),
	}
}

// ReplayLoginQueue pushes every undelivered parked message to the user
// and marks them delivered. Called on session handshake, before the
// first user input is processed.
func (s *Service) ReplayLoginQueue(ctx context.Context, userID string) error {
	parked, err := s.loginQueue.Undelivered(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load login queue: %w", err)
	}
	if len(parked) == 0 {
		return nil
	}

	ids := make([]string, 0, len(parked))
	for _, msg := range parked {
		s.hub.SendToUser(ctx, userID, delivery.MessagePayload{
			Type:     delivery.TypeMessage,
			Title:    msg.Title,
			Content:  msg.Message,
			Category: msg.Category,
			Metadata: msg.Metadata,
		})
		ids = append(ids, msg.ID)
	}
	if err := s.loginQueue.MarkDelivered(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark login messages delivered: %w", err)
	}
	s.logger.Info("login queue replayed",
		slog.String("user_id", userID),
		slog.Int("messages", len(ids)))
	return nil
}

// HandleUserMessage processes one chat turn: resolve the conversation,
// persist the user message, stream the assistant's reply to the hub, and
// persist the completed reply.
func (s *Service) HandleUserMessage(ctx context.Context, userID, conversationID, text string) error {
	if text == "" {
		return services.NewValidationError("message", "required")
	}

	conv, err := s.resolveConversation(ctx, userID, conversationID)
	if err != nil {
		return err
	}

	// Serialize turns per conversation; concurrent sends from the same
	// conversation process in arrival order.
	lock := s.conversationLock(conv.ID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.conversations.AppendMessage(ctx, conv.ID, "user", text); err != nil {
		return err
	}

	s.hub.SendToUser(ctx, userID, delivery.ThinkingPayload{
		Type:           delivery.TypeThinking,
		ConversationID: conv.ID,
	})

	call, err := s.buildCall(ctx, userID, conv.ID)
	if err != nil {
		return err
	}

	chunks, err := s.gateway.Stream(ctx, call)
	if err != nil {
		return s.handleStreamSetupError(ctx, userID, conv.ID, err)
	}

	var reply string
	for chunk := range chunks {
		if chunk.Err != nil {
			s.hub.SendToUser(ctx, userID, delivery.StreamErrorPayload{
				Type:           delivery.TypeStreamError,
				ConversationID: conv.ID,
				Error:          "I hit a snag answering that. Please try again.",
				Recoverable:    true,
			})
			return chunk.Err
		}
		if chunk.Thinking || chunk.Content == "" {
			continue
		}
		reply += chunk.Content
		s.hub.SendToUser(ctx, userID, delivery.TokenPayload{
			Type:           delivery.TypeToken,
			ConversationID: conv.ID,
			Content:        chunk.Content,
		})
	}

	msg, err := s.conversations.AppendMessage(ctx, conv.ID, "assistant", reply)
	if err != nil {
		return err
	}
	s.hub.SendToUser(ctx, userID, delivery.StreamCompletePayload{
		Type:           delivery.TypeStreamComplete,
		ConversationID: conv.ID,
		MessageID:      msg.ID,
	})
	return nil
}

// handleStreamSetupError maps pre-stream failures to user-facing
// outcomes. Budget exhaustion is a polite message, not an error.
func (s *Service) handleStreamSetupError(ctx context.Context, userID, conversationID string, err error) error {
	if errors.Is(err, llm.ErrBudgetExceeded) {
		if _, aerr := s.conversations.AppendMessage(ctx, conversationID, "assistant", budgetLimitMessage); aerr != nil {
			s.logger.Warn("failed to persist budget limit message",
				slog.String("conversation_id", conversationID),
				slog.String("error", aerr.Error()))
		}
		s.hub.SendToUser(ctx, userID, delivery.MessagePayload{
			Type:           delivery.TypeMessage,
			ConversationID: conversationID,
			Content:        budgetLimitMessage,
		})
		return nil
	}

	s.hub.SendToUser(ctx, userID, delivery.StreamErrorPayload{
		Type:           delivery.TypeStreamError,
		ConversationID: conversationID,
		Error:          "I could not reach my reasoning engine. Please try again.",
		Recoverable:    true,
	})
	return err
}

// resolveConversation finds the turn's conversation: an explicit ID must
// exist and belong to the user; no ID means the most recent conversation,
// or a fresh one for first-time chatters.
func (s *Service) resolveConversation(ctx context.Context, userID, conversationID string) (*ent.Conversation, error) {
	if conversationID != "" {
		conv, err := s.conversations.GetConversation(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if conv.UserID != userID {
			return nil, fmt.Errorf("conversation %s does not belong to user %s", conversationID, userID)
		}
		return conv, nil
	}

	conv, err := s.conversations.MostRecent(ctx, userID)
	if errors.Is(err, services.ErrNotFound) {
		return s.conversations.CreateConversation(ctx, userID)
	}
	return conv, err
}

// buildCall assembles the working-memory window into a gateway call.
func (s *Service) buildCall(ctx context.Context, userID, conversationID string) (*llm.Call, error) {
	history, err := s.conversations.History(ctx, conversationID, memoryWindow)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(history))
	for _, m := range history {
		messages = append(messages, llm.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return &llm.Call{
		UserID:   userID,
		TaskType: "chat",
		System:   systemPrompt,
		Messages: messages,
	}, nil
}

func (s *Service) conversationLock(conversationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[conversationID] = lock
	}
	return lock
}
