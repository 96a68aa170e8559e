package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/conversation"
	"github.com/ariahq/aria/ent/message"
	"github.com/google/uuid"
)

// ConversationService manages chat sessions and their working-memory
// message buffers.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation starts a new chat session for the user.
func (s *ConversationService) CreateConversation(ctx context.Context, userID string) (*ent.Conversation, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	conv, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation retrieves a conversation by ID.
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// MostRecent returns the user's latest conversation, or ErrNotFound when
// they have none. Used when a chat message arrives without a
// conversation_id.
func (s *ConversationService) MostRecent(ctx context.Context, userID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(conversation.UserIDEQ(userID)).
		Order(ent.Desc(conversation.FieldLastMessageAt), ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get most recent conversation: %w", err)
	}
	return conv, nil
}

// AppendMessage stores one message and bumps the conversation's
// last_message_at.
func (s *ConversationService) AppendMessage(ctx context.Context, conversationID, role, content string) (*ent.Message, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	now := time.Now()
	msg, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(message.Role(role)).
		SetContent(content).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := s.client.Conversation.UpdateOneID(conversationID).
		SetLastMessageAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update conversation timestamp: %w", err)
	}

	return msg, nil
}

// History returns the most recent messages of a conversation in
// chronological order, the working-memory window for LLM context.
func (s *ConversationService) History(ctx context.Context, conversationID string, limit int) ([]*ent.Message, error) {
	q := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	msgs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}

	// Reverse newest-first into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
