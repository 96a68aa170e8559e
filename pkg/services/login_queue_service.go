package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/loginmessage"
	"github.com/google/uuid"
)

// LoginQueueService manages messages waiting for a user's next chat
// session: HIGH-priority insights that arrived while they were offline.
type LoginQueueService struct {
	client *ent.Client
}

// NewLoginQueueService creates a new LoginQueueService.
func NewLoginQueueService(client *ent.Client) *LoginQueueService {
	return &LoginQueueService{client: client}
}

// Enqueue inserts an undelivered login message.
func (s *LoginQueueService) Enqueue(ctx context.Context, req EnqueueRequest) (*ent.LoginMessage, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	create := s.client.LoginMessage.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetCategory(req.Category).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetDelivered(false).
		SetCreatedAt(time.Now())
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue login message: %w", err)
	}
	return msg, nil
}

// Undelivered returns the user's pending login messages, oldest first.
func (s *LoginQueueService) Undelivered(ctx context.Context, userID string) ([]*ent.LoginMessage, error) {
	msgs, err := s.client.LoginMessage.Query().
		Where(
			loginmessage.UserIDEQ(userID),
			loginmessage.DeliveredEQ(false),
		).
		Order(ent.Asc(loginmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query login queue: %w", err)
	}
	return msgs, nil
}

// MarkDelivered flips delivered on the given messages after replay.
func (s *LoginQueueService) MarkDelivered(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := s.client.LoginMessage.Update().
		Where(loginmessage.IDIn(ids...)).
		SetDelivered(true).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark login messages delivered: %w", err)
	}
	return nil
}
