package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/notification"
	"github.com/google/uuid"
)

// NotificationService manages persistent notifications and the dedup
// window lookup the proactive router relies on.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// CreateNotificationRequest carries the fields for notification creation.
type CreateNotificationRequest struct {
	UserID   string
	Type     string
	Title    string
	Message  string
	Link     string
	Metadata map[string]interface{}
}

// CreateNotification creates a notification row.
func (s *NotificationService) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*ent.Notification, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	create := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetType(req.Type).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetCreatedAt(time.Now())
	if req.Link != "" {
		create = create.SetLink(req.Link)
	}
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	n, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// ExistsRecent reports whether a notification with the same
// (user, type, title) was created within the dedup window.
func (s *NotificationService) ExistsRecent(ctx context.Context, userID, notifType, title string, window time.Duration) (bool, error) {
	cutoff := time.Now().Add(-window)
	exists, err := s.client.Notification.Query().
		Where(
			notification.UserIDEQ(userID),
			notification.TypeEQ(notifType),
			notification.TitleEQ(title),
			notification.CreatedAtGT(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check recent notifications: %w", err)
	}
	return exists, nil
}

// ListInbox returns the user's notifications, newest first.
func (s *NotificationService) ListInbox(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	q := s.client.Notification.Query().
		Where(notification.UserIDEQ(userID))
	if unreadOnly {
		q = q.Where(notification.ReadAtIsNil())
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	items, err := q.Order(ent.Desc(notification.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

// MarkRead sets read_at on a notification. Idempotent: re-reading keeps
// the original timestamp.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	n, err := s.client.Notification.Get(ctx, notificationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n.ReadAt != nil {
		return nil
	}

	if err := s.client.Notification.UpdateOneID(notificationID).
		SetReadAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
