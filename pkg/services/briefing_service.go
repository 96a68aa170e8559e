package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/briefingitem"
	"github.com/google/uuid"
)

// BriefingService manages the briefing queue: LOW-priority insights parked
// until the next morning briefing drains them.
type BriefingService struct {
	client *ent.Client
}

// NewBriefingService creates a new BriefingService.
func NewBriefingService(client *ent.Client) *BriefingService {
	return &BriefingService{client: client}
}

// EnqueueRequest carries the fields for a briefing queue insert.
type EnqueueRequest struct {
	UserID   string
	Category string
	Title    string
	Message  string
	Metadata map[string]interface{}
}

// Enqueue inserts an unconsumed briefing item.
func (s *BriefingService) Enqueue(ctx context.Context, req EnqueueRequest) (*ent.BriefingItem, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	create := s.client.BriefingItem.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetCategory(req.Category).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetConsumed(false).
		SetCreatedAt(time.Now())
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	item, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue briefing item: %w", err)
	}
	return item, nil
}

// DrainWindow returns every unconsumed item for the user created inside
// [from, to) and marks them consumed. The consumed flag only ever moves
// false -> true; re-draining the same window returns nothing.
func (s *BriefingService) DrainWindow(ctx context.Context, userID string, from, to time.Time) ([]*ent.BriefingItem, error) {
	items, err := s.client.BriefingItem.Query().
		Where(
			briefingitem.UserIDEQ(userID),
			briefingitem.ConsumedEQ(false),
			briefingitem.CreatedAtGTE(from),
			briefingitem.CreatedAtLT(to),
		).
		Order(ent.Asc(briefingitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query briefing queue: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	if _, err := s.client.BriefingItem.Update().
		Where(briefingitem.IDIn(ids...)).
		SetConsumed(true).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark briefing items consumed: %w", err)
	}

	return items, nil
}

// PendingCount returns the number of unconsumed items for the user.
func (s *BriefingService) PendingCount(ctx context.Context, userID string) (int, error) {
	count, err := s.client.BriefingItem.Query().
		Where(
			briefingitem.UserIDEQ(userID),
			briefingitem.ConsumedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count briefing items: %w", err)
	}
	return count, nil
}
