package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/marketsignal"
	"github.com/google/uuid"
)

// SignalService manages stored market signals. The (user, headline) pair
// is the signal-scan job's idempotency key.
type SignalService struct {
	client *ent.Client
}

// NewSignalService creates a new SignalService.
func NewSignalService(client *ent.Client) *SignalService {
	return &SignalService{client: client}
}

// CreateSignalRequest carries the fields for signal creation.
type CreateSignalRequest struct {
	UserID    string
	Entity    string
	Headline  string
	Summary   string
	Source    string
	Relevance float64
	Metadata  map[string]interface{}
}

// CreateSignal stores one market signal.
func (s *SignalService) CreateSignal(ctx context.Context, req CreateSignalRequest) (*ent.MarketSignal, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Headline == "" {
		return nil, NewValidationError("headline", "required")
	}

	create := s.client.MarketSignal.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetEntity(req.Entity).
		SetHeadline(req.Headline).
		SetSummary(req.Summary).
		SetRelevance(req.Relevance).
		SetCreatedAt(time.Now())
	if req.Source != "" {
		create = create.SetSource(req.Source)
	}
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	sig, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create market signal: %w", err)
	}
	return sig, nil
}

// HeadlineExists reports whether this headline is already stored for the
// user. The scan job uses it as its skip condition.
func (s *SignalService) HeadlineExists(ctx context.Context, userID, headline string) (bool, error) {
	exists, err := s.client.MarketSignal.Query().
		Where(
			marketsignal.UserIDEQ(userID),
			marketsignal.HeadlineEQ(headline),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check signal headline: %w", err)
	}
	return exists, nil
}

// RecentEntities returns the distinct subjects of signals stored for the
// user since the cutoff. Feeds the tracked-entity union for the next scan.
func (s *SignalService) RecentEntities(ctx context.Context, userID string, since time.Time) ([]string, error) {
	var entities []string
	err := s.client.MarketSignal.Query().
		Where(
			marketsignal.UserIDEQ(userID),
			marketsignal.CreatedAtGT(since),
		).
		Unique(true).
		Select(marketsignal.FieldEntity).
		Scan(ctx, &entities)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent signal entities: %w", err)
	}
	return entities, nil
}

// ListSince returns signals stored for the user after the cutoff,
// oldest first. Used to assemble the weekly digest.
func (s *SignalService) ListSince(ctx context.Context, userID string, since time.Time) ([]*ent.MarketSignal, error) {
	signals, err := s.client.MarketSignal.Query().
		Where(
			marketsignal.UserIDEQ(userID),
			marketsignal.CreatedAtGT(since),
		).
		Order(ent.Asc(marketsignal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals: %w", err)
	}
	return signals, nil
}
