package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/commitment"
	"github.com/google/uuid"
)

// CommitmentService manages user commitments for the overdue sweep.
type CommitmentService struct {
	client *ent.Client
}

// NewCommitmentService creates a new CommitmentService.
func NewCommitmentService(client *ent.Client) *CommitmentService {
	return &CommitmentService{client: client}
}

// CreateCommitmentRequest carries the fields for commitment creation.
type CreateCommitmentRequest struct {
	UserID      string
	Description string
	Contact     string
	DueAt       time.Time
}

// CreateCommitment stores a commitment.
func (s *CommitmentService) CreateCommitment(ctx context.Context, req CreateCommitmentRequest) (*ent.Commitment, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	create := s.client.Commitment.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetDescription(req.Description).
		SetDueAt(req.DueAt).
		SetCreatedAt(time.Now())
	if req.Contact != "" {
		create = create.SetContact(req.Contact)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}
	return c, nil
}

// OverdueUnnudged returns open commitments past due that the sweep has
// not surfaced yet. nudged_at is the sweep's idempotency marker.
func (s *CommitmentService) OverdueUnnudged(ctx context.Context, userID string, now time.Time) ([]*ent.Commitment, error) {
	items, err := s.client.Commitment.Query().
		Where(
			commitment.UserIDEQ(userID),
			commitment.CompletedEQ(false),
			commitment.DueAtLT(now),
			commitment.NudgedAtIsNil(),
		).
		Order(ent.Asc(commitment.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue commitments: %w", err)
	}
	return items, nil
}

// MarkNudged records that the sweep surfaced this commitment.
func (s *CommitmentService) MarkNudged(ctx context.Context, commitmentID string, at time.Time) error {
	err := s.client.Commitment.UpdateOneID(commitmentID).
		SetNudgedAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark commitment nudged: %w", err)
	}
	return nil
}
