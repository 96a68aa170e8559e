package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/weeklydigest"
	"github.com/google/uuid"
)

// DigestService manages weekly digests. (user, week_start) is the
// this-period-already-processed marker for the digest job.
type DigestService struct {
	client *ent.Client
}

// NewDigestService creates a new DigestService.
func NewDigestService(client *ent.Client) *DigestService {
	return &DigestService{client: client}
}

// DigestExists reports whether a digest was already written for the
// user's week.
func (s *DigestService) DigestExists(ctx context.Context, userID, weekStart string) (bool, error) {
	exists, err := s.client.WeeklyDigest.Query().
		Where(
			weeklydigest.UserIDEQ(userID),
			weeklydigest.WeekStartEQ(weekStart),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check weekly digest: %w", err)
	}
	return exists, nil
}

// CreateDigest stores the digest for (user, weekStart).
func (s *DigestService) CreateDigest(ctx context.Context, userID, weekStart, content string, itemCount int) (*ent.WeeklyDigest, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if weekStart == "" {
		return nil, NewValidationError("week_start", "required")
	}

	d, err := s.client.WeeklyDigest.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetWeekStart(weekStart).
		SetContent(content).
		SetItemCount(itemCount).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create weekly digest: %w", err)
	}
	return d, nil
}
