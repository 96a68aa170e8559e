package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/goal"
)

// GoalService manages goal lifecycle. The core only tracks the completion
// transition; the caller clears the goal's retry counter when it fires.
type GoalService struct {
	client *ent.Client
}

// NewGoalService creates a new GoalService.
func NewGoalService(client *ent.Client) *GoalService {
	return &GoalService{client: client}
}

// CreateGoal stores a new active goal.
func (s *GoalService) CreateGoal(ctx context.Context, goalID, userID, title string) (*ent.Goal, error) {
	if goalID == "" {
		return nil, NewValidationError("goal_id", "required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	g, err := s.client.Goal.Create().
		SetID(goalID).
		SetUserID(userID).
		SetTitle(title).
		SetStatus(goal.StatusActive).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return g, nil
}

// CompleteGoal marks the goal completed. Returns true on the first
// transition, false when the goal was already completed.
func (s *GoalService) CompleteGoal(ctx context.Context, goalID string) (bool, error) {
	g, err := s.client.Goal.Get(ctx, goalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get goal: %w", err)
	}
	if g.Status == goal.StatusCompleted {
		return false, nil
	}

	if err := s.client.Goal.UpdateOneID(goalID).
		SetStatus(goal.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to complete goal: %w", err)
	}
	return true, nil
}
