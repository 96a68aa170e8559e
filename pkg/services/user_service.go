package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/user"
)

// UserService manages platform users.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// CreateUserRequest carries the fields for user creation.
type CreateUserRequest struct {
	UserID              string
	Email               string
	DisplayName         string
	Timezone            string
	Onboarded           bool
	DailyTokenBudget    int
	DailyThinkingBudget int
	TrackedCompetitors  []string
}

// CreateUser creates a new user row.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*ent.User, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	create := s.client.User.Create().
		SetID(req.UserID).
		SetOnboarded(req.Onboarded).
		SetDailyTokenBudget(req.DailyTokenBudget).
		SetDailyThinkingBudget(req.DailyThinkingBudget).
		SetCreatedAt(time.Now())
	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}
	if req.DisplayName != "" {
		create = create.SetDisplayName(req.DisplayName)
	}
	if req.Timezone != "" {
		create = create.SetTimezone(req.Timezone)
	}
	if len(req.TrackedCompetitors) > 0 {
		create = create.SetTrackedCompetitors(req.TrackedCompetitors)
	}

	u, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetUser retrieves a user by ID. Returns ErrNotFound for unknown IDs.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Budgets returns the user's daily token and thinking budget overrides.
// Zero values mean no override is set.
func (s *UserService) Budgets(ctx context.Context, userID string) (int, int, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return u.DailyTokenBudget, u.DailyThinkingBudget, nil
}

// ListOnboarded returns the active-user fleet background jobs iterate.
func (s *UserService) ListOnboarded(ctx context.Context) ([]*ent.User, error) {
	users, err := s.client.User.Query().
		Where(user.OnboardedEQ(true)).
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarded users: %w", err)
	}
	return users, nil
}

// Location resolves the user's timezone, falling back to UTC when the
// zone name does not load.
func Location(u *ent.User) *time.Location {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
