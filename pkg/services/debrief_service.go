package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/ent/meetingdebrief"
	"github.com/google/uuid"
)

// DebriefService manages meeting debrief prompts. One prompt per
// (user, meeting), enforced by the unique pair.
type DebriefService struct {
	client *ent.Client
}

// NewDebriefService creates a new DebriefService.
func NewDebriefService(client *ent.Client) *DebriefService {
	return &DebriefService{client: client}
}

// DebriefExists reports whether the user was already prompted about
// this meeting.
func (s *DebriefService) DebriefExists(ctx context.Context, userID, meetingID string) (bool, error) {
	exists, err := s.client.MeetingDebrief.Query().
		Where(
			meetingdebrief.UserIDEQ(userID),
			meetingdebrief.MeetingIDEQ(meetingID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check meeting debrief: %w", err)
	}
	return exists, nil
}

// CreateDebrief records the prompt for (user, meeting).
func (s *DebriefService) CreateDebrief(ctx context.Context, userID, meetingID, meetingTitle string) (*ent.MeetingDebrief, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if meetingID == "" {
		return nil, NewValidationError("meeting_id", "required")
	}

	d, err := s.client.MeetingDebrief.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetMeetingID(meetingID).
		SetMeetingTitle(meetingTitle).
		SetPromptedAt(time.Now()).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create meeting debrief: %w", err)
	}
	return d, nil
}

// CompleteDebrief stores the user's notes and marks the debrief done.
func (s *DebriefService) CompleteDebrief(ctx context.Context, debriefID, notes string) error {
	err := s.client.MeetingDebrief.UpdateOneID(debriefID).
		SetCompleted(true).
		SetNotes(notes).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete meeting debrief: %w", err)
	}
	return nil
}
