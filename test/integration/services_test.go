// Integration tests for the persistence layer against real PostgreSQL.
// Each test runs in its own schema; see test/util.
package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
	"github.com/ariahq/aria/test/util"
)

func TestUsageTracking_ConcurrentIncrementsDoNotLoseUpdates(t *testing.T) {
	client := util.SetupTestDatabase(t)
	usage := services.NewUsageService(client.Client, client.DB())
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := usage.Increment(ctx, "u1", "2026-08-19", models.Usage{
				InputTokens:    100,
				OutputTokens:   50,
				ThinkingTokens: 25,
			}, 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	day, err := usage.GetDay(ctx, "u1", "2026-08-19")
	require.NoError(t, err)
	assert.Equal(t, workers*100, day.InputTokens)
	assert.Equal(t, workers*50, day.OutputTokens)
	assert.Equal(t, workers*25, day.ThinkingTokens)
	assert.Equal(t, workers*3, day.EstimatedCostCents)
	assert.Equal(t, workers, day.RequestCount)
}

func TestUsageTracking_MissingDayReadsZero(t *testing.T) {
	client := util.SetupTestDatabase(t)
	usage := services.NewUsageService(client.Client, client.DB())

	day, err := usage.GetDay(context.Background(), "nobody", "2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, day.TotalTokens())
	assert.Zero(t, day.RequestCount)
}

func TestNotifications_DedupWindowLookup(t *testing.T) {
	client := util.SetupTestDatabase(t)
	notifications := services.NewNotificationService(client.Client)
	ctx := context.Background()

	_, err := notifications.CreateNotification(ctx, services.CreateNotificationRequest{
		UserID:  "u1",
		Type:    "SIGNAL_DETECTED",
		Title:   "Acme raised a round",
		Message: "Series C, $120M",
	})
	require.NoError(t, err)

	exists, err := notifications.ExistsRecent(ctx, "u1", "SIGNAL_DETECTED", "Acme raised a round", time.Hour)
	require.NoError(t, err)
	assert.True(t, exists)

	// Different title, same type: not a duplicate.
	exists, err = notifications.ExistsRecent(ctx, "u1", "SIGNAL_DETECTED", "Initech layoffs", time.Hour)
	require.NoError(t, err)
	assert.False(t, exists)

	// Same title, other user: not a duplicate.
	exists, err = notifications.ExistsRecent(ctx, "u2", "SIGNAL_DETECTED", "Acme raised a round", time.Hour)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotifications_InboxAndMarkRead(t *testing.T) {
	client := util.SetupTestDatabase(t)
	notifications := services.NewNotificationService(client.Client)
	ctx := context.Background()

	n, err := notifications.CreateNotification(ctx, services.CreateNotificationRequest{
		UserID:  "u1",
		Type:    "COMMITMENT_OVERDUE",
		Title:   "Proposal overdue",
		Message: "You promised Dana a proposal by Tuesday.",
	})
	require.NoError(t, err)

	unread, err := notifications.ListInbox(ctx, "u1", true, 10)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	require.NoError(t, notifications.MarkRead(ctx, n.ID))

	unread, err = notifications.ListInbox(ctx, "u1", true, 10)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := notifications.ListInbox(ctx, "u1", false, 10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].ReadAt)

	assert.ErrorIs(t, notifications.MarkRead(ctx, "missing"), services.ErrNotFound)
}

func TestBriefingQueue_DrainConsumesOnce(t *testing.T) {
	client := util.SetupTestDatabase(t)
	briefings := services.NewBriefingService(client.Client)
	ctx := context.Background()
	now := time.Now()

	for _, title := range []string{"Minor signal A", "Minor signal B"} {
		_, err := briefings.Enqueue(ctx, services.EnqueueRequest{
			UserID:   "u1",
			Category: "market_signal",
			Title:    title,
			Message:  "low relevance",
		})
		require.NoError(t, err)
	}

	pending, err := briefings.PendingCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	items, err := briefings.DrainWindow(ctx, "u1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Consumed is a one-way transition; a second drain finds nothing.
	items, err = briefings.DrainWindow(ctx, "u1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, items)

	pending, err = briefings.PendingCount(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestLoginQueue_ReplayFlow(t *testing.T) {
	client := util.SetupTestDatabase(t)
	loginQueue := services.NewLoginQueueService(client.Client)
	ctx := context.Background()

	msg, err := loginQueue.Enqueue(ctx, services.EnqueueRequest{
		UserID:   "u1",
		Category: "market_signal",
		Title:    "While you were out",
		Message:  "Acme raised a round.",
	})
	require.NoError(t, err)

	parked, err := loginQueue.Undelivered(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, parked, 1)

	require.NoError(t, loginQueue.MarkDelivered(ctx, []string{msg.ID}))

	parked, err = loginQueue.Undelivered(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, parked)
}

func TestWeeklyDigest_OncePerUserWeek(t *testing.T) {
	client := util.SetupTestDatabase(t)
	digests := services.NewDigestService(client.Client)
	ctx := context.Background()

	_, err := digests.CreateDigest(ctx, "u1", "2026-08-17", "Your week: 3 signals.", 3)
	require.NoError(t, err)

	exists, err := digests.DigestExists(ctx, "u1", "2026-08-17")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = digests.CreateDigest(ctx, "u1", "2026-08-17", "duplicate", 1)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// A new week is a fresh digest.
	_, err = digests.CreateDigest(ctx, "u1", "2026-08-24", "Your week: quiet.", 0)
	assert.NoError(t, err)
}

func TestCommitments_SweepLifecycle(t *testing.T) {
	client := util.SetupTestDatabase(t)
	commitments := services.NewCommitmentService(client.Client)
	ctx := context.Background()
	now := time.Now()

	overdueItem, err := commitments.CreateCommitment(ctx, services.CreateCommitmentRequest{
		UserID:      "u1",
		Description: "Send proposal",
		Contact:     "Dana",
		DueAt:       now.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = commitments.CreateCommitment(ctx, services.CreateCommitmentRequest{
		UserID:      "u1",
		Description: "Prepare QBR deck",
		DueAt:       now.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	overdue, err := commitments.OverdueUnnudged(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Send proposal", overdue[0].Description)

	require.NoError(t, commitments.MarkNudged(ctx, overdueItem.ID, now))

	overdue, err = commitments.OverdueUnnudged(ctx, "u1", now)
	require.NoError(t, err)
	assert.Empty(t, overdue, "nudged commitments are not re-surfaced")
}

func TestConversations_HistoryAndResolution(t *testing.T) {
	client := util.SetupTestDatabase(t)
	conversations := services.NewConversationService(client.Client)
	ctx := context.Background()

	first, err := conversations.CreateConversation(ctx, "u1")
	require.NoError(t, err)

	_, err = conversations.AppendMessage(ctx, first.ID, "user", "hello")
	require.NoError(t, err)
	_, err = conversations.AppendMessage(ctx, first.ID, "assistant", "hi, how can I help?")
	require.NoError(t, err)

	history, err := conversations.History(ctx, first.ID, 20)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "hi, how can I help?", history[1].Content)

	second, err := conversations.CreateConversation(ctx, "u1")
	require.NoError(t, err)

	recent, err := conversations.MostRecent(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, recent.ID)

	_, err = conversations.GetConversation(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSignals_IdempotencyAndEntityMemory(t *testing.T) {
	client := util.SetupTestDatabase(t)
	signals := services.NewSignalService(client.Client)
	ctx := context.Background()

	_, err := signals.CreateSignal(ctx, services.CreateSignalRequest{
		UserID:    "u1",
		Entity:    "Acme",
		Headline:  "Acme raised a round",
		Summary:   "Series C, $120M",
		Relevance: 0.9,
	})
	require.NoError(t, err)

	exists, err := signals.HeadlineExists(ctx, "u1", "Acme raised a round")
	require.NoError(t, err)
	assert.True(t, exists)

	entities, err := signals.RecentEntities(ctx, "u1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Contains(t, entities, "Acme")

	week, err := signals.ListSince(ctx, "u1", time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, week, 1)
}

func TestUsers_OnboardedFleetAndBudgets(t *testing.T) {
	client := util.SetupTestDatabase(t)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, services.CreateUserRequest{
		UserID:              "u1",
		Timezone:            "Europe/London",
		Onboarded:           true,
		DailyTokenBudget:    5000,
		DailyThinkingBudget: 2000,
		TrackedCompetitors:  []string{"Acme", "Initech"},
	})
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, services.CreateUserRequest{
		UserID:    "u2",
		Onboarded: false,
	})
	require.NoError(t, err)

	fleet, err := users.ListOnboarded(ctx)
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, "u1", fleet[0].ID)

	tokens, thinking, err := users.Budgets(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5000, tokens)
	assert.Equal(t, 2000, thinking)

	_, _, err = users.Budgets(ctx, "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGoals_CompletionTransitionFiresOnce(t *testing.T) {
	client := util.SetupTestDatabase(t)
	goals := services.NewGoalService(client.Client)
	ctx := context.Background()

	_, err := goals.CreateGoal(ctx, "g-1", "u1", "Close the Acme renewal")
	require.NoError(t, err)

	_, err = goals.CreateGoal(ctx, "g-1", "u1", "Close the Acme renewal")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	first, err := goals.CompleteGoal(ctx, "g-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := goals.CompleteGoal(ctx, "g-1")
	require.NoError(t, err)
	assert.False(t, again)

	_, err = goals.CompleteGoal(ctx, "g-missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
