package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

type fakeNotifications struct {
	existing bool
	created  []services.CreateNotificationRequest
}

func (f *fakeNotifications) CreateNotification(ctx context.Context, req services.CreateNotificationRequest) (*ent.Notification, error) {
	f.created = append(f.created, req)
	return &ent.Notification{ID: "n-1", UserID: req.UserID, Type: req.Type, Title: req.Title}, nil
}

func (f *fakeNotifications) ExistsRecent(ctx context.Context, userID, notifType, title string, window time.Duration) (bool, error) {
	return f.existing, nil
}

type fakeBriefings struct {
	enqueued []services.EnqueueRequest
}

func (f *fakeBriefings) Enqueue(ctx context.Context, req services.EnqueueRequest) (*ent.BriefingItem, error) {
	f.enqueued = append(f.enqueued, req)
	return &ent.BriefingItem{ID: "b-1"}, nil
}

type fakeLoginQueue struct {
	enqueued []services.EnqueueRequest
}

func (f *fakeLoginQueue) Enqueue(ctx context.Context, req services.EnqueueRequest) (*ent.LoginMessage, error) {
	f.enqueued = append(f.enqueued, req)
	return &ent.LoginMessage{ID: "l-1"}, nil
}

type fakePusher struct {
	connected bool
	sent      []interface{}
}

func (f *fakePusher) IsConnected(userID string) bool { return f.connected }

func (f *fakePusher) SendToUser(ctx context.Context, userID string, payload interface{}) bool {
	f.sent = append(f.sent, payload)
	return f.connected
}

type routerFixture struct {
	router        *Router
	notifications *fakeNotifications
	briefings     *fakeBriefings
	loginQueue    *fakeLoginQueue
	pusher        *fakePusher
}

func newFixture(connected bool) *routerFixture {
	f := &routerFixture{
		notifications: &fakeNotifications{},
		briefings:     &fakeBriefings{},
		loginQueue:    &fakeLoginQueue{},
		pusher:        &fakePusher{connected: connected},
	}
	f.router = NewRouter(f.notifications, f.briefings, f.loginQueue, f.pusher, time.Hour, nil)
	return f
}

func insight(priority models.Priority) models.Insight {
	return models.Insight{
		UserID:   "u1",
		Priority: priority,
		Category: models.CategoryMarketSignal,
		Title:    "Acme raises Series C",
		Message:  "Acme closed a 120M round led by Example Capital.",
	}
}

func TestRoute_SuppressesDuplicates(t *testing.T) {
	f := newFixture(true)
	f.notifications.existing = true

	decision, err := f.router.Route(context.Background(), insight(models.PriorityHigh))
	require.NoError(t, err)
	assert.Equal(t, models.ChannelSuppressedDupe, decision.Channel)
	assert.Empty(t, f.notifications.created)
	assert.Empty(t, f.loginQueue.enqueued)
	assert.Empty(t, f.pusher.sent)
}

func TestRoute_HighOnlineGoesToWebSocket(t *testing.T) {
	f := newFixture(true)

	decision, err := f.router.Route(context.Background(), insight(models.PriorityHigh))
	require.NoError(t, err)
	assert.Equal(t, models.ChannelWebSocket, decision.Channel)
	require.Len(t, f.pusher.sent, 1)
	payload, ok := f.pusher.sent[0].(MessagePayload)
	require.True(t, ok)
	assert.Equal(t, TypeMessage, payload.Type)
	assert.Empty(t, f.notifications.created, "live HIGH delivery creates no notification")
	assert.Empty(t, f.loginQueue.enqueued)
}

func TestRoute_HighOfflineGoesToLoginQueue(t *testing.T) {
	f := newFixture(false)

	decision, err := f.router.Route(context.Background(), insight(models.PriorityHigh))
	require.NoError(t, err)
	assert.Equal(t, models.ChannelLoginQueue, decision.Channel)
	assert.Equal(t, "n-1", decision.NotificationID)
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, "SIGNAL_DETECTED", f.notifications.created[0].Type)
	require.Len(t, f.loginQueue.enqueued, 1)
	assert.Empty(t, f.pusher.sent)
}

func TestRoute_MediumAlwaysCreatesNotification(t *testing.T) {
	t.Run("online also pings the stream", func(t *testing.T) {
		f := newFixture(true)
		decision, err := f.router.Route(context.Background(), insight(models.PriorityMedium))
		require.NoError(t, err)
		assert.Equal(t, models.ChannelNotification, decision.Channel)
		require.Len(t, f.notifications.created, 1)
		require.Len(t, f.pusher.sent, 1)
		_, ok := f.pusher.sent[0].(SignalPayload)
		assert.True(t, ok)
	})

	t.Run("offline skips the stream", func(t *testing.T) {
		f := newFixture(false)
		decision, err := f.router.Route(context.Background(), insight(models.PriorityMedium))
		require.NoError(t, err)
		assert.Equal(t, models.ChannelNotification, decision.Channel)
		require.Len(t, f.notifications.created, 1)
		assert.Empty(t, f.pusher.sent)
	})
}

func TestRoute_LowAlwaysGoesToBriefingQueue(t *testing.T) {
	for _, connected := range []bool{true, false} {
		f := newFixture(connected)
		decision, err := f.router.Route(context.Background(), insight(models.PriorityLow))
		require.NoError(t, err)
		assert.Equal(t, models.ChannelBriefingQueue, decision.Channel)
		require.Len(t, f.briefings.enqueued, 1)
		assert.Empty(t, f.notifications.created, "LOW never creates notifications")
		assert.Empty(t, f.pusher.sent, "LOW never touches the live stream")
	}
}

func TestRoute_InvalidPriorityRejected(t *testing.T) {
	f := newFixture(true)
	_, err := f.router.Route(context.Background(), models.Insight{
		UserID:   "u1",
		Priority: "urgent",
		Title:    "x",
	})
	assert.Error(t, err)
}

func TestNotificationType_Mapping(t *testing.T) {
	assert.Equal(t, "SIGNAL_DETECTED", notificationType(models.CategoryMarketSignal))
	assert.Equal(t, "WEEKLY_DIGEST_READY", notificationType(models.CategoryWeeklyDigest))
	assert.Equal(t, "COMMITMENT_OVERDUE", notificationType(models.CategoryOverdueCommitment))
	assert.Equal(t, "SIGNAL_DETECTED", notificationType("something_new"), "unmapped categories fall back to generic")
}
