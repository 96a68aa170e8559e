package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

// NotificationStore is the notification surface the router needs.
type NotificationStore interface {
	CreateNotification(ctx context.Context, req services.CreateNotificationRequest) (*ent.Notification, error)
	ExistsRecent(ctx context.Context, userID, notifType, title string, window time.Duration) (bool, error)
}

// BriefingStore parks LOW insights for the next briefing.
type BriefingStore interface {
	Enqueue(ctx context.Context, req services.EnqueueRequest) (*ent.BriefingItem, error)
}

// LoginStore parks HIGH insights for offline users.
type LoginStore interface {
	Enqueue(ctx context.Context, req services.EnqueueRequest) (*ent.LoginMessage, error)
}

// Pusher is the live-stream surface the router needs. Implemented by Hub.
type Pusher interface {
	IsConnected(userID string) bool
	SendToUser(ctx context.Context, userID string, payload interface{}) bool
}

// Router turns insights into delivery actions based on priority and the
// user's live-connection state.
type Router struct {
	notifications NotificationStore
	briefings     BriefingStore
	loginQueue    LoginStore
	pusher        Pusher
	dedupWindow   time.Duration
	logger        *slog.Logger
}

// NewRouter creates a proactive router.
func NewRouter(notifications NotificationStore, briefings BriefingStore, loginQueue LoginStore, pusher Pusher, dedupWindow time.Duration, logger *slog.Logger) *Router {
	if dedupWindow <= 0 {
		dedupWindow = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		notifications: notifications,
		briefings:     briefings,
		loginQueue:    loginQueue,
		pusher:        pusher,
		dedupWindow:   dedupWindow,
		logger:        logger,
	}
}

// Route delivers one insight.
//
// A duplicate within the dedup window is suppressed before anything else
// happens. Then: HIGH goes over the live stream when the user is
// connected, into notification + login queue when offline. MEDIUM always
// becomes a notification, with a lightweight live-stream ping when
// connected. LOW is parked in the briefing queue and never creates a
// notification.
func (r *Router) Route(ctx context.Context, insight models.Insight) (models.Decision, error) {
	if err := insight.Priority.Validate(); err != nil {
		return models.Decision{}, err
	}

	notifType := notificationType(insight.Category)
	dup, err := r.notifications.ExistsRecent(ctx, insight.UserID, notifType, insight.Title, r.dedupWindow)
	if err != nil {
		return models.Decision{}, fmt.Errorf("dedup check failed: %w", err)
	}
	if dup {
		r.logger.Info("insight suppressed as duplicate",
			slog.String("user_id", insight.UserID),
			slog.String("category", string(insight.Category)),
			slog.String("title", insight.Title))
		return models.Decision{Channel: models.ChannelSuppressedDupe}, nil
	}

	switch insight.Priority {
	case models.PriorityHigh:
		return r.routeHigh(ctx, insight, notifType)
	case models.PriorityMedium:
		return r.routeMedium(ctx, insight, notifType)
	default:
		return r.routeLow(ctx, insight)
	}
}

func (r *Router) routeHigh(ctx context.Context, insight models.Insight, notifType string) (models.Decision, error) {
	if r.pusher.IsConnected(insight.UserID) {
		r.pusher.SendToUser(ctx, insight.UserID, MessagePayload{
			Type:     TypeMessage,
			Title:    insight.Title,
			Content:  insight.Message,
			Category: string(insight.Category),
			Metadata: structuredMetadata(insight),
		})
		return models.Decision{Channel: models.ChannelWebSocket}, nil
	}

	// Offline: persist to the inbox and park a replay for next login.
	n, err := r.notifications.CreateNotification(ctx, services.CreateNotificationRequest{
		UserID:   insight.UserID,
		Type:     notifType,
		Title:    insight.Title,
		Message:  insight.Message,
		Link:     insight.Link,
		Metadata: insight.Metadata,
	})
	if err != nil {
		return models.Decision{}, fmt.Errorf("failed to create notification: %w", err)
	}
	if _, err := r.loginQueue.Enqueue(ctx, services.EnqueueRequest{
		UserID:   insight.UserID,
		Category: string(insight.Category),
		Title:    insight.Title,
		Message:  insight.Message,
		Metadata: insight.Metadata,
	}); err != nil {
		return models.Decision{}, fmt.Errorf("failed to enqueue login message: %w", err)
	}
	return models.Decision{Channel: models.ChannelLoginQueue, NotificationID: n.ID}, nil
}

func (r *Router) routeMedium(ctx context.Context, insight models.Insight, notifType string) (models.Decision, error) {
	n, err := r.notifications.CreateNotification(ctx, services.CreateNotificationRequest{
		UserID:   insight.UserID,
		Type:     notifType,
		Title:    insight.Title,
		Message:  insight.Message,
		Link:     insight.Link,
		Metadata: insight.Metadata,
	})
	if err != nil {
		return models.Decision{}, fmt.Errorf("failed to create notification: %w", err)
	}

	if r.pusher.IsConnected(insight.UserID) {
		r.pusher.SendToUser(ctx, insight.UserID, SignalPayload{
			Type:       TypeSignalDetected,
			Title:      insight.Title,
			Message:    insight.Message,
			Link:       insight.Link,
			Metadata:   insight.Metadata,
			DetectedAt: time.Now(),
		})
	}
	return models.Decision{Channel: models.ChannelNotification, NotificationID: n.ID}, nil
}

func (r *Router) routeLow(ctx context.Context, insight models.Insight) (models.Decision, error) {
	if _, err := r.briefings.Enqueue(ctx, services.EnqueueRequest{
		UserID:   insight.UserID,
		Category: string(insight.Category),
		Title:    insight.Title,
		Message:  insight.Message,
		Metadata: insight.Metadata,
	}); err != nil {
		return models.Decision{}, fmt.Errorf("failed to enqueue briefing item: %w", err)
	}
	return models.Decision{Channel: models.ChannelBriefingQueue}, nil
}

// structuredMetadata merges the insight's enrichments into the payload
// metadata for live HIGH deliveries.
func structuredMetadata(insight models.Insight) map[string]interface{} {
	if insight.Link == "" && insight.RichContent == nil && len(insight.Suggestions) == 0 && insight.Metadata == nil {
		return nil
	}
	md := make(map[string]interface{}, len(insight.Metadata)+3)
	for k, v := range insight.Metadata {
		md[k] = v
	}
	if insight.Link != "" {
		md["link"] = insight.Link
	}
	if insight.RichContent != nil {
		md["rich_content"] = insight.RichContent
	}
	if len(insight.Suggestions) > 0 {
		md["suggestions"] = insight.Suggestions
	}
	return md
}

// notificationType maps an insight category to the persisted notification
// type. Unknown categories fall back to the generic signal type.
func notificationType(c models.InsightCategory) string {
	switch c {
	case models.CategoryMarketSignal:
		return "SIGNAL_DETECTED"
	case models.CategoryStaleLead:
		return "STALE_LEAD"
	case models.CategoryDebriefPrompt:
		return "DEBRIEF_PROMPT"
	case models.CategoryOverdueCommitment:
		return "COMMITMENT_OVERDUE"
	case models.CategoryUrgentEmail:
		return "URGENT_EMAIL"
	case models.CategoryHealthDrop:
		return "HEALTH_DROP"
	case models.CategoryBattleCardUpdate:
		return "BATTLE_CARD_UPDATE"
	case models.CategoryConversionScoreChange:
		return "CONVERSION_SCORE_CHANGE"
	case models.CategoryWeeklyDigest:
		return "WEEKLY_DIGEST_READY"
	default:
		return "SIGNAL_DETECTED"
	}
}
