// Package api is the HTTP and websocket boundary: session handshake,
// inbound chat dispatch, the notifications inbox, the usage dashboard,
// and integration onboarding.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/database"
	"github.com/ariahq/aria/pkg/delivery"
	"github.com/ariahq/aria/pkg/integrations"
	"github.com/ariahq/aria/pkg/models"
)

// healthTimeout bounds the health check's database ping.
const healthTimeout = 5 * time.Second

// ChatService is the chat surface the websocket handler drives.
type ChatService interface {
	HandleUserMessage(ctx context.Context, userID, conversationID, text string) error
	ReplayLoginQueue(ctx context.Context, userID string) error
}

// ActionApprover resolves pending agent actions from user decisions.
type ActionApprover interface {
	Approve(ctx context.Context, userID, actionID string) (map[string]interface{}, error)
	Reject(ctx context.Context, userID, actionID string) error
}

// NotificationInbox is the notification surface the REST API exposes.
type NotificationInbox interface {
	ListInbox(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*ent.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

// UsageReader loads one day of usage for the dashboard.
type UsageReader interface {
	GetDay(ctx context.Context, userID, day string) (models.DailyUsage, error)
}

// GovernorOps is the Cost Governor surface the API uses: pricing for the
// dashboard and the retry-counter clear on goal completion.
type GovernorOps interface {
	EstimatedCostCents(usage models.Usage) int
	ClearRetryCount(goalID string)
}

// GoalStore manages goal lifecycle rows.
type GoalStore interface {
	CreateGoal(ctx context.Context, goalID, userID, title string) (*ent.Goal, error)
	CompleteGoal(ctx context.Context, goalID string) (bool, error)
}

// AuthBroker is the OAuth onboarding surface of the integration broker.
type AuthBroker interface {
	GenerateAuthURL(ctx context.Context, userID, provider, redirectURI string) (string, error)
	ExchangeCode(ctx context.Context, userID, provider, code string) (*integrations.Connection, error)
}

// BreakerReporter exposes the gateway circuit state for health reporting.
type BreakerReporter interface {
	BreakerState() string
}

// Server is the HTTP server. All dependencies are narrow interfaces so
// handlers test without a database or live gateway.
type Server struct {
	db            *database.Client
	auth          Authenticator
	hub           *delivery.Hub
	chat          ChatService
	approvals     ActionApprover
	notifications NotificationInbox
	usage         UsageReader
	governor      GovernorOps
	goals         GoalStore
	broker        AuthBroker
	gateway       BreakerReporter
	logger        *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	auth Authenticator,
	hub *delivery.Hub,
	chat ChatService,
	approvals ActionApprover,
	notifications NotificationInbox,
	usage UsageReader,
	governor GovernorOps,
	goals GoalStore,
	broker AuthBroker,
	gateway BreakerReporter,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:            db,
		auth:          auth,
		hub:           hub,
		chat:          chat,
		approvals:     approvals,
		notifications: notifications,
		usage:         usage,
		governor:      governor,
		goals:         goals,
		broker:        broker,
		gateway:       gateway,
		logger:        logger,
	}
}

// Routes builds the gin engine with all routes registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.GET("/ws/:user_id", s.handleWebSocket)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/users/:user_id/notifications", s.handleListNotifications)
		v1.POST("/notifications/:id/read", s.handleMarkRead)
		v1.GET("/users/:user_id/usage", s.handleUsage)
		v1.POST("/goals", s.handleCreateGoal)
		v1.POST("/goals/:id/complete", s.handleCompleteGoal)
		v1.POST("/integrations/auth-url", s.handleAuthURL)
		v1.POST("/integrations/exchange", s.handleExchangeCode)
	}

	return r
}

// Start listens on addr and blocks until the server closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	body := gin.H{
		"status":         "healthy",
		"breaker":        s.gateway.BreakerState(),
		"ws_connections": s.hub.ConnectionCount(),
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
