package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

const defaultInboxLimit = 50

// notificationView is the inbox wire shape.
type notificationView struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Link      string                 `json:"link,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}

// handleListNotifications serves GET /api/v1/users/:user_id/notifications.
func (s *Server) handleListNotifications(c *gin.Context) {
	userID := c.Param("user_id")
	unreadOnly := c.Query("unread") == "true"

	limit := defaultInboxLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	notifications, err := s.notifications.ListInbox(c.Request.Context(), userID, unreadOnly, limit)
	if err != nil {
		s.logger.Error("failed to list notifications", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		v := notificationView{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Metadata:  n.Metadata,
			Read:      n.ReadAt != nil,
			CreatedAt: n.CreatedAt,
		}
		if n.Link != nil {
			v.Link = *n.Link
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, gin.H{"notifications": views})
}

// handleMarkRead serves POST /api/v1/notifications/:id/read.
func (s *Server) handleMarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := s.notifications.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		s.logger.Error("failed to mark notification read", "notification_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// handleUsage serves GET /api/v1/users/:user_id/usage. Defaults to today
// (UTC); an explicit date selects a past day.
func (s *Server) handleUsage(c *gin.Context) {
	userID := c.Param("user_id")
	day := c.Query("date")
	if day == "" {
		day = services.Today()
	} else if _, err := time.Parse(services.DayFormat, day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	usage, err := s.usage.GetDay(c.Request.Context(), userID, day)
	if err != nil {
		s.logger.Error("failed to load usage", "user_id", userID, "day", day, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load usage"})
		return
	}

	// Recompute cost from current rates so rate changes reflect in the
	// dashboard without rewriting historical rows.
	cost := s.governor.EstimatedCostCents(models.Usage{
		InputTokens:         usage.InputTokens,
		OutputTokens:        usage.OutputTokens,
		ThinkingTokens:      usage.ThinkingTokens,
		CacheReadTokens:     usage.CacheReadTokens,
		CacheCreationTokens: usage.CacheCreationTokens,
	})

	c.JSON(http.StatusOK, gin.H{
		"user_id":               userID,
		"date":                  day,
		"input_tokens":          usage.InputTokens,
		"output_tokens":         usage.OutputTokens,
		"thinking_tokens":       usage.ThinkingTokens,
		"cache_read_tokens":     usage.CacheReadTokens,
		"cache_creation_tokens": usage.CacheCreationTokens,
		"total_tokens":          usage.TotalTokens(),
		"request_count":         usage.RequestCount,
		"estimated_cost_cents":  cost,
	})
}

type createGoalRequest struct {
	GoalID string `json:"goal_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
	Title  string `json:"title" binding:"required"`
}

// handleCreateGoal serves POST /api/v1/goals.
func (s *Server) handleCreateGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := s.goals.CreateGoal(c.Request.Context(), req.GoalID, req.UserID, req.Title)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "goal already exists"})
			return
		}
		s.logger.Error("failed to create goal", "goal_id", req.GoalID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// handleCompleteGoal serves POST /api/v1/goals/:id/complete. The first
// completion clears the goal's retry counter; repeats are no-ops.
func (s *Server) handleCompleteGoal(c *gin.Context) {
	id := c.Param("id")

	first, err := s.goals.CompleteGoal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		s.logger.Error("failed to complete goal", "goal_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete goal"})
		return
	}
	if first {
		s.governor.ClearRetryCount(id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed", "first_completion": first})
}

type authURLRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Provider    string `json:"provider" binding:"required"`
	RedirectURI string `json:"redirect_uri" binding:"required"`
}

// handleAuthURL serves POST /api/v1/integrations/auth-url.
func (s *Server) handleAuthURL(c *gin.Context) {
	var req authURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := s.broker.GenerateAuthURL(c.Request.Context(), req.UserID, req.Provider, req.RedirectURI)
	if err != nil {
		s.logger.Error("failed to generate auth URL", "user_id", req.UserID, "provider", req.Provider, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "integration broker unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": url})
}

type exchangeCodeRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Provider string `json:"provider" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// handleExchangeCode serves POST /api/v1/integrations/exchange.
func (s *Server) handleExchangeCode(c *gin.Context) {
	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := s.broker.ExchangeCode(c.Request.Context(), req.UserID, req.Provider, req.Code)
	if err != nil {
		s.logger.Error("failed to exchange code", "user_id", req.UserID, "provider", req.Provider, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "integration broker unavailable"})
		return
	}
	c.JSON(http.StatusOK, conn)
}
