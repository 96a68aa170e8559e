package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/delivery"
	"github.com/ariahq/aria/pkg/integrations"
	"github.com/ariahq/aria/pkg/models"
	"github.com/ariahq/aria/pkg/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeChat struct {
	replayed chan string
	messages chan [3]string
}

func newFakeChat() *fakeChat {
	return &fakeChat{
		replayed: make(chan string, 8),
		messages: make(chan [3]string, 8),
	}
}

func (f *fakeChat) HandleUserMessage(ctx context.Context, userID, conversationID, text string) error {
	f.messages <- [3]string{userID, conversationID, text}
	return nil
}

func (f *fakeChat) ReplayLoginQueue(ctx context.Context, userID string) error {
	f.replayed <- userID
	return nil
}

type fakeApprover struct {
	approveErr error
	approved   []string
	rejected   []string
}

func (f *fakeApprover) Approve(ctx context.Context, userID, actionID string) (map[string]interface{}, error) {
	f.approved = append(f.approved, actionID)
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	return map[string]interface{}{"ok": true}, nil
}

func (f *fakeApprover) Reject(ctx context.Context, userID, actionID string) error {
	f.rejected = append(f.rejected, actionID)
	return nil
}

type fakeInbox struct {
	notifications []*ent.Notification
	markReadErr   error
	read          []string
}

func (f *fakeInbox) ListInbox(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	return f.notifications, nil
}

func (f *fakeInbox) MarkRead(ctx context.Context, notificationID string) error {
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.read = append(f.read, notificationID)
	return nil
}

type fakeUsageReader struct {
	day models.DailyUsage
}

func (f *fakeUsageReader) GetDay(ctx context.Context, userID, day string) (models.DailyUsage, error) {
	out := f.day
	out.UserID = userID
	out.Day = day
	return out, nil
}

type fakeGovernor struct {
	cents   int
	cleared []string
}

func (f *fakeGovernor) EstimatedCostCents(usage models.Usage) int { return f.cents }

func (f *fakeGovernor) ClearRetryCount(goalID string) { f.cleared = append(f.cleared, goalID) }

type fakeGoals struct {
	created     []string
	createErr   error
	completeErr error
	first       bool
}

func (f *fakeGoals) CreateGoal(ctx context.Context, goalID, userID, title string) (*ent.Goal, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, goalID)
	return &ent.Goal{ID: goalID, UserID: userID, Title: title}, nil
}

func (f *fakeGoals) CompleteGoal(ctx context.Context, goalID string) (bool, error) {
	if f.completeErr != nil {
		return false, f.completeErr
	}
	return f.first, nil
}

type fakeAuthBroker struct{}

func (f *fakeAuthBroker) GenerateAuthURL(ctx context.Context, userID, provider, redirectURI string) (string, error) {
	return "https://auth.example.com/" + provider, nil
}

func (f *fakeAuthBroker) ExchangeCode(ctx context.Context, userID, provider, code string) (*integrations.Connection, error) {
	return &integrations.Connection{ID: "conn-1", UserID: userID, Provider: provider}, nil
}

type fakeBreaker struct{ state string }

func (f *fakeBreaker) BreakerState() string { return f.state }

type serverFixture struct {
	server   *Server
	auth     *HMACAuthenticator
	hub      *delivery.Hub
	chat     *fakeChat
	approver *fakeApprover
	inbox    *fakeInbox
	usage    *fakeUsageReader
	governor *fakeGovernor
	goals    *fakeGoals
}

func newFixture(t *testing.T) *serverFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := NewHMACAuthenticator("test-secret")
	hub := delivery.NewHub(time.Second, testLogger())
	chat := newFakeChat()
	approver := &fakeApprover{}
	inbox := &fakeInbox{}
	usage := &fakeUsageReader{}
	governor := &fakeGovernor{cents: 42}
	goals := &fakeGoals{}

	srv := NewServer(nil, auth, hub, chat, approver, inbox, usage,
		governor, goals, &fakeAuthBroker{}, &fakeBreaker{state: "closed"}, testLogger())
	return &serverFixture{
		server:   srv,
		auth:     auth,
		hub:      hub,
		chat:     chat,
		approver: approver,
		inbox:    inbox,
		usage:    usage,
		governor: governor,
		goals:    goals,
	}
}

func wsURL(httpURL, path string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http") + path
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestWebSocket_MissingTokenClosesPolicyViolation(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
}

func TestWebSocket_UserMismatchClosesPolicyViolation(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Token belongs to u1, URL claims u2.
	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u2?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
}

func TestWebSocket_BadSignatureClosesPolicyViolation(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token=u1.deadbeef"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
}

func TestWebSocket_HandshakeGreetsAndReplays(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	frame := readFrame(t, ctx, conn)
	assert.Equal(t, delivery.TypeConnected, frame["type"])
	assert.Equal(t, "u1", frame["user_id"])
	assert.NotEmpty(t, frame["session_id"])

	select {
	case replayedUser := <-fx.chat.replayed:
		assert.Equal(t, "u1", replayedUser)
	case <-ctx.Done():
		t.Fatal("login queue was never replayed")
	}
}

func TestWebSocket_PingPong(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn) // connected

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"ping"}`)))
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, delivery.TypePong, frame["type"])
}

func TestWebSocket_UserMessageDispatchesToChat(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn)

	payload := `{"type":"user.message","message":"what changed at Acme?","conversation_id":"c-1"}`
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(payload)))

	select {
	case got := <-fx.chat.messages:
		assert.Equal(t, [3]string{"u1", "c-1", "what changed at Acme?"}, got)
	case <-ctx.Done():
		t.Fatal("chat never received the message")
	}
}

func TestWebSocket_ApproveSendsActionCompleted(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"user.approve","action_id":"a-1"}`)))
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, delivery.TypeActionCompleted, frame["type"])
	assert.Equal(t, "a-1", frame["action_id"])
	assert.Equal(t, "completed", frame["status"])
}

func TestWebSocket_FailedApproveReportsFailure(t *testing.T) {
	fx := newFixture(t)
	fx.approver.approveErr = errors.New("broker unavailable")
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"user.approve","action_id":"a-2"}`)))
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, "failed", frame["status"])
	assert.Contains(t, frame["error"], "broker unavailable")
}

func TestWebSocket_RejectSendsRejectedStatus(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"user.reject","action_id":"a-3"}`)))
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, "rejected", frame["status"])
	assert.Equal(t, []string{"a-3"}, fx.approver.rejected)
}

func TestWebSocket_MalformedFrameIsDropped(t *testing.T) {
	fx := newFixture(t)
	ts := httptest.NewServer(fx.server.Routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := fx.auth.MintToken("u1")
	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL, "/ws/u1?token="+token), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readFrame(t, ctx, conn)

	// Garbage, then a ping. The pong proves the loop survived.
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{not json`)))
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"heartbeat"}`)))
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, delivery.TypePong, frame["type"])
}

func TestListNotifications(t *testing.T) {
	fx := newFixture(t)
	readAt := time.Now()
	link := "https://news.example.com/acme"
	fx.inbox.notifications = []*ent.Notification{
		{ID: "n-1", UserID: "u1", Type: "SIGNAL_DETECTED", Title: "Acme raised a round", Message: "Series C", Link: &link},
		{ID: "n-2", UserID: "u1", Type: "WEEKLY_DIGEST_READY", Title: "Your week", Message: "...", ReadAt: &readAt},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/notifications", nil)
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Notifications []notificationView `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Notifications, 2)
	assert.Equal(t, "https://news.example.com/acme", body.Notifications[0].Link)
	assert.False(t, body.Notifications[0].Read)
	assert.True(t, body.Notifications[1].Read)
}

func TestListNotifications_BadLimit(t *testing.T) {
	fx := newFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/notifications?limit=zero", nil)
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkRead_NotFound(t *testing.T) {
	fx := newFixture(t)
	fx.inbox.markReadErr = services.ErrNotFound

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/n-404/read", nil)
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsageDashboard(t *testing.T) {
	fx := newFixture(t)
	fx.usage.day = models.DailyUsage{
		InputTokens:    1000,
		OutputTokens:   500,
		ThinkingTokens: 200,
		RequestCount:   7,
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/usage?date=2026-08-19", nil)
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-08-19", body["date"])
	assert.Equal(t, float64(1700), body["total_tokens"])
	assert.Equal(t, float64(42), body["estimated_cost_cents"])
}

func TestUsageDashboard_BadDate(t *testing.T) {
	fx := newFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/usage?date=next-tuesday", nil)
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegrationAuthURL(t *testing.T) {
	fx := newFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/auth-url",
		strings.NewReader(`{"user_id":"u1","provider":"salesforce","redirect_uri":"https://app.example.com/cb"}`))
	req.Header.Set("Content-Type", "application/json")
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://auth.example.com/salesforce", body["auth_url"])
}

func TestIntegrationAuthURL_MissingFields(t *testing.T) {
	fx := newFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/auth-url",
		strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteGoal_FirstCompletionClearsRetries(t *testing.T) {
	fx := newFixture(t)
	fx.goals.first = true

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals/g-1/complete", nil)
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"g-1"}, fx.governor.cleared)
}

func TestCompleteGoal_RepeatDoesNotClearAgain(t *testing.T) {
	fx := newFixture(t)
	fx.goals.first = false

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals/g-1/complete", nil)
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fx.governor.cleared)
}

func TestCompleteGoal_NotFound(t *testing.T) {
	fx := newFixture(t)
	fx.goals.completeErr = services.ErrNotFound

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals/g-404/complete", nil)
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateGoal(t *testing.T) {
	fx := newFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals",
		strings.NewReader(`{"goal_id":"g-1","user_id":"u1","title":"Close the Acme renewal"}`))
	req.Header.Set("Content-Type", "application/json")
	fx.server.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"g-1"}, fx.goals.created)
}

func TestCreateGoal_Duplicate(t *testing.T) {
	fx := newFixture(t)
	fx.goals.createErr = services.ErrAlreadyExists

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals",
		strings.NewReader(`{"goal_id":"g-1","user_id":"u1","title":"Close the Acme renewal"}`))
	req.Header.Set("Content-Type", "application/json")
	fx.server.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHMACAuthenticator_RoundTrip(t *testing.T) {
	auth := NewHMACAuthenticator("secret")

	userID, err := auth.Authenticate(auth.MintToken("u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = auth.Authenticate("u1.forged")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.Authenticate("no-separator")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewHMACAuthenticator("other-secret")
	_, err = other.Authenticate(auth.MintToken("u1"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
