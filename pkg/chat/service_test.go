package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/ent"
	"github.com/ariahq/aria/pkg/delivery"
	"github.com/ariahq/aria/pkg/llm"
	"github.com/ariahq/aria/pkg/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStreamer struct {
	chunks []llm.StreamChunk
	err    error
	calls  []*llm.Call
}

func (f *fakeStreamer) Stream(ctx context.Context, call *llm.Call) (<-chan llm.StreamChunk, error) {
	f.calls = append(f.calls, call)
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan llm.StreamChunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

type fakeConversations struct {
	conversations map[string]*ent.Conversation
	mostRecent    *ent.Conversation
	messages      []*ent.Message
	nextID        int
}

func newFakeConversations() *fakeConversations {
	return &fakeConversations{conversations: make(map[string]*ent.Conversation)}
}

func (f *fakeConversations) CreateConversation(ctx context.Context, userID string) (*ent.Conversation, error) {
	f.nextID++
	conv := &ent.Conversation{ID: fmt.Sprintf("conv-%d", f.nextID), UserID: userID}
	f.conversations[conv.ID] = conv
	return conv, nil
}

func (f *fakeConversations) GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, ok := f.conversations[conversationID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return conv, nil
}

func (f *fakeConversations) MostRecent(ctx context.Context, userID string) (*ent.Conversation, error) {
	if f.mostRecent == nil {
		return nil, services.ErrNotFound
	}
	return f.mostRecent, nil
}

func (f *fakeConversations) AppendMessage(ctx context.Context, conversationID, role, content string) (*ent.Message, error) {
	msg := &ent.Message{ID: fmt.Sprintf("msg-%d", len(f.messages)+1), ConversationID: conversationID, Content: content}
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeConversations) History(ctx context.Context, conversationID string, limit int) ([]*ent.Message, error) {
	return f.messages, nil
}

type fakeLoginQueue struct {
	parked    []*ent.LoginMessage
	delivered []string
}

func (f *fakeLoginQueue) Undelivered(ctx context.Context, userID string) ([]*ent.LoginMessage, error) {
	return f.parked, nil
}

func (f *fakeLoginQueue) MarkDelivered(ctx context.Context, ids []string) error {
	f.delivered = append(f.delivered, ids...)
	return nil
}

type fakeSender struct {
	payloads []interface{}
}

func (f *fakeSender) SendToUser(ctx context.Context, userID string, payload interface{}) bool {
	f.payloads = append(f.payloads, payload)
	return true
}

func (f *fakeSender) typesSent() []string {
	var out []string
	for _, p := range f.payloads {
		switch v := p.(type) {
		case delivery.ThinkingPayload:
			out = append(out, v.Type)
		case delivery.TokenPayload:
			out = append(out, v.Type)
		case delivery.StreamCompletePayload:
			out = append(out, v.Type)
		case delivery.StreamErrorPayload:
			out = append(out, v.Type)
		case delivery.MessagePayload:
			out = append(out, v.Type)
		}
	}
	return out
}

func newTestService(streamer *fakeStreamer, convs *fakeConversations, queue *fakeLoginQueue, sender *fakeSender) *Service {
	return NewService(streamer, convs, queue, sender, testLogger())
}

func TestHandleUserMessage_StreamsAndPersists(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.StreamChunk{
		{Content: "plan", Thinking: true},
		{Content: "Hel"},
		{Content: "lo!"},
		{Usage: nil},
	}}
	convs := newFakeConversations()
	sender := &fakeSender{}
	svc := newTestService(streamer, convs, &fakeLoginQueue{}, sender)

	err := svc.HandleUserMessage(context.Background(), "u1", "", "hi there")
	require.NoError(t, err)

	assert.Equal(t, []string{
		delivery.TypeThinking,
		delivery.TypeToken,
		delivery.TypeToken,
		delivery.TypeStreamComplete,
	}, sender.typesSent(), "thinking chunks are not forwarded as tokens")

	// User message + assistant reply persisted.
	require.Len(t, convs.messages, 2)
	assert.Equal(t, "hi there", convs.messages[0].Content)
	assert.Equal(t, "Hello!", convs.messages[1].Content)
}

func TestHandleUserMessage_CreatesConversationForFirstChat(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.StreamChunk{{Content: "hi"}}}
	convs := newFakeConversations()
	svc := newTestService(streamer, convs, &fakeLoginQueue{}, &fakeSender{})

	require.NoError(t, svc.HandleUserMessage(context.Background(), "u1", "", "first message"))
	assert.Len(t, convs.conversations, 1)
}

func TestHandleUserMessage_RejectsForeignConversation(t *testing.T) {
	convs := newFakeConversations()
	convs.conversations["conv-x"] = &ent.Conversation{ID: "conv-x", UserID: "someone-else"}
	svc := newTestService(&fakeStreamer{}, convs, &fakeLoginQueue{}, &fakeSender{})

	err := svc.HandleUserMessage(context.Background(), "u1", "conv-x", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestHandleUserMessage_BudgetExceededIsPolite(t *testing.T) {
	streamer := &fakeStreamer{err: llm.ErrBudgetExceeded}
	convs := newFakeConversations()
	sender := &fakeSender{}
	svc := newTestService(streamer, convs, &fakeLoginQueue{}, sender)

	err := svc.HandleUserMessage(context.Background(), "u1", "", "one more thing")
	require.NoError(t, err, "budget exhaustion is not an error to the caller")

	types := sender.typesSent()
	require.NotEmpty(t, types)
	assert.Equal(t, delivery.TypeMessage, types[len(types)-1])
	assert.NotContains(t, types, delivery.TypeStreamError)

	last := convs.messages[len(convs.messages)-1]
	assert.Equal(t, budgetLimitMessage, last.Content, "polite reply is persisted")
}

func TestHandleUserMessage_MidStreamErrorIsRecoverable(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.StreamChunk{
		{Content: "partial"},
		{Err: errors.New("connection reset")},
	}}
	convs := newFakeConversations()
	sender := &fakeSender{}
	svc := newTestService(streamer, convs, &fakeLoginQueue{}, sender)

	err := svc.HandleUserMessage(context.Background(), "u1", "", "hello")
	require.Error(t, err)

	var streamErr *delivery.StreamErrorPayload
	for _, p := range sender.payloads {
		if v, ok := p.(delivery.StreamErrorPayload); ok {
			streamErr = &v
		}
	}
	require.NotNil(t, streamErr)
	assert.True(t, streamErr.Recoverable)

	// Only the user message was persisted; no truncated assistant reply.
	require.Len(t, convs.messages, 1)
}

func TestReplayLoginQueue(t *testing.T) {
	queue := &fakeLoginQueue{parked: []*ent.LoginMessage{
		{ID: "l-1", Title: "While you were out", Message: "Acme raised a round.", Category: "market_signal"},
		{ID: "l-2", Title: "Overdue", Message: "Proposal for Dana.", Category: "overdue_commitment"},
	}}
	sender := &fakeSender{}
	svc := newTestService(&fakeStreamer{}, newFakeConversations(), queue, sender)

	require.NoError(t, svc.ReplayLoginQueue(context.Background(), "u1"))
	assert.Len(t, sender.payloads, 2)
	assert.Equal(t, []string{"l-1", "l-2"}, queue.delivered)
}

func TestReplayLoginQueue_EmptyIsNoop(t *testing.T) {
	queue := &fakeLoginQueue{}
	sender := &fakeSender{}
	svc := newTestService(&fakeStreamer{}, newFakeConversations(), queue, sender)

	require.NoError(t, svc.ReplayLoginQueue(context.Background(), "u1"))
	assert.Empty(t, sender.payloads)
	assert.Empty(t, queue.delivered)
}

func TestConversationLock_SameConversationSameLock(t *testing.T) {
	svc := newTestService(&fakeStreamer{}, newFakeConversations(), &fakeLoginQueue{}, &fakeSender{})

	a := svc.conversationLock("conv-1")
	b := svc.conversationLock("conv-1")
	c := svc.conversationLock("conv-2")
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
