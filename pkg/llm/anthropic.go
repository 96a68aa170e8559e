package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/models"
)

// messagesAPI is the slice of the Anthropic SDK the adapter needs. Tests
// substitute a fake; production passes client.Messages.
type messagesAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
	NewStreaming(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[anthropic.MessageStreamEventUnion]
}

// AnthropicVendor implements Vendor on the Anthropic Messages API.
type AnthropicVendor struct {
	messages  messagesAPI
	model     string
	maxTokens int
	logger    *slog.Logger
}

// NewAnthropicVendor creates the production vendor adapter.
func NewAnthropicVendor(apiKey string, cfg *config.GatewayConfig, logger *slog.Logger) (*AnthropicVendor, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicVendor{
		messages:  &client.Messages,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}, nil
}

// Complete issues a blocking Messages request. thinkingBudget > 0 enables
// extended thinking; temperature is never sent alongside thinking.
func (v *AnthropicVendor) Complete(ctx context.Context, call *Call, thinkingBudget int) (*Response, error) {
	params, err := v.buildParams(call, thinkingBudget)
	if err != nil {
		return nil, err
	}

	msg, err := v.messages.New(ctx, params)
	if err != nil {
		return nil, classifyVendorError(err)
	}
	return translateMessage(msg), nil
}

// Stream issues a streaming Messages request and adapts SSE events into
// StreamChunks. The returned channel closes when the stream ends; stream
// errors arrive as a final chunk with Err set.
func (v *AnthropicVendor) Stream(ctx context.Context, call *Call) (<-chan StreamChunk, error) {
	params, err := v.buildParams(call, 0)
	if err != nil {
		return nil, err
	}

	stream := v.messages.NewStreaming(ctx, params)
	chunks := make(chan StreamChunk)

	go func() {
		defer close(chunks)

		var usage models.Usage
		var thinkingChars int

		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.MessageStartEvent:
				usage.InputTokens = int(ev.Message.Usage.InputTokens)
				usage.CacheReadTokens = int(ev.Message.Usage.CacheReadInputTokens)
				usage.CacheCreationTokens = int(ev.Message.Usage.CacheCreationInputTokens)
			case anthropic.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					select {
					case chunks <- StreamChunk{Content: delta.Text}:
					case <-ctx.Done():
						return
					}
				case anthropic.ThinkingDelta:
					thinkingChars += len(delta.Thinking)
					select {
					case chunks <- StreamChunk{Content: delta.Thinking, Thinking: true}:
					case <-ctx.Done():
						return
					}
				}
			case anthropic.MessageDeltaEvent:
				usage.OutputTokens = int(ev.Usage.OutputTokens)
			}
		}

		if err := stream.Err(); err != nil {
			select {
			case chunks <- StreamChunk{Err: classifyVendorError(err)}:
			case <-ctx.Done():
			}
			return
		}

		usage.ThinkingTokens = estimateThinkingTokens(thinkingChars)
		select {
		case chunks <- StreamChunk{Usage: &usage}:
		case <-ctx.Done():
		}
	}()

	return chunks, nil
}

// buildParams converts a Call into SDK request parameters.
func (v *AnthropicVendor) buildParams(call *Call, thinkingBudget int) (anthropic.MessageNewParams, error) {
	maxTokens := call.MaxTokens
	if maxTokens <= 0 {
		maxTokens = v.maxTokens
	}
	if thinkingBudget > 0 && thinkingBudget >= maxTokens {
		return anthropic.MessageNewParams{}, fmt.Errorf("thinking budget %d must be below max tokens %d", thinkingBudget, maxTokens)
	}

	var messages []anthropic.MessageParam
	for _, m := range call.Messages {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(v.model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if call.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: call.System}}
	}
	for _, t := range call.Tools {
		tool := anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.ToolInputSchemaParam{Properties: t.InputSchema["properties"]},
		}
		params.Tools = append(params.Tools, anthropic.ToolUnionParam{OfTool: &tool})
	}

	if thinkingBudget > 0 {
		// Thinking and temperature are mutually exclusive on the API.
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(int64(thinkingBudget))
	} else if call.Temperature != nil {
		params.Temperature = anthropic.Float(*call.Temperature)
	}

	return params, nil
}

// translateMessage converts an SDK message into a Response.
func translateMessage(msg *anthropic.Message) *Response {
	resp := &Response{
		Usage: models.Usage{
			InputTokens:         int(msg.Usage.InputTokens),
			OutputTokens:        int(msg.Usage.OutputTokens),
			CacheReadTokens:     int(msg.Usage.CacheReadInputTokens),
			CacheCreationTokens: int(msg.Usage.CacheCreationInputTokens),
		},
	}

	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			resp.Text += block.Text
		case "thinking":
			resp.Thinking += block.Thinking
		case "tool_use":
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}

	// The API does not report thinking token usage separately.
	resp.Usage.ThinkingTokens = estimateThinkingTokens(len(resp.Thinking))
	return resp
}

// estimateThinkingTokens approximates tokens from character count at the
// conventional 4 chars per token.
func estimateThinkingTokens(chars int) int {
	return chars / 4
}

// classifyVendorError tags retryable API failures: 429, 408, and 5xx.
func classifyVendorError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429, apiErr.StatusCode == 408, apiErr.StatusCode >= 500:
			return markTransient(err)
		default:
			return err
		}
	}
	if IsTransient(err) {
		return markTransient(err)
	}
	return err
}
