// Package llm wraps the external natural-language completion service. The
// engine treats the service as optional: every caller has a deterministic
// fallback, and failures here degrade rather than propagate.
package llm

import (
	"context"
	"errors"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// CompleteRequest holds the parameters for a completion call.
type CompleteRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the task default
	MaxTokens    *int     // nil uses the task default
}

// CompleteResponse holds the result of a completion call.
type CompleteResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to the completion service.
type Client interface {
	// Complete sends a prompt and returns the raw text response.
	Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error)

	// Available reports whether the client is configured and enabled.
	Available() bool
}

// chatClient implements Client on an OpenAI-compatible chat completions API.
// BaseURL may point at any compatible gateway (a local llama.cpp or test
// server included).
type chatClient struct {
	cfg      Config
	api      openai.Client
	observer Observer
}

// NewClient creates a Client from cfg. A nil observer is replaced by a noop.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	// Retry count follows our config, not the SDK's built-in retry.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &chatClient{
		cfg:      cfg,
		api:      openai.NewClient(opts...),
		observer: observer,
	}
}

func (c *chatClient) Available() bool {
	return c.cfg.Enabled && (c.cfg.APIKey != "" || c.cfg.BaseURL != "")
}

func (c *chatClient) Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error) {
	start := time.Now()

	if !c.Available() {
		return nil, ErrDisabled
	}

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Model:       shared.ChatModel(c.cfg.Model),
		Temperature: openai.Float(temp),
	}
	if maxTok > 0 {
		params.MaxTokens = openai.Int(int64(maxTok))
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		completion, err := c.api.Chat.Completions.New(ctx, params)
		if err == nil && len(completion.Choices) > 0 {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &CompleteResponse{
				Text:      completion.Choices[0].Message.Content,
				Model:     completion.Model,
				LatencyMs: latency,
			}, nil
		}
		if err == nil {
			err = errors.New("completion returned no choices")
		}
		lastErr = err

		// Context cancellation or timeout ends the retry loop.
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	wrapped := wrapError(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(wrapped),
	})
	return nil, wrapped
}

func wrapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	return errors.Join(ErrUnavailable, err)
}

func isTimeout(err error) bool       { return errors.Is(err, ErrTimeout) }
func isUnavailable(err error) bool   { return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrDisabled) }
func isInvalidOutput(err error) bool { return errors.Is(err, ErrInvalidOutput) }
