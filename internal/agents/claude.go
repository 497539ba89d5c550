package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// CompletionRequest is one system + user exchange with the model.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Completer returns the model's text reply to a request.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type ClaudeCompleter struct {
	client anthropic.Client
	model  string
	logger *zap.Logger
}

// NewClaudeCompleter builds a completer for the Messages API. The SDK's
// own retries are disabled; failures go straight back to the caller.
func NewClaudeCompleter(apiKey, baseURL, model string, logger *zap.Logger) *ClaudeCompleter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &ClaudeCompleter{
		client: anthropic.NewClient(opts...),
		model:  model,
		logger: logger.Named("claude"),
	}
}

func (c *ClaudeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		upstream := &models.UpstreamError{Service: "anthropic", Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			upstream.Status = apiErr.StatusCode
			upstream.Details = apiErr.Error()
		}
		return "", upstream
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			c.logger.Debug("completion received",
				zap.String("model", c.model),
				zap.Int64("output_tokens", msg.Usage.OutputTokens),
			)
			return block.Text, nil
		}
	}
	return "", &models.UpstreamError{Service: "anthropic", Err: fmt.Errorf("no text content in response")}
}
