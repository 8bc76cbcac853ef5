package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/nikogura/jd-agent/pkg/errs"
)

// AnthropicClient talks to the Anthropic messages API.
type AnthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates a client with retries disabled. baseURL is optional.
func NewAnthropicClient(apiKey, baseURL string) (client *AnthropicClient) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client = &AnthropicClient{
		client: anthropic.NewClient(opts...),
	}
	return client
}

// Complete sends the prompt and joins the text blocks of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (text string, err error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   MaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	var msg *anthropic.Message
	msg, err = c.client.Messages.New(ctx, params)
	if err != nil {
		err = errs.Transport("Anthropic request failed", err)
		return text, err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		err = errs.Transport("Anthropic response had no text content", nil)
		return text, err
	}

	return text, err
}
