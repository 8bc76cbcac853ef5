package llm

import (
	"context"
	"math"
	"strings"

	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/nikogura/jd-agent/pkg/jobdesc"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAIClient talks to the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	schema *jsonschema.Definition
}

// NewOpenAIClient creates a client. baseURL is optional.
func NewOpenAIClient(apiKey, baseURL string) (client *OpenAIClient) {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	client = &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
	}

	// The schema is advisory; the response is validated on our side regardless.
	schema, err := jsonschema.GenerateSchemaForType(jobdesc.JobDescription{})
	if err == nil {
		client.schema = schema
	}

	return client
}

// Complete sends the prompt as a single user message.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (text string, err error) {
	// A zero temperature is dropped by omitempty and the API falls back to 1.0.
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: temperature,
		MaxTokens:   MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
	}

	if c.schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "job_description",
				Schema: c.schema,
				Strict: false,
			},
		}
	}

	var resp openai.ChatCompletionResponse
	resp, err = c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		err = errs.Transport("OpenAI request failed", err)
		return text, err
	}

	if len(resp.Choices) == 0 {
		err = errs.Transport("OpenAI response had no choices", nil)
		return text, err
	}

	text = resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		err = errs.Transport("OpenAI response was empty", errors.Errorf("finish reason %q", resp.Choices[0].FinishReason))
		return text, err
	}

	return text, err
}
