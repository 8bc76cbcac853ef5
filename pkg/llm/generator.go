// Package llm builds generation prompts and sends them to a language model provider.
package llm

import (
	"context"

	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/errs"
)

// MaxTokens caps the length of a generated description.
const MaxTokens = 4096

// Request is a single generation call.
type Request struct {
	Model       string
	Temperature float64
	System      string
	Prompt      string
}

// Generator sends one prompt and returns the model's raw text.
type Generator interface {
	Complete(ctx context.Context, req Request) (text string, err error)
}

// NewGenerator returns the client for the configured provider.
func NewGenerator(cfg config.Config) (gen Generator, err error) {
	err = cfg.Validate()
	if err != nil {
		return gen, err
	}

	switch cfg.GetProvider() {
	case config.ProviderOpenAI:
		gen = NewOpenAIClient(cfg.OpenAIAPIKey, cfg.BaseURL)
	case config.ProviderAnthropic:
		gen = NewAnthropicClient(cfg.AnthropicAPIKey, cfg.BaseURL)
	default:
		err = errs.Configuration("unknown provider: "+cfg.GetProvider(), nil)
		return gen, err
	}

	return gen, err
}
