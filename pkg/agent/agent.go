// Package agent runs the job description pipeline: role heuristic, organization
// context, prompt, model call and response validation.
package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikogura/jd-agent/pkg/jobdesc"
	"github.com/nikogura/jd-agent/pkg/llm"
	"github.com/nikogura/jd-agent/pkg/orgcontext"
	"github.com/nikogura/jd-agent/pkg/renderer"
	"github.com/nikogura/jd-agent/pkg/roles"
	"go.uber.org/zap"
)

// Settings are the per-agent generation parameters.
type Settings struct {
	Model       string
	Temperature float64
	// Style names an optional style template. Empty means none.
	Style string
}

// Store is what the agent needs from the organization store.
type Store interface {
	orgcontext.Getter
	orgcontext.TemplateSource
}

// Agent generates job descriptions.
type Agent struct {
	settings  Settings
	builder   *orgcontext.Builder
	generator llm.Generator
	logger    *zap.Logger
}

// New returns an Agent. store may be nil, in which case every request is generic.
func New(settings Settings, store Store, generator llm.Generator, logger *zap.Logger) (a *Agent) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var builder *orgcontext.Builder
	if store != nil {
		builder = orgcontext.NewBuilder(store, store)
	} else {
		builder = orgcontext.NewBuilder(nil, nil)
	}

	a = &Agent{
		settings:  settings,
		builder:   builder,
		generator: generator,
		logger:    logger,
	}
	return a
}

// Result is a generated description together with what produced it.
type Result struct {
	RequestID   string
	Role        string
	Level       roles.Level
	Context     orgcontext.Context
	Description jobdesc.JobDescription
}

// Generate produces a validated job description for userText, using orgID's stored
// data when orgID is non-empty and known.
func (a *Agent) Generate(ctx context.Context, userText, orgID string) (jd jobdesc.JobDescription, err error) {
	var result Result
	result, err = a.GenerateDetailed(ctx, userText, orgID)
	if err != nil {
		return jd, err
	}

	jd = result.Description
	return jd, err
}

// GenerateDetailed is Generate with the intermediate values exposed.
func (a *Agent) GenerateDetailed(ctx context.Context, userText, orgID string) (result Result, err error) {
	result.RequestID = uuid.New().String()
	logger := a.logger.With(zap.String("request_id", result.RequestID), zap.String("org_id", orgID))

	result.Role, result.Level = roles.Extract(userText)
	logger.Debug("extracted role", zap.String("role", result.Role), zap.String("level", string(result.Level)))

	result.Context, err = a.builder.Build(orgID, result.Role, result.Level)
	if err != nil {
		logger.Error("failed to build organization context", zap.Error(err))
		return result, err
	}
	if orgID != "" && result.Context.IsEmpty() {
		logger.Info("organization not found, generating a generic description")
	}

	result.Context, err = a.builder.WithStyle(result.Context, a.settings.Style)
	if err != nil {
		logger.Error("failed to load style template", zap.Error(err))
		return result, err
	}

	prompt := llm.BuildPrompt(userText, result.Context)

	start := time.Now()
	var raw string
	raw, err = a.generator.Complete(ctx, llm.Request{
		Model:       a.settings.Model,
		Temperature: a.settings.Temperature,
		System:      llm.SystemPrompt,
		Prompt:      prompt,
	})
	if err != nil {
		logger.Error("generation request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return result, err
	}
	logger.Debug("generation complete", zap.Duration("elapsed", time.Since(start)), zap.Int("response_bytes", len(raw)))

	result.Description, err = jobdesc.Parse(raw)
	if err != nil {
		logger.Warn("model response failed validation", zap.Error(err))
		return result, err
	}

	logger.Info("generated job description", zap.String("job_title", result.Description.JobTitle))
	return result, err
}

// Render formats jd as Markdown.
func (a *Agent) Render(jd jobdesc.JobDescription) (markdown string) {
	markdown = renderer.Render(jd)
	return markdown
}
