package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/jd-agent/pkg/agent"
	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/jobdesc"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/nikogura/jd-agent/pkg/llm"
	"github.com/nikogura/jd-agent/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GenerationTimeout bounds one generation request.
const GenerationTimeout = 5 * time.Minute

const spinnerInterval = 100 * time.Millisecond

//nolint:gochecknoglobals // Cobra boilerplate
var orgID string

//nolint:gochecknoglobals // Cobra boilerplate
var style string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var save bool

//nolint:gochecknoglobals // Cobra boilerplate
var rawOutput bool

//nolint:gochecknoglobals // Cobra boilerplate
var pdf bool

//nolint:gochecknoglobals // Cobra boilerplate
var model string

//nolint:gochecknoglobals // Cobra boilerplate
var temperature float64

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <request>",
	Short: "Generate a job description",
	Long: `Generate a job description from a short free-text request.

When --org names an organization in the knowledge base, its company facts,
culture, benefits, salary range for the detected role and level, and matching
department are used. Unknown organizations fall back to a generic description.

Example:
  jd-agent generate senior python developer remote
  jd-agent generate "developer with 3 years experience" --org acme --save
  jd-agent generate "VP of Engineering" --org acme --style enterprise --pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerationFlags(generateCmd)
	generateCmd.Flags().StringVar(&orgID, "org", "", "Organization id from the knowledge base")
	generateCmd.Flags().BoolVar(&save, "save", false, "Save the Markdown to the output directory")
	generateCmd.Flags().BoolVar(&pdf, "pdf", false, "Also render a PDF with pandoc")
}

// addGenerationFlags registers the flags shared by generate and interactive.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&style, "style", "", "Style template (tech_company, startup, enterprise, non_profit)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&model, "model", "", "Model override (default from config)")
	cmd.Flags().Float64Var(&temperature, "temperature", -1, "Temperature override between 0.0 and 1.0")
	cmd.Flags().BoolVar(&rawOutput, "raw", false, "Print plain Markdown instead of a terminal rendering")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	request := strings.TrimSpace(strings.Join(args, " "))

	var cfg config.Config
	var a *agent.Agent
	cfg, a, err = newAgent(cmd)
	if err != nil {
		return err
	}

	var jd jobdesc.JobDescription
	jd, err = generateWithProgress(a, request, orgID)
	if err != nil {
		return err
	}

	markdown := a.Render(jd)
	fmt.Println(renderTerminal(markdown, rawOutput))

	if save || pdf {
		_, err = writeOutputs(cfg, jd, markdown, pdf, save)
		if err != nil {
			return err
		}
	}

	return err
}

// newAgent builds an agent from the configuration and the shared generation flags.
func newAgent(cmd *cobra.Command) (cfg config.Config, a *agent.Agent, err error) {
	var store *knowledge.Store
	cfg, store, err = openStore()
	if err != nil {
		return cfg, a, err
	}

	if model != "" {
		cfg.Model = model
	}
	if cmd.Flags().Changed("temperature") {
		t := temperature
		cfg.Temperature = &t
	}
	if style != "" {
		cfg.Style = style
	}
	if outputDir != "" {
		cfg.Defaults.OutputDir = outputDir
	}

	var gen llm.Generator
	gen, err = llm.NewGenerator(cfg)
	if err != nil {
		return cfg, a, err
	}

	settings := agent.Settings{
		Model:       cfg.GetModel(),
		Temperature: cfg.GetTemperature(),
		Style:       cfg.Style,
	}

	a = agent.New(settings, store, gen, logger)
	return cfg, a, err
}

// generateWithProgress runs one generation under the request timeout, with a spinner
// unless verbose logging is on.
func generateWithProgress(a *agent.Agent, request, org string) (jd jobdesc.JobDescription, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), GenerationTimeout)
	defer cancel()

	var s *spinner
	if !getVerbose() {
		s = startSpinner(os.Stderr, "Generating job description...", spinnerInterval)
	}

	var result agent.Result
	result, err = a.GenerateDetailed(ctx, request, org)

	if s != nil {
		s.stop()
	}

	if err != nil {
		return jd, err
	}

	if getVerbose() {
		printInfo("Request %s: role %q, level %s", result.RequestID, result.Role, result.Level)
	}
	if org != "" && result.Context.IsEmpty() {
		printInfo("Organization '%s' not found. Using general description.", org)
	}

	jd = result.Description
	return jd, err
}

// writeOutputs saves the Markdown and optionally a PDF. The Markdown is removed after
// PDF rendering unless keepMarkdown is set.
func writeOutputs(cfg config.Config, jd jobdesc.JobDescription, markdown string, withPDF, keepMarkdown bool) (mdPath string, err error) {
	mdPath = filepath.Join(cfg.Defaults.OutputDir, renderer.Filename(jd.JobTitle))

	err = renderer.WriteMarkdown(markdown, mdPath)
	if err != nil {
		return mdPath, err
	}

	if !withPDF {
		printSuccess("Job description saved to %s", mdPath)
		return mdPath, err
	}

	pdfPath := strings.TrimSuffix(mdPath, ".md") + ".pdf"
	err = renderer.RenderPDF(mdPath, pdfPath, cfg.Pandoc.TemplatePath)
	if err != nil {
		err = errors.Wrap(err, "failed to render PDF")
		return mdPath, err
	}
	printSuccess("PDF saved to %s", pdfPath)

	if keepMarkdown {
		printSuccess("Job description saved to %s", mdPath)
		return mdPath, err
	}

	err = renderer.CleanupMarkdown(mdPath)
	return mdPath, err
}
