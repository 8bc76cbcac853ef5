package cmd

import (
	"fmt"
	"strings"

	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available writing styles",
	Long: `List the style templates that --style accepts. Templates come from
job_templates.json in the knowledge base, or the built-in set when that file is absent.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) (err error) {
	var store *knowledge.Store
	_, store, err = openStore()
	if err != nil {
		return err
	}

	var templates map[string]knowledge.StyleTemplate
	templates, err = store.Templates()
	if err != nil {
		return err
	}

	var labels []string
	labels, err = store.TemplateLabels()
	if err != nil {
		return err
	}

	for _, label := range labels {
		fmt.Print(describeTemplate(label, templates[label]))
	}

	return err
}

func describeTemplate(label string, tmpl knowledge.StyleTemplate) (text string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", label)
	fmt.Fprintf(&b, "  Culture:  %s\n", strings.Join(tmpl.CultureKeywords, ", "))
	fmt.Fprintf(&b, "  Benefits: %s\n", strings.Join(tmpl.BenefitsEmphasis, ", "))
	if tmpl.TechFocus {
		b.WriteString("  Technical focus\n")
	}
	text = b.String()
	return text
}
