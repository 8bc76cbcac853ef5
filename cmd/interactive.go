package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nikogura/jd-agent/pkg/agent"
	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/jobdesc"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Generate job descriptions in a prompt loop",
	Long: `Start a prompt loop. Pick an organization (or none), then type requests such as
"senior python developer remote". Each result can be saved as Markdown.

Type 'quit' or 'exit' to leave.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(interactiveCmd)
	addGenerationFlags(interactiveCmd)
	interactiveCmd.Flags().StringVar(&orgID, "org", "", "Organization id (prompted for when empty)")
}

func runInteractive(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var a *agent.Agent
	cfg, a, err = newAgent(cmd)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)

	org := orgID
	if org == "" {
		org, err = chooseOrganization(cfg, scanner)
		if err != nil {
			return err
		}
	}

	printHeading("Job Description Generator")
	fmt.Println("Describe the position you need, e.g. 'senior python developer remote'.")
	fmt.Println("Type 'quit' to exit.")

	for {
		request, ok := prompt(scanner, "\nRequest: ")
		if !ok {
			fmt.Println()
			err = scanner.Err()
			return err
		}
		if request == "" {
			continue
		}

		lower := strings.ToLower(request)
		if lower == "quit" || lower == "exit" || lower == "q" {
			fmt.Println("Goodbye!")
			err = nil
			return err
		}

		var jd jobdesc.JobDescription
		jd, err = generateWithProgress(a, request, org)
		if err != nil {
			// Errors end this request only; the user can retry.
			printError(err)
			continue
		}

		markdown := a.Render(jd)
		fmt.Println(renderTerminal(markdown, rawOutput))

		if confirm(scanner, "Save to file? (y/n): ") {
			_, err = writeOutputs(cfg, jd, markdown, false, true)
			if err != nil {
				printError(err)
			}
		}

		fmt.Println(strings.Repeat("=", 50))
	}
}

// chooseOrganization lists stored organizations and asks which one to use.
func chooseOrganization(cfg config.Config, scanner *bufio.Scanner) (org string, err error) {
	var store *knowledge.Store
	store, err = knowledge.NewStore(cfg.KnowledgeBaseDir)
	if err != nil {
		return org, err
	}

	var ids []string
	ids, err = store.ListIDs()
	if err != nil {
		return org, err
	}

	if len(ids) == 0 {
		printInfo("No organizations in the knowledge base; descriptions will be generic.")
		return org, err
	}

	fmt.Println("Available organizations:")
	for _, id := range ids {
		fmt.Printf("  - %s\n", id)
	}

	input, _ := prompt(scanner, "Organization id (blank for none): ")
	org, known := resolveOrganization(ids, input)
	if input != "" && !known {
		fmt.Printf("Organization '%s' not found. Using general description.\n", input)
	}
	return org, err
}

// resolveOrganization matches input against the stored ids. Unknown input resolves to
// no organization.
func resolveOrganization(ids []string, input string) (org string, known bool) {
	for _, id := range ids {
		if id == input {
			org = id
			known = true
			return org, known
		}
	}
	return org, known
}

// prompt prints label and returns the next trimmed line of input. ok is false at end of input.
func prompt(scanner *bufio.Scanner, label string) (input string, ok bool) {
	fmt.Print(label)
	ok = scanner.Scan()
	if ok {
		input = strings.TrimSpace(scanner.Text())
	}
	return input, ok
}

// confirm asks a yes/no question.
func confirm(scanner *bufio.Scanner, label string) (yes bool) {
	answer, _ := prompt(scanner, label)
	answer = strings.ToLower(answer)
	yes = answer == "y" || answer == "yes"
	return yes
}
