package cmd

import (
	"fmt"

	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file and an empty knowledge base",
	Long: `Create a starter configuration file (default $HOME/.jd-agent/config.json) and the
knowledge base directory it points at. Edit the file to add your API key.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	var cfg config.Config
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	var store *knowledge.Store
	store, err = knowledge.NewStore(cfg.KnowledgeBaseDir)
	if err != nil {
		return err
	}

	printSuccess("Created config file: %s", path)
	printSuccess("Knowledge base: %s", store.Path())
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Add your API key to the config file (or set OPENAI_API_KEY / ANTHROPIC_API_KEY)")
	fmt.Println("  2. Import an organization: jd-agent orgs import <id> <file>")
	fmt.Println("  3. Generate: jd-agent generate \"senior python developer remote\" --org <id>")

	return err
}
