package cmd

import (
	"os"

	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logger = zap.NewNop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "jd-agent",
	Short: "Generate job descriptions from a short request",
	Long: `jd-agent turns a short request such as "senior python developer remote" into a
complete job description, optionally tailored with stored organization data
(company facts, culture, benefits, salary ranges and departments).

Supports OpenAI and Anthropic models. Organization data lives in a JSON
knowledge base managed with the 'orgs' commands.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.jd-agent/config.json)")
}

func setup(cmd *cobra.Command, args []string) (err error) {
	err = config.LoadDotEnv("")
	if err != nil {
		return err
	}

	logger, err = newLogger(getVerbose())
	return err
}

// newLogger writes JSON logs to stderr. Only warnings and errors are shown unless verbose.
func newLogger(debug bool) (l *zap.Logger, err error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = !debug

	l, err = cfg.Build()
	return l, err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// loadConfig reads the configuration named by --config.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		return cfg, err
	}

	if getVerbose() {
		printInfo("Provider: %s, model: %s, knowledge base: %s", cfg.GetProvider(), cfg.GetModel(), cfg.KnowledgeBaseDir)
	}

	return cfg, err
}

// openStore loads the configuration and opens the knowledge base it points at.
func openStore() (cfg config.Config, store *knowledge.Store, err error) {
	cfg, err = loadConfig()
	if err != nil {
		return cfg, store, err
	}

	store, err = knowledge.NewStore(cfg.KnowledgeBaseDir)
	return cfg, store, err
}
