package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/pkg/errors"
)

const (
	// ProviderOpenAI selects the OpenAI chat completions API.
	ProviderOpenAI = "openai"
	// ProviderAnthropic selects the Anthropic messages API.
	ProviderAnthropic = "anthropic"

	// DefaultOpenAIModel is used when no model is configured for OpenAI.
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultAnthropicModel is used when no model is configured for Anthropic.
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	// DefaultTemperature is the sampling temperature when none is configured.
	DefaultTemperature = 0.7
	// DefaultKnowledgeBaseDir holds organizations.json and job_templates.json.
	DefaultKnowledgeBaseDir = "./knowledge_base"
	// DefaultOutputDir is where saved descriptions go.
	DefaultOutputDir = "."
)

// Config represents the application configuration.
type Config struct {
	Provider         string        `json:"provider,omitempty"`
	OpenAIAPIKey     string        `json:"openai_api_key,omitempty"`
	AnthropicAPIKey  string        `json:"anthropic_api_key,omitempty"`
	Model            string        `json:"model,omitempty"`
	Temperature      *float64      `json:"temperature,omitempty"`
	BaseURL          string        `json:"base_url,omitempty"`
	KnowledgeBaseDir string        `json:"knowledge_base_dir,omitempty"`
	Style            string        `json:"style,omitempty"`
	Pandoc           PandocConfig  `json:"pandoc"`
	Defaults         DefaultConfig `json:"defaults"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir,omitempty"`
}

// DefaultPath returns ~/.jd-agent/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".jd-agent", "config.json")
	return path, err
}

// GetProvider returns the configured provider, defaulting to OpenAI.
func (c *Config) GetProvider() (provider string) {
	provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if provider == "" {
		provider = ProviderOpenAI
	}
	return provider
}

// GetModel returns the configured model or the provider's default.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = DefaultOpenAIModel
	if c.GetProvider() == ProviderAnthropic {
		model = DefaultAnthropicModel
	}
	return model
}

// GetTemperature returns the configured temperature or the default.
func (c *Config) GetTemperature() (temperature float64) {
	temperature = DefaultTemperature
	if c.Temperature != nil {
		temperature = *c.Temperature
	}
	return temperature
}

// APIKey returns the credential for the selected provider.
func (c *Config) APIKey() (key string) {
	key = c.OpenAIAPIKey
	if c.GetProvider() == ProviderAnthropic {
		key = c.AnthropicAPIKey
	}
	return key
}

// LoadDotEnv loads a .env file into the environment. A missing file is not an error.
// Variables already set in the environment win.
func LoadDotEnv(path string) (err error) {
	if path == "" {
		path = ".env"
	}

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = nil
		return err
	}

	err = godotenv.Load(path)
	if err != nil {
		err = errs.Configuration("failed to load "+path, err)
		return err
	}

	return err
}

// Load reads configuration from file with environment variable overrides.
// A missing file yields the defaults. Load does not validate; call Validate before
// talking to a provider.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		err = nil
	case err != nil:
		err = errs.Configuration("failed to read config file: "+path, err)
		return cfg, err
	default:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errs.Configuration("failed to parse config file: "+path, err)
			return cfg, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, err
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicAPIKey = v
	}
	if v := os.Getenv("JD_AGENT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("JD_AGENT_MODEL"); v != "" {
		c.Model = v
	}
}

func (c *Config) applyDefaults() {
	if c.KnowledgeBaseDir == "" {
		c.KnowledgeBaseDir = DefaultKnowledgeBaseDir
	}
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = DefaultOutputDir
	}
}

// Validate checks that everything needed for a generation request is present.
func (c *Config) Validate() (err error) {
	provider := c.GetProvider()

	switch provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			err = errs.Configuration("OPENAI_API_KEY is not set (set it in the environment, .env or openai_api_key in config)", nil)
			return err
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			err = errs.Configuration("ANTHROPIC_API_KEY is not set (set it in the environment, .env or anthropic_api_key in config)", nil)
			return err
		}
	default:
		err = errs.Configuration("unknown provider: "+provider, nil)
		return err
	}

	temperature := c.GetTemperature()
	if temperature < 0 || temperature > 1 {
		err = errs.Configuration("temperature must be between 0.0 and 1.0", nil)
		return err
	}

	if c.KnowledgeBaseDir == "" {
		c.KnowledgeBaseDir = DefaultKnowledgeBaseDir
	}

	return err
}

// InitConfig creates a starter configuration file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	temperature := DefaultTemperature
	defaultConfig := Config{
		Provider:         ProviderOpenAI,
		OpenAIAPIKey:     "sk-...",
		Model:            DefaultOpenAIModel,
		Temperature:      &temperature,
		KnowledgeBaseDir: filepath.Join(dir, "knowledge_base"),
		Defaults: DefaultConfig{
			OutputDir: DefaultOutputDir,
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
