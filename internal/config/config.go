// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/cv-chat/internal/llm"
)

// DefaultPort is used when neither the config file, flags nor PORT set one.
const DefaultPort = 8080

// Config is the CLI configuration, loadable from a JSON file.
// All fields are optional; missing values come from flags, the environment or defaults.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects the in-memory store
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables the model

	// ProfileMarkdown is a markdown CV parsed into the default profile at startup
	ProfileMarkdown string `json:"profile_markdown,omitempty"`

	Models      map[string]string `json:"models,omitempty"`      // tier -> model name overrides
	Temperature float32           `json:"temperature,omitempty"` // sampling temperature for chat

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads PORT, DATABASE_URL, GEMINI_API_KEY and LLM_MODEL_<TIER>.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	}
	for _, tier := range []llm.ModelTier{llm.TierLite, llm.TierStandard, llm.TierAdvanced} {
		if model := os.Getenv("LLM_MODEL_" + strings.ToUpper(string(tier))); model != "" {
			if cfg.Models == nil {
				cfg.Models = make(map[string]string)
			}
			cfg.Models[string(tier)] = model
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		cfg.Port = n
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}

	for tier := range c.Models {
		switch llm.ModelTier(tier) {
		case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
		default:
			return fmt.Errorf("config error: unknown model tier %q", tier)
		}
	}

	if c.ProfileMarkdown != "" {
		if _, err := os.Stat(c.ProfileMarkdown); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile markdown not found: %s", c.ProfileMarkdown)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy with unset fields filled from defaults.
// Booleans are not merged since false cannot be told apart from unset.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ProfileMarkdown == "" {
		result.ProfileMarkdown = defaults.ProfileMarkdown
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}

	if len(defaults.Models) > 0 {
		models := make(map[string]string, len(defaults.Models)+len(result.Models))
		for tier, model := range defaults.Models {
			models[tier] = model
		}
		for tier, model := range result.Models {
			models[tier] = model
		}
		result.Models = models
	}

	return result
}

// LLMConfig builds the model configuration with any overrides applied.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	for tier, model := range c.Models {
		cfg = cfg.WithModel(llm.ModelTier(tier), model)
	}
	if c.Temperature > 0 {
		cfg.Temperature = c.Temperature
	}
	return cfg
}
