package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-chat/internal/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/cv",
		"models": {"lite": "gemini-custom"},
		"temperature": 0.2,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, map[string]string{"lite": "gemini-custom"}, cfg.Models)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-6)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "config path is empty"},
		{"missing file", "/nonexistent/path/config.json", "failed to read config file"},
		{"invalid json", writeConfig(t, `{ invalid json }`), "failed to parse config JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LLM_MODEL_LITE", "")
	t.Setenv("LLM_MODEL_STANDARD", "")
	t.Setenv("LLM_MODEL_ADVANCED", "")
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 3000, DatabaseURL: "postgres://env", APIKey: "secret"}, cfg)
}

func TestFromEnv_Models(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_MODEL_LITE", "")
	t.Setenv("LLM_MODEL_STANDARD", "")
	t.Setenv("LLM_MODEL_ADVANCED", "gemini-big")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"advanced": "gemini-big"}, cfg.Models)
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "PORT must be an integer")
}

func TestValidate(t *testing.T) {
	cvPath := filepath.Join(t.TempDir(), "cv.md")
	require.NoError(t, os.WriteFile(cvPath, []byte("# Jane Doe"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"full", Config{Port: 8080, Temperature: 0.7, Models: map[string]string{"lite": "m"}, ProfileMarkdown: cvPath}, ""},
		{"negative port", Config{Port: -1}, "'port'"},
		{"port too large", Config{Port: 70000}, "'port'"},
		{"temperature", Config{Temperature: 3}, "'temperature'"},
		{"unknown tier", Config{Models: map[string]string{"huge": "m"}}, "unknown model tier"},
		{"missing markdown", Config{ProfileMarkdown: "/nonexistent/cv.md"}, "profile markdown not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Port:   9000,
		Models: map[string]string{"lite": "mine"},
	}
	defaults := Config{
		Port:        DefaultPort,
		DatabaseURL: "postgres://default",
		APIKey:      "key",
		Temperature: 0.5,
		Models:      map[string]string{"lite": "theirs", "advanced": "big"},
	}

	got := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, got.Port)
	assert.Equal(t, "postgres://default", got.DatabaseURL)
	assert.Equal(t, "key", got.APIKey)
	assert.InDelta(t, 0.5, got.Temperature, 1e-6)
	assert.Equal(t, map[string]string{"lite": "mine", "advanced": "big"}, got.Models)

	// original untouched
	assert.Equal(t, map[string]string{"lite": "mine"}, cfg.Models)
}

func TestLLMConfig(t *testing.T) {
	cfg := &Config{Models: map[string]string{"lite": "custom-lite"}, Temperature: 0.1}

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "custom-lite", llmCfg.GetModel(llm.TierLite))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierAdvanced), llmCfg.GetModel(llm.TierAdvanced))
	assert.InDelta(t, 0.1, llmCfg.Temperature, 1e-6)

	assert.Equal(t, llm.DefaultTemperature, (&Config{}).LLMConfig().Temperature)
}
