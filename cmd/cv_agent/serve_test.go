package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-chat/internal/config"
	"github.com/jonathan/cv-chat/internal/store"
	"github.com/jonathan/cv-chat/internal/types"
)

func TestResolveServeConfig_Precedence(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 7100, "api_key": "file-key"}`), 0644))

	cfg, err := resolveServeConfig(path, config.Config{Port: 7200})
	require.NoError(t, err)
	assert.Equal(t, 7200, cfg.Port)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)

	cfg, err = resolveServeConfig(path, config.Config{})
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
}

func TestResolveServeConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := resolveServeConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestResolveServeConfig_Invalid(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := resolveServeConfig("", config.Config{ProfileMarkdown: "/nonexistent/cv.md"})
	assert.ErrorContains(t, err, "profile markdown not found")

	_, err = resolveServeConfig("/nonexistent/config.json", config.Config{})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestOpenStore_MemoryWithoutURL(t *testing.T) {
	s, err := openStore(context.Background(), "")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*store.MemoryStore)
	assert.True(t, ok)
}

func TestOpenLLM_NoKey(t *testing.T) {
	client, err := openLLM(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestImportMarkdown(t *testing.T) {
	path := writeCV(t, t.TempDir(), "cv.md", sampleMarkdown)
	profiles := store.NewMemoryStore()

	require.NoError(t, importMarkdown(context.Background(), profiles, path))

	profile, err := profiles.GetProfile(context.Background(), types.DefaultProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", profile.Name)
	assert.Equal(t, "Austin, TX", profile.Location)
}

func TestChatProfile(t *testing.T) {
	profile, err := chatProfile("")
	require.NoError(t, err)
	assert.Equal(t, "John Anderson", profile.Name)

	path := writeCV(t, t.TempDir(), "cv.md", sampleMarkdown)
	profile, err = chatProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", profile.Name)
}
