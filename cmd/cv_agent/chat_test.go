package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-chat/internal/store"
	"github.com/jonathan/cv-chat/internal/types"
)

func TestChatProfile_Default(t *testing.T) {
	profile, err := chatProfile("")
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, types.DefaultProfileID, profile.ID)
	assert.Equal(t, store.DefaultProfile(time.Now()).Name, profile.Name)
}

func TestChatProfile_FromMarkdown(t *testing.T) {
	path := writeCV(t, t.TempDir(), "cv.md", sampleMarkdown)

	profile, err := chatProfile(path)
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Jane Smith", profile.Name)
	assert.Equal(t, "Data Analyst", profile.Title)
	assert.Equal(t, []string{"SQL", "Python"}, profile.Skills)
}

func TestChatProfile_MissingFile(t *testing.T) {
	_, err := chatProfile(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}
