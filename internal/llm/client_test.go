package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromResponse(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr string
	}{
		{"nil response", nil, "", "no candidates"},
		{"no candidates", &genai.GenerateContentResponse{}, "", "no candidates"},
		{
			"no content",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			"", "no content",
		},
		{
			"non-text parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
			}}},
			"", "no text parts",
		},
		{
			"joins text parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}},
			}}},
			"Hello, world", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTextFromResponse(tt.resp)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	assert.ErrorContains(t, err, "unsupported LLM provider")

	_, err = NewClient(context.Background(), nil, "")
	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "API key is required", apiErr.Message)
}

func TestAPICallError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &APICallError{Message: "failed to generate content", Cause: cause}

	assert.Equal(t, "API call failed: failed to generate content: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "API call failed: x", (&APICallError{Message: "x"}).Error())
}
