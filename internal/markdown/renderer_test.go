package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer(Options{})

	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{"paragraph", "Hello **world**", []string{"<p>Hello <strong>world</strong></p>"}},
		{"list", "- Go\n- Rust", []string{"<ul>", "<li>Go</li>", "<li>Rust</li>"}},
		{"strikethrough", "~~old~~", []string{"<del>old</del>"}},
		{"linkify", "see https://example.com now", []string{`<a href="https://example.com">https://example.com</a>`}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.source)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRender_RawHTML(t *testing.T) {
	source := "<script>alert(1)</script>"

	safe, err := NewRenderer(Options{}).Render(source)
	require.NoError(t, err)
	assert.NotContains(t, safe, "<script>")

	unsafe, err := NewRenderer(Options{AllowHTML: true}).Render(source)
	require.NoError(t, err)
	assert.Contains(t, unsafe, "<script>")
}

func TestRender_HardWraps(t *testing.T) {
	got, err := NewRenderer(Options{HardWraps: true}).Render("line one\nline two")
	require.NoError(t, err)
	assert.Contains(t, got, "<br")
}
