// Package markdown renders chat answers to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls HTML output
type Options struct {
	// AllowHTML passes raw HTML in the source through unescaped
	AllowHTML bool
	// HardWraps renders single newlines as <br>
	HardWraps bool
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer builds a renderer with GFM and autolinking enabled.
func NewRenderer(opts Options) *Renderer {
	var rendererOptions []renderer.Option
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.AllowHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Render converts source to HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
