package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jakoblorz/go-portfolio/internal/models"
)

// Format selects how a portfolio is written
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat parses a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("invalid output format: %s (expected json, markdown or text)", s)
}

// Options configures Render
type Options struct {
	Format Format

	// Template replaces the default markdown template
	Template *template.Template
}

// Render writes the portfolio to w in the requested format.
func Render(w io.Writer, p *models.Portfolio, opts Options) error {
	switch opts.Format {
	case FormatJSON, "":
		return JSON(w, p)
	case FormatMarkdown:
		tmpl := opts.Template
		if tmpl == nil {
			tmpl = DefaultMarkdownTemplate()
		}
		return Markdown(w, p, tmpl)
	case FormatText:
		return Text(w, p)
	}
	return fmt.Errorf("unknown output format: %s", opts.Format)
}
