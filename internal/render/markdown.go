package render

import (
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/jakoblorz/go-portfolio/internal/filesystem"
	"github.com/jakoblorz/go-portfolio/internal/models"
)

const defaultMarkdownTemplate = `# {{ .Owner }}
{{- with .Tagline }}

> {{ . }}
{{- end }}
{{ range .Groups }}
## {{ .Type }}
{{ range .Projects }}
### [{{ .Name }}]({{ .URL }})
{{- with .Description }}

{{ . }}
{{- end }}
{{ if .Languages }}
- **Languages:** {{ join ", " .Languages }}
{{- end }}
{{- if .Platforms }}
- **Platforms:** {{ join ", " .Platforms }}
{{- end }}
{{- if .Frameworks }}
- **Frameworks:** {{ join ", " .Frameworks }}
{{- end }}
{{- if .Skills }}
- **Skills:** {{ join ", " .Skills }}
{{- end }}
{{ end }}
{{- end }}`

// MarkdownData is what markdown templates are executed with
type MarkdownData struct {
	Owner    string
	Tagline  string
	Projects []*models.Project
	Groups   []models.ProjectGroup
	Facets   models.Facets
}

func newMarkdownData(p *models.Portfolio) MarkdownData {
	return MarkdownData{
		Owner:    p.Owner,
		Tagline:  p.Tagline,
		Projects: p.Projects,
		Groups:   p.ProjectsByType(),
		Facets:   p.Facets,
	}
}

// DefaultMarkdownTemplate returns the built-in markdown template
func DefaultMarkdownTemplate() *template.Template {
	return template.Must(ParseTemplate("portfolio", defaultMarkdownTemplate))
}

// ParseTemplate parses a markdown template with the sprig function map available.
func ParseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// ParseTemplateFile reads and parses a markdown template from path.
func ParseTemplateFile(fs filesystem.FileSystem, path string) (*template.Template, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return ParseTemplate(filepath.Base(path), string(data))
}

// Markdown executes tmpl for the portfolio and writes the result to w
func Markdown(w io.Writer, p *models.Portfolio, tmpl *template.Template) error {
	if err := tmpl.Execute(w, newMarkdownData(p)); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
