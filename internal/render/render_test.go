package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/go-portfolio/internal/filesystem"
	"github.com/jakoblorz/go-portfolio/internal/models"
)

func testPortfolio() *models.Portfolio {
	app := models.NewProject("Foo", "foo", "A tool for foo", "https://github.com/me/foo", models.ProjectTypeApplication)
	app.Languages = []string{"Kotlin", "Java"}
	app.Platforms = []string{"Android"}
	app.Frameworks = []string{"Jetpack Compose"}

	lib := models.NewProject("Bar", "bar", "", "https://github.com/me/bar", models.ProjectTypeLibrary)
	lib.Skills = []string{"Testing"}

	return models.NewPortfolio("me", "Android developer", []*models.Project{app, lib})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"", FormatJSON},
		{"json", FormatJSON},
		{"Markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"text", FormatText},
		{" TXT ", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseFormat("html")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output format")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testPortfolio(), Options{Format: FormatJSON}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "me", decoded["owner"])
	require.Equal(t, "Android developer", decoded["tagline"])
	require.Len(t, decoded["projects"], 2)
	require.Contains(t, decoded, "facets")

	snaps.MatchSnapshot(t, buf.String())
}

func TestJSON_EmptyPortfolio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, models.NewPortfolio("me", "", nil)))

	require.JSONEq(t, `{
		"owner": "me",
		"tagline": "",
		"projects": [],
		"facets": {"types": [], "languages": [], "platforms": [], "frameworks": [], "skills": []}
	}`, buf.String())
}

func TestMarkdown_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testPortfolio(), Options{Format: FormatMarkdown}))

	out := buf.String()
	require.Contains(t, out, "# me")
	require.Contains(t, out, "> Android developer")
	require.Contains(t, out, "## Application")
	require.Contains(t, out, "### [Foo](https://github.com/me/foo)")
	require.Contains(t, out, "- **Languages:** Kotlin, Java")
	require.Contains(t, out, "- **Skills:** Testing")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("## Application")), bytes.Index(buf.Bytes(), []byte("## Library")))

	snaps.MatchSnapshot(t, out)
}

func TestMarkdown_CustomTemplateWithSprig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("templates/list.md.tmpl", []byte(`{{ range .Projects }}{{ .Name | upper }}:{{ .Type }}{{ "\n" }}{{ end }}{{ .Facets.Languages | join "," | default "none" }}`))

	tmpl, err := ParseTemplateFile(fs, "templates/list.md.tmpl")
	require.NoError(t, err)
	require.Equal(t, "list.md.tmpl", tmpl.Name())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testPortfolio(), Options{Format: FormatMarkdown, Template: tmpl}))
	require.Equal(t, "FOO:Application\nBAR:Library\nKotlin,Java", buf.String())
}

func TestParseTemplateFile_Errors(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("broken.tmpl", []byte("{{ .Owner "))

	_, err := ParseTemplateFile(fs, "missing.tmpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read template")

	_, err = ParseTemplateFile(fs, "broken.tmpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse template")
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testPortfolio(), Options{Format: FormatText}))

	out := buf.String()
	require.Contains(t, out, "me")
	require.Contains(t, out, "Android developer")
	require.Contains(t, out, "Application (1)")
	require.Contains(t, out, "Library (1)")
	require.Contains(t, out, "Foo")
	require.Contains(t, out, "https://github.com/me/foo")
	require.Contains(t, out, "Kotlin, Java")
	require.NotContains(t, out, "Other")
}

func TestText_NoProjects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, models.NewPortfolio("me", "", nil)))
	require.Contains(t, buf.String(), "No projects found")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testPortfolio(), Options{Format: "yaml"})
	require.Error(t, err)
}
