package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jakoblorz/go-portfolio/internal/models"
)

type textStyles struct {
	title   lipgloss.Style
	tagline lipgloss.Style
	header  lipgloss.Style
	name    lipgloss.Style
	desc    lipgloss.Style
	label   lipgloss.Style
	subtle  lipgloss.Style
}

// newTextStyles binds the styles to w so colour is only emitted for terminals
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		tagline: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		name: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		desc: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		subtle: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}

// Text writes a terminal summary of the portfolio grouped by project type
func Text(w io.Writer, p *models.Portfolio) error {
	s := newTextStyles(w)
	var b strings.Builder

	b.WriteString(s.title.Render(p.Owner))
	b.WriteString("\n")
	if p.Tagline != "" {
		b.WriteString(s.tagline.Render(p.Tagline))
		b.WriteString("\n")
	}

	groups := p.ProjectsByType()
	if len(groups) == 0 {
		b.WriteString("\n")
		b.WriteString(s.subtle.Render("No projects found"))
		b.WriteString("\n")
	}

	for _, group := range groups {
		b.WriteString("\n")
		b.WriteString(s.header.Render(fmt.Sprintf("%s (%d)", group.Type, len(group.Projects))))
		b.WriteString("\n")

		for _, project := range group.Projects {
			b.WriteString("  ")
			b.WriteString(s.name.Render(project.Name))
			b.WriteString(" ")
			b.WriteString(s.subtle.Render(project.URL))
			b.WriteString("\n")
			if project.Description != "" {
				b.WriteString("    ")
				b.WriteString(s.desc.Render(project.Description))
				b.WriteString("\n")
			}
			writeTextList(&b, s, "Languages", project.Languages)
			writeTextList(&b, s, "Platforms", project.Platforms)
			writeTextList(&b, s, "Frameworks", project.Frameworks)
			writeTextList(&b, s, "Skills", project.Skills)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeTextList(b *strings.Builder, s textStyles, label string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString("    ")
	b.WriteString(s.label.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(strings.Join(values, ", "))
	b.WriteString("\n")
}
