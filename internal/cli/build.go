package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-portfolio/internal/models"
	"github.com/jakoblorz/go-portfolio/internal/render"
)

// BuildCommand handles the build command
type BuildCommand struct {
	app *app
}

// newBuildCommand creates the build command
func newBuildCommand(a *app) *cobra.Command {
	cmd := &BuildCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "build",
		Short: "Collate all repositories into portfolio data",
		Long: `Lists every repository owned by the account, classifies it by its topics,
fetches its languages and writes the sorted project list with the account bio.

The profile repository (named like the account) is always skipped.`,
		Example: `  # Write the portfolio JSON consumed by the website
  portfolio build --owner octocat --output public/portfolio.json

  # Show Android libraries in the terminal
  portfolio build --type library --platform Android --format text

  # Render markdown with a custom template
  portfolio build --format markdown --template templates/readme.md.tmpl`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", string(render.FormatJSON), "Output format: json, markdown or text")
	cobraCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cobraCmd.Flags().String("template", "", "Markdown template file (sprig functions available)")
	cobraCmd.Flags().Bool("skip-failed-languages", false, "Keep projects whose language lookup fails, with no languages")
	cobraCmd.Flags().String("type", "", "Only projects of this type (application, library, university, other)")
	cobraCmd.Flags().String("lang", "", "Only projects using this language")
	cobraCmd.Flags().String("platform", "", "Only projects for this platform")
	cobraCmd.Flags().String("framework", "", "Only projects using this framework")
	cobraCmd.Flags().String("skill", "", "Only projects showing this skill")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	templatePath, _ := cmd.Flags().GetString("template")
	skipFailed, _ := cmd.Flags().GetBool("skip-failed-languages")

	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := render.Options{Format: format}
	if templatePath != "" {
		if format != render.FormatMarkdown {
			return fmt.Errorf("--template requires --format markdown")
		}
		tmpl, err := render.ParseTemplateFile(c.app.fs, templatePath)
		if err != nil {
			return err
		}
		opts.Template = tmpl
	}

	cats, err := c.app.loadCategories()
	if err != nil {
		return err
	}

	client, err := c.app.client()
	if err != nil {
		return err
	}

	portfolio, err := c.app.collator(client, cats, skipFailed).Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build portfolio: %w", err)
	}

	if !filter.IsEmpty() {
		portfolio = portfolio.Filtered(filter)
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, portfolio, opts); err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := c.app.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := c.app.fs.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d projects to %s\n", len(portfolio.Projects), output)
	return nil
}

func filterFromFlags(cmd *cobra.Command) (models.ProjectFilter, error) {
	var filter models.ProjectFilter

	if typeName, _ := cmd.Flags().GetString("type"); typeName != "" {
		t, err := models.ParseProjectType(typeName)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}

	filter.Language, _ = cmd.Flags().GetString("lang")
	filter.Platform, _ = cmd.Flags().GetString("platform")
	filter.Framework, _ = cmd.Flags().GetString("framework")
	filter.Skill, _ = cmd.Flags().GetString("skill")

	return filter, nil
}
