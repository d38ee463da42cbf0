package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-portfolio/internal/categories"
)

// newCategoriesCommand creates the categories command
func newCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Validate and print the category tables",
		Long: `Loads the platforms, frameworks and tech_skills tables from the categories
directory and prints them. Fails if any table is missing or malformed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			cats, err := a.loadCategories()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputCategoriesJSON(cmd.OutOrStdout(), cats)
			case "text":
				outputCategoriesText(cmd.OutOrStdout(), cats)
				return nil
			}
			return fmt.Errorf("invalid format: %s (expected text or json)", format)
		},
	}

	cmd.Flags().String("format", "text", "Output format: text or json")

	return cmd
}

func outputCategoriesJSON(w io.Writer, cats *categories.Set) error {
	out := map[string]categories.Table{
		categories.PlatformsResource:  cats.Platforms,
		categories.FrameworksResource: cats.Frameworks,
		categories.SkillsResource:     cats.Skills,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	return nil
}

func outputCategoriesText(w io.Writer, cats *categories.Set) {
	writeTable(w, categories.PlatformsResource, cats.Platforms)
	writeTable(w, categories.FrameworksResource, cats.Frameworks)
	writeTable(w, categories.SkillsResource, cats.Skills)
}

func writeTable(w io.Writer, name string, table categories.Table) {
	fmt.Fprintf(w, "%s (%d)\n", name, len(table))

	tags := make([]string, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		fmt.Fprintf(w, "  %s → %s\n", tag, table[tag])
	}
}
