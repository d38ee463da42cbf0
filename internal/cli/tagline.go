package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTaglineCommand creates the tagline command
func newTaglineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tagline",
		Short: "Print the account bio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			tagline, err := a.collator(client, nil, false).Tagline(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get tagline: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tagline)
			return nil
		},
	}
}
