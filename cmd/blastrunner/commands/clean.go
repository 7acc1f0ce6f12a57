package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the sequence snapshot and build records",
		Long: "Remove the sequence snapshot and build records.\n\n" +
			"The database files and search results are kept; the next build rebuilds the database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), c.settings())
		},
	}
}
