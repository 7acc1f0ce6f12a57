package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/blastrunner/internal/app"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	var opts app.SearchOptions

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search query FASTA files against the database with blastp",
		Long: "Search query FASTA files against the database with blastp.\n\n" +
			"Each QUERY is a file, a glob or a directory of FASTA files.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Settings = c.settings()
			opts.Queries = args
			_, err := c.app.Search(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Database, "db", "", "Database prefix (default the configured database)")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "Result file, only with a single query")
	return cmd
}
