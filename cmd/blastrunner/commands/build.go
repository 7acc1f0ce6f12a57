package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/blastrunner/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions

	cmd := &cobra.Command{
		Use:   "build INPUT",
		Short: "Build or update the BLAST database from a FASTA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Settings = c.settings()
			opts.Input = args[0]
			_, err := c.app.Build(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.DBType, "dbtype", "", "Database type, prot or nucl (default from config)")
	cmd.Flags().StringVar(&opts.DBName, "db-name", "", "Database name (default from config)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Rebuild even if the sequences did not change")
	return cmd
}
