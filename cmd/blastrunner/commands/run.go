package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/blastrunner/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run INPUT",
		Short: "Build the database from INPUT, then search INPUT against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				Settings: c.settings(),
				Input:    args[0],
			})
			return err
		},
	}
}
