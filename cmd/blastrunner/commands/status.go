package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/blastrunner/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status INPUT",
		Short: "Show whether building INPUT would rebuild the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Status(cmd.Context(), app.StatusOptions{
				Settings: c.settings(),
				Input:    args[0],
			})
			if err != nil {
				return err
			}
			return renderStatus(cmd.OutOrStdout(), report)
		},
	}
}

func renderStatus(w io.Writer, report *app.StatusReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(key, format string, args ...any) {
		_, _ = fmt.Fprintf(tw, key+":\t"+format+"\n", args...)
	}

	row("input", "%s", report.Input)
	row("database", "%s", report.Database)

	if last := report.LastBuild; last != nil {
		row("last build", "%s (%d sequences, %s, fingerprint %s)",
			last.Timestamp.UTC().Format(time.RFC3339), last.SequenceCount, last.DBType, last.Fingerprint)
	} else {
		row("last build", "none")
	}

	plan := report.Plan
	row("new", "%d", plan.Diff.New.Len())
	row("removed", "%d", plan.Diff.Removed.Len())
	if plan.IgnoredContentChanges {
		row("changed", "%d (ignored, detect_content_changes is off)", plan.Diff.Changed.Len())
	} else {
		row("changed", "%d", plan.Diff.Changed.Len())
	}

	if plan.NeedsRebuild() {
		reasons := make([]string, len(plan.Reasons))
		for i, r := range plan.Reasons {
			reasons[i] = string(r)
		}
		row("rebuild", "yes (%s)", strings.Join(reasons, ", "))
	} else {
		row("rebuild", "no")
	}

	return tw.Flush()
}
