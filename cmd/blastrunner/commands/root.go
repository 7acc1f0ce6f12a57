// Package commands implements the CLI commands for blastrunner.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/blastrunner/internal/app"
	"go.trai.ch/blastrunner/internal/build"
)

const (
	// EnvVerbose turns on debug logging when set to a true value.
	EnvVerbose = "TQ_VERBOSE"
	// EnvCache disables the build cache when set to a false value.
	EnvCache = "TQ_CACHE"
)

// CLI represents the command line interface for blastrunner.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	configPath string
	baseDir    string
	verbose    bool
	noCache    bool
}

// New creates a new CLI instance with the given app.
// getenv supplies the defaults of --verbose and --no-cache.
func New(a *app.App, getenv func(string) string) *CLI {
	rootCmd := &cobra.Command{
		Use:           "blastrunner",
		Short:         "Keep a BLAST database in sync with a FASTA file and search it",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Configuration file (default ./blastrunner.yaml)")
	flags.StringVarP(&c.baseDir, "base-dir", "b", "", "Working directory for cache, database and results")
	flags.BoolVarP(&c.verbose, "verbose", "v", envBool(getenv(EnvVerbose), false), "Enable debug logging")
	flags.BoolVar(&c.noCache, "no-cache", !envBool(getenv(EnvCache), true), "Rebuild the database on every build")

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output, used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) settings() app.Settings {
	return app.Settings{
		ConfigPath: c.configPath,
		BaseDir:    c.baseDir,
		Verbose:    c.verbose,
		NoCache:    c.noCache,
	}
}

// envBool parses an environment toggle: any value starting with "t", in any case,
// is true and any other non-empty value is false. An unset toggle yields def.
func envBool(value string, def bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return strings.HasPrefix(strings.ToLower(value), "t")
}
