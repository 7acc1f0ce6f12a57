// Package app implements the application layer for blastrunner.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/blastrunner/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *runner.Runner
	resolver     ports.QueryResolver
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, r *runner.Runner, resolver ports.QueryResolver, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       r,
		resolver:     resolver,
		logger:       logger,
	}
}

// Settings are the global command line settings. They override the configuration file.
type Settings struct {
	// ConfigPath is the configuration file; empty means blastrunner.yaml in WorkDir.
	ConfigPath string
	// BaseDir overrides base_dir.
	BaseDir string
	// Verbose forces debug logging on.
	Verbose bool
	// NoCache forces a rebuild on every build.
	NoCache bool
	// WorkDir is the directory relative query patterns are resolved against.
	WorkDir string
}

// BuildOptions configures Build.
type BuildOptions struct {
	Settings
	Input  string
	DBType string
	DBName string
	Force  bool
}

// SearchOptions configures Search.
type SearchOptions struct {
	Settings
	Queries []string
	// Database is the database prefix; empty means the configured database.
	Database string
	// Output is the result file; only valid with a single query.
	Output string
}

// StatusOptions configures Status.
type StatusOptions struct {
	Settings
	Input string
}

// RunOptions configures Run.
type RunOptions struct {
	Settings
	Input string
}

// StatusReport describes the cached state against an input file.
type StatusReport struct {
	Input     string
	Database  string
	Plan      *domain.BuildPlan
	LastBuild *domain.BuildInfo
}

// RunReport is the outcome of Run.
type RunReport struct {
	SequenceCount int
	Build         *domain.BuildResult
	Search        *domain.SearchResult
}

// Build brings the configured database up to date with the input file.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.BuildResult, error) {
	cfg, err := a.loadConfig(opts.Settings, func(cfg *domain.Config) error {
		return applyDatabaseOverrides(cfg, opts.DBType, opts.DBName)
	})
	if err != nil {
		return nil, err
	}

	result, err := a.runner.MakeBlastDB(ctx, cfg, domain.BuildRequest{InputPath: opts.Input, Force: opts.Force})
	if err != nil {
		return result, zerr.Wrap(err, "build failed")
	}

	a.reportBuild(result)
	return result, nil
}

// Search runs blastp for every query matched by opts.Queries.
func (a *App) Search(ctx context.Context, opts SearchOptions) ([]*domain.SearchResult, error) {
	cfg, err := a.loadConfig(opts.Settings, nil)
	if err != nil {
		return nil, err
	}

	queries, err := a.resolver.ResolveQueries(opts.Queries, opts.WorkDir)
	if err != nil {
		return nil, err
	}
	if opts.Output != "" && len(queries) > 1 {
		return nil, errors.Join(
			domain.ErrOutputWithMultipleQueries,
			zerr.With(zerr.New("ambiguous output"), "queries", len(queries)),
		)
	}

	layout := cfg.Layout()
	database := opts.Database
	if database == "" {
		database = layout.DatabasePrefix(cfg.Database.Name)
	}

	outputs := []string{opts.Output}
	if opts.Output == "" {
		outputs, err = outputPaths(layout, queries)
		if err != nil {
			return nil, err
		}
	}

	jobs := make([]domain.SearchJob, len(queries))
	for i, query := range queries {
		jobs[i] = domain.SearchJob{Query: query, Database: database, Output: outputs[i]}
	}

	results, err := a.runner.RunBlastpBatch(ctx, cfg, jobs)
	for _, res := range results {
		if res != nil && res.Status == domain.VertexStatusCompleted {
			a.logger.Info("results saved to " + res.Job.Output)
		}
	}
	if err != nil {
		return results, zerr.Wrap(err, "search failed")
	}
	return results, nil
}

// Status reports whether a build of the input would rebuild the database, and why.
func (a *App) Status(ctx context.Context, opts StatusOptions) (*StatusReport, error) {
	cfg, err := a.loadConfig(opts.Settings, nil)
	if err != nil {
		return nil, err
	}

	plan, err := a.runner.Plan(ctx, cfg, opts.Input, false)
	if err != nil {
		return nil, err
	}

	last, err := a.runner.LastBuild(cfg)
	if err != nil {
		return nil, err
	}

	return &StatusReport{
		Input:     opts.Input,
		Database:  cfg.Layout().DatabasePrefix(cfg.Database.Name),
		Plan:      plan,
		LastBuild: last,
	}, nil
}

// Run reads the input, brings the database up to date with it and searches the
// input against the database.
func (a *App) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	cfg, err := a.loadConfig(opts.Settings, nil)
	if err != nil {
		return nil, err
	}

	sequences, err := a.runner.ReadInput(opts.Input)
	if err != nil {
		return nil, err
	}
	report := &RunReport{SequenceCount: sequences.Len()}
	a.logger.Info(fmt.Sprintf("read %d sequences from %s", sequences.Len(), opts.Input))

	report.Build, err = a.runner.MakeBlastDB(ctx, cfg, domain.BuildRequest{InputPath: opts.Input})
	if err != nil {
		return report, zerr.Wrap(err, "build failed")
	}
	a.reportBuild(report.Build)

	layout := cfg.Layout()
	report.Search, err = a.runner.RunBlastp(ctx, cfg, domain.SearchJob{
		Query:    opts.Input,
		Database: layout.DatabasePrefix(cfg.Database.Name),
		Output:   layout.OutputPath(opts.Input),
	})
	if err != nil {
		return report, zerr.Wrap(err, "search failed")
	}
	a.logger.Info("results saved to " + report.Search.Job.Output)

	return report, nil
}

// Clean removes the cached snapshot and build records.
func (a *App) Clean(_ context.Context, s Settings) error {
	cfg, err := a.loadConfig(s, nil)
	if err != nil {
		return err
	}
	if err := a.runner.Clean(cfg); err != nil {
		return err
	}
	a.logger.Info("cache cleared in " + cfg.Layout().CacheDir())
	return nil
}

func (a *App) reportBuild(result *domain.BuildResult) {
	if result.Rebuilt {
		a.logger.Info(fmt.Sprintf("database %s rebuilt (%d new, %d removed)",
			result.Database, result.Plan.Diff.New.Len(), result.Plan.Diff.Removed.Len()))
		return
	}
	a.logger.Info(fmt.Sprintf("database %s is up to date", result.Database))
}
