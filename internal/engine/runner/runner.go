// Package runner keeps a BLAST database in sync with a FASTA input and runs searches against it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner drives makeblastdb and blastp on top of the sequence cache.
type Runner struct {
	sequences ports.SequenceRepository
	executor  ports.Executor
	store     ports.BuildInfoStore
	hasher    ports.Hasher
	verifier  ports.DatabaseVerifier
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// NewRunner creates a new Runner.
func NewRunner(
	sequences ports.SequenceRepository,
	executor ports.Executor,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	verifier ports.DatabaseVerifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		sequences: sequences,
		executor:  executor,
		store:     store,
		hasher:    hasher,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// ReadInput parses the FASTA file at path.
func (r *Runner) ReadInput(path string) (*domain.SequenceSet, error) {
	r.logger.Debug("reading input file: " + path)
	return r.sequences.Read(path)
}

// Diff compares input with the snapshot at snapshotPath.
// A snapshot that does not exist yet counts as empty.
func (r *Runner) Diff(input *domain.SequenceSet, snapshotPath string) (domain.SequenceDiff, error) {
	snapshot, err := r.loadSnapshot(snapshotPath)
	if err != nil {
		return domain.SequenceDiff{}, err
	}
	return domain.DiffSequences(input, snapshot), nil
}

// UpdateCache replaces the snapshot at snapshotPath with set.
func (r *Runner) UpdateCache(set *domain.SequenceSet, snapshotPath string) error {
	if err := r.sequences.Write(snapshotPath, set); err != nil {
		return errors.Join(domain.ErrCacheUpdateFailed, err)
	}
	return nil
}

// Plan reports what MakeBlastDB would do for inputPath without running anything.
func (r *Runner) Plan(_ context.Context, cfg *domain.Config, inputPath string, force bool) (*domain.BuildPlan, error) {
	input, err := r.ReadInput(inputPath)
	if err != nil {
		return nil, err
	}
	plan, err := r.plan(cfg, input, force)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *Runner) loadSnapshot(path string) (*domain.SequenceSet, error) {
	snapshot, err := r.sequences.Read(path)
	if errors.Is(err, domain.ErrSequenceFileNotFound) {
		return domain.NewSequenceSet(), nil
	}
	return snapshot, err
}

func (r *Runner) plan(cfg *domain.Config, input *domain.SequenceSet, force bool) (domain.BuildPlan, error) {
	layout := cfg.Layout()

	snapshot, err := r.loadSnapshot(layout.SnapshotPath())
	if err != nil {
		return domain.BuildPlan{}, err
	}

	last, err := r.store.Get(layout.Root(), cfg.Database.Name)
	if err != nil {
		return domain.BuildPlan{}, err
	}

	exists, err := r.verifier.DatabaseExists(layout.DatabasePrefix(cfg.Database.Name), cfg.Database.Type)
	if err != nil {
		return domain.BuildPlan{}, err
	}

	in := domain.PlanInput{
		Diff:                 domain.DiffSequences(input, snapshot),
		Force:                force,
		CacheEnabled:         cfg.Cache,
		DetectContentChanges: cfg.DetectContentChanges,
		DBType:               cfg.Database.Type,
		LastBuild:            last,
		DatabaseExists:       exists,
	}
	if last != nil {
		in.SnapshotFingerprint = r.hasher.Fingerprint(snapshot)
	}

	return domain.PlanBuild(in), nil
}

// MakeBlastDB brings the configured database up to date with the input file.
//
// When the plan has no rebuild reason nothing is written and the result reports
// VertexStatusCached. Otherwise the full input set is written to the scratch file
// and handed to makeblastdb. Only after makeblastdb succeeds are the snapshot and
// the build record replaced; a failed build leaves both untouched.
//
// A makeblastdb failure returns the result, carrying the tool output, together
// with an error wrapping domain.ErrDatabaseBuildFailed.
func (r *Runner) MakeBlastDB(ctx context.Context, cfg *domain.Config, req domain.BuildRequest) (*domain.BuildResult, error) {
	input, err := r.ReadInput(req.InputPath)
	if err != nil {
		return nil, err
	}
	r.logger.Debug(fmt.Sprintf("read %d sequences from %s", input.Len(), req.InputPath))

	plan, err := r.plan(cfg, input, req.Force)
	if err != nil {
		return nil, err
	}

	layout := cfg.Layout()
	prefix := layout.DatabasePrefix(cfg.Database.Name)
	result := &domain.BuildResult{Database: prefix, Plan: plan}

	if plan.IgnoredContentChanges {
		r.logger.Warn(fmt.Sprintf(
			"%d sequence(s) changed content under an existing identifier; not rebuilding (detect_content_changes is off)",
			plan.Diff.Changed.Len(),
		))
	}

	ctx, vertex := r.telemetry.Record(ctx, "makeblastdb "+cfg.Database.Name)

	if !plan.NeedsRebuild() {
		vertex.Log(domain.LogLevelDebug, "no changes in sequences to update the BLAST database")
		vertex.Cached()
		result.Status = domain.VertexStatusCached
		return result, nil
	}

	vertex.Log(domain.LogLevelDebug, fmt.Sprintf(
		"updating BLAST database with %d new sequences and removing %d sequences (%s)",
		plan.Diff.New.Len(), plan.Diff.Removed.Len(), joinReasons(plan.Reasons),
	))

	if err := r.ensureLayout(layout); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	scratch := layout.ScratchPath()
	if err := r.sequences.Write(scratch, input); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	inv := domain.MakeBlastDBInvocation(cfg.Tools.MakeBlastDB, scratch, cfg.Database.Type, prefix)
	inv.Env = cfg.Tools.Env
	toolResult, err := r.executor.Run(ctx, inv)
	result.Tool = toolResult
	if err != nil {
		err = errors.Join(domain.ErrDatabaseBuildFailed, zerr.With(err, "database", prefix))
		vertex.Complete(err)
		result.Status = domain.VertexStatusFailed
		return result, err
	}

	if err := r.UpdateCache(input, layout.SnapshotPath()); err != nil {
		vertex.Complete(err)
		result.Status = domain.VertexStatusFailed
		return result, err
	}

	info := domain.BuildInfo{
		DatabaseName:  cfg.Database.Name,
		DBType:        cfg.Database.Type,
		Prefix:        prefix,
		SequenceCount: input.Len(),
		Fingerprint:   r.hasher.Fingerprint(input),
		Timestamp:     r.now(),
	}
	if err := r.store.Put(layout.Root(), info); err != nil {
		err = errors.Join(domain.ErrCacheUpdateFailed, err)
		vertex.Complete(err)
		result.Status = domain.VertexStatusFailed
		return result, err
	}

	vertex.Complete(nil)
	result.Rebuilt = true
	result.Status = domain.VertexStatusCompleted
	r.logger.Debug("BLAST database updated successfully")
	return result, nil
}

// RunBlastp searches job.Query against job.Database and writes tabular hits to job.Output.
// A blastp failure returns the result together with an error wrapping domain.ErrSearchFailed.
func (r *Runner) RunBlastp(ctx context.Context, cfg *domain.Config, job domain.SearchJob) (*domain.SearchResult, error) {
	r.logger.Debug(fmt.Sprintf("running BLASTP with input file: %s and database: %s", job.Query, job.Database))

	if _, err := os.Stat(job.Query); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Join(domain.ErrSequenceFileNotFound, zerr.With(err, "path", job.Query))
		}
		return nil, errors.Join(domain.ErrSequenceFileRead, zerr.With(err, "path", job.Query))
	}

	exists, err := r.verifier.DatabaseExists(job.Database, cfg.Database.Type)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Join(
			domain.ErrDatabaseNotFound,
			zerr.With(zerr.New("no database index"), "database", job.Database),
		)
	}
	if cfg.Database.Type == domain.DBTypeNucleotide {
		r.logger.Warn("blastp searches protein databases; the configured database type is nucl")
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrLayoutCreateFailed, zerr.With(err, "path", filepath.Dir(job.Output)))
	}

	ctx, vertex := r.telemetry.Record(ctx, "blastp "+filepath.Base(job.Query))

	inv := domain.BlastpInvocation(cfg.Tools.Blastp, job.Query, job.Database, job.Output, cfg.Search.ExtraArgs)
	inv.Env = cfg.Tools.Env
	toolResult, err := r.executor.Run(ctx, inv)
	result := &domain.SearchResult{Job: job, Tool: toolResult}
	if err != nil {
		err = errors.Join(domain.ErrSearchFailed, zerr.With(err, "query", job.Query))
		vertex.Complete(err)
		result.Status = domain.VertexStatusFailed
		return result, err
	}

	vertex.Complete(nil)
	result.Status = domain.VertexStatusCompleted
	r.logger.Debug(fmt.Sprintf("BLASTP completed successfully. Results saved to %s", job.Output))
	return result, nil
}

func (r *Runner) ensureLayout(layout domain.Layout) error {
	for _, dir := range layout.Dirs() {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrLayoutCreateFailed, zerr.With(err, "path", dir))
		}
	}
	return nil
}

func joinReasons(reasons []domain.RebuildReason) string {
	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = string(reason)
	}
	return strings.Join(parts, ", ")
}
