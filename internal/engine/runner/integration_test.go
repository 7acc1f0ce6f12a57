package runner_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blastrunner/internal/adapters/cas"
	"go.trai.ch/blastrunner/internal/adapters/fasta"
	"go.trai.ch/blastrunner/internal/adapters/fs"
	"go.trai.ch/blastrunner/internal/adapters/shell"
	"go.trai.ch/blastrunner/internal/adapters/telemetry"
	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports/mocks"
	"go.trai.ch/blastrunner/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// toolbox holds fake makeblastdb and blastp scripts.
// Each script appends a line to its call log. Creating a file named
// "<tool>.fail" next to the scripts makes the tool exit 1.
type toolbox struct {
	dir string
}

func newToolbox(t *testing.T) toolbox {
	t.Helper()
	dir := t.TempDir()

	makeblastdb := fmt.Sprintf(`#!/bin/sh
echo "$*" >> %[1]s/makeblastdb.calls
if [ -f %[1]s/makeblastdb.fail ]; then
  echo "BLAST Database error: simulated failure" >&2
  exit 1
fi
while [ $# -gt 0 ]; do
  case "$1" in
    -in) in="$2"; shift ;;
    -dbtype) dbtype="$2"; shift ;;
    -out) out="$2"; shift ;;
  esac
  shift
done
mkdir -p "$(dirname "$out")"
if [ "$dbtype" = nucl ]; then ext=nin; else ext=pin; fi
cp "$in" "$out.$ext"
echo "Adding sequences from FASTA; added $(grep -c '>' "$in") sequences"
`, dir)

	blastp := fmt.Sprintf(`#!/bin/sh
echo "$*" >> %[1]s/blastp.calls
if [ -f %[1]s/blastp.fail ]; then
  echo "BLAST query/options error: simulated failure" >&2
  exit 2
fi
while [ $# -gt 0 ]; do
  case "$1" in
    -query) query="$2"; shift ;;
    -out) out="$2"; shift ;;
  esac
  shift
done
grep '>' "$query" | sed 's/>//' | while read -r id; do
  printf '%%s\t%%s\t100.000\n' "$id" "$id"
done > "$out"
`, dir)

	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "makeblastdb"), []byte(makeblastdb), 0o700))
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blastp"), []byte(blastp), 0o700))
	return toolbox{dir: dir}
}

func (tb toolbox) calls(t *testing.T, tool string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(tb.dir, tool+".calls")) //nolint:gosec // Test file
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	require.NoError(t, err)
	return strings.Count(string(data), "\n")
}

func (tb toolbox) fail(t *testing.T, tool string, enabled bool) {
	t.Helper()
	path := filepath.Join(tb.dir, tool+".fail")
	if enabled {
		writeFile(t, path, "")
		return
	}
	require.NoError(t, os.RemoveAll(path))
}

type harness struct {
	runner *runner.Runner
	cfg    *domain.Config
	tools  toolbox
	input  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	r := runner.NewRunner(
		fasta.NewRepository(),
		shell.NewExecutor(log),
		cas.NewStore(),
		fs.NewHasher(),
		fs.NewVerifier(),
		telemetry.NewNoOp(),
		log,
	)
	r.SetClock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) })

	tools := newToolbox(t)
	cfg := domain.DefaultConfig()
	cfg.BaseDir = t.TempDir()
	cfg.Tools.MakeBlastDB = filepath.Join(tools.dir, "makeblastdb")
	cfg.Tools.Blastp = filepath.Join(tools.dir, "blastp")

	return &harness{
		runner: r,
		cfg:    cfg,
		tools:  tools,
		input:  filepath.Join(t.TempDir(), "GH51_short.txt"),
	}
}

func (h *harness) build(t *testing.T, content string) *domain.BuildResult {
	t.Helper()
	writeFile(t, h.input, content)
	result, err := h.runner.MakeBlastDB(context.Background(), h.cfg, domain.BuildRequest{InputPath: h.input})
	require.NoError(t, err)
	return result
}

func (h *harness) snapshot(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.cfg.Layout().SnapshotPath())
	require.NoError(t, err)
	return string(data)
}

func TestIntegration_FirstBuildThenCached(t *testing.T) {
	h := newHarness(t)

	first := h.build(t, ">seq1\nMKV\n>seq2\nLLA\n")
	assert.True(t, first.Rebuilt)
	assert.Equal(t, domain.VertexStatusCompleted, first.Status)
	assert.Equal(t, []string{"seq1", "seq2"}, first.Plan.Diff.New.IDs())
	assert.Contains(t, first.Tool.Stdout, "added 2 sequences")
	assert.Equal(t, ">seq1\nMKV\n>seq2\nLLA\n", h.snapshot(t))
	assert.FileExists(t, h.cfg.Layout().DatabasePrefix(domain.DefaultDatabaseName)+".pin")

	info, err := cas.NewStore().Get(h.cfg.BaseDir, domain.DefaultDatabaseName)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 2, info.SequenceCount)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), info.Timestamp)

	second := h.build(t, ">seq1\nMKV\n>seq2\nLLA\n")
	assert.False(t, second.Rebuilt)
	assert.Equal(t, domain.VertexStatusCached, second.Status)
	assert.Equal(t, 1, h.tools.calls(t, "makeblastdb"))
}

func TestIntegration_AddedAndRemovedSequencesRebuild(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n>seq2\nLLA\n")

	added := h.build(t, ">seq1\nMKV\n>seq2\nLLA\n>seq3\nWWW\n")
	assert.True(t, added.Rebuilt)
	assert.Equal(t, []string{"seq3"}, added.Plan.Diff.New.IDs())

	removed := h.build(t, ">seq1\nMKV\n")
	assert.True(t, removed.Rebuilt)
	assert.Equal(t, []string{"seq2", "seq3"}, removed.Plan.Diff.Removed.IDs())
	assert.Equal(t, ">seq1\nMKV\n", h.snapshot(t))
	assert.Equal(t, 3, h.tools.calls(t, "makeblastdb"))
}

func TestIntegration_ContentChanges(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n")

	ignored := h.build(t, ">seq1\nMKVLLA\n")
	assert.False(t, ignored.Rebuilt)
	assert.True(t, ignored.Plan.IgnoredContentChanges)
	assert.Equal(t, ">seq1\nMKV\n", h.snapshot(t))

	h.cfg.DetectContentChanges = true
	detected := h.build(t, ">seq1\nMKVLLA\n")
	assert.True(t, detected.Rebuilt)
	assert.True(t, detected.Plan.Has(domain.ReasonContentChanged))
	assert.Equal(t, ">seq1\nMKVLLA\n", h.snapshot(t))
}

func TestIntegration_CacheDisabledAlwaysRebuilds(t *testing.T) {
	h := newHarness(t)
	h.cfg.Cache = false

	h.build(t, ">seq1\nMKV\n")
	again := h.build(t, ">seq1\nMKV\n")

	assert.True(t, again.Rebuilt)
	assert.Equal(t, []domain.RebuildReason{domain.ReasonCacheDisabled}, again.Plan.Reasons)
	assert.Equal(t, 2, h.tools.calls(t, "makeblastdb"))
}

func TestIntegration_MissingDatabaseRebuilds(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n")

	require.NoError(t, os.Remove(h.cfg.Layout().DatabasePrefix(domain.DefaultDatabaseName)+".pin"))

	again := h.build(t, ">seq1\nMKV\n")
	assert.True(t, again.Rebuilt)
	assert.Equal(t, []domain.RebuildReason{domain.ReasonDatabaseMissing}, again.Plan.Reasons)
}

func TestIntegration_FailedBuildKeepsSnapshot(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n")
	before := h.snapshot(t)
	infoBefore, err := cas.NewStore().Get(h.cfg.BaseDir, domain.DefaultDatabaseName)
	require.NoError(t, err)

	h.tools.fail(t, "makeblastdb", true)
	writeFile(t, h.input, ">seq1\nMKV\n>seq2\nLLA\n")

	result, err := h.runner.MakeBlastDB(context.Background(), h.cfg, domain.BuildRequest{InputPath: h.input})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDatabaseBuildFailed))
	assert.True(t, errors.Is(err, domain.ErrExternalToolFailure))
	assert.Equal(t, 1, result.Tool.ExitCode)
	assert.Contains(t, result.Tool.Stderr, "simulated failure")

	assert.Equal(t, before, h.snapshot(t))
	infoAfter, err := cas.NewStore().Get(h.cfg.BaseDir, domain.DefaultDatabaseName)
	require.NoError(t, err)
	assert.Equal(t, infoBefore, infoAfter)

	// The next successful run picks up the pending change.
	h.tools.fail(t, "makeblastdb", false)
	retry := h.build(t, ">seq1\nMKV\n>seq2\nLLA\n")
	assert.True(t, retry.Rebuilt)
	assert.Equal(t, []string{"seq2"}, retry.Plan.Diff.New.IDs())
}

func TestIntegration_ForceAndTypeChange(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n")

	writeFile(t, h.input, ">seq1\nMKV\n")
	forced, err := h.runner.MakeBlastDB(context.Background(), h.cfg, domain.BuildRequest{InputPath: h.input, Force: true})
	require.NoError(t, err)
	assert.Equal(t, []domain.RebuildReason{domain.ReasonForced}, forced.Plan.Reasons)

	h.cfg.Database.Type = domain.DBTypeNucleotide
	switched := h.build(t, ">seq1\nMKV\n")
	assert.True(t, switched.Plan.Has(domain.ReasonDatabaseTypeChanged))
	assert.FileExists(t, h.cfg.Layout().DatabasePrefix(domain.DefaultDatabaseName)+".nin")
}

func TestIntegration_MissingInputLeavesNothingBehind(t *testing.T) {
	h := newHarness(t)

	_, err := h.runner.MakeBlastDB(context.Background(), h.cfg, domain.BuildRequest{InputPath: h.input})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSequenceFileNotFound))
	assert.NoFileExists(t, h.cfg.Layout().SnapshotPath())
	assert.Equal(t, 0, h.tools.calls(t, "makeblastdb"))
}

func TestIntegration_Search(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n>seq2\nLLA\n")

	layout := h.cfg.Layout()
	job := domain.SearchJob{
		Query:    h.input,
		Database: layout.DatabasePrefix(domain.DefaultDatabaseName),
		Output:   layout.OutputPath(h.input),
	}

	result, err := h.runner.RunBlastp(context.Background(), h.cfg, job)
	require.NoError(t, err)
	assert.Equal(t, domain.VertexStatusCompleted, result.Status)

	out, err := os.ReadFile(filepath.Join(layout.OutputDir(), "GH51_short_blast_results.txt"))
	require.NoError(t, err)
	assert.Equal(t, "seq1\tseq1\t100.000\nseq2\tseq2\t100.000\n", string(out))

	h.tools.fail(t, "blastp", true)
	result, err = h.runner.RunBlastp(context.Background(), h.cfg, job)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchFailed))
	assert.Equal(t, 2, result.Tool.ExitCode)
	assert.Contains(t, result.Tool.Stderr, "simulated failure")
}

func TestIntegration_SearchBatchKeepsOrder(t *testing.T) {
	h := newHarness(t)
	h.cfg.Search.Parallelism = 3
	h.build(t, ">seq1\nMKV\n")

	layout := h.cfg.Layout()
	dir := t.TempDir()
	var jobs []domain.SearchJob
	for i := range 5 {
		query := filepath.Join(dir, fmt.Sprintf("q%d.fasta", i))
		writeFile(t, query, fmt.Sprintf(">query%d\nMKV\n", i))
		jobs = append(jobs, domain.SearchJob{
			Query:    query,
			Database: layout.DatabasePrefix(domain.DefaultDatabaseName),
			Output:   layout.OutputPath(query),
		})
	}

	results, err := h.runner.RunBlastpBatch(context.Background(), h.cfg, jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, res := range results {
		assert.Equal(t, jobs[i], res.Job)
		assert.FileExists(t, jobs[i].Output)
	}
	assert.Equal(t, 5, h.tools.calls(t, "blastp"))
}

func TestIntegration_SearchBatchStopsOnFailure(t *testing.T) {
	h := newHarness(t)
	h.build(t, ">seq1\nMKV\n")
	h.tools.fail(t, "blastp", true)

	layout := h.cfg.Layout()
	jobs := []domain.SearchJob{
		{Query: h.input, Database: layout.DatabasePrefix(domain.DefaultDatabaseName), Output: filepath.Join(layout.OutputDir(), "a.txt")},
		{Query: h.input, Database: layout.DatabasePrefix(domain.DefaultDatabaseName), Output: filepath.Join(layout.OutputDir(), "b.txt")},
	}

	results, err := h.runner.RunBlastpBatch(context.Background(), h.cfg, jobs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchFailed))
	require.Len(t, results, 2)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.Equal(t, 1, h.tools.calls(t, "blastp"))
}
