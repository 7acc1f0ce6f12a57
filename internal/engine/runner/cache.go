package runner

import (
	"errors"
	"os"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/zerr"
)

// LastBuild returns the record of the last successful build of the configured
// database, or nil if it was never built.
func (r *Runner) LastBuild(cfg *domain.Config) (*domain.BuildInfo, error) {
	return r.store.Get(cfg.Layout().Root(), cfg.Database.Name)
}

// Clean removes the snapshot, the scratch file and every build record.
// Database files and search results are left alone; the next build starts from an
// empty snapshot and rebuilds.
func (r *Runner) Clean(cfg *domain.Config) error {
	layout := cfg.Layout()

	for _, path := range []string{layout.SnapshotPath(), layout.ScratchPath()} {
		err := os.Remove(path)
		switch {
		case err == nil:
			r.logger.Debug("removed " + path)
		case !errors.Is(err, os.ErrNotExist):
			return errors.Join(domain.ErrCleanFailed, zerr.With(err, "path", path))
		}
	}

	return r.store.Clear(layout.Root())
}
