package fasta

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SequenceRepository = (*Repository)(nil)

// Repository implements ports.SequenceRepository on the local filesystem.
type Repository struct{}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Read parses the FASTA file at path.
func (r *Repository) Read(path string) (*domain.SequenceSet, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrSequenceFileNotFound, zerr.With(zerr.Wrap(err, "open failed"), "path", path))
		}
		return nil, errors.Join(domain.ErrSequenceFileRead, zerr.With(zerr.Wrap(err, "open failed"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Read-only file

	return decode(f, path)
}

// Write replaces the file at path with set.
// The content is written to a temporary file next to path and renamed over it,
// so readers never observe a partially written file.
func (r *Repository) Write(path string, set *domain.SequenceSet) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return writeError(err, "failed to create directory", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return writeError(err, "failed to create temporary file", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Gone after a successful rename

	if err := Encode(tmp, set); err != nil {
		_ = tmp.Close()
		return writeError(err, "failed to encode sequences", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return writeError(err, "failed to set permissions", path)
	}
	if err := tmp.Close(); err != nil {
		return writeError(err, "failed to close temporary file", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return writeError(err, "failed to replace file", path)
	}
	return nil
}

func writeError(err error, msg, path string) error {
	return errors.Join(domain.ErrSequenceFileWrite, zerr.With(zerr.Wrap(err, msg), "path", path))
}
