// Package fs provides file system adapters for walking, resolving and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root in lexical order, with a nil error.
// Hidden directories and the working layout directories are skipped. Paths are
// yielded including root. A directory that cannot be read yields its error once
// and ends the walk.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(path, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path))
				return filepath.SkipAll
			}

			if path != root && d.IsDir() && skipDir(d.Name()) {
				return filepath.SkipDir
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	switch name {
	case domain.CacheDirName, domain.DatabaseDirName, domain.OutputDirName:
		return true
	}
	return false
}
