package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseVerifier = (*Verifier)(nil)

// Verifier checks for makeblastdb output files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// indexExtensions lists the files that mark a usable database: a single volume
// index, or an alias file over several volumes.
var indexExtensions = map[domain.DBType][]string{
	domain.DBTypeProtein:    {".pin", ".pal"},
	domain.DBTypeNucleotide: {".nin", ".nal"},
}

// DatabaseExists reports whether the index for prefix is present on disk.
// Multi-volume databases (prefix.00.pin, ...) are recognized as well.
func (v *Verifier) DatabaseExists(prefix string, dbType domain.DBType) (bool, error) {
	exts, ok := indexExtensions[dbType]
	if !ok {
		return false, errors.Join(
			domain.ErrInvalidDBType,
			zerr.With(zerr.New("no index extensions"), "dbtype", dbType.String()),
		)
	}

	for _, ext := range exts {
		path := prefix + ext
		if _, err := os.Stat(path); err == nil {
			return true, nil
		} else if !os.IsNotExist(err) {
			return false, zerr.With(zerr.Wrap(err, "failed to stat database file"), "path", path)
		}
	}

	matches, err := filepath.Glob(prefix + ".[0-9][0-9]" + exts[0])
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to glob database volumes"), "prefix", prefix)
	}
	return len(matches) > 0, nil
}
