// Package cas stores build records, one JSON file per database.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a file-per-database strategy.
// Records live under <root>/blast_cache/builds, named by the hash of the database name.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build record for a database. It returns nil, nil when none exists.
func (s *Store) Get(root, databaseName string) (*domain.BuildInfo, error) {
	filename := s.filename(root, databaseName)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrStoreReadFailed, zerr.With(err, "path", filename))
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(err, "path", filename))
	}

	return &info, nil
}

// Put stores the build record, replacing any previous one for the same database.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	filename := s.filename(root, info.DatabaseName)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, zerr.With(err, "path", filename))
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "path", filename))
	}

	return nil
}

// Clear removes every build record under root.
func (s *Store) Clear(root string) error {
	dir := domain.NewLayout(root).BuildsDir()
	if err := os.RemoveAll(dir); err != nil {
		return errors.Join(domain.ErrCleanFailed, zerr.With(err, "path", dir))
	}
	return nil
}

func (s *Store) filename(root, databaseName string) string {
	hash := sha256.Sum256([]byte(databaseName))
	return filepath.Join(domain.NewLayout(root).BuildsDir(), hex.EncodeToString(hash[:])+".json")
}
