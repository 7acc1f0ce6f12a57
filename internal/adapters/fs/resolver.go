package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.QueryResolver = (*Resolver)(nil)

// FastaExtensions are the file extensions picked up when a directory is given as a query.
var FastaExtensions = []string{".fa", ".faa", ".fas", ".fasta", ".txt"}

// Resolver implements ports.QueryResolver using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveQueries expands the patterns to concrete query files.
//
// Relative patterns are joined with root. A pattern may be a file, a glob, or a
// directory, in which case every file with a FASTA extension below it is used.
// Matches of one pattern are sorted; the order of patterns is kept and duplicates
// are dropped. A pattern that matches nothing is an error, and so is a directory
// that cannot be fully read.
func (r *Resolver) ResolveQueries(patterns []string, root string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, domain.ErrNoQueries
	}

	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, errors.Join(domain.ErrQueryNotFound, zerr.With(zerr.New("no match"), "path", path))
		}
		slices.Sort(matches)

		found := false
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat query"), "path", match)
			}
			if !info.IsDir() {
				add(match)
				found = true
				continue
			}
			for file, err := range r.walker.WalkFiles(match) {
				if err != nil {
					return nil, errors.Join(domain.ErrSequenceFileRead, err)
				}
				if IsFastaFile(file) {
					add(file)
					found = true
				}
			}
		}

		if !found {
			return nil, errors.Join(
				domain.ErrQueryNotFound,
				zerr.With(zerr.New("no FASTA files in directory"), "path", path),
			)
		}
	}

	return result, nil
}

// IsFastaFile reports whether path carries one of FastaExtensions.
func IsFastaFile(path string) bool {
	return slices.Contains(FastaExtensions, strings.ToLower(filepath.Ext(path)))
}
