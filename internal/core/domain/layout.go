package domain

import "path/filepath"

const (
	// CacheDirName holds the snapshot, the scratch file and build records.
	CacheDirName = "blast_cache"

	// DatabaseDirName holds the makeblastdb output.
	DatabaseDirName = "data_base"

	// OutputDirName holds blastp tabular results.
	OutputDirName = "blast_output"

	// BuildsDirName holds one JSON build record per database, inside CacheDirName.
	BuildsDirName = "builds"

	// SnapshotFileName is the FASTA snapshot of the last successfully built sequence set.
	SnapshotFileName = "processed_sequences.fasta"

	// ScratchFileName is the FASTA file handed to makeblastdb.
	ScratchFileName = "current_sequences.fasta"

	// ResultsSuffix is appended to a query's stem to name its default output file.
	ResultsSuffix = "_blast_results.txt"

	// ConfigFileName is the default configuration file name.
	ConfigFileName = "blastrunner.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every path of the working directory tree.
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{root: filepath.Clean(root)}
}

// Root returns the base directory.
func (l Layout) Root() string {
	return l.root
}

// CacheDir returns <base>/blast_cache.
func (l Layout) CacheDir() string {
	return filepath.Join(l.root, CacheDirName)
}

// DatabaseDir returns <base>/data_base.
func (l Layout) DatabaseDir() string {
	return filepath.Join(l.root, DatabaseDirName)
}

// OutputDir returns <base>/blast_output.
func (l Layout) OutputDir() string {
	return filepath.Join(l.root, OutputDirName)
}

// BuildsDir returns <base>/blast_cache/builds.
func (l Layout) BuildsDir() string {
	return filepath.Join(l.CacheDir(), BuildsDirName)
}

// SnapshotPath returns the CacheSnapshot path.
func (l Layout) SnapshotPath() string {
	return filepath.Join(l.CacheDir(), SnapshotFileName)
}

// ScratchPath returns the scratch FASTA path.
func (l Layout) ScratchPath() string {
	return filepath.Join(l.CacheDir(), ScratchFileName)
}

// DatabasePrefix returns the makeblastdb -out prefix for the named database.
func (l Layout) DatabasePrefix(name string) string {
	return filepath.Join(l.DatabaseDir(), name)
}

// OutputPath returns the default result path for a query file.
func (l Layout) OutputPath(queryPath string) string {
	return filepath.Join(l.OutputDir(), stem(queryPath)+ResultsSuffix)
}

// TaggedOutputPath is OutputPath with tag inserted after the stem, for queries
// whose stems collide.
func (l Layout) TaggedOutputPath(queryPath, tag string) string {
	return filepath.Join(l.OutputDir(), stem(queryPath)+"_"+tag+ResultsSuffix)
}

func stem(path string) string {
	base := filepath.Base(path)
	s := base[:len(base)-len(filepath.Ext(base))]
	if s == "" {
		return base
	}
	return s
}

// Dirs returns every directory the runner writes into.
func (l Layout) Dirs() []string {
	return []string{l.CacheDir(), l.DatabaseDir(), l.OutputDir()}
}
