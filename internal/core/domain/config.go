package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// DBType is the molecule type of a BLAST database.
type DBType string

const (
	// DBTypeProtein builds a protein database (makeblastdb -dbtype prot).
	DBTypeProtein DBType = "prot"
	// DBTypeNucleotide builds a nucleotide database (makeblastdb -dbtype nucl).
	DBTypeNucleotide DBType = "nucl"
)

// ParseDBType converts user input to a DBType.
func ParseDBType(s string) (DBType, error) {
	switch DBType(strings.ToLower(strings.TrimSpace(s))) {
	case DBTypeProtein:
		return DBTypeProtein, nil
	case DBTypeNucleotide:
		return DBTypeNucleotide, nil
	default:
		return "", errors.Join(ErrInvalidDBType, zerr.With(zerr.New("unknown database type"), "dbtype", s))
	}
}

// String returns the value passed to -dbtype.
func (t DBType) String() string {
	return string(t)
}

const (
	// DefaultDatabaseName is the database name used when none is configured.
	DefaultDatabaseName = "blast_db"

	// DefaultMakeBlastDB is the makeblastdb executable looked up on PATH.
	DefaultMakeBlastDB = "makeblastdb"

	// DefaultBlastp is the blastp executable looked up on PATH.
	DefaultBlastp = "blastp"

	// DefaultSearchParallelism keeps batch searches sequential unless configured otherwise.
	DefaultSearchParallelism = 1
)

// Config is the resolved runtime configuration.
type Config struct {
	// BaseDir is the root of the working layout. Required.
	BaseDir string
	// Verbose enables debug logging.
	Verbose bool
	// Cache enables skipping database builds when the input did not change.
	Cache bool
	// DetectContentChanges makes residue changes under an unchanged identifier trigger a rebuild.
	DetectContentChanges bool

	Database DatabaseConfig
	Tools    ToolsConfig
	Search   SearchConfig
}

// DatabaseConfig names the database built by makeblastdb.
type DatabaseConfig struct {
	Name string
	Type DBType
}

// ToolsConfig holds the external executables.
type ToolsConfig struct {
	MakeBlastDB string
	Blastp      string
	// Env is layered over the process environment of both tools,
	// e.g. BLASTDB or BLASTDB_LMDB_MAP_SIZE.
	Env map[string]string
}

// SearchConfig tunes blastp invocations.
type SearchConfig struct {
	Parallelism int
	ExtraArgs   []string
}

// DefaultConfig returns a configuration with every field except BaseDir populated.
func DefaultConfig() *Config {
	return &Config{
		Cache: true,
		Database: DatabaseConfig{
			Name: DefaultDatabaseName,
			Type: DBTypeProtein,
		},
		Tools: ToolsConfig{
			MakeBlastDB: DefaultMakeBlastDB,
			Blastp:      DefaultBlastp,
		},
		Search: SearchConfig{
			Parallelism: DefaultSearchParallelism,
		},
	}
}

// Validate checks the configuration for values the runner cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return ErrMissingBaseDir
	}
	if _, err := ParseDBType(c.Database.Type.String()); err != nil {
		return err
	}
	if err := ValidateDatabaseName(c.Database.Name); err != nil {
		return err
	}
	if c.Tools.MakeBlastDB == "" {
		return errors.Join(ErrMissingToolPath, zerr.With(zerr.New("empty tool path"), "tool", "makeblastdb"))
	}
	if c.Tools.Blastp == "" {
		return errors.Join(ErrMissingToolPath, zerr.With(zerr.New("empty tool path"), "tool", "blastp"))
	}
	for key := range c.Tools.Env {
		if key == "" || strings.ContainsAny(key, "=\x00") {
			return errors.Join(ErrInvalidToolEnv, zerr.With(zerr.New("bad variable name"), "name", key))
		}
	}
	if c.Search.Parallelism < 1 {
		return errors.Join(
			ErrInvalidParallelism,
			zerr.With(zerr.New("parallelism out of range"), "parallelism", c.Search.Parallelism),
		)
	}
	return nil
}

// ValidateDatabaseName rejects names that would escape the database directory.
func ValidateDatabaseName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Join(ErrInvalidDatabaseName, zerr.With(zerr.New("bad database name"), "name", name))
	}
	return nil
}

// Layout returns the working layout rooted at BaseDir.
func (c *Config) Layout() Layout {
	return NewLayout(c.BaseDir)
}
