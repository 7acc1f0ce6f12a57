package domain

import "go.trai.ch/zerr"

var (
	// ErrSequenceFileNotFound is returned when a FASTA file does not exist.
	ErrSequenceFileNotFound = zerr.New("sequence file not found")

	// ErrSequenceFileRead is returned when a FASTA file exists but cannot be read.
	ErrSequenceFileRead = zerr.New("failed to read sequence file")

	// ErrSequenceFileWrite is returned when a FASTA file cannot be written.
	ErrSequenceFileWrite = zerr.New("failed to write sequence file")

	// ErrMissingHeader is returned when sequence content appears before any '>' header line.
	ErrMissingHeader = zerr.New("sequence data before first header")

	// ErrEmptyIdentifier is returned for a header line with no identifier.
	ErrEmptyIdentifier = zerr.New("empty sequence identifier")

	// ErrDuplicateSequenceID is returned when an identifier occurs twice in the same file.
	ErrDuplicateSequenceID = zerr.New("duplicate sequence identifier")

	// ErrMalformedRecord is returned for an identifier or residues that would not
	// read back unchanged from a FASTA file.
	ErrMalformedRecord = zerr.New("sequence record cannot be represented in FASTA")

	// ErrExternalToolFailure is returned when an external tool exits with a non-zero status.
	ErrExternalToolFailure = zerr.New("external tool failed")

	// ErrToolStartFailed is returned when an external tool cannot be started at all.
	ErrToolStartFailed = zerr.New("failed to start external tool")

	// ErrDatabaseBuildFailed is returned when makeblastdb does not produce a database.
	ErrDatabaseBuildFailed = zerr.New("database build failed")

	// ErrSearchFailed is returned when a blastp search does not complete.
	ErrSearchFailed = zerr.New("search failed")

	// ErrDatabaseNotFound is returned when the database artifacts for a prefix are missing.
	ErrDatabaseNotFound = zerr.New("database not found")

	// ErrInvalidDBType is returned for a database type other than "prot" or "nucl".
	ErrInvalidDBType = zerr.New("invalid database type, expected 'prot' or 'nucl'")

	// ErrInvalidDatabaseName is returned when a database name is empty or contains a path separator.
	ErrInvalidDatabaseName = zerr.New("invalid database name")

	// ErrMissingBaseDir is returned when no base directory is configured.
	ErrMissingBaseDir = zerr.New("base directory is required")

	// ErrInvalidParallelism is returned when search parallelism is lower than one.
	ErrInvalidParallelism = zerr.New("search parallelism must be at least 1")

	// ErrMissingToolPath is returned when a tool executable is configured as an empty string.
	ErrMissingToolPath = zerr.New("tool executable not configured")

	// ErrInvalidToolEnv is returned when tools.env holds an unusable variable name.
	ErrInvalidToolEnv = zerr.New("invalid tool environment variable")

	// ErrNoQueries is returned when a search is requested without query files.
	ErrNoQueries = zerr.New("no query files specified")

	// ErrQueryNotFound is returned when a query pattern matches no file.
	ErrQueryNotFound = zerr.New("query not found")

	// ErrOutputWithMultipleQueries is returned when an explicit output path is combined with several queries.
	ErrOutputWithMultipleQueries = zerr.New("an explicit output path requires exactly one query")

	// ErrOutputCollision is returned when two queries would write the same result file.
	ErrOutputCollision = zerr.New("queries resolve to the same output file")

	// ErrCacheUpdateFailed is returned when the snapshot cannot be committed after a successful build.
	ErrCacheUpdateFailed = zerr.New("failed to update sequence cache")

	// ErrLayoutCreateFailed is returned when the working directories cannot be created.
	ErrLayoutCreateFailed = zerr.New("failed to create working directories")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned for a config file version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrCleanFailed is returned when cached state cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean cached state")
)
