package ports

// QueryResolver expands query arguments into concrete FASTA files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type QueryResolver interface {
	// ResolveQueries expands globs and directories relative to root.
	ResolveQueries(patterns []string, root string) ([]string, error)
}
