package ports

import "go.trai.ch/blastrunner/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the record for a database under root.
	// Returns nil, nil if not found.
	Get(root, databaseName string) (*domain.BuildInfo, error)

	// Put stores the record under root.
	Put(root string, info domain.BuildInfo) error

	// Clear removes every record under root.
	Clear(root string) error
}
