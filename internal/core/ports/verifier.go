package ports

import "go.trai.ch/blastrunner/internal/core/domain"

// DatabaseVerifier checks for makeblastdb output on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type DatabaseVerifier interface {
	// DatabaseExists reports whether the database files for prefix are present.
	DatabaseExists(prefix string, dbType domain.DBType) (bool, error)
}
