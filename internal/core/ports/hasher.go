package ports

import "go.trai.ch/blastrunner/internal/core/domain"

// Hasher computes content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes the ordered (identifier, residues) pairs of set.
	Fingerprint(set *domain.SequenceSet) string
}
