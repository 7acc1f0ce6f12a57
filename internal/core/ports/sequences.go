package ports

import "go.trai.ch/blastrunner/internal/core/domain"

// SequenceRepository reads and writes FASTA files.
//
//go:generate go run go.uber.org/mock/mockgen -source=sequences.go -destination=mocks/mock_sequences.go -package=mocks
type SequenceRepository interface {
	// Read parses the FASTA file at path.
	Read(path string) (*domain.SequenceSet, error)

	// Write replaces the file at path with set, one record per line pair.
	Write(path string, set *domain.SequenceSet) error
}
