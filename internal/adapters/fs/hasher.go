package fs

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash fingerprints of sequence sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the records of set sorted by identifier, so two sets that
// compare Equal always share a fingerprint.
func (h *Hasher) Fingerprint(set *domain.SequenceSet) string {
	hasher := xxhash.New()

	for _, id := range slices.Sorted(slices.Values(set.IDs())) {
		residues, _ := set.Get(id)
		_, _ = hasher.WriteString(id)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(residues)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
