package fasta

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/blastrunner/internal/core/ports"
)

// NodeID is the unique identifier for the sequence repository Graft node.
const NodeID graft.ID = "adapter.sequence_repository"

func init() {
	graft.Register(graft.Node[ports.SequenceRepository]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SequenceRepository, error) {
			return NewRepository(), nil
		},
	})
}
