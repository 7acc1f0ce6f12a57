package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/blastrunner/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/adapters/fasta"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/blastrunner/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fasta.NodeID,
			shell.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			sequences, err := graft.Dep[ports.SequenceRepository](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.DatabaseVerifier](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(sequences, executor, store, hasher, verifier, telemetry, log), nil
		},
	})
}
