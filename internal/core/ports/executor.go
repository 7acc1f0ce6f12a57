// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/blastrunner/internal/core/domain"
)

// Executor defines the interface for running external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the invocation and waits for it to exit.
	//
	// The result is returned whenever the process started, including on a non-zero
	// exit, in which case the error wraps domain.ErrExternalToolFailure and carries
	// the captured stderr. If the process could not be started the result is nil and
	// the error wraps domain.ErrToolStartFailed.
	Run(ctx context.Context, inv domain.ToolInvocation) (*domain.ToolResult, error)
}
