package ports

import (
	"context"
	"io"

	"go.trai.ch/blastrunner/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work such as external tool runs.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the work's standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the work's error output.
	Stderr() io.Writer
	// Log records a message against the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished; a nil error means success.
	Complete(err error)
	// Cached marks the vertex as skipped because the cached state was current.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
