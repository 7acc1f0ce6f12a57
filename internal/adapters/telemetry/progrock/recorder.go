// Package progrock records tool runs on a progrock tape.
package progrock

import (
	"context"
	"sync"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/blastrunner/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using a progrock recorder.
// Every vertex outcome is also reported to the logger at debug level.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger

	mu     sync.Mutex
	counts map[string]int

	closeOnce sync.Once
	closeErr  error
}

// New creates a new Recorder writing to an in-memory tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
		counts: make(map[string]int),
	}
}

// Record starts a vertex named name and returns a context carrying it.
// Repeated names get distinct digests so that each run is its own vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	n := r.counts[name]
	r.counts[name] = n + 1
	r.mu.Unlock()

	d := digest.FromString(name)
	if n > 0 {
		d = digest.FromString(name + "#" + time.Now().Format(time.RFC3339Nano))
	}

	vertex := &Vertex{
		name:    name,
		vertex:  r.rec.Vertex(d, name),
		logger:  r.logger,
		started: time.Now(),
	}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session. Later calls return the first result.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		if c, ok := r.w.(interface{ Close() error }); ok {
			r.closeErr = c.Close()
		}
	})
	return r.closeErr
}
