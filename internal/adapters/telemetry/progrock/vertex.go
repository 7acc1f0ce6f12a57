package progrock

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	name    string
	vertex  *progrock.VertexRecorder
	logger  ports.Logger
	started time.Time

	once   sync.Once
	status domain.VertexStatus
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer to capture error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a message against the vertex and forwards it, prefixed with the
// vertex name, to the logger at the matching level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
	if v.logger == nil {
		return
	}

	line := v.name + ": " + msg
	switch {
	case level >= domain.LogLevelError:
		v.logger.Error(zerr.New(line))
	case level >= domain.LogLevelWarn:
		v.logger.Warn(line)
	case level >= domain.LogLevelInfo:
		v.logger.Info(line)
	default:
		v.logger.Debug(line)
	}
}

// Complete marks the vertex as finished. Only the first call has an effect.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.status = domain.VertexStatusCompleted
		if err != nil {
			v.status = domain.VertexStatusFailed
		}
		v.vertex.Done(err)
		v.report()
	})
}

// Cached marks the vertex as a cache hit and finishes it.
func (v *Vertex) Cached() {
	v.once.Do(func() {
		v.status = domain.VertexStatusCached
		v.vertex.Cached()
		v.vertex.Done(nil)
		v.report()
	})
}

// Status returns the final status, or an empty status while the vertex is running.
func (v *Vertex) Status() domain.VertexStatus {
	return v.status
}

func (v *Vertex) report() {
	if v.logger == nil {
		return
	}
	elapsed := time.Since(v.started).Round(time.Millisecond)
	v.logger.Debug(fmt.Sprintf("%s: %s in %s", v.name, v.status, elapsed))
}
