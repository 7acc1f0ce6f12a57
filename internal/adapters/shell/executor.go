// Package shell runs external tools with os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// stderrTailLimit bounds how much of a failing tool's stderr is attached to the error.
	stderrTailLimit = 4096

	// waitDelay bounds how long output pipes are drained after the context kills a tool.
	waitDelay = 2 * time.Second
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the invocation and waits for it to exit.
//
// Output is captured into the returned result. It is also streamed line by line to
// the debug log and, when ctx carries one, to the vertex.
// The environment is the process environment overlaid with inv.Env.
func (e *Executor) Run(ctx context.Context, inv domain.ToolInvocation) (*domain.ToolResult, error) {
	if inv.Name == "" {
		return nil, errors.Join(domain.ErrToolStartFailed, zerr.New("empty executable name"))
	}

	cmdEnv := resolveEnvironment(os.Environ(), inv.Env)

	// Bare names are looked up on the resolved PATH so that inv.Env can point at a
	// different toolchain than the parent process.
	executable := inv.Name
	if !strings.ContainsRune(inv.Name, filepath.Separator) {
		if lp, err := lookPath(inv.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // configured tool path
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Name
	}
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	stdoutLog, stderrLog := &logWriter{logger: e.logger}, &logWriter{logger: e.logger}
	stdoutSink, stderrSink := io.Writer(stdoutLog), io.Writer(stderrLog)
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdoutSink = io.MultiWriter(v.Stdout(), stdoutLog)
		stderrSink = io.MultiWriter(v.Stderr(), stderrLog)
	}
	cmd.Stdout = io.MultiWriter(&stdout, stdoutSink)
	cmd.Stderr = io.MultiWriter(&stderr, stderrSink)

	e.logger.Debug("running " + inv.String())

	start := time.Now()
	err := cmd.Run()
	stdoutLog.Flush()
	stderrLog.Flush()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Join(
				domain.ErrToolStartFailed,
				zerr.With(zerr.Wrap(err, "failed to start"), "tool", inv.Name),
			)
		}

		result := &domain.ToolResult{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Duration: time.Since(start),
		}

		failure := zerr.Wrap(err, "command failed")
		failure = zerr.With(failure, "tool", inv.Name)
		failure = zerr.With(failure, "exit_code", result.ExitCode)
		if tail := stderrTail(result.Stderr); tail != "" {
			failure = zerr.With(failure, "stderr", tail)
		}
		return result, errors.Join(domain.ErrExternalToolFailure, failure, ctx.Err())
	}

	return &domain.ToolResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}, nil
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		s = "..." + s[len(s)-stderrTailLimit:]
	}
	return s
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits a trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) emit(line []byte) {
	w.logger.Debug(strings.TrimRight(string(line), "\r"))
}

// resolveEnvironment overlays the invocation's variables on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
