package logger_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blastrunner/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_WritesToStderr(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Info("some message")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "some warning")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "permission denied")
}

func TestLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "shown")

	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestLogger_SetOutputKeepsLevel(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetVerbose(true)

	lg.SetOutput(&second)
	lg.Debug("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	sentinel := zerr.New("search failed")
	cause := zerr.With(zerr.With(zerr.New("command failed"), "tool", "blastp"), "exit_code", 2)
	lg.Error(errors.Join(sentinel, cause))

	line := buf.String()
	assert.Contains(t, line, "tool=blastp")
	assert.Contains(t, line, "exit_code=2")
	assert.Less(t, strings.Index(line, "exit_code"), strings.Index(line, "tool="))
}
