package domain

import (
	"strings"
	"time"
)

// ToolInvocation is a single external command line.
type ToolInvocation struct {
	// Name is the executable, either a bare name looked up on PATH or a path.
	Name string
	Args []string
	// Env holds extra variables layered over the process environment.
	// A PATH entry also changes where a bare Name is looked up.
	Env map[string]string
}

// String renders the command line for logs.
func (t ToolInvocation) String() string {
	return strings.Join(append([]string{t.Name}, t.Args...), " ")
}

// ToolResult is what an external process left behind.
type ToolResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Succeeded reports a zero exit status.
func (r *ToolResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// MakeBlastDBInvocation builds the makeblastdb command line.
func MakeBlastDBInvocation(executable, input string, dbType DBType, outPrefix string) ToolInvocation {
	return ToolInvocation{
		Name: executable,
		Args: []string{
			"-in", input,
			"-dbtype", dbType.String(),
			"-out", outPrefix,
		},
	}
}

// OutputFormatTabular is the blastp -outfmt value for tab separated hits.
const OutputFormatTabular = "6"

// BlastpInvocation builds the blastp command line. Extra arguments are appended
// after the fixed ones.
func BlastpInvocation(executable, query, dbPrefix, output string, extra []string) ToolInvocation {
	args := []string{
		"-query", query,
		"-db", dbPrefix,
		"-out", output,
		"-outfmt", OutputFormatTabular,
	}
	args = append(args, extra...)
	return ToolInvocation{Name: executable, Args: args}
}
