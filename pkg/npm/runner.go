//go:generate mockgen -destination=./mocks/runner.go . Runner

// Package npm drives the npm command line: it builds the list, install and
// uninstall commands, runs them, and scrapes generator names out of the listing.
package npm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/genhub/pkg/errors"
)

// Command is a program and its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command line as it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output holds whatever the process wrote before it exited.
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs external commands.
type Runner interface {
	// Run executes cmd and returns its captured output. When the process fails the
	// captured output is still returned alongside the error.
	Run(ctx context.Context, cmd Command) (Output, error)
}

// ExecError is returned when a command exits non-zero or cannot be started.
type ExecError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExecError) Unwrap() []error {
	return []error{errors.ErrCommandFailed, e.Err}
}

// ExecRunner runs commands as child processes. It applies no timeout of its own.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

// NewExecRunner creates a runner that inherits the current environment.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Output, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.Dir
	if len(r.Env) > 0 {
		c.Env = append(c.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return out, &ExecError{Command: cmd.String(), Stderr: out.Stderr, Err: err}
	}
	return out, nil
}
