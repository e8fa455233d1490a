package fork

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Process is a child process running a command to completion.
type Process struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
}

type ProcessOpt = func(p *Process)

// WithEnv adds KEY=VALUE environment variables to the process
func WithEnv(env ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs adds command line arguments to the process
func WithArgs(args ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// NewProcess returns new unstarted process instance.
// The process is killed when ctx is done.
func NewProcess(ctx context.Context, command string, opts ...ProcessOpt) *Process {
	p := &Process{
		cmd:    exec.CommandContext(ctx, command),
		stdout: new(buffer),
		stderr: new(buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	return p
}

// Start attempts to create OS process and start command execution.
func (p *Process) Start() error {
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("cannot start %s: %w", p, err)
	}
	return nil
}

// Wait blocks until the process exits and returns its exit code.
// Nonzero exit code is not considered an error.
func (p *Process) Wait() (exitCode int, err error) {
	err = p.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("error waiting for %s: %w", p, err)
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// Run starts the process and waits for it to exit.
func (p *Process) Run() (exitCode int, err error) {
	if err := p.Start(); err != nil {
		return -1, err
	}
	return p.Wait()
}

// Stdout returns everything the process has written to stdout so far.
func (p *Process) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *Process) Stderr() []byte {
	return p.stderr.Bytes()
}

// String returns a human-readable representation of process command.
func (p *Process) String() string {
	return p.cmd.String()
}
