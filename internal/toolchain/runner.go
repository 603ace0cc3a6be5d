package toolchain

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner executes one external tool invocation. Output is streamed to the
// provided writers as it is produced and also captured for error reporting.
type Runner interface {
	Run(ctx context.Context, dir, name string, args, env []string, stdout, stderr io.Writer) (captured string, err error)
}

// ExecRunner runs tools as real subprocesses, blocking until they exit.
// There is no timeout and no retry: a hang in the tool is visible as a
// hang, and every failure is surfaced exactly once.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args, env []string, stdout, stderr io.Writer) (string, error) {
	var captured bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = io.MultiWriter(stdout, &captured)
	cmd.Stderr = io.MultiWriter(stderr, &captured)

	err := cmd.Run()
	return captured.String(), err
}
