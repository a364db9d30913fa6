package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/seqseed/seqseed/internal/console"
)

// ErrStderr is returned when the runner exits cleanly but writes to stderr.
// Seeder scripts report failures that way, so it counts as a failed run.
var ErrStderr = errors.New("runner wrote to stderr")

// Runner executes a seeder entry file.
type Runner interface {
	Run(ctx context.Context, entryPath string) (*Output, error)
}

// Output captures the result of a runner execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner runs "<Command> <entryPath>", e.g. "npx ts-node src/database-seeder/seeder.ts".
type CommandRunner struct {
	Command string // program followed by its leading arguments
	Dir     string // working directory; empty means the current one

	// Stdout receives the runner's standard output as it is produced. Nil discards it.
	Stdout io.Writer
}

// NewCommandRunner returns a runner for the given command line.
func NewCommandRunner(command, dir string) *CommandRunner {
	return &CommandRunner{Command: command, Dir: dir}
}

// Argv returns the full argument vector used for entryPath.
func (r *CommandRunner) Argv(entryPath string) ([]string, error) {
	fields := strings.Fields(r.Command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("runner command is empty")
	}
	return append(fields, entryPath), nil
}

// Run executes the runner and waits for it to finish. There is no timeout; ctx
// only ends the process when the caller itself is cancelled.
func (r *CommandRunner) Run(ctx context.Context, entryPath string) (*Output, error) {
	argv, err := r.Argv(entryPath)
	if err != nil {
		return nil, err
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("runner %q not found: %w", argv[0], err)
	}

	console.Log.WithField("argv", strings.Join(argv, " ")).Debug("starting runner")

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = r.Dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, fmt.Errorf("%s exited with code %d: %s", argv[0], output.ExitCode, strings.TrimSpace(output.Stderr))
		}
		return output, fmt.Errorf("executing %s: %w", argv[0], err)
	}

	if output.Stderr != "" {
		return output, fmt.Errorf("%w: %s", ErrStderr, strings.TrimSpace(output.Stderr))
	}
	return output, nil
}
