// Package process runs the external collaborators (screen capture tools, the
// video encoder) and turns their failures into descriptive errors.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ttygif/ttygif/log"
)

// waitDelay bounds how long a killed collaborator may keep its pipes open.
const waitDelay = 2 * time.Second

// Runner starts external programs. Exec is the real implementation; tests substitute fakes.
type Runner interface {
	// Run executes name and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes name and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Error describes a collaborator that could not be started or exited unsuccessfully.
type Error struct {
	Name   string
	Args   []string
	Err    error
	Stderr string
}

func (e *Error) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Name, e.Err, e.Stderr)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Exec runs programs with os/exec.
type Exec struct{}

func (Exec) Run(ctx context.Context, name string, args ...string) error {
	_, err := run(ctx, name, args, false)
	return err
}

func (Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return run(ctx, name, args, true)
}

// Available reports whether name can be found in PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func run(ctx context.Context, name string, args []string, capture bool) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Cancel = func() error { return killProcess(cmd) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdin = nil
	cmd.Stderr = &stderr
	if capture {
		cmd.Stdout = &stdout
	}

	log.With(log.Fields{"name": name, "args": args}).Debug("running collaborator")

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Name: name, Args: args, Err: err, Stderr: lastLine(stderr.String())}
	}

	return stdout.Bytes(), nil
}

// lastLine keeps the final non-empty line of a diagnostic stream, which is
// where tools like ffmpeg put the actual reason of a failure.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
