// Package recorder records an interactive session into a ttyrec stream.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/samber/lo"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/ttyrec"
	"golang.org/x/term"
)

// bufferSize bounds the payload of a single recorded frame.
const bufferSize = 32 * 1024

// Clock returns the timestamp of the frame being recorded.
type Clock func() time.Time

// Recorder runs a command under a pseudo terminal and records everything it prints.
type Recorder struct {
	// Command is run through the shell when set, otherwise the shell itself is recorded.
	Command string
	// Shell defaults to $SHELL, then /bin/sh.
	Shell string

	Stdin  *os.File
	Stdout io.Writer
	Clock  Clock

	Options []ttyrec.Option
}

// New returns a Recorder attached to the process terminal.
func New(command string) *Recorder {
	return &Recorder{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Clock:   time.Now,
	}
}

// Argv returns the command line the recorder starts.
func (r *Recorder) Argv() []string {
	shell := r.Shell
	if shell == "" {
		shell = lo.CoalesceOrEmpty(os.Getenv("SHELL"), "/bin/sh")
	}

	if r.Command == "" {
		return []string{shell}
	}
	return []string{shell, "-c", r.Command}
}

// Stats describes a finished recording.
type Stats struct {
	Frames int
	Bytes  int
}

// Record starts the command and writes the session to w until the command exits or ctx is done.
func (r *Recorder) Record(ctx context.Context, w io.Writer) (*Stats, error) {
	argv := r.Argv()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}
	defer func() { _ = ptmx.Close() }()

	stopResize := watchResize(r.Stdin, ptmx)
	defer stopResize()

	if r.Stdin != nil && term.IsTerminal(int(r.Stdin.Fd())) {
		state, err := term.MakeRaw(int(r.Stdin.Fd()))
		if err != nil {
			return nil, fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(r.Stdin.Fd()), state) }()
	}

	if r.Stdin != nil {
		go func() { _, _ = io.Copy(ptmx, r.Stdin) }()
	}

	log.With(log.Fields{"argv": argv}).Info("recording started")

	stats, copyErr := Copy(ttyrec.NewWriter(w, r.Options...), ptmx, r.Stdout, r.Clock)
	waitErr := cmd.Wait()

	log.With(log.Fields{"frames": stats.Frames, "bytes": stats.Bytes}).Info("recording finished")

	if copyErr != nil {
		return stats, copyErr
	}
	if ctx.Err() != nil {
		return stats, ctx.Err()
	}

	// The exit status of an interactive shell is the last command's, not a recording failure.
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return stats, waitErr
	}
	return stats, nil
}

// Copy reads src until it is exhausted, mirroring every chunk to live and
// appending it to dst as a frame stamped by clock.
//
// Reading a pseudo terminal whose child has exited fails with EIO on Linux,
// which ends the copy like EOF.
func Copy(dst *ttyrec.Writer, src io.Reader, live io.Writer, clock Clock) (*Stats, error) {
	var (
		stats Stats
		buf   = make([]byte, bufferSize)
	)

	if live == nil {
		live = io.Discard
	}

	for {
		n, err := src.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if _, err := live.Write(chunk); err != nil {
				return &stats, fmt.Errorf("mirror output: %w", err)
			}
			if err := dst.WriteFrame(clock(), chunk); err != nil {
				return &stats, fmt.Errorf("frame %d: %w", stats.Frames, err)
			}
			stats.Frames++
			stats.Bytes += n
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, syscall.EIO), errors.Is(err, os.ErrClosed):
			return &stats, nil
		default:
			return &stats, err
		}
	}
}
