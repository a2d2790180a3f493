package player

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/log"
)

// Capturer saves the current screen as a PNG file at path.
type Capturer interface {
	Capture(ctx context.Context, path string) error
}

// Output captures the screen before every frame that is not skipped, then
// writes the payload to the live output. Captured files are numbered from 0
// and only successful captures advance the counter, so the sequence has no gaps.
//
// A Capturer that is also an io.Writer sees every payload, which lets an
// in-process terminal emulator track the screen.
type Output struct {
	out      io.Writer
	capturer Capturer
	dir      string
	captured int
	failed   int
	warn     func(error)
}

// NewOutput returns an Output saving frames into dir. warn receives capture
// failures, which never abort the stream; it may be nil.
func NewOutput(out io.Writer, capturer Capturer, dir string, warn func(error)) *Output {
	if sink, ok := capturer.(io.Writer); ok {
		out = io.MultiWriter(out, sink)
	}
	if warn == nil {
		warn = func(error) {}
	}
	return &Output{out: out, capturer: capturer, dir: dir, warn: warn}
}

func (o *Output) Handle(ctx context.Context, e Event) error {
	if !e.Skip {
		path := filepath.Join(o.dir, fmt.Sprintf(constant.FramePattern, o.captured))
		if err := o.capturer.Capture(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			o.failed++
			log.With(log.Fields{"frame": e.Index, "path": path}).Warn(err)
			o.warn(fmt.Errorf("capture frame %d: %w", e.Index, err))
		} else {
			o.captured++
		}
	}

	_, err := o.out.Write(e.Payload)
	return err
}

// Captured returns the number of frames saved so far.
func (o *Output) Captured() int {
	return o.captured
}

// Failed returns the number of captures that did not succeed.
func (o *Output) Failed() int {
	return o.failed
}

// Dir returns the directory holding the captured frames.
func (o *Output) Dir() string {
	return o.dir
}
