package player

import (
	"context"
	"errors"
	"io"

	"github.com/ttygif/ttygif/log"
)

// ErrNoFrames is reported when a stream produced no captured frame to encode.
var ErrNoFrames = errors.New("no frames were captured")

// Encoder turns a directory of captured frames into the final artifact.
// Palette is always called before Encode.
type Encoder interface {
	Palette(ctx context.Context, dir string) error
	Encode(ctx context.Context, dir, output string) error
}

// Result describes a render.
type Result struct {
	*Summary

	// Captured is the number of frames saved to Dir.
	Captured int
	// Failed is the number of capture attempts that did not succeed.
	Failed int
	// Dir holds the captured frames.
	Dir string
	// Encoded is true when the encoder produced the output.
	Encoded bool
}

// Render plays r through the output action and encodes the captured frames into output.
//
// Decoding errors and cancellation are returned as is and nothing is encoded;
// the frames captured so far stay in the output directory.
// Encoder failures are passed to the warning callback of the action and
// do not make the render fail.
func (p *Player) Render(ctx context.Context, r io.Reader, out *Output, encoder Encoder, output string) (*Result, error) {
	summary, err := p.Run(ctx, r, out)

	result := &Result{
		Summary:  summary,
		Captured: out.Captured(),
		Failed:   out.Failed(),
		Dir:      out.Dir(),
	}

	if err != nil {
		return result, err
	}

	if result.Captured == 0 {
		out.warn(ErrNoFrames)
		return result, nil
	}

	logger := log.With(log.Fields{"dir": result.Dir, "output": output, "frames": result.Captured})

	if err := encoder.Palette(ctx, result.Dir); err != nil {
		logger.Warn(err)
		out.warn(err)
		return result, nil
	}

	if err := encoder.Encode(ctx, result.Dir, output); err != nil {
		logger.Warn(err)
		out.warn(err)
		return result, nil
	}

	logger.Info("encoded")
	result.Encoded = true
	return result, nil
}
