// Package player decodes ttyrec streams and hands every frame, with its
// replay delay and capture decision, to a pluggable Action.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/ttyrec"
)

// ErrInvalidFactor is returned for speed factors below 1.
var ErrInvalidFactor = errors.New("speed factor must be a positive integer")

// Player drives actions from a frame stream. It holds no per-stream state and can be reused.
type Player struct {
	factor  int
	options []ttyrec.Option
}

// New returns a Player dividing every delay by factor.
func New(factor int, options ...ttyrec.Option) (*Player, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}
	return &Player{factor: factor, options: options}, nil
}

// Summary describes a finished (or interrupted) run.
type Summary struct {
	// Frames is the number of frames handed to the action.
	Frames int
	// Skipped is the number of those frames marked as skippable.
	Skipped int
	// Duration is the recorded time between the first and the last frame, in seconds.
	Duration float64
}

// Run decodes r and invokes action for every frame.
// It stops at the end of the stream, on the first decoding or action error,
// or when ctx is done. The summary always reflects the frames handled so far.
func (p *Player) Run(ctx context.Context, r io.Reader, action Action) (*Summary, error) {
	var (
		state   State
		summary Summary
		reader  = ttyrec.NewReader(r, p.options...)
	)

	for frame, err := range reader.All() {
		if err != nil {
			log.With(log.Fields{"frames": summary.Frames}).Error(err)
			return &summary, err
		}

		if err := ctx.Err(); err != nil {
			return &summary, err
		}

		delay, skip := state.Advance(frame.Time(), p.factor)
		event := Event{
			Index:   summary.Frames,
			Time:    frame.Time(),
			Payload: frame.Payload,
			Delay:   delay,
			Skip:    skip,
		}

		if err := action.Handle(ctx, event); err != nil {
			return &summary, fmt.Errorf("frame %d: %w", event.Index, err)
		}

		summary.Frames++
		if skip {
			summary.Skipped++
		}
		summary.Duration = state.Elapsed()
	}

	log.With(log.Fields{
		"frames":   summary.Frames,
		"skipped":  summary.Skipped,
		"duration": summary.Duration,
		"factor":   p.factor,
	}).Info("stream finished")

	return &summary, nil
}
