package player

import (
	"context"
	"io"
	"time"
)

// Sleeper blocks for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Replay writes every payload to the live output and then waits for the frame delay,
// reproducing the pace of the recording.
type Replay struct {
	out   io.Writer
	sleep Sleeper
}

// NewReplay returns a Replay writing to out. A nil sleeper means Sleep.
func NewReplay(out io.Writer, sleeper Sleeper) *Replay {
	if sleeper == nil {
		sleeper = Sleep
	}
	return &Replay{out: out, sleep: sleeper}
}

func (r *Replay) Handle(ctx context.Context, e Event) error {
	if _, err := r.out.Write(e.Payload); err != nil {
		return err
	}
	return r.sleep(ctx, e.Duration())
}
