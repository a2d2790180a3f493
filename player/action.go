package player

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Event is one decoded frame as seen by an Action.
type Event struct {
	// Index is the position of the frame in the stream, from 0.
	Index int
	// Time is the recorded timestamp in seconds.
	Time float64
	// Payload holds the raw terminal output of the frame.
	Payload []byte
	// Delay is the time in seconds since the previous frame, divided by the speed factor.
	Delay float64
	// Skip is set when the frame is too close to its predecessor to deserve a capture.
	Skip bool
}

// Duration returns Delay as a time.Duration.
func (e Event) Duration() time.Duration {
	return time.Duration(math.Round(e.Delay * float64(time.Second)))
}

// Action is invoked once per frame, synchronously and in stream order.
type Action interface {
	Handle(ctx context.Context, e Event) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx context.Context, e Event) error

// Handle calls f(ctx, e).
func (f ActionFunc) Handle(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// Kind enumerates the actions available from the command line.
type Kind int

const (
	KindReplay Kind = iota
	KindInspect
	KindOutput
)

var kindNames = map[Kind]string{
	KindReplay:  "replay",
	KindInspect: "inspect",
	KindOutput:  "output",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns the names of all actions.
func Kinds() []string {
	return []string{KindReplay.String(), KindInspect.String(), KindOutput.String()}
}

// ParseKind resolves an action name.
func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if strings.EqualFold(n, name) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("action %s is not defined, expected one of %s", name, strings.Join(lo.Map(Kinds(), func(k string, _ int) string {
		return fmt.Sprintf("%q", k)
	}), ", "))
}
