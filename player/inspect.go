package player

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ttygif/ttygif/util"
)

// DefaultPreviewBytes is the number of payload bytes printed by Inspect.
const DefaultPreviewBytes = 40

// Record is the JSON form of an inspected frame.
type Record struct {
	Index   int     `json:"index" jsonschema:"description=Position of the frame in the stream starting at 0"`
	Time    float64 `json:"time" jsonschema:"description=Recorded timestamp in seconds"`
	Delay   float64 `json:"delay" jsonschema:"description=Seconds since the previous frame divided by the speed factor"`
	Length  int     `json:"length" jsonschema:"description=Payload length in bytes"`
	Skip    bool    `json:"skip" jsonschema:"description=Whether the frame would be skipped for capture"`
	Preview string  `json:"preview" jsonschema:"description=Leading payload bytes"`
}

// Inspect prints one diagnostic line per frame and has no other side effect.
type Inspect struct {
	out     io.Writer
	preview int
	json    *json.Encoder
}

// InspectOption configures Inspect.
type InspectOption func(*Inspect)

// WithPreview sets how many payload bytes are shown.
func WithPreview(n int) InspectOption {
	return func(i *Inspect) {
		if n >= 0 {
			i.preview = n
		}
	}
}

// WithJSON switches the output to one JSON object per line.
func WithJSON() InspectOption {
	return func(i *Inspect) {
		i.json = json.NewEncoder(i.out)
	}
}

// NewInspect returns an Inspect writing to out.
func NewInspect(out io.Writer, options ...InspectOption) *Inspect {
	i := &Inspect{out: out, preview: DefaultPreviewBytes}
	for _, option := range options {
		option(i)
	}
	return i
}

func (i *Inspect) Handle(_ context.Context, e Event) error {
	preview := e.Payload[:util.Min(len(e.Payload), i.preview)]

	if i.json != nil {
		return i.json.Encode(Record{
			Index:   e.Index,
			Time:    e.Time,
			Delay:   e.Delay,
			Length:  len(e.Payload),
			Skip:    e.Skip,
			Preview: string(preview),
		})
	}

	_, err := fmt.Fprintf(i.out, "%8.4f %4d %q\n", e.Delay, len(e.Payload), preview)
	return err
}
