package history

import (
	"fmt"
	"path/filepath"
	"time"
)

// Entry describes a single rendered artifact.
type Entry struct {
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Frames    int       `json:"frames"`
	Captured  int       `json:"captured"`
	Duration  float64   `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry returns an entry for a render of input into output created now.
// Paths are stored absolute so the registry stays meaningful across working directories.
func NewEntry(input, output string, frames, captured int, duration float64) *Entry {
	return &Entry{
		Input:     absolute(input),
		Output:    absolute(output),
		Frames:    frames,
		Captured:  captured,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (e *Entry) key() string {
	return e.Output
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s → %s (%d/%d frames, %.2fs)", filepath.Base(e.Input), e.Output, e.Captured, e.Frames, e.Duration)
}
