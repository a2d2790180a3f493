package player

// Frames closer than SkipThreshold seconds to their predecessor (after the
// speed factor is applied) are not captured, unless SkipLimit of them were
// skipped in a row.
const (
	SkipThreshold = 0.005
	SkipLimit     = 5
)

// State is the playback state threaded through one decode loop.
type State struct {
	// Base is the timestamp of the first frame.
	Base float64
	// Previous is the timestamp of the last frame processed.
	Previous float64
	// SkipRun counts consecutive skipped frames.
	SkipRun int
	// Skipping is the skip decision of the last frame.
	Skipping bool

	started bool
}

// Advance accounts for a frame recorded at current and returns its delay from
// the previous frame, divided by factor, and whether capturing it can be skipped.
// The first frame has a delay of 0.
func (s *State) Advance(current float64, factor int) (delay float64, skip bool) {
	if !s.started {
		s.Base, s.Previous = current, current
		s.started = true
	}

	delay = (current - s.Previous) / float64(factor)
	s.Previous = current

	if delay <= SkipThreshold {
		skip = true
		s.SkipRun++
	} else {
		skip = false
		s.SkipRun = 0
	}

	if skip && s.SkipRun > SkipLimit {
		skip = false
		s.SkipRun = 0
	}

	s.Skipping = skip
	return delay, skip
}

// Elapsed returns the time between the first and the last frame processed.
func (s *State) Elapsed() float64 {
	return s.Previous - s.Base
}
