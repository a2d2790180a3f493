package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/ttyrec"
)

type rec struct {
	sec, usec int32
	payload   string
}

func stream(frames ...rec) *bytes.Buffer {
	var buf bytes.Buffer
	w := ttyrec.NewWriter(&buf)
	for _, f := range frames {
		h := ttyrec.Header{Sec: f.sec, Usec: f.usec, Len: int32(len(f.payload))}
		if err := w.Write(h, []byte(f.payload)); err != nil {
			panic(err)
		}
	}
	return &buf
}

func collect(events *[]Event) Action {
	return ActionFunc(func(_ context.Context, e Event) error {
		*events = append(*events, e)
		return nil
	})
}

func run(factor int, r io.Reader) ([]Event, *Summary, error) {
	p, err := New(factor)
	if err != nil {
		return nil, nil, err
	}
	var events []Event
	summary, err := p.Run(context.Background(), r, collect(&events))
	return events, summary, err
}

func skips(events []Event) []bool {
	out := make([]bool, len(events))
	for i, e := range events {
		out[i] = e.Skip
	}
	return out
}

func TestPlayer(t *testing.T) {
	Convey("Given three frames at 0, 3 and 10 milliseconds", t, func() {
		events, summary, err := run(1, stream(
			rec{0, 0, "a"},
			rec{0, 3000, "b"},
			rec{0, 10000, "c"},
		))
		So(err, ShouldBeNil)
		So(events, ShouldHaveLength, 3)

		Convey("Delays are relative to the previous frame", func() {
			So(events[0].Delay, ShouldEqual, 0)
			So(events[1].Delay, ShouldAlmostEqual, 0.003, 1e-9)
			So(events[2].Delay, ShouldAlmostEqual, 0.007, 1e-9)
		})

		Convey("Only the last frame is far enough from its predecessor", func() {
			So(skips(events), ShouldResemble, []bool{true, true, false})
		})

		Convey("Payloads and positions are preserved", func() {
			So(string(events[0].Payload), ShouldEqual, "a")
			So(string(events[2].Payload), ShouldEqual, "c")
			So(events[2].Index, ShouldEqual, 2)
			So(events[2].Time, ShouldAlmostEqual, 0.01, 1e-9)
		})

		Convey("The summary accounts for every frame", func() {
			So(summary.Frames, ShouldEqual, 3)
			So(summary.Skipped, ShouldEqual, 2)
			So(summary.Duration, ShouldAlmostEqual, 0.01, 1e-9)
		})
	})

	Convey("Given frames spaced by more than the threshold", t, func() {
		var frames []rec
		for i := int32(0); i < 20; i++ {
			frames = append(frames, rec{10, i * 6000, "x"})
		}
		events, _, err := run(1, stream(frames...))
		So(err, ShouldBeNil)
		So(events, ShouldHaveLength, 20)

		Convey("No frame after the first is skipped", func() {
			for _, e := range events[1:] {
				So(e.Skip, ShouldBeFalse)
			}
		})

		Convey("The first frame always has a zero delay", func() {
			So(events[0].Delay, ShouldEqual, 0)
		})
	})

	Convey("Given a long run of frames sharing a timestamp", t, func() {
		var frames []rec
		for i := 0; i < 13; i++ {
			frames = append(frames, rec{5, 0, "y"})
		}
		events, _, err := run(1, stream(frames...))
		So(err, ShouldBeNil)

		Convey("Every seventh frame of the run is captured anyway", func() {
			expected := make([]bool, 13)
			for i := range expected {
				expected[i] = i != 6 && i != 12
			}
			So(skips(events), ShouldResemble, expected)
		})
	})

	Convey("Given a delay exactly on the threshold", t, func() {
		events, _, err := run(1, stream(rec{0, 0, "a"}, rec{0, 5000, "b"}, rec{0, 10001, "c"}))
		So(err, ShouldBeNil)
		So(events[1].Delay, ShouldEqual, 0.005)

		Convey("It is skipped, one microsecond more is not", func() {
			So(events[1].Skip, ShouldBeTrue)
			So(events[2].Skip, ShouldBeFalse)
		})
	})

	Convey("Given a speed factor", t, func() {
		input := func() io.Reader { return stream(rec{0, 0, "a"}, rec{0, 8000, "b"}, rec{1, 8000, "c"}) }

		normal, _, err := run(1, input())
		So(err, ShouldBeNil)
		fast, _, err := run(2, input())
		So(err, ShouldBeNil)

		Convey("Every delay is divided by it", func() {
			for i := range normal {
				So(fast[i].Delay, ShouldAlmostEqual, normal[i].Delay/2, 1e-9)
			}
		})

		Convey("The threshold applies to the scaled delay", func() {
			So(normal[1].Skip, ShouldBeFalse)
			So(fast[1].Skip, ShouldBeTrue)
		})

		Convey("A factor below 1 is rejected", func() {
			_, err := New(0)
			So(errors.Is(err, ErrInvalidFactor), ShouldBeTrue)
		})
	})

	Convey("Given a stream with a truncated payload", t, func() {
		data := stream(rec{0, 0, "a"}, rec{0, 1000, "bcd"}).Bytes()
		events, summary, err := run(1, bytes.NewReader(data[:len(data)-1]))

		Convey("The run fails with a malformed stream error", func() {
			So(errors.Is(err, ttyrec.ErrTruncatedPayload), ShouldBeTrue)
			So(errors.Is(err, ttyrec.ErrMalformed), ShouldBeTrue)
		})

		Convey("No short payload is handed to the action", func() {
			So(events, ShouldHaveLength, 1)
			So(summary.Frames, ShouldEqual, 1)
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var events []Event
		p, _ := New(1)
		_, err := p.Run(ctx, stream(rec{0, 0, "a"}), collect(&events))
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
		So(events, ShouldBeEmpty)
	})

	Convey("Given a failing action", t, func() {
		boom := errors.New("boom")
		p, _ := New(1)
		summary, err := p.Run(context.Background(), stream(rec{0, 0, "a"}, rec{1, 0, "b"}), ActionFunc(func(_ context.Context, e Event) error {
			if e.Index == 1 {
				return boom
			}
			return nil
		}))
		So(errors.Is(err, boom), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "frame 1")
		So(summary.Frames, ShouldEqual, 1)
	})
}

func TestState(t *testing.T) {
	Convey("Given a fresh state", t, func() {
		var s State

		Convey("The first frame sets the base time", func() {
			delay, skip := s.Advance(42.5, 1)
			So(delay, ShouldEqual, 0)
			So(skip, ShouldBeTrue)
			So(s.Base, ShouldEqual, 42.5)
			So(s.Previous, ShouldEqual, 42.5)
			So(s.SkipRun, ShouldEqual, 1)
		})

		Convey("A captured frame resets the skip run", func() {
			s.Advance(1, 1)
			s.Advance(1, 1)
			So(s.SkipRun, ShouldEqual, 2)
			_, skip := s.Advance(2, 1)
			So(skip, ShouldBeFalse)
			So(s.SkipRun, ShouldEqual, 0)
			So(s.Skipping, ShouldBeFalse)
			So(s.Elapsed(), ShouldEqual, 1)
		})
	})
}

func TestKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		for _, name := range Kinds() {
			kind, err := ParseKind(name)
			So(err, ShouldBeNil)
			So(kind.String(), ShouldEqual, name)
		}

		_, err := ParseKind("render")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"replay"`)
	})
}
