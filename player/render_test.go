package player

import (
	"context"
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeEncoder struct {
	calls []string
	fail  string
}

func (f *fakeEncoder) Palette(_ context.Context, dir string) error {
	f.calls = append(f.calls, "palette "+dir)
	if f.fail == "palette" {
		return errors.New("palettegen failed")
	}
	return nil
}

func (f *fakeEncoder) Encode(_ context.Context, dir, output string) error {
	f.calls = append(f.calls, "encode "+dir+" "+output)
	if f.fail == "encode" {
		return errors.New("paletteuse failed")
	}
	return nil
}

func TestRender(t *testing.T) {
	Convey("Given a player, an output action and an encoder", t, func() {
		var warnings []error

		p, err := New(1)
		So(err, ShouldBeNil)

		capturer := &fakeCapturer{}
		encoder := &fakeEncoder{}
		out := NewOutput(io.Discard, capturer, "/frames", func(err error) { warnings = append(warnings, err) })

		frames := stream(
			rec{0, 0, "a"},
			rec{0, 500000, "b"},
			rec{1, 0, "c"},
		)

		Convey("The palette is generated before encoding", func() {
			result, err := p.Render(context.Background(), frames, out, encoder, "tty.gif")
			So(err, ShouldBeNil)
			So(result.Encoded, ShouldBeTrue)
			So(result.Frames, ShouldEqual, 3)
			So(result.Captured, ShouldEqual, 2)
			So(result.Dir, ShouldEqual, "/frames")
			So(encoder.calls, ShouldResemble, []string{"palette /frames", "encode /frames tty.gif"})
			So(warnings, ShouldBeEmpty)
		})

		Convey("An encoder failure is a warning", func() {
			encoder.fail = "palette"
			result, err := p.Render(context.Background(), frames, out, encoder, "tty.gif")
			So(err, ShouldBeNil)
			So(result.Encoded, ShouldBeFalse)
			So(encoder.calls, ShouldHaveLength, 1)
			So(warnings, ShouldHaveLength, 1)
		})

		Convey("A failing encode pass is a warning too", func() {
			encoder.fail = "encode"
			result, err := p.Render(context.Background(), frames, out, encoder, "tty.gif")
			So(err, ShouldBeNil)
			So(result.Encoded, ShouldBeFalse)
			So(encoder.calls, ShouldHaveLength, 2)
			So(warnings, ShouldHaveLength, 1)
		})

		Convey("Nothing is encoded without captured frames", func() {
			capturer.fail = map[int]bool{0: true, 1: true}
			result, err := p.Render(context.Background(), frames, out, encoder, "tty.gif")
			So(err, ShouldBeNil)
			So(result.Captured, ShouldEqual, 0)
			So(result.Failed, ShouldEqual, 2)
			So(encoder.calls, ShouldBeEmpty)
			So(errors.Is(warnings[len(warnings)-1], ErrNoFrames), ShouldBeTrue)
		})

		Convey("A malformed stream is fatal and skips encoding", func() {
			frames.Truncate(frames.Len() - 1)
			result, err := p.Render(context.Background(), frames, out, encoder, "tty.gif")
			So(err, ShouldNotBeNil)
			So(result.Frames, ShouldEqual, 2)
			So(result.Captured, ShouldEqual, 1)
			So(encoder.calls, ShouldBeEmpty)
		})

		Convey("A cancelled render keeps its frames and skips encoding", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := p.Render(ctx, frames, out, encoder, "tty.gif")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(encoder.calls, ShouldBeEmpty)
		})
	})
}
