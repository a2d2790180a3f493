package recorder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/ttyrec"
)

// chunks returns its strings one Read at a time.
type chunks []string

func (c *chunks) Read(p []byte) (int, error) {
	if len(*c) == 0 {
		return 0, io.EOF
	}
	n := copy(p, (*c)[0])
	*c = (*c)[1:]
	return n, nil
}

func ticking(start time.Time, step time.Duration) Clock {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestCopy(t *testing.T) {
	Convey("Given a terminal producing three chunks", t, func() {
		var (
			file bytes.Buffer
			live bytes.Buffer
			src  = &chunks{"$ ", "ls\r\n", "a b c\r\n"}
		)
		start := time.Unix(1700000000, 250000000)

		stats, err := Copy(ttyrec.NewWriter(&file), src, &live, ticking(start, 100*time.Millisecond))
		So(err, ShouldBeNil)

		Convey("Then every chunk becomes a frame and reaches the live output", func() {
			So(stats.Frames, ShouldEqual, 3)
			So(stats.Bytes, ShouldEqual, len("$ ls\r\na b c\r\n"))
			So(live.String(), ShouldEqual, "$ ls\r\na b c\r\n")
		})

		Convey("Then the recording reads back with the clock timestamps", func() {
			reader := ttyrec.NewReader(&file)
			var (
				payloads []string
				times    []float64
			)
			for frame, err := range reader.All() {
				So(err, ShouldBeNil)
				payloads = append(payloads, string(frame.Payload))
				times = append(times, frame.Time())
			}

			So(payloads, ShouldResemble, []string{"$ ", "ls\r\n", "a b c\r\n"})
			So(times[0], ShouldAlmostEqual, 1700000000.25, 1e-6)
			So(times[2]-times[0], ShouldAlmostEqual, 0.2, 1e-6)
		})
	})

	Convey("Given a failing terminal", t, func() {
		var file bytes.Buffer
		src := iotest.ErrReader(errors.New("boom"))

		_, err := Copy(ttyrec.NewWriter(&file), src, nil, time.Now)
		So(err, ShouldNotBeNil)
		So(file.Len(), ShouldEqual, 0)
	})

	Convey("Given big-endian output", t, func() {
		var file bytes.Buffer
		_, err := Copy(ttyrec.NewWriter(&file, ttyrec.WithByteOrder(binary.BigEndian)), strings.NewReader("x"), nil, ticking(time.Unix(1, 0), 0))
		So(err, ShouldBeNil)
		So(file.Bytes()[:4], ShouldResemble, []byte{0, 0, 0, 1})
	})
}

func TestArgv(t *testing.T) {
	Convey("Given a recorder with an explicit shell", t, func() {
		r := &Recorder{Shell: "/bin/zsh"}

		Convey("Then the shell itself is recorded by default", func() {
			So(r.Argv(), ShouldResemble, []string{"/bin/zsh"})
		})

		Convey("Then a command runs through the shell", func() {
			r.Command = "htop -d 5"
			So(r.Argv(), ShouldResemble, []string{"/bin/zsh", "-c", "htop -d 5"})
		})
	})
}
