package process

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}

	Convey("Given the exec runner", t, func() {
		ctx := context.Background()

		Convey("Output returns standard output", func() {
			out, err := Exec{}.Output(ctx, "sh", "-c", "printf 0x2a")
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "0x2a")
		})

		Convey("A failing program reports the last line of stderr", func() {
			err := Exec{}.Run(ctx, "sh", "-c", "echo first >&2; echo 'no such window' >&2; exit 3")
			So(err, ShouldNotBeNil)

			var perr *Error
			So(errors.As(err, &perr), ShouldBeTrue)
			So(perr.Name, ShouldEqual, "sh")
			So(perr.Stderr, ShouldEqual, "no such window")

			var exitErr *exec.ExitError
			So(errors.As(err, &exitErr), ShouldBeTrue)
			So(exitErr.ExitCode(), ShouldEqual, 3)
		})

		Convey("A missing program is an error", func() {
			err := Exec{}.Run(ctx, "ttygif-definitely-missing-tool")
			So(err, ShouldNotBeNil)
			So(Available("ttygif-definitely-missing-tool"), ShouldBeFalse)
		})

		Convey("Cancellation stops the program", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := Exec{}.Run(cctx, "sleep", "10")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestLastLine(t *testing.T) {
	Convey("lastLine", t, func() {
		So(lastLine("a\nb\n\n"), ShouldEqual, "b")
		So(lastLine(""), ShouldEqual, "")
	})
}
