package util

import (
	"bytes"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "frame", "frames"), ShouldEqual, "1 frame")
		So(Quantify(0, "frame", "frames"), ShouldEqual, "0 frames")
		So(Quantify(7, "frame", "frames"), ShouldEqual, "7 frames")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("frames directory"), ShouldEqual, "Frames directory")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("PrintErasable", t, func() {
		var buf bytes.Buffer
		erase := PrintErasable(&buf, "working")
		So(buf.String(), ShouldEqual, "\rworking")
		erase()
		So(buf.String(), ShouldEqual, "\rworking\r       \r")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Removes directories recursively", func() {
			lo.Must0(fs.MkdirAll("/tmp/frames/sub", 0o755))
			lo.Must0(fs.WriteFile("/tmp/frames/sub/step_0000.png", []byte("png"), 0o644))
			So(Delete("/tmp/frames"), ShouldBeNil)
			So(lo.Must(fs.Exists("/tmp/frames")), ShouldBeFalse)
		})

		Convey("Fails on a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
