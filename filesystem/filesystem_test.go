package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Exists should follow the active backend", func() {
			SetMemMapFs()
			So(Exists("/tty.gif"), ShouldBeFalse)
			So(API().WriteFile("/tty.gif", []byte("GIF89a"), 0o644), ShouldBeNil)
			So(Exists("/tty.gif"), ShouldBeTrue)
		})

		Convey("GacheFs should write through the active backend", func() {
			SetMemMapFs()
			So(GacheFs{}.MkdirAll("/a/b", 0o755), ShouldBeNil)
			f, err := GacheFs{}.OpenFile("/a/b/c.json", os.O_RDWR|os.O_CREATE, 0o644)
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)
			exists, _ := API().Exists("/a/b/c.json")
			So(exists, ShouldBeTrue)
		})
	})
}
