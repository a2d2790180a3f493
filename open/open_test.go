package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/constant"
)

func TestArgv(t *testing.T) {
	Convey("Given a rendered file", t, func() {
		const file = "tty.gif"

		Convey("Then linux uses xdg-open", func() {
			argv, err := Argv(constant.Linux, file)
			So(err, ShouldBeNil)
			So(argv, ShouldResemble, []string{"xdg-open", file})
		})

		Convey("Then darwin uses open", func() {
			argv, err := Argv(constant.Darwin, file)
			So(err, ShouldBeNil)
			So(argv, ShouldResemble, []string{"open", file})
		})

		Convey("Then windows goes through the file protocol handler", func() {
			argv, err := Argv(constant.Windows, file)
			So(err, ShouldBeNil)
			So(argv[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", file})
		})

		Convey("Then other platforms are rejected", func() {
			_, err := Argv("plan9", file)
			So(err, ShouldNotBeNil)
		})
	})
}
