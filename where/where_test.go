package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Config())
		})

		Convey("Frames()", func() {
			a, b := Frames(), Frames()
			So(a, ShouldNotEqual, b)
			So(filepath.Dir(a), ShouldEqual, Temp())
			So(lo.Must(filesystem.API().IsDir(a)), ShouldBeTrue)
		})

		Convey("Config() honors the override", func() {
			t.Setenv(EnvConfigPath, "/custom/ttygif")
			So(Config(), ShouldEqual, "/custom/ttygif")
		})
	})
}
