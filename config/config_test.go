package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.PlayerFactor), ShouldEqual, 1)
			So(viper.GetString(key.OutputFilename), ShouldEqual, "tty.gif")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("capture.window_command"), ShouldEqual, "capture_window_command")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.CaptureBackend]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "TTYGIF_CAPTURE_BACKEND")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.CaptureBackend)
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"string"`)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default settings", t, func() {
		So(Setup(), ShouldBeNil)
		So(Validate(), ShouldBeNil)

		Convey("A zero speed factor is rejected", func() {
			viper.Set(key.PlayerFactor, 0)
			err := Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.PlayerFactor)
		})

		Convey("An unknown byte order is rejected", func() {
			viper.Set(key.TtyrecByteOrder, "middle")
			So(Validate(), ShouldNotBeNil)
		})

		Convey("Every problem is reported at once", func() {
			viper.Set(key.PlayerFactor, -1)
			viper.Set(key.EncoderPTSFactor, 0)
			err := Validate()
			So(err.Error(), ShouldContainSubstring, key.PlayerFactor)
			So(err.Error(), ShouldContainSubstring, key.EncoderPTSFactor)
		})

		Reset(func() {
			viper.Set(key.PlayerFactor, 1)
			viper.Set(key.TtyrecByteOrder, "little")
			viper.Set(key.EncoderPTSFactor, 2)
		})
	})
}
