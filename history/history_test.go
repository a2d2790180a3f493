package history

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ttygif/ttygif/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		So(Clear(), ShouldBeNil)

		entries, err := List()
		So(err, ShouldBeNil)
		So(entries, ShouldBeEmpty)

		Convey("When saving two renders", func() {
			older := NewEntry("session.tty", "/tmp/a.gif", 10, 4, 1.5)
			older.CreatedAt = time.Now().Add(-time.Hour)
			newer := NewEntry("other.tty", "/tmp/b.gif", 3, 3, 0.2)

			So(Save(older), ShouldBeNil)
			So(Save(newer), ShouldBeNil)

			Convey("Then they are listed most recent first", func() {
				entries, err := List()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Output, ShouldEqual, "/tmp/b.gif")
				So(entries[1].Captured, ShouldEqual, 4)
			})

			Convey("Then a render to the same output replaces the previous one", func() {
				again := NewEntry("session.tty", "/tmp/a.gif", 12, 6, 2)
				So(Save(again), ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 2)
				So(saved["/tmp/a.gif"].Frames, ShouldEqual, 12)
			})

			Convey("Then an entry can be removed", func() {
				So(Remove("/tmp/a.gif"), ShouldBeNil)
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 1)
				So(saved, ShouldContainKey, "/tmp/b.gif")
			})

			Convey("Then removing an output never rendered fails", func() {
				err := Remove("/tmp/c.gif")
				So(errors.Is(err, ErrNotRecorded), ShouldBeTrue)

				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 2)
			})
		})
	})
}

func TestEntry(t *testing.T) {
	Convey("Given a new entry", t, func() {
		entry := NewEntry("/rec/session.tty", "/out/tty.gif", 7, 5, 3.25)

		Convey("Then it is described by its input and output", func() {
			So(entry.String(), ShouldEqual, "session.tty → /out/tty.gif (5/7 frames, 3.25s)")
			So(entry.CreatedAt.IsZero(), ShouldBeFalse)
		})
	})
}
