package filesystem

import (
	"testing"

	"github.com/samber/lo"
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
	})
}

func TestWriteText(t *testing.T) {
	Convey("WriteText", t, func() {
		SetMemMapFs()

		Convey("Creates parent directories", func() {
			written, err := WriteText("out/material/palettes.css", ":root {}", Overwrite)
			So(err, ShouldBeNil)
			So(written, ShouldBeTrue)
			So(string(lo.Must(API().ReadFile("out/material/palettes.css"))), ShouldEqual, ":root {}")
		})

		Convey("Overwrites by default", func() {
			lo.Must(WriteText("out/index.css", "a", Overwrite))
			lo.Must(WriteText("out/index.css", "b", Overwrite))
			So(string(lo.Must(API().ReadFile("out/index.css"))), ShouldEqual, "b")
		})

		Convey("Keeps an existing file when asked", func() {
			lo.Must(WriteText("out/app.css", "/* custom */", Overwrite))
			written, err := WriteText("out/app.css", "scaffold", KeepExisting)
			So(err, ShouldBeNil)
			So(written, ShouldBeFalse)
			So(string(lo.Must(API().ReadFile("out/app.css"))), ShouldEqual, "/* custom */")
		})

		Convey("Writes a missing file even when keeping existing ones", func() {
			written, err := WriteText("fresh/app.css", "scaffold", KeepExisting)
			So(err, ShouldBeNil)
			So(written, ShouldBeTrue)
		})
	})
}
