package where

import (
	"path/filepath"
	"testing"

	"github.com/basetoken/basetoken/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Directories are created on demand", func() {
			for _, dir := range []func() string{Config, Cache, Logs, OpenProps} {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}
		})

		Convey("History lives in the cache directory", func() {
			So(filepath.Dir(History()), ShouldEqual, Cache())
		})

		Convey("Config honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/basetoken")
			So(Config(), ShouldEqual, "/custom/basetoken")
		})
	})
}
