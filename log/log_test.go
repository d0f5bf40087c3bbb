package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/key"
	"github.com/basetoken/basetoken/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logs.write is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		Reset(viper.Reset)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Log calls are no-ops", func() {
			So(func() { Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logs.write is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		Reset(viper.Reset)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Messages land in today's file", func() {
			Infof("generated %d files", 5)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			contents := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(contents, "generated 5 files"), ShouldBeTrue)
		})
	})
}
