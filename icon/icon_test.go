package icon

import (
	"testing"

	"github.com/basetoken/basetoken/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Success

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(target), ShouldNotBeEmpty)
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
		})

		Reset(func() {
			viper.Set(key.IconsVariant, plain)
		})
	})
}
