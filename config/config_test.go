package config

import (
	"testing"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/key"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
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
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.Format), ShouldEqual, "oklch")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("output.palette_subdir"), ShouldEqual, "output_palette_subdir")
		})

		Convey("Field env names carry the application prefix", func() {
			f := Default[key.PrefixesSemantic]
			So(f.Env(), ShouldEqual, "BASETOKEN_PREFIXES_SEMANTIC")
		})
	})
}

func TestDefaultTokenConfig(t *testing.T) {
	Convey("DefaultTokenConfig", t, func() {
		cfg := DefaultTokenConfig()

		So(cfg.Format, ShouldEqual, color.OKLCH)
		So(cfg.Prefixes, ShouldResemble, Prefixes{Primitives: "op", Palette: "md", Semantic: "ui"})
		So(cfg.Output, ShouldResemble, Output{Dir: "./tokens", PaletteSubdir: "material", OpenPropsSubdir: "open-props"})
		So(cfg.OpenProps.Files, ShouldResemble, []string{"fonts", "sizes", "shadows", "borders", "easings"})

		Convey("Has all 14 categories", func() {
			So(len(Categories), ShouldEqual, 14)
			for _, c := range Categories {
				_, ok := cfg.Semantic[c.Key]
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Uses quoted values for raw numbers", func() {
			So(cfg.Semantic[Leading]["none"], ShouldEqual, `"1"`)
			So(cfg.Semantic[Layer]["base"], ShouldEqual, `"1"`)
			So(cfg.Semantic[Layer]["modal"], ShouldEqual, `"1000"`)
		})

		Convey("Space defaults", func() {
			So(cfg.Semantic[Space], ShouldResemble, map[string]string{
				"xs": "size-2", "sm": "size-3", "md": "size-4",
				"lg": "size-5", "xl": "size-6", "2xl": "size-7",
			})
		})

		Convey("Returns an independent copy", func() {
			cfg.Semantic[Space]["xs"] = "changed"
			cfg.OpenProps.Files[0] = "changed"
			fresh := DefaultTokenConfig()
			So(fresh.Semantic[Space]["xs"], ShouldEqual, "size-2")
			So(fresh.OpenProps.Files[0], ShouldEqual, "fonts")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Returns defaults for an empty partial", func() {
			So(Resolve(Partial{}), ShouldResemble, DefaultTokenConfig())
		})

		Convey("Overrides the format only", func() {
			cfg := Resolve(Partial{Format: mo.Some(color.HEX)})
			So(cfg.Format, ShouldEqual, color.HEX)
			So(cfg.Prefixes, ShouldResemble, DefaultTokenConfig().Prefixes)
		})

		Convey("Merges prefixes option by option", func() {
			var p Partial
			p.Prefixes.Primitives = mo.Some("custom")
			cfg := Resolve(p)
			So(cfg.Prefixes.Primitives, ShouldEqual, "custom")
			So(cfg.Prefixes.Palette, ShouldEqual, "md")
			So(cfg.Prefixes.Semantic, ShouldEqual, "ui")
		})

		Convey("Merges output option by option", func() {
			var p Partial
			p.Output.Dir = mo.Some("./custom-dir")
			cfg := Resolve(p)
			So(cfg.Output.Dir, ShouldEqual, "./custom-dir")
			So(cfg.Output.PaletteSubdir, ShouldEqual, "material")
		})

		Convey("Replaces a semantic category wholesale", func() {
			p := Partial{Semantic: Semantic{Space: {"sm": "size-1", "md": "size-2"}}}
			cfg := Resolve(p)
			So(cfg.Semantic[Space], ShouldResemble, map[string]string{"sm": "size-1", "md": "size-2"})
			So(cfg.Semantic[Radius], ShouldResemble, DefaultTokenConfig().Semantic[Radius])
		})

		Convey("Keeps an emptied category present", func() {
			cfg := Resolve(Partial{Semantic: Semantic{Font: {}}})
			roles, ok := cfg.Semantic[Font]
			So(ok, ShouldBeTrue)
			So(roles, ShouldBeEmpty)
		})

		Convey("Ignores unknown categories", func() {
			cfg := Resolve(Partial{Semantic: Semantic{"gradient": {"a": "b"}}})
			_, ok := cfg.Semantic["gradient"]
			So(ok, ShouldBeFalse)
			So(len(cfg.Semantic), ShouldEqual, len(Categories))
		})

		Convey("Copies the open props file list", func() {
			files := []string{"sizes"}
			var p Partial
			p.OpenProps.Files = mo.Some(files)
			cfg := Resolve(p)
			files[0] = "changed"
			So(cfg.OpenProps.Files, ShouldResemble, []string{"sizes"})
		})
	})
}

func TestFromViper(t *testing.T) {
	Convey("FromViper", t, func() {
		viper.Reset()
		lo.Must0(Setup())

		Convey("Reflects defaults", func() {
			p, err := FromViper()
			So(err, ShouldBeNil)
			So(Resolve(p), ShouldResemble, DefaultTokenConfig())
		})

		Convey("Picks up overrides and semantic tables", func() {
			viper.Set(key.Format, "hsl")
			viper.Set(key.PrefixesSemantic, "app")
			viper.Set(key.Semantic+".space", map[string]any{"sm": "size-1"})

			p, err := FromViper()
			So(err, ShouldBeNil)
			cfg := Resolve(p)
			So(cfg.Format, ShouldEqual, color.HSL)
			So(cfg.Prefixes.Semantic, ShouldEqual, "app")
			So(cfg.Semantic[Space], ShouldResemble, map[string]string{"sm": "size-1"})
			So(cfg.Semantic[Radius], ShouldResemble, DefaultTokenConfig().Semantic[Radius])
		})

		Convey("Rejects unknown formats", func() {
			viper.Set(key.Format, "cmyk")
			_, err := FromViper()
			So(err, ShouldNotBeNil)
		})

		Reset(func() {
			viper.Reset()
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema", t, func() {
		schema := Schema()
		So(schema.Title, ShouldEqual, "basetoken configuration")
		_, ok := schema.Properties.Get("semantic")
		So(ok, ShouldBeTrue)
		_, ok = schema.Properties.Get("prefixes")
		So(ok, ShouldBeTrue)
	})
}
