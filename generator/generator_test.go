package generator

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/history"
	"github.com/basetoken/basetoken/material"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource serves a tiny stand-in for each Open Props file.
type fakeSource struct {
	fail string
}

func (f fakeSource) Fetch(_ context.Context, name string) (string, error) {
	if name == f.fail {
		return "", errors.New("unreachable")
	}
	if name == "shadows" {
		return "@import 'props.media.css';\n:where(html) {\n  --shadow-color: 220 3% 15%;\n}\n@media (--OSdark) {\n  :where(html) {\n    --shadow-color: 220 40% 2%;\n  }\n}\n", nil
	}
	return ":where(html) {\n  --" + name + "-1: 1;\n}\n", nil
}

func read(path string) string {
	return string(lo.Must(filesystem.API().ReadFile(path)))
}

func TestRun(t *testing.T) {
	Convey("Given the default config and a seed", t, func() {
		filesystem.SetMemMapFs()
		cfg := config.DefaultTokenConfig()
		opts := Options{Seed: "#FFDE3F", Scheme: material.TonalSpot}

		result, err := Run(context.Background(), cfg, opts, fakeSource{})
		So(err, ShouldBeNil)

		Convey("Every file is written", func() {
			So(result.Seed, ShouldEqual, "#FFDE3F")
			So(len(result.Files), ShouldEqual, 4+len(cfg.OpenProps.Files))
			So(result.Written(), ShouldEqual, len(result.Files))

			for _, rel := range []string{
				"index.css", "semantic.css", "app.css", "material/palettes.css",
				"open-props/fonts.css", "open-props/sizes.css", "open-props/shadows.css",
				"open-props/borders.css", "open-props/easings.css",
			} {
				So(lo.Must(filesystem.API().Exists(filepath.Join("tokens", rel))), ShouldBeTrue)
			}
		})

		Convey("The palettes have exact black and white", func() {
			palettes := read(filepath.Join("tokens", "material", "palettes.css"))
			So(palettes, ShouldContainSubstring, "--md-palette-primary-0: oklch(0.00 0 0);")
			So(palettes, ShouldContainSubstring, "--md-palette-primary-100: oklch(1.00 0 0);")
		})

		Convey("The semantic file uses light-dark() and the seed hue", func() {
			sem := read(filepath.Join("tokens", "semantic.css"))
			So(regexp.MustCompile(`--ui-color-primary: light-dark\(oklch\([^)]+\), oklch\([^)]+\)\);`).MatchString(sem), ShouldBeTrue)

			hue := lo.Must(color.Hue("#FFDE3F"))
			So(regexp.MustCompile(`--ui-shadow-hue: \d+;`).MatchString(sem), ShouldBeTrue)
			So(result.Hue, ShouldAlmostEqual, hue)
		})

		Convey("The shadows primitive is tinted and prefixed", func() {
			shadows := read(filepath.Join("tokens", "open-props", "shadows.css"))
			So(shadows, ShouldContainSubstring, "10% 15%;")
			So(shadows, ShouldContainSubstring, "--op-shadow-color: 220 40% 2%;")
			So(shadows, ShouldNotContainSubstring, "@import")
		})

		Convey("The index imports Open Props files in lexicographic order", func() {
			index := read(filepath.Join("tokens", "index.css"))
			positions := lo.Map([]string{"borders", "easings", "fonts", "shadows", "sizes"}, func(n string, _ int) int {
				return strings.Index(index, `@import "./open-props/`+n+`.css";`)
			})
			for i := 1; i < len(positions); i++ {
				So(positions[i-1], ShouldBeGreaterThan, -1)
				So(positions[i], ShouldBeGreaterThan, positions[i-1])
			}
		})

		Convey("The run is recorded", func() {
			runs := lo.Must(history.List())
			So(len(runs), ShouldEqual, 1)
			So(runs[0].Seed, ShouldEqual, "#FFDE3F")
			So(runs[0].Variant, ShouldEqual, "tonal-spot")
		})

		Convey("Re-running keeps an edited app.css", func() {
			app := filepath.Join("tokens", "app.css")
			lo.Must0(filesystem.API().WriteFile(app, []byte(":root { --mine: 1px; }\n"), 0o644))

			again, err := Run(context.Background(), cfg, opts, fakeSource{})
			So(err, ShouldBeNil)
			So(read(app), ShouldEqual, ":root { --mine: 1px; }\n")

			skipped := lo.Filter(again.Files, func(f File, _ int) bool { return f.Skipped })
			So(len(skipped), ShouldEqual, 1)
			So(skipped[0].Path, ShouldEqual, app)
		})

		Convey("Re-running is deterministic below the headers", func() {
			body := func(path string) string {
				s := read(path)
				return s[strings.Index(s, " */\n"):]
			}
			first := body(filepath.Join("tokens", "semantic.css"))
			lo.Must(Run(context.Background(), cfg, opts, fakeSource{}))
			So(body(filepath.Join("tokens", "semantic.css")), ShouldEqual, first)
		})
	})

	Convey("Given overrides", t, func() {
		filesystem.SetMemMapFs()
		cfg := config.DefaultTokenConfig()
		cfg.OpenProps.Files = []string{"sizes"}

		_, err := Run(context.Background(), cfg, Options{
			Seed:   "ffde3f",
			Output: mo.Some("out"),
			Format: mo.Some(color.HEX),
		}, fakeSource{})
		So(err, ShouldBeNil)

		palettes := read(filepath.Join("out", "material", "palettes.css"))
		So(palettes, ShouldContainSubstring, "--md-palette-primary-0: #000000;")
		So(lo.Must(history.List())[0].Variant, ShouldEqual, "tonal-spot")
	})

	Convey("Given an invalid seed", t, func() {
		filesystem.SetMemMapFs()
		_, err := Run(context.Background(), config.DefaultTokenConfig(), Options{Seed: "not-a-color"}, fakeSource{})
		So(errors.Is(err, color.ErrInvalidColor), ShouldBeTrue)
		So(lo.Must(filesystem.API().Exists("tokens")), ShouldBeFalse)
	})

	Convey("Given a failing source", t, func() {
		filesystem.SetMemMapFs()
		_, err := Run(context.Background(), config.DefaultTokenConfig(), Options{Seed: "#FFDE3F"}, fakeSource{fail: "sizes"})
		So(err, ShouldNotBeNil)
		So(lo.Must(filesystem.API().Exists(filepath.Join("tokens", "index.css"))), ShouldBeFalse)
	})
}
