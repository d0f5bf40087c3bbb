package semantic

import (
	"errors"
	"strings"
	"testing"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/material"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	light = material.SchemeColors{
		material.RolePrimary:            "#6750A4",
		material.RoleOnPrimary:          "#FFFFFF",
		material.RolePrimaryContainer:   "#EADDFF",
		material.RoleOnPrimaryContainer: "#21005D",
		material.RoleSurface:            "#FFFBFE",
		material.RoleOnSurface:          "#1C1B1F",
		material.RoleSurfaceContainer:   "#F3EDF7",
		material.RoleError:              "#B3261E",
		material.RoleOnError:            "#FFFFFF",
		material.RoleOutline:            "#79747E",
	}
	dark = material.SchemeColors{
		material.RolePrimary:            "#D0BCFF",
		material.RoleOnPrimary:          "#381E72",
		material.RolePrimaryContainer:   "#4F378B",
		material.RoleOnPrimaryContainer: "#EADDFF",
		material.RoleSurface:            "#1C1B1F",
		material.RoleOnSurface:          "#E6E1E5",
		material.RoleSurfaceContainer:   "#211F26",
		material.RoleError:              "#F2B8B5",
		material.RoleOnError:            "#601410",
		material.RoleOutline:            "#938F99",
	}
	prefixes = config.DefaultTokenConfig().Prefixes
)

func minimal() config.Semantic {
	s := config.Semantic{}
	for _, c := range config.Categories {
		s[c.Key] = map[string]string{}
	}
	s[config.Space] = map[string]string{"lg": "size-5", "sm": "size-3", "md": "size-4"}
	s[config.Radius] = map[string]string{"none": "0", "sm": "radius-2"}
	s[config.Layer] = map[string]string{"raised": `"10"`, "base": `"1"`}
	s[config.Duration] = map[string]string{"fast": "150ms", "normal": "300ms"}
	return s
}

func TestFormatValue(t *testing.T) {
	Convey("FormatValue", t, func() {
		cases := []struct{ in, prefix, out string }{
			{"size-3", "op", "var(--op-size-3)"},
			{"0", "op", "0"},
			{"none", "op", "none"},
			{"150ms", "op", "150ms"},
			{`"1"`, "op", "1"},
			{"font-lineheight-3", "op", "var(--op-font-lineheight-3)"},
			{"0ms", "op", "0ms"},
			{"size-3", "custom", "var(--custom-size-3)"},
			{`"`, "op", `var(--op-")`},
		}
		for _, c := range cases {
			So(FormatValue(c.in, c.prefix), ShouldEqual, c.out)
		}
	})
}

func TestSortKeys(t *testing.T) {
	keys := func(names ...string) map[string]string {
		return lo.SliceToMap(names, func(n string) (string, string) { return n, "v" })
	}

	Convey("SortKeys", t, func() {
		Convey("T-shirt sizes", func() {
			So(SortKeys(keys("lg", "xs", "md", "xxs", "xl", "sm"), config.Space), ShouldResemble,
				[]string{"xxs", "xs", "sm", "md", "lg", "xl"})
		})

		Convey("Font weights", func() {
			So(SortKeys(keys("bold", "light", "normal", "semibold", "medium"), config.Weight), ShouldResemble,
				[]string{"light", "normal", "medium", "semibold", "bold"})
		})

		Convey("Line heights", func() {
			So(SortKeys(keys("loose", "tight", "normal", "none", "relaxed", "snug"), config.Leading), ShouldResemble,
				[]string{"none", "tight", "snug", "normal", "relaxed", "loose"})
		})

		Convey("Layers", func() {
			So(SortKeys(keys("modal", "base", "dropdown", "sticky", "raised"), config.Layer), ShouldResemble,
				[]string{"base", "raised", "dropdown", "sticky", "modal"})
		})

		Convey("Fonts and easings are lexicographic", func() {
			So(SortKeys(keys("code", "body", "heading"), config.Font), ShouldResemble, []string{"body", "code", "heading"})
			So(SortKeys(keys("out", "in-out", "in"), config.Ease), ShouldResemble, []string{"in", "in-out", "out"})
		})

		Convey("Every size category uses t-shirt order", func() {
			for _, c := range []config.Category{
				config.Space, config.SpaceFluid, config.TypeSize, config.Radius, config.Shadow,
				config.Border, config.Duration, config.Breakpoint, config.ContentWidth,
			} {
				So(SortKeys(keys("lg", "md", "sm"), c), ShouldResemble, []string{"sm", "md", "lg"})
			}
		})

		Convey("Known keys precede unknown keys", func() {
			So(SortKeys(keys("custom", "sm", "lg", "other", "md"), config.Space), ShouldResemble,
				[]string{"sm", "md", "lg", "custom", "other"})
			So(SortKeys(keys("zz", "full", "none", "sm"), config.Radius), ShouldResemble,
				[]string{"sm", "full", "none", "zz"})
		})

		Convey("Empty groups sort to nothing", func() {
			So(SortKeys(map[string]string{}, config.Space), ShouldBeEmpty)
		})
	})
}

func TestColorGroup(t *testing.T) {
	Convey("ColorGroup", t, func() {
		cases := map[string]string{
			"primary":           "Primary",
			"primary-on":        "Primary",
			"primary-container": "Primary",
			"secondary":         "Secondary",
			"tertiary":          "Tertiary",
			"surface":           "Surface",
			"surface-container": "Surface",
			"background":        "Background",
			"error":             "Error",
			"outline":           "Outline",
			"inverse-surface":   "Inverse",
			"scrim":             "Utility",
			"shadow-color":      "Utility",
			"unknown":           "Other",
		}
		for role, group := range cases {
			So(ColorGroup(role), ShouldEqual, group)
		}

		Convey("Agrees with the role table", func() {
			for _, role := range ColorRoles {
				if role.Name == "surface-tint" {
					continue
				}
				So(ColorGroup(role.Name), ShouldEqual, role.Group)
			}
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given partial schemes and a minimal config", t, func() {
		out := lo.Must(Generate(light, dark, minimal(), prefixes, color.OKLCH, 180))

		Convey("It has the header, the layer and color-scheme", func() {
			So(out, ShouldContainSubstring, "Semantic Tokens (Tier 2) - THE APPLICATION API")
			So(out, ShouldContainSubstring, "All tokens start with --ui-")
			So(out, ShouldContainSubstring, "@layer ui.theme {")
			So(out, ShouldContainSubstring, "  :root {\n    color-scheme: light dark;\n")
		})

		Convey("Colors use light-dark()", func() {
			So(out, ShouldContainSubstring, "--ui-color-primary: light-dark(oklch(")
			So(out, ShouldContainSubstring, "--ui-color-surface-container: light-dark(")
		})

		Convey("Roles missing from the schemes are skipped", func() {
			So(out, ShouldNotContainSubstring, "--ui-color-secondary")
			So(out, ShouldNotContainSubstring, "/* Secondary */")
			So(out, ShouldNotContainSubstring, "/* Inverse */")
		})

		Convey("Groups follow the table order", func() {
			p := strings.Index(out, "/* Primary */")
			s := strings.Index(out, "/* Surface */")
			e := strings.Index(out, "/* Error */")
			o := strings.Index(out, "/* Outline */")
			So(p, ShouldBeLessThan, s)
			So(s, ShouldBeLessThan, e)
			So(e, ShouldBeLessThan, o)
		})

		Convey("The shadow extras are always present", func() {
			So(out, ShouldContainSubstring, "--ui-color-shadow: light-dark(oklch(0 0 0 / 0.1), oklch(0 0 0 / 0.6));")
			So(out, ShouldContainSubstring, "--ui-shadow-hue: 180;")
		})

		Convey("Categories are ordered, sorted and formatted", func() {
			So(out, ShouldContainSubstring, "    /* Spacing Scale */\n    --ui-space-sm: var(--op-size-3);\n    --ui-space-md: var(--op-size-4);\n    --ui-space-lg: var(--op-size-5);\n")
			So(out, ShouldContainSubstring, "--ui-radius-none: 0;")
			So(out, ShouldContainSubstring, "--ui-radius-sm: var(--op-radius-2);")
			So(out, ShouldContainSubstring, "--ui-duration-fast: 150ms;")
			So(out, ShouldContainSubstring, "--ui-layer-base: 1;")
			So(out, ShouldContainSubstring, "--ui-layer-raised: 10;")

			So(strings.Index(out, "/* Spacing Scale */"), ShouldBeLessThan, strings.Index(out, "/* Border Radii */"))
			So(strings.Index(out, "/* Border Radii */"), ShouldBeLessThan, strings.Index(out, "/* Z-Index Layers */"))
		})

		Convey("Empty categories leave no trace", func() {
			So(out, ShouldNotContainSubstring, "/* Font Families */")
			So(out, ShouldNotContainSubstring, "/* Breakpoints */")
		})

		Convey("Theme toggles close the layer and no dark media block exists", func() {
			So(out, ShouldEndWith, "  /* Theme Toggles */\n  :root[data-theme=\"light\"] { color-scheme: light; }\n  :root[data-theme=\"dark\"] { color-scheme: dark; }\n}\n")
			So(out, ShouldNotContainSubstring, "prefers-color-scheme")
		})
	})

	Convey("Given a single role and a single category", t, func() {
		s := config.Semantic{config.Duration: {"fast": "150ms"}}
		out := lo.Must(Generate(
			material.SchemeColors{material.RolePrimary: "#000000"},
			material.SchemeColors{material.RolePrimary: "#FFFFFF"},
			s, prefixes, color.HEX, 12.5,
		))

		Convey("The body has an exact shape", func() {
			body := out[strings.Index(out, "@layer"):]
			So(body, ShouldEqual, strings.Join([]string{
				"@layer ui.theme {",
				"  :root {",
				"    color-scheme: light dark;",
				"",
				"    /* Primary */",
				"    --ui-color-primary: light-dark(#000000, #FFFFFF);",
				"",
				"    /* Shadow Color (for atomic shadows) */",
				"    --ui-color-shadow: light-dark(oklch(0 0 0 / 0.1), oklch(0 0 0 / 0.6));",
				"",
				"    /* Shadow Hue (derived from seed color) */",
				"    --ui-shadow-hue: 13;",
				"",
				"    /* Durations */",
				"    --ui-duration-fast: 150ms;",
				"  }",
				"",
				"  /* Theme Toggles */",
				`  :root[data-theme="light"] { color-scheme: light; }`,
				`  :root[data-theme="dark"] { color-scheme: dark; }`,
				"}",
				"",
			}, "\n"))
		})
	})

	Convey("Given the default config", t, func() {
		out := lo.Must(Generate(light, dark, config.DefaultTokenConfig().Semantic, prefixes, color.OKLCH, 220))

		Convey("Every category is rendered", func() {
			for _, c := range config.Categories {
				So(out, ShouldContainSubstring, "/* "+c.DisplayName+" */")
			}
		})

		Convey("Values are rendered by shape", func() {
			So(out, ShouldContainSubstring, "--ui-space-fluid-sm: var(--op-size-fluid-2);")
			So(out, ShouldContainSubstring, "--ui-type-size-base: var(--op-font-size-2);")
			So(out, ShouldContainSubstring, "--ui-font-body: var(--op-font-sans);")
			So(out, ShouldContainSubstring, "--ui-font-code: var(--op-font-mono);")
			So(out, ShouldContainSubstring, "--ui-border-none: 0;")
			So(out, ShouldContainSubstring, "--ui-border-sm: var(--op-border-size-1);")
			So(out, ShouldContainSubstring, "--ui-content-width-sm: 640px;")
			So(out, ShouldContainSubstring, "--ui-breakpoint-xl: 1280px;")
		})
	})

	Convey("Given a full theme", t, func() {
		theme := lo.Must(material.Generate("#FFDE3F", material.TonalSpot))
		out := lo.Must(Generate(theme.Light, theme.Dark, config.Semantic{}, prefixes, color.OKLCH, 90))

		Convey("Every role of the table is rendered once", func() {
			for _, role := range ColorRoles {
				So(strings.Count(out, "--ui-color-"+role.Name+":"), ShouldEqual, 1)
			}
		})
	})

	Convey("Given an invalid scheme color", t, func() {
		bad := material.SchemeColors{material.RolePrimary: "oops"}
		_, err := Generate(bad, dark, minimal(), prefixes, color.OKLCH, 0)
		So(errors.Is(err, color.ErrInvalidColor), ShouldBeTrue)
	})
}
