// Package semantic assembles the Tier 2 stylesheet: theme aware colors
// expressed with light-dark() and the semantic category tables.
package semantic

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/css"
	"github.com/basetoken/basetoken/material"
	"github.com/samber/mo"
)

// FormatValue renders a raw semantic value.
// "0" and "none" pass through, a double quoted value loses its quotes, a
// value starting with a digit is a literal and anything else references a
// primitive as var(--{prefix}-{value}).
func FormatValue(value, primitivesPrefix string) string {
	switch {
	case value == "0" || value == "none":
		return value
	case len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`):
		return value[1 : len(value)-1]
	case value != "" && unicode.IsDigit(rune(value[0])):
		return value
	default:
		return fmt.Sprintf("var(--%s-%s)", primitivesPrefix, value)
	}
}

// Generate renders semantic.css.
// Color roles missing from either scheme are skipped. Empty categories are skipped.
func Generate(
	light, dark material.SchemeColors,
	semantic config.Semantic,
	prefixes config.Prefixes,
	format color.Format,
	seedHue float64,
) (string, error) {
	var b strings.Builder

	b.WriteString(css.Header(
		"Semantic Tokens (Tier 2) - THE APPLICATION API",
		mo.Some("Generated from seed color"),
		mo.Some(fmt.Sprintf(
			"Naming: --%[1]s-[category]-[role]\n\n"+
				"This is the ONLY file developers should reference.\n"+
				"All tokens start with --%[1]s-\n\n"+
				"Uses CSS light-dark() for reactive theming.",
			prefixes.Semantic,
		)),
	))

	fmt.Fprintf(&b, "@layer %s {\n", constant.SemanticLayer)
	b.WriteString("  :root {\n")
	b.WriteString("    color-scheme: light dark;\n\n")

	if err := writeColors(&b, light, dark, prefixes.Semantic, format); err != nil {
		return "", err
	}

	b.WriteString("\n    /* Shadow Color (for atomic shadows) */\n")
	fmt.Fprintf(&b, "    --%s-color-shadow: light-dark(oklch(0 0 0 / 0.1), oklch(0 0 0 / 0.6));\n", prefixes.Semantic)

	b.WriteString("\n    /* Shadow Hue (derived from seed color) */\n")
	fmt.Fprintf(&b, "    --%s-shadow-hue: %d;\n", prefixes.Semantic, int(math.Round(seedHue)))

	writeCategories(&b, semantic, prefixes)

	b.WriteString("  }\n\n")
	b.WriteString("  /* Theme Toggles */\n")
	b.WriteString("  :root[data-theme=\"light\"] { color-scheme: light; }\n")
	b.WriteString("  :root[data-theme=\"dark\"] { color-scheme: dark; }\n")
	b.WriteString("}\n")

	return b.String(), nil
}

func writeColors(b *strings.Builder, light, dark material.SchemeColors, prefix string, format color.Format) error {
	group := ""

	for _, role := range ColorRoles {
		l, okLight := light[role.Scheme]
		d, okDark := dark[role.Scheme]
		if !okLight || !okDark || l == "" || d == "" {
			continue
		}

		lf, err := color.Convert(l, format)
		if err != nil {
			return fmt.Errorf("light %s: %w", role.Scheme, err)
		}
		df, err := color.Convert(d, format)
		if err != nil {
			return fmt.Errorf("dark %s: %w", role.Scheme, err)
		}

		if role.Group != group {
			if group != "" {
				b.WriteByte('\n')
			}
			fmt.Fprintf(b, "    /* %s */\n", role.Group)
			group = role.Group
		}

		fmt.Fprintf(b, "    --%s-color-%s: light-dark(%s, %s);\n", prefix, role.Name, lf, df)
	}

	return nil
}

func writeCategories(b *strings.Builder, semantic config.Semantic, prefixes config.Prefixes) {
	for _, category := range config.Categories {
		roles := semantic[category.Key]
		if len(roles) == 0 {
			continue
		}

		fmt.Fprintf(b, "\n    /* %s */\n", category.DisplayName)
		for _, k := range SortKeys(roles, category.Key) {
			fmt.Fprintf(b, "    --%s-%s-%s: %s;\n", prefixes.Semantic, category.Key, k, FormatValue(roles[k], prefixes.Primitives))
		}
	}
}
