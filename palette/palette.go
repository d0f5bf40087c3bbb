// Package palette renders the Material tonal palettes as Tier 1 CSS variables.
package palette

import (
	"fmt"
	"strings"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/css"
	"github.com/basetoken/basetoken/material"
	"github.com/basetoken/basetoken/util"
	"github.com/samber/mo"
)

const title = "Material Design Palettes (Tier 1 Primitives)"

// Variable returns the name of the variable holding a tone of a ramp.
func Variable(prefix string, ramp material.Ramp, tone int) string {
	return fmt.Sprintf("--%s-palette-%s-%d", prefix, ramp, tone)
}

// Format renders palettes as a single :root block.
// Ramps follow material.Ramps() and tones follow material.ToneStops; ramps
// missing from palettes are skipped, as are tones missing from a ramp.
func Format(palettes material.Palettes, seed string, prefixes config.Prefixes, format color.Format) (string, error) {
	seedHex, err := color.NormalizeHex(seed)
	if err != nil {
		return "", err
	}

	seedOklch, err := color.ToOklch(seedHex)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(css.Header(
		title,
		mo.Some(fmt.Sprintf("Seed color %s / %s", seedHex, seedOklch)),
		mo.Some(fmt.Sprintf("Naming: --%s-palette-{ramp}-{tone}\nTones run from 0 (black) to 100 (white).", prefixes.Palette)),
	))
	b.WriteString("\n:root {\n")

	first := true
	for _, ramp := range material.Ramps() {
		tones, ok := palettes[ramp]
		if !ok {
			continue
		}

		if !first {
			b.WriteByte('\n')
		}
		first = false

		fmt.Fprintf(&b, "  /* %s palette */\n", util.TitleCase(string(ramp)))
		for _, tone := range material.ToneStops {
			hex, ok := tones[tone]
			if !ok {
				continue
			}

			value, err := color.Convert(hex, format)
			if err != nil {
				return "", fmt.Errorf("%s tone %d: %w", ramp, tone, err)
			}
			fmt.Fprintf(&b, "  %s: %s;\n", Variable(prefixes.Palette, ramp, tone), value)
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}
