// Package openprops turns Open Props source files into prefixed Tier 1 primitives.
package openprops

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/basetoken/basetoken/css"
	"github.com/basetoken/basetoken/util"
	"github.com/samber/mo"
)

// ShadowsFile is the only file that receives the seed tinted shadow color.
const ShadowsFile = "shadows"

var (
	importRule     = regexp.MustCompile(`(?m)(?:^[ \t]*)?@import[^;]*;[ \t]*\n?`)
	darkMedia      = regexp.MustCompile(`@media\s*\(--OSdark\)`)
	darkBlock      = regexp.MustCompile(`/\*[\s\S]*?\*/|@media\s*\(prefers-color-scheme`)
	shadowColor    = regexp.MustCompile(`--shadow-color:[^;]*;`)
	propDefinition = regexp.MustCompile(`(^|[\s{;])--([\w-]+)\s*:`)
)

// Transform rewrites Open Props source into plain CSS:
// @import rules are dropped, :where(html) becomes :root and the custom
// --OSdark media becomes prefers-color-scheme. For the shadows file the
// light mode --shadow-color is tinted with the seed hue.
func Transform(source, fileName string, seedHue float64) string {
	out := importRule.ReplaceAllString(source, "")
	out = strings.ReplaceAll(out, ":where(html)", ":root")
	out = darkMedia.ReplaceAllString(out, "@media (prefers-color-scheme: dark)")

	if fileName == ShadowsFile {
		out = tintShadows(out, seedHue)
	}

	return strings.TrimSpace(out)
}

// tintShadows only touches the part before the first prefers-color-scheme
// rule, which is the light mode block. The dark block keeps its authored color.
func tintShadows(source string, seedHue float64) string {
	decl := fmt.Sprintf("--shadow-color: %d 10%% 15%%;", int(math.Round(seedHue)))

	light, rest := source, ""
	if i := darkBlockStart(source); i >= 0 {
		light, rest = source[:i], source[i:]
	}

	if loc := shadowColor.FindStringIndex(light); loc != nil {
		return light[:loc[0]] + decl + light[loc[1]:] + rest
	}

	if i := strings.Index(light, ":root {"); i >= 0 {
		at := i + len(":root {")
		return light[:at] + "\n  " + decl + light[at:] + rest
	}

	return ":root {\n  " + decl + "\n}\n\n" + source
}

// darkBlockStart returns the offset of the first dark mode rule outside of comments, or -1.
func darkBlockStart(source string) int {
	for _, loc := range darkBlock.FindAllStringIndex(source, -1) {
		if source[loc[0]] == '@' {
			return loc[0]
		}
	}
	return -1
}

// Prefix renames every custom property definition from --name to
// --{prefix}-name. References inside var() are left as they are.
func Prefix(source, prefix string) string {
	return propDefinition.ReplaceAllString(source, "${1}--"+prefix+"-${2}:")
}

// Generate transforms and prefixes a file and puts a header on top.
func Generate(fileName, source, prefix string, seedHue float64) string {
	header := css.Header(
		util.Capitalize(fileName)+" Tokens",
		mo.Some("Open Props (https://open-props.style)"),
		mo.Some(fmt.Sprintf(
			"Naming: --%s-*\n\n:where(html) rewritten to :root, custom media to prefers-color-scheme.",
			prefix,
		)),
	)

	return header + "\n" + Prefix(Transform(source, fileName, seedHue), prefix) + "\n"
}
