package css

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/constant"
	"github.com/samber/mo"
)

// Index renders index.css. Open Props files are imported in lexicographic
// order whatever the order of files.
func Index(files []string, prefixes config.Prefixes, paletteSubdir, openPropsSubdir string) string {
	sorted := slices.Clone(files)
	slices.Sort(sorted)

	legend := fmt.Sprintf(
		"Import this file once from the application entry point.\n\n"+
			"Prefix legend:\n"+
			"  --%s-palette-*  Material palettes (Tier 1)\n"+
			"  --%s-*  Open Props primitives (Tier 1)\n"+
			"  --%s-*  Semantic tokens (Tier 2), the only ones app code should use",
		prefixes.Palette, prefixes.Primitives, prefixes.Semantic,
	)

	var b strings.Builder
	b.WriteString(Header("Tokens Layer - Main Entry Point", mo.Some(constant.Basetoken), mo.Some(legend)))

	b.WriteString("\n/* Tier 1: Warehouses (Primitives) */\n")
	imp(&b, path.Join(paletteSubdir, constant.PaletteFile))
	for _, name := range sorted {
		imp(&b, path.Join(openPropsSubdir, name+constant.CSSExt))
	}

	b.WriteString("\n/* Tier 2: Showroom (Semantic) */\n")
	imp(&b, constant.SemanticFile)

	b.WriteString("\n/* Tier 3: App-Specific */\n")
	imp(&b, constant.AppFile)

	return b.String()
}

func imp(b *strings.Builder, rel string) {
	fmt.Fprintf(b, "@import \"./%s\";\n", rel)
}
