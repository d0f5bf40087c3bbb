package config

import (
	"github.com/basetoken/basetoken/color"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Prefixes are the namespaces of the three token tiers.
type Prefixes struct {
	Primitives string `json:"primitives" jsonschema:"default=op"`
	Palette    string `json:"palette" jsonschema:"default=md"`
	Semantic   string `json:"semantic" jsonschema:"default=ui"`
}

// Output is the on-disk layout of the generated files.
type Output struct {
	Dir             string `json:"dir" jsonschema:"default=./tokens"`
	PaletteSubdir   string `json:"palette_subdir" jsonschema:"default=material"`
	OpenPropsSubdir string `json:"openprops_subdir" jsonschema:"default=open-props"`
}

// OpenProps locates the third-party primitive files.
type OpenProps struct {
	BaseURL string   `json:"base_url"`
	Files   []string `json:"files"`
}

// TokenConfig is the fully resolved configuration of a generation run.
// It is built once by Resolve and never mutated afterwards.
type TokenConfig struct {
	Format    color.Format `json:"format"`
	Prefixes  Prefixes     `json:"prefixes"`
	Output    Output       `json:"output"`
	OpenProps OpenProps    `json:"openprops"`
	Semantic  Semantic     `json:"semantic"`
}

// DefaultTokenConfig returns a fresh copy of the opinionated defaults.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Format: color.OKLCH,
		Prefixes: Prefixes{
			Primitives: "op",
			Palette:    "md",
			Semantic:   "ui",
		},
		Output: Output{
			Dir:             "./tokens",
			PaletteSubdir:   "material",
			OpenPropsSubdir: "open-props",
		},
		OpenProps: OpenProps{
			BaseURL: "https://raw.githubusercontent.com/argyleink/open-props/main/src",
			Files:   []string{"fonts", "sizes", "shadows", "borders", "easings"},
		},
		Semantic: defaultSemantic(),
	}
}

// Partial is a user override of the defaults. Unset options keep their default.
type Partial struct {
	Format   mo.Option[color.Format]
	Prefixes struct {
		Primitives, Palette, Semantic mo.Option[string]
	}
	Output struct {
		Dir, PaletteSubdir, OpenPropsSubdir mo.Option[string]
	}
	OpenProps struct {
		BaseURL mo.Option[string]
		Files   mo.Option[[]string]
	}

	// Semantic categories present here replace the default category entirely.
	Semantic Semantic
}

// Resolve merges a partial configuration onto the defaults.
// Prefixes, output and openprops merge option by option; each semantic
// category supplied by the partial replaces the default category as a whole.
// Categories outside the fixed set are ignored.
func Resolve(p Partial) TokenConfig {
	cfg := DefaultTokenConfig()

	cfg.Format = p.Format.OrElse(cfg.Format)

	cfg.Prefixes.Primitives = p.Prefixes.Primitives.OrElse(cfg.Prefixes.Primitives)
	cfg.Prefixes.Palette = p.Prefixes.Palette.OrElse(cfg.Prefixes.Palette)
	cfg.Prefixes.Semantic = p.Prefixes.Semantic.OrElse(cfg.Prefixes.Semantic)

	cfg.Output.Dir = p.Output.Dir.OrElse(cfg.Output.Dir)
	cfg.Output.PaletteSubdir = p.Output.PaletteSubdir.OrElse(cfg.Output.PaletteSubdir)
	cfg.Output.OpenPropsSubdir = p.Output.OpenPropsSubdir.OrElse(cfg.Output.OpenPropsSubdir)

	cfg.OpenProps.BaseURL = p.OpenProps.BaseURL.OrElse(cfg.OpenProps.BaseURL)
	if files, ok := p.OpenProps.Files.Get(); ok {
		cfg.OpenProps.Files = append([]string(nil), files...)
	}

	for cat, roles := range p.Semantic {
		if !IsCategory(string(cat)) {
			continue
		}
		if roles == nil {
			roles = map[string]string{}
		}
		cfg.Semantic[cat] = lo.Assign(roles)
	}

	return cfg
}
