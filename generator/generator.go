// Package generator runs a full token generation: it derives the theme from
// the seed, renders every tier and writes the files.
package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/css"
	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/history"
	"github.com/basetoken/basetoken/log"
	"github.com/basetoken/basetoken/material"
	"github.com/basetoken/basetoken/openprops"
	"github.com/basetoken/basetoken/palette"
	"github.com/basetoken/basetoken/semantic"
	"github.com/samber/mo"
)

// Options are the per-run inputs. Output and Format override the config when set.
type Options struct {
	Seed   string
	Output mo.Option[string]
	Format mo.Option[color.Format]
	Scheme material.Variant
}

// File is a file produced by a run.
type File struct {
	Path string
	// Skipped is set when an existing file was kept.
	Skipped bool
}

// Result describes a finished run.
type Result struct {
	Seed  string
	Hue   float64
	Files []File
}

// Written counts the files that were actually written.
func (r *Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if !f.Skipped {
			n++
		}
	}
	return n
}

type document struct {
	path    string
	content string
	mode    filesystem.Mode
}

// render produces every document of a run without touching the disk.
func render(ctx context.Context, cfg config.TokenConfig, opts Options, src openprops.Source) (seed string, hue float64, docs []document, err error) {
	seed, err = color.NormalizeHex(opts.Seed)
	if err != nil {
		return "", 0, nil, err
	}

	hue, err = color.Hue(seed)
	if err != nil {
		return "", 0, nil, err
	}

	dir := opts.Output.OrElse(cfg.Output.Dir)
	format := opts.Format.OrElse(cfg.Format)

	theme, err := material.Generate(seed, opts.Scheme)
	if err != nil {
		return "", 0, nil, err
	}

	palettes, err := palette.Format(theme.Palettes, seed, cfg.Prefixes, format)
	if err != nil {
		return "", 0, nil, fmt.Errorf("palettes: %w", err)
	}
	docs = append(docs, document{
		path:    filepath.Join(dir, cfg.Output.PaletteSubdir, constant.PaletteFile),
		content: palettes,
	})

	for _, name := range cfg.OpenProps.Files {
		if err := ctx.Err(); err != nil {
			return "", 0, nil, err
		}

		raw, err := src.Fetch(ctx, name)
		if err != nil {
			return "", 0, nil, err
		}

		docs = append(docs, document{
			path:    filepath.Join(dir, cfg.Output.OpenPropsSubdir, name+constant.CSSExt),
			content: openprops.Generate(name, raw, cfg.Prefixes.Primitives, hue),
		})
	}

	sem, err := semantic.Generate(theme.Light, theme.Dark, cfg.Semantic, cfg.Prefixes, format, hue)
	if err != nil {
		return "", 0, nil, fmt.Errorf("semantic tokens: %w", err)
	}
	docs = append(docs,
		document{
			path:    filepath.Join(dir, constant.SemanticFile),
			content: sem,
		},
		document{
			path:    filepath.Join(dir, constant.AppFile),
			content: css.App(),
			mode:    filesystem.KeepExisting,
		},
		document{
			path:    filepath.Join(dir, constant.IndexFile),
			content: css.Index(cfg.OpenProps.Files, cfg.Prefixes, cfg.Output.PaletteSubdir, cfg.Output.OpenPropsSubdir),
		},
	)

	return seed, hue, docs, nil
}

// Run generates every file for opts and writes it below the output directory.
// Nothing is written unless every document renders. app.css is only written
// when it does not exist yet.
func Run(ctx context.Context, cfg config.TokenConfig, opts Options, src openprops.Source) (*Result, error) {
	if opts.Scheme == "" {
		opts.Scheme = material.TonalSpot
	}

	seed, hue, docs, err := render(ctx, cfg, opts, src)
	if err != nil {
		return nil, err
	}

	result := &Result{Seed: seed, Hue: hue}
	for _, doc := range docs {
		written, err := filesystem.WriteText(doc.path, doc.content, doc.mode)
		if err != nil {
			return nil, err
		}

		if written {
			log.Infof("wrote %s", doc.path)
		} else {
			log.Infof("kept existing %s", doc.path)
		}
		result.Files = append(result.Files, File{Path: doc.path, Skipped: !written})
	}

	format := opts.Format.OrElse(cfg.Format)
	if err := history.Record(&history.Run{
		Seed:    seed,
		Variant: string(opts.Scheme),
		Format:  string(format),
		Output:  opts.Output.OrElse(cfg.Output.Dir),
		Files:   result.Written(),
	}); err != nil {
		log.Warnf("recording run: %s", err)
	}

	return result, nil
}
