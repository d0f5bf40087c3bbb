package config

import (
	"fmt"
	"strings"

	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/key"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// FromViper collects the user overrides held by viper (config file,
// environment and bound flags) into a Partial.
func FromViper() (Partial, error) {
	var p Partial

	if name := viper.GetString(key.Format); name != "" {
		format, err := color.ParseFormat(name)
		if err != nil {
			return p, fmt.Errorf("%s: %w", key.Format, err)
		}
		p.Format = mo.Some(format)
	}

	p.Prefixes.Primitives = stringOption(key.PrefixesPrimitives)
	p.Prefixes.Palette = stringOption(key.PrefixesPalette)
	p.Prefixes.Semantic = stringOption(key.PrefixesSemantic)

	p.Output.Dir = stringOption(key.OutputDir)
	p.Output.PaletteSubdir = stringOption(key.OutputPaletteSubdir)
	p.Output.OpenPropsSubdir = stringOption(key.OutputOpenPropsSubdir)

	p.OpenProps.BaseURL = stringOption(key.OpenPropsBaseURL)
	if viper.IsSet(key.OpenPropsFiles) {
		p.OpenProps.Files = mo.Some(viper.GetStringSlice(key.OpenPropsFiles))
	}

	p.Semantic = make(Semantic)
	for _, c := range Categories {
		k := key.Semantic + "." + string(c.Key)
		if viper.Get(k) == nil {
			continue
		}
		p.Semantic[c.Key] = viper.GetStringMapString(k)
	}

	return p, nil
}

func stringOption(k string) mo.Option[string] {
	v := strings.TrimSpace(viper.GetString(k))
	if v == "" {
		return mo.None[string]()
	}
	return mo.Some(v)
}
