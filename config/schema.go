package config

import (
	"github.com/invopop/jsonschema"
)

// file mirrors the layout of the configuration file.
type file struct {
	Format    string   `json:"format,omitempty" jsonschema:"enum=oklch,enum=hex,enum=hsl,enum=rgb,default=oklch"`
	Prefixes  Prefixes `json:"prefixes,omitempty"`
	Output    Output   `json:"output,omitempty"`
	OpenProps struct {
		BaseURL    string   `json:"base_url,omitempty" jsonschema:"format=uri"`
		Files      []string `json:"files,omitempty"`
		CacheHours int      `json:"cache_hours,omitempty" jsonschema:"minimum=0,default=24"`
	} `json:"openprops,omitempty"`
	Generate struct {
		Scheme string `json:"scheme,omitempty" jsonschema:"default=tonal-spot"`
	} `json:"generate,omitempty"`
	Semantic map[string]map[string]string `json:"semantic,omitempty" jsonschema:"description=Role tables per category. Values are token names, unit literals like 150ms, 0, none or quoted raw numbers"`
	Icons    struct {
		Variant string `json:"variant,omitempty" jsonschema:"enum=emoji,enum=nerd,enum=plain"`
	} `json:"icons,omitempty"`
	Logs struct {
		Write bool   `json:"write,omitempty"`
		Level string `json:"level,omitempty"`
		JSON  bool   `json:"json,omitempty"`
	} `json:"logs,omitempty"`
	Cli struct {
		Colored bool `json:"colored,omitempty"`
	} `json:"cli,omitempty"`
}

// Schema returns the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true

	schema := reflector.Reflect(&file{})
	schema.Title = "basetoken configuration"

	props := make([]string, 0, len(Categories))
	for _, c := range Categories {
		props = append(props, string(c.Key))
	}
	if semantic, ok := schema.Properties.Get("semantic"); ok {
		semantic.PropertyNames = &jsonschema.Schema{Enum: toAny(props)}
	}

	return schema
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
