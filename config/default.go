package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/key"
	"github.com/basetoken/basetoken/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Basetoken + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	defaults := DefaultTokenConfig()

	register(key.Format, string(defaults.Format), "Color format of generated values.\nAvailable options are: oklch, hex, hsl, rgb")
	register(key.PrefixesPrimitives, defaults.Prefixes.Primitives, "Namespace of Open Props primitives, e.g. --op-size-3")
	register(key.PrefixesPalette, defaults.Prefixes.Palette, "Namespace of the tonal palettes, e.g. --md-palette-primary-40")
	register(key.PrefixesSemantic, defaults.Prefixes.Semantic, "Namespace of the semantic theme API, e.g. --ui-color-primary")
	register(key.OutputDir, defaults.Output.Dir, "Directory the token files are written to")
	register(key.OutputPaletteSubdir, defaults.Output.PaletteSubdir, "Subdirectory of the output directory holding palettes.css")
	register(key.OutputOpenPropsSubdir, defaults.Output.OpenPropsSubdir, "Subdirectory of the output directory holding the Open Props files")
	register(key.OpenPropsBaseURL, defaults.OpenProps.BaseURL, "Base URL the Open Props sources are fetched from")
	register(key.OpenPropsFiles, defaults.OpenProps.Files, "Open Props files to include, without the props. prefix")
	register(key.OpenPropsCacheHours, 24, "Hours a fetched Open Props file is reused before it is fetched again.\nSet to 0 to always fetch")
	register(key.GenerateScheme, "tonal-spot", "Palette variant used when --scheme is not given.\nAvailable options are: tonal-spot, neutral, vibrant, expressive, fidelity, content, monochrome, rainbow, fruit-salad")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release after printing the version or the help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(style.Purple),
	"blue":     style.Fg(style.Blue),
	"wrap":     func(s string) string { return wordwrap.String(s, 72) },
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(style.Green)(b)
			}
			return style.Fg(style.Red)(b)
		case string:
			return style.Fg(style.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
