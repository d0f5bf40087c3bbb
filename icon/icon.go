// Package icon provides a multi-variant rendering engine for CLI feedback symbols.
//
// Icons can be displayed as emoji, nerd-font glyphs or plain ASCII depending
// on user preference.
package icon

import (
	"github.com/basetoken/basetoken/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a feedback symbol.
type Icon int

// Registered icons.
const (
	Success Icon = iota
	Fail
	Progress
	Skip
	File
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "\uf00c", plain: "✓"},
	Fail:     {emoji: "❌", nerd: "\uf00d", plain: "✖"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "…"},
	Skip:     {emoji: "⏭️", nerd: "\uf051", plain: "-"},
	File:     {emoji: "📄", nerd: "\uf15b", plain: "•"},
}

// Get retrieves the visual representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
