// Package material derives Material-style tonal palettes and light/dark
// color schemes from a single seed color.
//
// Ramps are built in CIE LCh: every ramp is a key color (hue, chroma) and a
// tone is that key color rendered at lightness L = tone, with chroma reduced
// until it fits the sRGB gamut.
package material

// Ramp names a tonal palette.
type Ramp string

const (
	Primary        Ramp = "primary"
	Secondary      Ramp = "secondary"
	Tertiary       Ramp = "tertiary"
	Error          Ramp = "error"
	Neutral        Ramp = "neutral"
	NeutralVariant Ramp = "neutral-variant"
)

// Ramps returns every ramp in output order.
func Ramps() []Ramp {
	return []Ramp{Primary, Secondary, Tertiary, Error, Neutral, NeutralVariant}
}

// ToneStops are the tones rendered for each ramp, in ascending order.
var ToneStops = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90, 95, 98, 99, 100}

// Tones maps a tone stop to a normalized hex color.
type Tones map[int]string

// Palettes maps a ramp to its tones. A missing ramp is not rendered.
type Palettes map[Ramp]Tones

// Theme is everything derived from a seed: the palettes and both schemes.
type Theme struct {
	Seed     string
	Variant  Variant
	Palettes Palettes
	Light    SchemeColors
	Dark     SchemeColors
}
