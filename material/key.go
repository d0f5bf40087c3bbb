package material

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// keyColor is a ramp's hue in degrees and chroma in CIE LCh units (0-130ish).
type keyColor struct {
	hue    float64
	chroma float64
}

// searchSteps bounds the chroma bisection; 16 halvings is below one hex step.
const searchSteps = 16

// tone renders the key color at the given tone as "#RRGGBB".
// Chroma is lowered until the color fits sRGB, keeping hue and lightness.
func (k keyColor) tone(t int) string {
	switch {
	case t <= 0:
		return "#000000"
	case t >= 100:
		return "#FFFFFF"
	}

	l := float64(t) / 100
	c := k.chroma / 100

	if candidate := colorful.Hcl(k.hue, c, l); candidate.IsValid() {
		return hex(candidate)
	}

	lo, hi := 0.0, c
	for i := 0; i < searchSteps; i++ {
		mid := (lo + hi) / 2
		if colorful.Hcl(k.hue, mid, l).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}

	return hex(colorful.Hcl(k.hue, lo, l).Clamped())
}

// tones renders every tone stop.
func (k keyColor) tones() Tones {
	tones := make(Tones, len(ToneStops))
	for _, t := range ToneStops {
		tones[t] = k.tone(t)
	}
	return tones
}

func hex(c colorful.Color) string {
	return strings.ToUpper(c.Hex())
}
