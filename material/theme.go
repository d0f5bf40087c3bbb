package material

import (
	"github.com/basetoken/basetoken/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Generate derives a theme from a seed color. It fails with color.ErrInvalidColor for a malformed seed.
func Generate(seed string, variant Variant) (Theme, error) {
	hex, err := color.NormalizeHex(seed)
	if err != nil {
		return Theme{}, err
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Theme{}, err
	}

	h, chroma, _ := c.Hcl()
	keys := variant.keys(h, chroma*100)

	palettes := make(Palettes, len(keys))
	for _, ramp := range Ramps() {
		palettes[ramp] = keys[ramp].tones()
	}

	light, dark := schemes(keys)

	return Theme{
		Seed:     hex,
		Variant:  variant,
		Palettes: palettes,
		Light:    light,
		Dark:     dark,
	}, nil
}
