package material

import (
	"errors"
	"fmt"
	"math"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Variant selects how the seed is spread over the ramps.
type Variant string

const (
	TonalSpot  Variant = "tonal-spot"
	Neutrals   Variant = "neutral"
	Vibrant    Variant = "vibrant"
	Expressive Variant = "expressive"
	Fidelity   Variant = "fidelity"
	Content    Variant = "content"
	Monochrome Variant = "monochrome"
	Rainbow    Variant = "rainbow"
	FruitSalad Variant = "fruit-salad"
)

// ErrUnknownVariant is returned by ParseVariant for names outside the supported set.
var ErrUnknownVariant = errors.New("unknown scheme variant")

// Variants returns every supported variant, default first.
func Variants() []Variant {
	return []Variant{TonalSpot, Neutrals, Vibrant, Expressive, Fidelity, Content, Monochrome, Rainbow, FruitSalad}
}

// VariantNames returns the names of every supported variant.
func VariantNames() []string {
	return lo.Map(Variants(), func(v Variant, _ int) string { return string(v) })
}

// ParseVariant resolves a variant name case-insensitively. Underscores and
// spaces are accepted in place of dashes, so "tonal_spot" works too.
func ParseVariant(name string) (Variant, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)

	if lo.Contains(VariantNames(), normalized) {
		return Variant(normalized), nil
	}

	closest := lo.MinBy(VariantNames(), func(a, b string) bool {
		return levenshtein.Distance(normalized, a) < levenshtein.Distance(normalized, b)
	})
	return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownVariant, name, closest)
}

// errorKey is shared by every variant.
var errorKey = keyColor{hue: 25, chroma: 84}

// keys returns the key color of every ramp for a seed with the given hue and chroma.
func (v Variant) keys(hue, chroma float64) map[Ramp]keyColor {
	at := func(offset, c float64) keyColor {
		return keyColor{hue: rotate(hue, offset), chroma: c}
	}

	var k map[Ramp]keyColor
	switch v {
	case Neutrals:
		k = map[Ramp]keyColor{
			Primary: at(0, 12), Secondary: at(0, 8), Tertiary: at(60, 16),
			Neutral: at(0, 2), NeutralVariant: at(0, 2),
		}
	case Vibrant:
		k = map[Ramp]keyColor{
			Primary: at(0, 100), Secondary: at(15, 24), Tertiary: at(60, 32),
			Neutral: at(0, 10), NeutralVariant: at(0, 12),
		}
	case Expressive:
		k = map[Ramp]keyColor{
			Primary: at(240, 40), Secondary: at(45, 24), Tertiary: at(120, 32),
			Neutral: at(15, 8), NeutralVariant: at(15, 12),
		}
	case Fidelity:
		k = map[Ramp]keyColor{
			Primary: at(0, chroma), Secondary: at(0, math.Max(chroma-32, chroma/2)), Tertiary: at(60, chroma*0.75),
			Neutral: at(0, chroma/8), NeutralVariant: at(0, chroma/8+4),
		}
	case Content:
		k = map[Ramp]keyColor{
			Primary: at(0, chroma), Secondary: at(0, math.Max(chroma-32, chroma/2)), Tertiary: at(60, math.Max(chroma-32, chroma/2)),
			Neutral: at(0, chroma/8), NeutralVariant: at(0, chroma/8+4),
		}
	case Monochrome:
		k = map[Ramp]keyColor{
			Primary: at(0, 0), Secondary: at(0, 0), Tertiary: at(0, 0),
			Neutral: at(0, 0), NeutralVariant: at(0, 0),
		}
	case Rainbow:
		k = map[Ramp]keyColor{
			Primary: at(0, 48), Secondary: at(0, 16), Tertiary: at(60, 24),
			Neutral: at(0, 0), NeutralVariant: at(0, 0),
		}
	case FruitSalad:
		k = map[Ramp]keyColor{
			Primary: at(-50, 48), Secondary: at(-50, 36), Tertiary: at(0, 36),
			Neutral: at(0, 10), NeutralVariant: at(0, 16),
		}
	default:
		k = map[Ramp]keyColor{
			Primary: at(0, 36), Secondary: at(0, 16), Tertiary: at(60, 24),
			Neutral: at(0, 6), NeutralVariant: at(0, 8),
		}
	}

	k[Error] = errorKey
	return k
}

func rotate(hue, by float64) float64 {
	h := math.Mod(hue+by, 360)
	if h < 0 {
		h += 360
	}
	return h
}
