// Package color normalizes hex colors and renders them in the CSS color formats supported by the generator.
//
// The canonical representation of a color is a normalized "#RRGGBB" string;
// every other representation is derived on demand and never stored.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by every function of this package when the input is not a 3- or 6-digit hex token.
var ErrInvalidColor = errors.New("invalid hex color")

// achromatic is the OKLCH chroma under which a color is rendered without hue.
const achromatic = 0.0005

var hexPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func invalid(input string) error {
	return fmt.Errorf("%w: %q", ErrInvalidColor, input)
}

// NormalizeHex returns the input as "#" followed by six uppercase hex digits.
// Both "#" prefixed and bare input are accepted, as is the 3-digit shorthand.
func NormalizeHex(input string) (string, error) {
	digits := strings.TrimPrefix(input, "#")
	if !hexPattern.MatchString(digits) {
		return "", invalid(input)
	}

	if len(digits) == 3 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	return "#" + strings.ToUpper(digits), nil
}

// parse converts hex input into a go-colorful color in sRGB space.
func parse(input string) (colorful.Color, error) {
	hex, err := NormalizeHex(input)
	if err != nil {
		return colorful.Color{}, err
	}

	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return colorful.Color{}, invalid(input)
	}

	return colorful.Color{
		R: float64(v>>16&0xFF) / 255.0,
		G: float64(v>>8&0xFF) / 255.0,
		B: float64(v&0xFF) / 255.0,
	}, nil
}

// oklch returns lightness clamped to [0, 1], chroma and hue in [0, 360).
func oklch(c colorful.Color) (l, ch, h float64) {
	l, ch, h = c.OkLch()
	l = math.Min(math.Max(l, 0), 1)
	if ch < achromatic {
		return l, 0, 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return l, ch, h
}

// ToOklch renders a color as "oklch(L C H)" with two decimals of lightness,
// three decimals of chroma and an integer hue. Achromatic colors render as
// "oklch(L 0 0)".
func ToOklch(hex string) (string, error) {
	c, err := parse(hex)
	if err != nil {
		return "", err
	}

	l, ch, h := oklch(c)
	if ch == 0 {
		return fmt.Sprintf("oklch(%.2f 0 0)", l), nil
	}

	hue := int(math.Round(h)) % 360
	return fmt.Sprintf("oklch(%.2f %.3f %d)", l, ch, hue), nil
}

// ToHsl renders a color as "hsl(H S% L%)".
func ToHsl(hex string) (string, error) {
	c, err := parse(hex)
	if err != nil {
		return "", err
	}

	h, s, l := c.Hsl()
	if s == 0 || math.IsNaN(h) {
		h = 0
	}

	return fmt.Sprintf(
		"hsl(%s %s%% %s%%)",
		trimFloat(math.Mod(h, 360), 1),
		trimFloat(s*100, 1),
		trimFloat(l*100, 1),
	), nil
}

// ToRgb renders a color in the legacy "rgb(R, G, B)" form.
func ToRgb(hex string) (string, error) {
	c, err := parse(hex)
	if err != nil {
		return "", err
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

// Convert renders a color in the requested format. The hex format is the
// normalized form of the input.
func Convert(hex string, format Format) (string, error) {
	switch format {
	case OKLCH:
		return ToOklch(hex)
	case HSL:
		return ToHsl(hex)
	case RGB:
		return ToRgb(hex)
	default:
		return NormalizeHex(hex)
	}
}

// Hue returns the OKLCH hue angle of a color in degrees, or 0 when the color is achromatic.
func Hue(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}

	_, _, h := oklch(c)
	return h, nil
}

// trimFloat formats f with at most prec decimals, dropping trailing zeros.
func trimFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
