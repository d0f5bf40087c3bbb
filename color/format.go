package color

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Format is a CSS color output format.
type Format string

// Supported output formats.
const (
	OKLCH Format = "oklch"
	HEX   Format = "hex"
	HSL   Format = "hsl"
	RGB   Format = "rgb"
)

// ErrUnknownFormat is returned by ParseFormat for names outside the supported set.
var ErrUnknownFormat = errors.New("unknown color format")

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{OKLCH, HEX, HSL, RGB}
}

// FormatNames returns the names of every supported format.
func FormatNames() []string {
	return lo.Map(Formats(), func(f Format, _ int) string { return string(f) })
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if lo.Contains(FormatNames(), name) {
		return Format(name), nil
	}

	closest := lo.MinBy(FormatNames(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownFormat, name, closest)
}
