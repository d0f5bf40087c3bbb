package semantic

import (
	"cmp"
	"slices"

	"github.com/basetoken/basetoken/config"
	"github.com/samber/lo"
)

type rank map[string]int

var (
	tshirt = rank{"xxs": 1, "xs": 2, "sm": 3, "base": 4, "md": 5, "lg": 6, "xl": 7, "2xl": 8, "3xl": 9, "4xl": 10, "5xl": 11}
	weight = rank{"thin": 1, "light": 2, "normal": 3, "medium": 4, "semibold": 5, "bold": 6, "extrabold": 7, "black": 8}
	leads  = rank{"none": 1, "tight": 2, "snug": 3, "normal": 4, "relaxed": 5, "loose": 6}
	layers = rank{"base": 1, "raised": 2, "dropdown": 3, "sticky": 4, "modal": 5}
)

// ranks selects the rank table of a category; nil means lexicographic.
func ranks(category config.Category) rank {
	switch category {
	case config.Space, config.SpaceFluid, config.TypeSize, config.Radius, config.Shadow,
		config.Border, config.Duration, config.Breakpoint, config.ContentWidth:
		return tshirt
	case config.Weight:
		return weight
	case config.Leading:
		return leads
	case config.Layer:
		return layers
	default:
		return nil
	}
}

// SortKeys orders the role keys of a category. Ranked keys come first in
// rank order, the rest follow lexicographically.
func SortKeys(group map[string]string, category config.Category) []string {
	keys := lo.Keys(group)
	table := ranks(category)

	slices.SortFunc(keys, func(a, b string) int {
		ra, okA := table[a]
		rb, okB := table[b]

		switch {
		case okA && okB:
			return cmp.Compare(ra, rb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	})

	return keys
}
