package config

import "github.com/samber/lo"

// Category names a semantic token category.
type Category string

// The fixed set of semantic categories.
const (
	Space        Category = "space"
	SpaceFluid   Category = "space-fluid"
	TypeSize     Category = "type-size"
	Leading      Category = "leading"
	Weight       Category = "weight"
	Font         Category = "font"
	Radius       Category = "radius"
	Border       Category = "border"
	Shadow       Category = "shadow"
	Layer        Category = "layer"
	Ease         Category = "ease"
	Duration     Category = "duration"
	ContentWidth Category = "content-width"
	Breakpoint   Category = "breakpoint"
)

// CategoryInfo describes how a category is rendered.
type CategoryInfo struct {
	Key         Category
	DisplayName string
}

// Categories lists every semantic category in output order.
var Categories = []CategoryInfo{
	{Space, "Spacing Scale"},
	{SpaceFluid, "Fluid Spacing"},
	{TypeSize, "Typography Sizes"},
	{Leading, "Line Heights"},
	{Weight, "Font Weights"},
	{Font, "Font Families"},
	{Radius, "Border Radii"},
	{Border, "Border Widths"},
	{Shadow, "Shadows"},
	{Layer, "Z-Index Layers"},
	{Ease, "Easings"},
	{Duration, "Durations"},
	{ContentWidth, "Content Widths"},
	{Breakpoint, "Breakpoints"},
}

// IsCategory reports whether name is one of the fixed categories.
func IsCategory(name string) bool {
	return lo.ContainsBy(Categories, func(c CategoryInfo) bool {
		return string(c.Key) == name
	})
}

// Semantic maps each category to its role table (role key -> raw value).
type Semantic map[Category]map[string]string

// Clone returns a deep copy of s.
func (s Semantic) Clone() Semantic {
	out := make(Semantic, len(s))
	for cat, roles := range s {
		out[cat] = lo.Assign(roles)
	}
	return out
}

func defaultSemantic() Semantic {
	return Semantic{
		Space: {
			"xs":  "size-2",
			"sm":  "size-3",
			"md":  "size-4",
			"lg":  "size-5",
			"xl":  "size-6",
			"2xl": "size-7",
		},
		SpaceFluid: {
			"xs":  "size-fluid-1",
			"sm":  "size-fluid-2",
			"md":  "size-fluid-3",
			"lg":  "size-fluid-4",
			"xl":  "size-fluid-5",
			"2xl": "size-fluid-6",
		},
		TypeSize: {
			"xs":   "font-size-0",
			"sm":   "font-size-1",
			"base": "font-size-2",
			"md":   "font-size-3",
			"lg":   "font-size-4",
			"xl":   "font-size-5",
			"2xl":  "font-size-6",
			"3xl":  "font-size-7",
			"4xl":  "font-size-8",
		},
		Leading: {
			"none":    `"1"`,
			"tight":   "font-lineheight-1",
			"snug":    "font-lineheight-2",
			"normal":  "font-lineheight-3",
			"relaxed": "font-lineheight-4",
			"loose":   "font-lineheight-5",
		},
		Weight: {
			"light":    "font-weight-3",
			"normal":   "font-weight-4",
			"medium":   "font-weight-5",
			"semibold": "font-weight-6",
			"bold":     "font-weight-7",
		},
		Font: {
			"body":    "font-sans",
			"heading": "font-sans",
			"code":    "font-mono",
		},
		Radius: {
			"none": "0",
			"sm":   "radius-2",
			"md":   "radius-3",
			"lg":   "radius-4",
			"full": "radius-round",
		},
		Border: {
			"none": "0",
			"sm":   "border-size-1",
			"md":   "border-size-2",
			"lg":   "border-size-3",
		},
		Shadow: {
			"sm": "shadow-2",
			"md": "shadow-3",
			"lg": "shadow-4",
			"xl": "shadow-5",
		},
		Layer: {
			"base":     `"1"`,
			"raised":   `"10"`,
			"dropdown": `"100"`,
			"sticky":   `"500"`,
			"modal":    `"1000"`,
		},
		Ease: {
			"linear":  "ease-1",
			"default": "ease-2",
			"in":      "ease-in-2",
			"out":     "ease-out-2",
			"in-out":  "ease-in-out-2",
		},
		Duration: {
			"instant": "0ms",
			"fast":    "150ms",
			"normal":  "300ms",
			"slow":    "500ms",
		},
		ContentWidth: {
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
		Breakpoint: {
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
	}
}
