// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Color Output - these keys select how generated colors are rendered.
const (
	Format = "format"
)

// Variable Prefixes - these keys define the namespace of every emitted CSS custom property.
const (
	PrefixesPrimitives = "prefixes.primitives"
	PrefixesPalette    = "prefixes.palette"
	PrefixesSemantic   = "prefixes.semantic"
)

// Output Layout - these keys define where the generated tiers are written.
const (
	OutputDir             = "output.dir"
	OutputPaletteSubdir   = "output.palette_subdir"
	OutputOpenPropsSubdir = "output.openprops_subdir"
)

// Open Props Sources - these keys configure retrieval of third-party primitives.
const (
	OpenPropsBaseURL    = "openprops.base_url"
	OpenPropsFiles      = "openprops.files"
	OpenPropsCacheHours = "openprops.cache_hours"
)

// Generation Defaults - these keys apply when the corresponding flag is omitted.
const (
	GenerateScheme = "generate.scheme"
)

// Semantic is the root of the per-category semantic tables.
const Semantic = "semantic"

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
