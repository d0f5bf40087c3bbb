package constant

// Output file names - these are fixed relative to the configured output directory.
const (
	IndexFile    = "index.css"
	SemanticFile = "semantic.css"
	AppFile      = "app.css"
	PaletteFile  = "palettes.css"
	CSSExt       = ".css"
)

// SemanticLayer is the CSS cascade layer wrapping the semantic tier.
const SemanticLayer = "ui.theme"
