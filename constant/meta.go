// Package constant defines immutable application-level identifiers and output file names.
package constant

const (
	// Basetoken is the canonical application identifier used for filesystem paths and CLI branding.
	Basetoken = "basetoken"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the HTTP User-Agent sent when fetching Open Props sources.
	UserAgent = Basetoken + "/" + Version + " (+https://github.com/basetoken/basetoken)"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
