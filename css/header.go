// Package css builds the shared pieces of every generated stylesheet:
// the file header, the index that imports each tier and the app scaffold.
package css

import (
	"strings"
	"time"

	"github.com/samber/mo"
)

// now is replaced in tests to pin the header timestamp.
var now = time.Now

const timestampLayout = "2006-01-02 15:04:05"

// Header renders the block comment that opens a generated file.
// Every line of a multi-line description is prefixed with " * ".
func Header(title string, source, description mo.Option[string]) string {
	var b strings.Builder

	b.WriteString("/**\n")
	line(&b, title)
	line(&b, "Generated: "+now().Format(timestampLayout))
	line(&b, "DO NOT EDIT - This file is auto-generated")

	if src, ok := source.Get(); ok {
		line(&b, "")
		line(&b, "Source: "+src)
	}

	if desc, ok := description.Get(); ok {
		line(&b, "")
		for _, l := range strings.Split(desc, "\n") {
			line(&b, l)
		}
	}

	b.WriteString(" */\n")
	return b.String()
}

func line(b *strings.Builder, text string) {
	b.WriteString(strings.TrimRight(" * "+text, " "))
	b.WriteByte('\n')
}
