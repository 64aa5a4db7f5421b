// Package processor extracts translatable text from documents and writes
// translations back without disturbing markup or layout.
package processor

import (
	"strings"

	"github.com/ZaguanLabs/dialect"
)

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = dialect.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = dialect.TextNode

// preserveWhitespace keeps the leading and trailing white space of original
// around translated.
func preserveWhitespace(original, translated string) string {
	body := strings.TrimSpace(original)
	if body == "" {
		return original
	}
	start := strings.Index(original, body)
	return original[:start] + translated + original[start+len(body):]
}
