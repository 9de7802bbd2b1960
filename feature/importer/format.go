package importer

import "bytes"

// Format classifies raw import input.
type Format string

const (
	// FormatStructured is the versioned JSON export schema.
	FormatStructured Format = "structured"
	// FormatFreeText is loosely formatted plain text, one item per line.
	FormatFreeText Format = "free_text"
)

// DetectFormat classifies raw input. It never fails: anything that looks like
// a JSON object is routed to the schema codec, even when malformed or missing
// the version field, so the codec's decode error reaches the caller with
// field context instead of the payload being mangled by the text parser.
func DetectFormat(raw []byte) Format {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatStructured
	}
	return FormatFreeText
}
