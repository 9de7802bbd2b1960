package importer

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedLine is one candidate item recovered from free text.
type ParsedLine struct {
	Title        string
	IsCrossedOut bool
	Quantity     int
}

// bulletMarkers are the leading markers stripped from a line. At most one is
// removed, and only when none of the other prefix forms matched.
var bulletMarkers = []string{"•", "-", "*", "✓", "✔", "☐", "☑", "▪", "▸", "→"}

var (
	numberedPrefixRe = regexp.MustCompile(`^\d+[.):]\s*`)
	checkboxRe       = regexp.MustCompile(`^\[([ xX✓]?)\]\s*`)
	quantitySuffixRe = regexp.MustCompile(`\s*\(×(\d+)\)\s*$`)
)

// ParseText converts multi-line free text into candidate items, one per
// non-blank line, in source order. Titles keep their Unicode content
// verbatim; only whitespace and recognized markers are stripped.
func ParseText(input string) []ParsedLine {
	var out []ParsedLine

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parsed := ParsedLine{Quantity: 1}

		// Prefix forms are mutually exclusive: bullet, numbered, or checkbox.
		if rest, ok := stripBullet(line); ok {
			line = rest
		} else if loc := numberedPrefixRe.FindString(line); loc != "" {
			line = line[len(loc):]
		} else if m := checkboxRe.FindStringSubmatch(line); m != nil {
			line = line[len(m[0]):]
			switch m[1] {
			case "x", "X", "✓":
				parsed.IsCrossedOut = true
			}
		}

		// Trailing quantity annotation, e.g. "(×2)".
		if m := quantitySuffixRe.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				parsed.Quantity = n
			}
			line = line[:len(line)-len(m[0])]
		}

		parsed.Title = strings.TrimSpace(line)
		out = append(out, parsed)
	}

	return out
}

// stripBullet removes exactly one leading bullet marker.
func stripBullet(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimLeft(line[len(marker):], " \t"), true
		}
	}
	return line, false
}
