// Package parser extracts raw rows from uploaded bulk files. CSV uses a
// hand-rolled quote-aware splitter because supplier exports mix quoting
// styles that encoding/csv's strict mode rejects: quotes may open mid-field
// and unquoted fields are never considered malformed.
package parser

import "strings"

// SplitLines splits raw CSV text into lines on any newline convention,
// dropping a blank trailing line.
func SplitLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}

// ParseLine splits one CSV line into trimmed fields. A field may be wrapped
// in double quotes to contain literal commas; two consecutive double quotes
// inside a quoted field stand for one literal quote.
func ParseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inQuote {
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuote = false
				}
			} else {
				cur.WriteRune(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuote = true
		case ',':
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
