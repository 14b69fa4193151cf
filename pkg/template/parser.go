// Package template implements the minimal `{{ key }}` substitution syntax.
package template

import "strings"

// Kind discriminates the two segment variants.
type Kind int

const (
	// Literal text to emit verbatim.
	Literal Kind = iota
	// Variable name (contents between `{{` and `}}`, trimmed).
	Variable
)

// Segment is a parsed run of a template: literal text or a variable name.
type Segment struct {
	Kind Kind
	Text string
}

// Parse splits a template string into a sequence of segments.
//
// Malformed markup never errors: an unclosed `{{` or an empty reference
// degrades to literal text. Segment text is sliced from the input.
func Parse(input string) []Segment {
	var segments []Segment
	rest := input

	for len(rest) > 0 {
		open := strings.Index(rest, "{{")
		if open < 0 {
			// No more tokens, everything remaining is a literal.
			segments = append(segments, Segment{Kind: Literal, Text: rest})
			break
		}

		if open > 0 {
			segments = append(segments, Segment{Kind: Literal, Text: rest[:open]})
		}
		afterOpen := rest[open+2:]

		end := strings.Index(afterOpen, "}}")
		if end < 0 {
			// Unclosed `{{`, treat the rest as literal.
			segments = append(segments, Segment{Kind: Literal, Text: rest[open:]})
			break
		}

		key := strings.TrimSpace(afterOpen[:end])
		if key == "" {
			// `{{ }}` has no name, emit the whole span as literal.
			segments = append(segments, Segment{Kind: Literal, Text: rest[open : open+2+end+2]})
		} else {
			segments = append(segments, Segment{Kind: Variable, Text: key})
		}
		rest = afterOpen[end+2:]
	}

	return segments
}
