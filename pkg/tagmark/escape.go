// escape.go implements the total text transforms for untrusted input.
package tagmark

import "strings"

// EscapeTokens escapes every character that could begin a tag or
// terminate an escape, so the result parses back as pure literal text
// equal to the input. It never fails.
func EscapeTokens(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '<' || c == escapeMarker {
			sb.WriteByte(escapeMarker)
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// StripTokens removes all tags from the input and returns only the
// literal text, with escape markers re-applied so the result is itself
// tag-free markup. Re-escaping makes the transform idempotent: text that
// happened to contain literal '<' cannot recombine into new tags on a
// second pass. It never fails; malformed tag syntax passes through as
// literal text.
func StripTokens(input string) string {
	var sb strings.Builder
	for _, tok := range Tokenize(input) {
		if tok.Kind == TokenText {
			sb.WriteString(tok.Text)
		}
	}
	return EscapeTokens(sb.String())
}
