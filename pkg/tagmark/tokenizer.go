// tokenizer.go implements the scanner for <name:arg>...</name> tag markup.
package tagmark

import (
	"strings"
	"unicode"
)

// escapeMarker suppresses tag recognition for the following character.
const escapeMarker = '\\'

// Tokenize scans input left to right and returns the token stream. It is
// total: malformed tag syntax never fails, it degrades to literal text.
//
// Recognized forms:
//   - <name> or <name:arg1:arg2> - open tag
//   - </name> - close tag
//   - <name/> or <name:arg/> - self-closing
//   - \< and \\ - escaped literals
//
// Whitespace inside tag headers is insignificant; whitespace in text and
// arguments is preserved exactly.
func Tokenize(input string) []Token {
	var tokens []Token
	var text strings.Builder
	textStart := 0
	pos := 0

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{
				Kind:     TokenText,
				Text:     text.String(),
				Position: textStart,
				Raw:      input[textStart:pos],
			})
			text.Reset()
		}
		textStart = pos
	}

	for pos < len(input) {
		c := input[pos]

		if c == escapeMarker && pos+1 < len(input) {
			next := input[pos+1]
			if next == '<' || next == escapeMarker {
				if text.Len() == 0 {
					textStart = pos
				}
				text.WriteByte(next)
				pos += 2
				continue
			}
		}

		if c == '<' {
			if tok, end, ok := lexTag(input, pos); ok {
				flush()
				tokens = append(tokens, tok)
				pos = end
				textStart = pos
				continue
			}
		}

		if text.Len() == 0 {
			textStart = pos
		}
		text.WriteByte(c)
		pos++
	}
	flush()

	return tokens
}

// lexTag attempts to lex one tag starting at the '<' at pos. It reports
// ok=false when the input is not a well-formed tag, in which case the
// caller treats the '<' as literal text.
func lexTag(input string, pos int) (Token, int, bool) {
	start := pos
	i := pos + 1

	closing := false
	i = skipSpaces(input, i)
	if i < len(input) && input[i] == '/' {
		closing = true
		i++
	}
	i = skipSpaces(input, i)

	nameStart := i
	for i < len(input) && isTagNameChar(input[i]) {
		i++
	}
	if i == nameStart {
		return Token{}, pos, false
	}
	name := strings.ToLower(input[nameStart:i])
	i = skipSpaces(input, i)

	if closing {
		if i >= len(input) || input[i] != '>' {
			return Token{}, pos, false
		}
		i++
		return Token{
			Kind:     TokenTagClose,
			Name:     name,
			Position: start,
			Raw:      input[start:i],
		}, i, true
	}

	var args []string
	if i < len(input) && input[i] == ':' {
		var ok bool
		args, i, ok = lexArgs(input, i)
		if !ok {
			return Token{}, pos, false
		}
	}

	i = skipSpaces(input, i)
	selfClosing := false
	if i < len(input) && input[i] == '/' {
		selfClosing = true
		i = skipSpaces(input, i+1)
	}
	if i >= len(input) || input[i] != '>' {
		return Token{}, pos, false
	}
	i++

	return Token{
		Kind:        TokenTagOpen,
		Name:        name,
		Args:        args,
		SelfClosing: selfClosing,
		Position:    start,
		Raw:         input[start:i],
	}, i, true
}

// lexArgs lexes the ':'-delimited argument list, starting at the first
// ':' after the tag name. Arguments may escape delimiters (\: \> \\ \/)
// or be quoted with ' or " (handy for values containing bare ':').
// Returns the arguments, the position of the terminating '>' or '/', and
// whether lexing succeeded.
func lexArgs(input string, pos int) ([]string, int, bool) {
	var args []string
	i := pos

	for i < len(input) && input[i] == ':' {
		i++ // consume delimiter

		// Quoted argument
		if i < len(input) && (input[i] == '\'' || input[i] == '"') {
			quote := input[i]
			i++
			var val strings.Builder
			for {
				if i >= len(input) {
					return nil, pos, false
				}
				if input[i] == escapeMarker && i+1 < len(input) && input[i+1] == quote {
					val.WriteByte(quote)
					i += 2
					continue
				}
				if input[i] == quote {
					i++
					break
				}
				val.WriteByte(input[i])
				i++
			}
			args = append(args, val.String())
			continue
		}

		// Bare argument: runs to the next unescaped ':', '>' or '/>'
		var val strings.Builder
		for i < len(input) {
			c := input[i]
			if c == escapeMarker && i+1 < len(input) {
				next := input[i+1]
				if next == ':' || next == '>' || next == '/' || next == escapeMarker ||
					next == '\'' || next == '"' {
					val.WriteByte(next)
					i += 2
					continue
				}
			}
			if c == ':' || c == '>' {
				break
			}
			if c == '/' && i+1 < len(input) && input[i+1] == '>' {
				break
			}
			val.WriteByte(c)
			i++
		}
		args = append(args, val.String())
	}

	if i >= len(input) {
		return nil, pos, false
	}
	return args, i, true
}

func skipSpaces(input string, i int) int {
	for i < len(input) && unicode.IsSpace(rune(input[i])) {
		i++
	}
	return i
}

// isTagNameChar reports whether c is valid in a tag or placeholder name.
// '#' admits hex color tags like <#ff5500>.
func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '#' || c == '.'
}
