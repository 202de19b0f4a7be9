// tokens.go defines the token stream produced by the tag tokenizer.
package tagmark

// TokenKind discriminates the token variants.
type TokenKind int

const (
	TokenText     TokenKind = iota // run of literal characters (escapes already applied)
	TokenTagOpen                   // <name>, <name:arg>, <name/> (self-closing)
	TokenTagClose                  // </name>
)

// String returns the kind's display name.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenTagOpen:
		return "open"
	case TokenTagClose:
		return "close"
	}
	return "unknown"
}

// Token is one lexed unit of tag markup. Tokens are immutable once
// produced and carry their byte offset for error reporting.
type Token struct {
	Kind TokenKind

	// Name is the lowercased tag name, set for TagOpen and TagClose.
	Name string
	// Args is the ordered argument list from <name:arg1:arg2>, with
	// argument-level escapes (\: \> \\) already applied.
	Args []string
	// SelfClosing is set for <name/> and <name:arg/> forms.
	SelfClosing bool

	// Text is the unescaped literal content, set for Text tokens.
	Text string

	// Position is the byte offset of the token in the original input.
	Position int
	// Raw is the exact source text the token was lexed from, used to
	// reproduce inactive or unmatched tags verbatim.
	Raw string
}
