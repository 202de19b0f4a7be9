// errors.go defines the typed parse errors reported to callers.
package tagmark

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	ErrUnknownPlaceholder ErrorKind = iota
	ErrUnclosedTag
	ErrMismatchedCloseTag
	ErrInvalidArgument
	ErrMaxNestingExceeded
)

// String returns the kind's canonical name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownPlaceholder:
		return "unknown placeholder"
	case ErrUnclosedTag:
		return "unclosed tag"
	case ErrMismatchedCloseTag:
		return "mismatched close tag"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrMaxNestingExceeded:
		return "max nesting exceeded"
	}
	return "unknown error"
}

// ParseError reports a parse failure with the offending byte offset.
// All failures are synchronous; the parser never retries internally.
type ParseError struct {
	Kind   ErrorKind
	Offset int    // byte offset in the original input
	Tag    string // tag or placeholder name involved, if any
	Reason string // extra detail, e.g. why an argument was rejected
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	if e.Tag != "" {
		msg += fmt.Sprintf(": <%s>", e.Tag)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func parseErr(kind ErrorKind, offset int, tag, reason string) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Tag: tag, Reason: reason}
}
