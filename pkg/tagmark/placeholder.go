// placeholder.go implements named and positional placeholder binding.
package tagmark

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

// Replacement is the value bound to a placeholder key: either a literal
// string, which is re-tokenized as markup at the point of substitution,
// or a pre-built tree fragment, which is spliced in opaquely and never
// re-parsed. The distinction matters for untrusted values: fragments are
// injection-safe, literals are not.
type Replacement struct {
	literal  string
	fragment *text.Node
}

// Literal binds a string replacement; it may itself contain tags and
// escapes and is parsed where it is substituted.
func Literal(s string) Replacement {
	return Replacement{literal: s}
}

// Fragment binds an already-built tree; it is inserted verbatim.
func Fragment(n *text.Node) Replacement {
	return Replacement{fragment: n}
}

// placeholderTable is the per-parse binding set consulted before tag
// dispatch. Resolution by name always wins over a registered tag of the
// same name.
type placeholderTable struct {
	named      map[string]Replacement
	positional []string
	bound      bool // a named binding style was already chosen
}

func (t *placeholderTable) resolve(key string) (Replacement, bool) {
	r, ok := t.named[key]
	return r, ok
}

// ParseOption configures a single Parse call.
type ParseOption func(*placeholderTable) error

func (t *placeholderTable) bindNamed(named map[string]Replacement) error {
	if t.bound {
		return fmt.Errorf("placeholder bindings already set; binding styles are mutually exclusive per parse")
	}
	t.named = named
	t.bound = true
	return nil
}

// Placeholders binds flat key to string pairs. Values are parsed as
// markup where they are substituted.
func Placeholders(pairs map[string]string) ParseOption {
	return func(t *placeholderTable) error {
		named := make(map[string]Replacement, len(pairs))
		for k, v := range pairs {
			named[k] = Literal(v)
		}
		return t.bindNamed(named)
	}
}

// Stringified binds keys to arbitrary values rendered via fmt.Stringer
// when implemented, fmt formatting otherwise.
func Stringified(pairs map[string]any) ParseOption {
	return func(t *placeholderTable) error {
		named := make(map[string]Replacement, len(pairs))
		for k, v := range pairs {
			if s, ok := v.(fmt.Stringer); ok {
				named[k] = Literal(s.String())
				continue
			}
			named[k] = Literal(fmt.Sprintf("%v", v))
		}
		return t.bindNamed(named)
	}
}

// Fragments binds keys to pre-built tree fragments, inserted without
// re-parsing.
func Fragments(pairs map[string]*text.Node) ParseOption {
	return func(t *placeholderTable) error {
		named := make(map[string]Replacement, len(pairs))
		for k, v := range pairs {
			named[k] = Fragment(v)
		}
		return t.bindNamed(named)
	}
}

// Positional binds values consumed by {0}-style markers in argument
// order. It may be combined with one named binding style.
func Positional(values ...string) ParseOption {
	return func(t *placeholderTable) error {
		t.positional = values
		return nil
	}
}

var positionalMarker = regexp.MustCompile(`\{(\d+)\}`)

// substitutePositional replaces {N} markers with their bound values. The
// result is tokenized afterwards, so values are treated as markup, same
// as named literal replacements. Marker syntax is only recognized when
// the caller bound positional values; without a binding, {N} is ordinary
// text. A marker beyond the bound values is an unknown-placeholder error
// at the marker's byte offset.
func substitutePositional(input string, values []string) (string, error) {
	if len(values) == 0 {
		return input, nil
	}
	matches := positionalMarker.FindAllStringSubmatchIndex(input, -1)
	if len(matches) == 0 {
		return input, nil
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		idx, err := strconv.Atoi(input[m[2]:m[3]])
		if err != nil || idx >= len(values) {
			return "", parseErr(ErrUnknownPlaceholder, m[0], input[m[0]:m[1]], "no positional value bound")
		}
		sb.WriteString(input[last:m[0]])
		sb.WriteString(values[idx])
		last = m[1]
	}
	sb.WriteString(input[last:])
	return sb.String(), nil
}
