// transform.go defines the pluggable transformation contract and registry.
package tagmark

import (
	"strings"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

// Transformation is one parsed tag invocation, bound to its arguments.
// Apply builds the tree fragment for the tag's collected children; for
// self-closing tags children is nil.
type Transformation interface {
	Apply(children []*text.Node) *text.Node
}

// Serializable is implemented by transformations that can be written back
// as canonical markup. Tag returns the canonical tag name and arguments.
// Transformations without it are skipped (or rejected in strict mode)
// during serialization.
type Serializable interface {
	Transformation
	Tag() (name string, args []string)
}

// Factory creates a transformation for one tag invocation. It validates
// the raw argument list; an error aborts the parse as an invalid-argument
// failure regardless of strictness.
type Factory func(args []string) (Transformation, error)

// Fallback resolves tag names that have no exact registration, e.g. bare
// color names or "#rrggbb" literals standing in for <color:...>.
type Fallback func(name string) (Factory, bool)

// Registry maps tag names to factories. Registration happens only while
// the engine is being configured; a built engine holds a frozen copy that
// is safe for concurrent lookup. Lookup is case-insensitive exact match
// and the last registration of a name wins.
type Registry struct {
	factories map[string]Factory
	fallbacks []Fallback
	// vocabulary holds every name the default tag set knows, including
	// names excluded from the active set. A known-but-inactive tag
	// degrades to literal text instead of erroring.
	vocabulary map[string]bool
	// knownFallbacks mirror fallbacks for vocabulary checks, so color
	// names stay recognized (as inactive) when the color tag is excluded.
	knownFallbacks []Fallback
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories:  make(map[string]Factory),
		vocabulary: make(map[string]bool),
	}
}

// Register adds a factory under the given name, replacing any earlier
// registration of that name.
func (r *Registry) Register(name string, f Factory) {
	name = strings.ToLower(name)
	r.factories[name] = f
	r.vocabulary[name] = true
}

// RegisterFallback adds a name resolver consulted after exact lookups.
func (r *Registry) RegisterFallback(f Fallback) {
	r.fallbacks = append(r.fallbacks, f)
	r.knownFallbacks = append(r.knownFallbacks, f)
}

// Lookup returns the factory for a tag name, or ok=false if the name is
// not in the active set.
func (r *Registry) Lookup(name string) (Factory, bool) {
	name = strings.ToLower(name)
	if f, ok := r.factories[name]; ok {
		return f, true
	}
	for _, fb := range r.fallbacks {
		if f, ok := fb(name); ok {
			return f, true
		}
	}
	return nil, false
}

// IsActive reports whether the name dispatches to a transformation.
func (r *Registry) IsActive(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Knows reports whether the name belongs to the known vocabulary, active
// or not.
func (r *Registry) Knows(name string) bool {
	name = strings.ToLower(name)
	if r.vocabulary[name] {
		return true
	}
	for _, fb := range r.knownFallbacks {
		if _, ok := fb(name); ok {
			return true
		}
	}
	return false
}

// clone returns an independent copy; the engine freezes one at build time.
func (r *Registry) clone() *Registry {
	out := NewRegistry()
	for k, v := range r.factories {
		out.factories[k] = v
	}
	for k := range r.vocabulary {
		out.vocabulary[k] = true
	}
	out.fallbacks = append(out.fallbacks, r.fallbacks...)
	out.knownFallbacks = append(out.knownFallbacks, r.knownFallbacks...)
	return out
}

// restrict returns a copy whose active set contains only the given names.
// The full vocabulary is retained so excluded names still degrade to
// literal text.
func (r *Registry) restrict(names []string) *Registry {
	out := NewRegistry()
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[strings.ToLower(n)] = true
	}
	for k, v := range r.factories {
		if keep[k] {
			out.factories[k] = v
		}
	}
	for k := range r.vocabulary {
		out.vocabulary[k] = true
	}
	// Color fallbacks ride along with the color tag.
	if keep["color"] {
		out.fallbacks = append(out.fallbacks, r.fallbacks...)
	}
	out.knownFallbacks = append(out.knownFallbacks, r.knownFallbacks...)
	return out
}
