// Package tagmark parses tag markup like <bold>text</bold> and
// <insert:payload>text</insert> into styled-text trees, and serializes
// trees back into canonical markup. The tag vocabulary is pluggable:
// handlers are registered while building an engine and fixed afterwards.
package tagmark

// DefaultMaxDepth bounds tag nesting (and placeholder re-entry) so
// adversarial input fails with a deterministic error instead of
// exhausting the stack.
const DefaultMaxDepth = 128

// Engine is an immutable parsing and serialization instance. All
// per-call state lives in the call, so one engine may serve unlimited
// concurrent Parse and Serialize calls.
type Engine struct {
	registry      *Registry
	strict        bool
	markdown      bool
	flavor        Flavor
	maxDepth      int
	unknownAsText bool
}

// New returns the default engine: the standard tag set, lenient error
// handling, no markdown preprocessing.
func New() *Engine {
	return NewBuilder().Build()
}

// Markdown returns an engine with github-flavor markdown preprocessing
// enabled on top of the defaults.
func Markdown() *Engine {
	return NewBuilder().Markdown(FlavorGithub).Build()
}

// EscapeTokens escapes the input so it parses as literal text. Present on
// the engine for interface symmetry; the transform has no configuration.
func (e *Engine) EscapeTokens(input string) string {
	return EscapeTokens(input)
}

// StripTokens removes all tags from the input.
func (e *Engine) StripTokens(input string) string {
	return StripTokens(input)
}

// Strict reports whether the engine fails hard on recoverable input.
func (e *Engine) Strict() bool {
	return e.strict
}

// Registry exposes the engine's read-only tag registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Builder assembles an Engine. The zero value is not usable; start from
// NewBuilder. Build may be called once per builder; the engine holds a
// frozen copy of the registry, so later builder mutations do not leak in.
type Builder struct {
	registry      *Registry
	restrictTo    []string
	strict        bool
	markdown      bool
	flavor        Flavor
	maxDepth      int
	unknownAsText bool
}

// NewBuilder returns a builder preloaded with the standard tag set.
func NewBuilder() *Builder {
	return &Builder{
		registry: StandardRegistry(),
		maxDepth: DefaultMaxDepth,
	}
}

// Markdown enables markdown preprocessing with the given flavor.
func (b *Builder) Markdown(f Flavor) *Builder {
	b.markdown = true
	b.flavor = f
	return b
}

// Strict makes unclosed and mismatched tags hard failures instead of
// degrading to literal text.
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// MaxDepth overrides the nesting bound.
func (b *Builder) MaxDepth(n int) *Builder {
	if n > 0 {
		b.maxDepth = n
	}
	return b
}

// UnknownTagsAsText keeps names that resolve to neither a placeholder nor
// a tag as literal text instead of failing with an unknown-placeholder
// error.
func (b *Builder) UnknownTagsAsText() *Builder {
	b.unknownAsText = true
	return b
}

// RemoveDefaultTransformations drops the standard tag set, leaving only
// what is registered afterwards. Former standard names are then fully
// unknown, not merely inactive.
func (b *Builder) RemoveDefaultTransformations() *Builder {
	b.registry = NewRegistry()
	b.restrictTo = nil
	return b
}

// Transformations restricts the active set to the named tags. Names
// outside the set stay in the vocabulary and parse as literal text.
func (b *Builder) Transformations(names ...string) *Builder {
	b.restrictTo = names
	return b
}

// Register adds a custom tag. Registering an existing name overwrites it.
func (b *Builder) Register(name string, f Factory) *Builder {
	b.registry.Register(name, f)
	return b
}

// Build assembles the immutable engine.
func (b *Builder) Build() *Engine {
	reg := b.registry.clone()
	if b.restrictTo != nil {
		reg = b.registry.restrict(b.restrictTo)
	}
	return &Engine{
		registry:      reg,
		strict:        b.strict,
		markdown:      b.markdown,
		flavor:        b.flavor,
		maxDepth:      b.maxDepth,
		unknownAsText: b.unknownAsText,
	}
}
