package tagmark

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

func requireParseError(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	assert.Equal(t, kind, pe.Kind)
	return pe
}

func TestParse_PlainText(t *testing.T) {
	tree, err := New().Parse("just text")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "just text", tree.Children[0].Text)
}

func TestParse_Insertion(t *testing.T) {
	tree, err := New().Parse("Click <insert:test>this</insert> to insert!")
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.NewText("Click "),
		text.New(text.Style{Insertion: "test"}, text.NewText("this")),
		text.NewText(" to insert!"),
	}}
	assert.True(t, text.Equal(want, tree), "got %+v", tree)
}

func TestParse_NestedTags(t *testing.T) {
	tree, err := New().Parse("<bold><italic>hi</italic></bold>")
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.New(text.Style{Bold: true},
			text.New(text.Style{Italic: true}, text.NewText("hi"))),
	}}
	assert.True(t, text.Equal(want, tree))
}

func TestParse_NestedIdenticalTags(t *testing.T) {
	// Identical nested names are independent frames, never merged.
	tree, err := New().Parse("<bold>a<bold>b</bold>c</bold>")
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.New(text.Style{Bold: true},
			text.NewText("a"),
			text.New(text.Style{Bold: true}, text.NewText("b")),
			text.NewText("c")),
	}}
	assert.True(t, text.Equal(want, tree))
}

func TestParse_ColorForms(t *testing.T) {
	e := New()
	want := &text.Node{Children: []*text.Node{
		text.New(text.Style{Color: "red"}, text.NewText("x")),
	}}

	for _, input := range []string{"<color:red>x</color>", "<red>x</red>", "<c:RED>x</c>"} {
		tree, err := e.Parse(input)
		require.NoError(t, err, input)
		assert.True(t, text.Equal(want, tree), input)
	}

	tree, err := e.Parse("<#ff5500>x</#ff5500>")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "#ff5500", tree.Children[0].Style.Color)
}

func TestParse_SelfClosing(t *testing.T) {
	tree, err := New().Parse("a<br/>b")
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.NewText("a"),
		text.NewText("\n"),
		text.NewText("b"),
	}}
	assert.True(t, text.Equal(want, tree))
}

func TestParse_UnclosedLenient(t *testing.T) {
	// Scenario: "<bold>hi" closes implicitly at end of input.
	got, err := New().Parse("<bold>hi")
	require.NoError(t, err)

	want, err := New().Parse("<bold>hi</bold>")
	require.NoError(t, err)
	assert.True(t, text.Equal(want, got))
}

func TestParse_UnclosedStrict(t *testing.T) {
	e := NewBuilder().Strict().Build()
	_, err := e.Parse("ab <bold>hi")
	pe := requireParseError(t, err, ErrUnclosedTag)
	assert.Equal(t, 3, pe.Offset)
	assert.Equal(t, "bold", pe.Tag)
}

func TestParse_EscapedTags(t *testing.T) {
	tree, err := New().Parse(`\<bold>not bold\</bold>`)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "<bold>not bold</bold>", tree.Children[0].Text)
	assert.True(t, tree.Children[0].Style.IsZero())
}

func TestParse_MismatchedClose(t *testing.T) {
	// Lenient: stray close tags stay as literal text.
	tree, err := New().Parse("a</bold>b")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "a</bold>b", tree.Children[0].Text)

	// Strict: hard failure with the close tag's offset.
	_, err = NewBuilder().Strict().Build().Parse("a</bold>b")
	pe := requireParseError(t, err, ErrMismatchedCloseTag)
	assert.Equal(t, 1, pe.Offset)
}

func TestParse_InterleavedCloseImplicitlyCloses(t *testing.T) {
	tree, err := New().Parse("<bold><italic>x</bold>y")
	require.NoError(t, err)

	// </bold> closes the italic frame implicitly; y is outside both.
	want := &text.Node{Children: []*text.Node{
		text.New(text.Style{Bold: true},
			text.New(text.Style{Italic: true}, text.NewText("x"))),
		text.NewText("y"),
	}}
	assert.True(t, text.Equal(want, tree))

	_, err = NewBuilder().Strict().Build().Parse("<bold><italic>x</bold>y")
	requireParseError(t, err, ErrMismatchedCloseTag)
}

func TestParse_UnknownTagErrors(t *testing.T) {
	_, err := New().Parse("<name>")
	pe := requireParseError(t, err, ErrUnknownPlaceholder)
	assert.Equal(t, "name", pe.Tag)
}

func TestParse_UnknownTagAsTextWhenEnabled(t *testing.T) {
	e := NewBuilder().UnknownTagsAsText().Build()
	tree, err := e.Parse("<name:args>x")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "<name:args>x", tree.Children[0].Text)
}

func TestParse_InactiveTagIsLiteralText(t *testing.T) {
	// bold stays in the vocabulary but outside the active set, so its
	// markup is preserved verbatim rather than erroring.
	e := NewBuilder().Transformations("italic").Build()
	tree, err := e.Parse("<bold>x</bold> <italic>y</italic>")
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.NewText("<bold>x</bold> "),
		text.New(text.Style{Italic: true}, text.NewText("y")),
	}}
	assert.True(t, text.Equal(want, tree), "got %+v", tree)
}

func TestParse_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bold with args", "<bold:x>y</bold>"},
		{"color without args", "<color>y</color>"},
		{"bad color", "<color:notacolor>y</color>"},
		{"click bad action", "<click:frobnicate:v>y</click>"},
		{"click missing value", "<click:open_url>y</click>"},
		{"gradient one stop", "<gradient:red>y</gradient>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Always an error, lenient or not: a matched tag with bad
			// arguments hides a caller mistake if ignored.
			_, err := New().Parse(tt.input)
			requireParseError(t, err, ErrInvalidArgument)

			_, err = NewBuilder().Strict().Build().Parse(tt.input)
			requireParseError(t, err, ErrInvalidArgument)
		})
	}
}

func TestParse_Placeholders(t *testing.T) {
	tree, err := New().Parse("Hello <who>!", Placeholders(map[string]string{"who": "world"}))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "Hello world!", tree.Children[0].Text)
}

func TestParse_PlaceholderLiteralIsReparsed(t *testing.T) {
	tree, err := New().Parse("<who>", Placeholders(map[string]string{"who": "<bold>hi</bold>"}))
	require.NoError(t, err)

	want := &text.Node{Children: []*text.Node{
		text.New(text.Style{Bold: true}, text.NewText("hi")),
	}}
	assert.True(t, text.Equal(want, tree))
}

func TestParse_PlaceholderFragmentIsOpaque(t *testing.T) {
	frag := text.NewText("<bold>not parsed</bold>")
	tree, err := New().Parse("<who>", Fragments(map[string]*text.Node{"who": frag}))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "<bold>not parsed</bold>", tree.Children[0].Text)
}

func TestParse_PlaceholderShadowsTag(t *testing.T) {
	// A key that is also a registered tag name resolves as the
	// placeholder, never the tag.
	tree, err := New().Parse("<bold>", Placeholders(map[string]string{"bold": "shadowed"}))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "shadowed", tree.Children[0].Text)
	assert.False(t, tree.Children[0].Style.Bold)
}

func TestParse_UnknownPlaceholderNeverSilent(t *testing.T) {
	_, err := New().Parse("<who>", Placeholders(map[string]string{"other": "x"}))
	requireParseError(t, err, ErrUnknownPlaceholder)
}

func TestParse_Stringified(t *testing.T) {
	tree, err := New().Parse("n = <n>", Stringified(map[string]any{"n": 42}))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "n = 42", tree.Children[0].Text)
}

func TestParse_BindingStylesAreExclusive(t *testing.T) {
	_, err := New().Parse("<a>",
		Placeholders(map[string]string{"a": "x"}),
		Fragments(map[string]*text.Node{"a": text.NewText("y")}),
	)
	require.Error(t, err)
}

func TestParse_Positional(t *testing.T) {
	tree, err := New().Parse("{0} and {1}", Positional("first", "second"))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "first and second", tree.Children[0].Text)
}

func TestParse_PositionalUnbound(t *testing.T) {
	_, err := New().Parse("{0} and {3}", Positional("only"))
	requireParseError(t, err, ErrUnknownPlaceholder)
}

func TestParse_PositionalUnboundOffsetIsExact(t *testing.T) {
	// The second {9} is the failing one; the offset must point at it,
	// not at the first occurrence of the same marker text.
	_, err := New().Parse("{0} a {9}", Positional("x"))
	pe := requireParseError(t, err, ErrUnknownPlaceholder)
	assert.Equal(t, 6, pe.Offset)
}

func TestParse_BracesAreLiteralWithoutPositionalBinding(t *testing.T) {
	tree, err := New().Parse("set {0} here")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "set {0} here", tree.Children[0].Text)
}

func TestParse_EscapedTextWithBracesRoundTrips(t *testing.T) {
	// Escaping has no way to protect '{', so brace markers must not be
	// recognized unless positional values were bound.
	input := "price {0} of <bold> items"
	tree, err := New().Parse(EscapeTokens(input))
	require.NoError(t, err)
	assert.Equal(t, input, tree.Plain())
}

func TestParse_PositionalValueIsReparsed(t *testing.T) {
	tree, err := New().Parse("{0}", Positional("<bold>hi</bold>"))
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.True(t, tree.Children[0].Style.Bold)
}

func TestParse_DeepNestingFailsDeterministically(t *testing.T) {
	input := strings.Repeat("<bold>", 10000)
	_, err := New().Parse(input)
	requireParseError(t, err, ErrMaxNestingExceeded)
}

func TestParse_DepthWithinBoundSucceeds(t *testing.T) {
	depth := 50
	input := strings.Repeat("<bold>", depth) + "x" + strings.Repeat("</bold>", depth)
	tree, err := New().Parse(input)
	require.NoError(t, err)
	assert.Equal(t, "x", tree.Plain())
}

func TestParse_PlaceholderRecursionBounded(t *testing.T) {
	// A literal replacement that opens more tags still counts against
	// the depth bound.
	e := NewBuilder().MaxDepth(4).Build()
	_, err := e.Parse("<bold><p>", Placeholders(map[string]string{
		"p": strings.Repeat("<italic>", 10) + "x",
	}))
	requireParseError(t, err, ErrMaxNestingExceeded)
}

func TestParse_CustomTransformation(t *testing.T) {
	e := NewBuilder().Register("shout", func(args []string) (Transformation, error) {
		return &styleTransform{style: text.Style{Bold: true, Color: "red"}, name: "shout"}, nil
	}).Build()

	tree, err := e.Parse("<shout>hey</shout>")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.True(t, tree.Children[0].Style.Bold)
	assert.Equal(t, "red", tree.Children[0].Style.Color)
}

func TestParse_ConcurrentUseOfOneEngine(t *testing.T) {
	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				tree, err := e.Parse("<bold><red>hi</red></bold>",
					Placeholders(map[string]string{"x": "y"}))
				assert.NoError(t, err)
				assert.Equal(t, "hi", tree.Plain())
			}
		}()
	}
	wg.Wait()
}
