package tagmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

func TestSerialize_Insertion(t *testing.T) {
	e := New()
	tree := &text.Node{Children: []*text.Node{
		text.NewText("Click "),
		text.New(text.Style{Insertion: "test"}, text.NewText("this")),
		text.NewText(" to insert!"),
	}}

	out, err := e.Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, "Click <insert:test>this</insert> to insert!", out)
}

func TestSerialize_TextIsEscaped(t *testing.T) {
	e := New()
	out, err := e.Serialize(text.NewText("literal <bold> stays"))
	require.NoError(t, err)
	assert.Equal(t, `literal \<bold> stays`, out)

	tree, err := e.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "literal <bold> stays", tree.Plain())
}

func TestSerialize_ArgEscaping(t *testing.T) {
	e := New()
	tree := text.New(text.Style{ClickAction: "open_url", ClickValue: "https://example.com/a:b"},
		text.NewText("link"))

	out, err := e.Serialize(tree)
	require.NoError(t, err)

	reparsed, err := e.Parse(out)
	require.NoError(t, err)
	require.Len(t, reparsed.Children, 1)
	assert.Equal(t, "open_url", reparsed.Children[0].Style.ClickAction)
	assert.Equal(t, "https://example.com/a:b", reparsed.Children[0].Style.ClickValue)
}

func TestSerialize_CanonicalOrderIsDeterministic(t *testing.T) {
	e := New()
	tree := text.New(text.Style{Bold: true, Color: "red"}, text.NewText("x"))

	out, err := e.Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, "<color:red><bold>x</bold></color>", out)
}

func TestSerialize_InactiveStyleDropped(t *testing.T) {
	e := NewBuilder().Transformations("bold").Build()
	tree := text.New(text.Style{Bold: true, Insertion: "x"}, text.NewText("y"))

	// Lenient: the insertion wrapper is omitted, children survive.
	out, err := e.Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, "<bold>y</bold>", out)

	// Strict: silent style loss is refused.
	strict := NewBuilder().Transformations("bold").Strict().Build()
	_, err = strict.Serialize(tree)
	require.Error(t, err)
}

func TestRoundtrip_ParseSerializeParse(t *testing.T) {
	inputs := []string{
		"Click <insert:test>this</insert> to insert!",
		"<bold>hi</bold>",
		"<bold><italic>deep</italic> flat</bold>",
		"<color:red>warm</color> plain <underline>lined</underline>",
		"<gradient:red:blue>fade</gradient>",
		"<click:open_url:'https://example.com'>go</click>",
		"<hover:peek>here</hover>",
		"<font:mono>code</font>",
		`escaped \<tag> text`,
		"<reset><bold>fresh</bold></reset>",
	}

	e := New()
	for _, input := range inputs {
		tree, err := e.Parse(input)
		require.NoError(t, err, input)

		out, err := e.Serialize(tree)
		require.NoError(t, err, input)

		again, err := e.Parse(out)
		require.NoError(t, err, out)
		assert.True(t, text.Equal(tree, again), "roundtrip of %q via %q", input, out)
	}
}

func TestRoundtrip_SerializedFormIsCanonical(t *testing.T) {
	// Serializing a reparsed canonical string reproduces it exactly.
	e := New()
	canonical := "Click <insert:test>this</insert> to insert!"

	tree, err := e.Parse(canonical)
	require.NoError(t, err)
	out, err := e.Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, canonical, out)
}
