package tagmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"tag", "<bold>hi</bold>", `\<bold>hi\</bold>`},
		{"backslash", `a\b`, `a\\b`},
		{"both", `\<`, `\\\<`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeTokens(tt.input))
		})
	}
}

func TestEscapeTokens_RoundTripsAsLiteralText(t *testing.T) {
	inputs := []string{
		"<bold>hi</bold>",
		`already \<escaped>`,
		"plain",
		`trailing backslash \`,
		"<insert:payload>x</insert>",
	}

	for _, input := range inputs {
		tree, err := New().Parse(EscapeTokens(input))
		require.NoError(t, err, input)
		assert.Equal(t, input, tree.Plain(), input)
	}
}

func TestStripTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"tags removed", "hello <bold>world</bold>", "hello world"},
		{"nested removed", "<bold><italic>x</italic></bold>", "x"},
		{"args removed", "Click <insert:test>this</insert>!", "Click this!"},
		{"self-closing removed", "a<br/>b", "ab"},
		{"escaped tag retained", `\<bold>kept`, `\<bold>kept`},
		{"malformed kept", "a < b", `a \< b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTokens(tt.input))
		})
	}
}

func TestStripTokens_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"<bold>hi</bold>",
		`\<bold>still here`,
		"a < b > c",
		`weird \\ <insert:x>y</insert>`,
		"<unclosed",
	}

	for _, input := range inputs {
		once := StripTokens(input)
		assert.Equal(t, once, StripTokens(once), "input %q", input)
	}
}

func TestStripTokens_EscapeSafety(t *testing.T) {
	// strip(escape(s)) must render to the literal content of s: nothing
	// in s may be interpreted as a tag after escaping.
	inputs := []string{
		"<bold>hi</bold>",
		"Click <insert:test>this</insert>!",
		`backslashes \ and <brackets>`,
	}

	for _, s := range inputs {
		stripped := StripTokens(EscapeTokens(s))
		tree, err := New().Parse(stripped)
		require.NoError(t, err)
		assert.Equal(t, s, tree.Plain(), "input %q", s)
	}
}

func TestStripTokens_NeverFails(t *testing.T) {
	// Total even on garbage that the parser would reject.
	for _, input := range []string{"<", "<<<", "</", `\`, "<a:'", "<#>"} {
		assert.NotPanics(t, func() { StripTokens(input) }, input)
	}
}
