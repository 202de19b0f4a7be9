package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	tree := New(Style{},
		NewText("a"),
		New(Style{Bold: true}, NewText("b"), New(Style{Italic: true}, NewText("c"))),
		NewText("d"),
	)
	assert.Equal(t, "abcd", tree.Plain())
}

func TestEqual(t *testing.T) {
	a := New(Style{Bold: true}, NewText("x"))
	b := New(Style{Bold: true}, NewText("x"))
	c := New(Style{Italic: true}, NewText("x"))
	d := New(Style{Bold: true}, NewText("y"))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}

func TestEqual_ChildOrderMatters(t *testing.T) {
	a := New(Style{}, NewText("1"), NewText("2"))
	b := New(Style{}, NewText("2"), NewText("1"))
	assert.False(t, Equal(a, b))
}

func TestWithStyle_Copies(t *testing.T) {
	orig := NewText("x")
	styled := orig.WithStyle(Style{Bold: true})

	assert.True(t, styled.Style.Bold)
	assert.False(t, orig.Style.Bold)
	assert.Equal(t, "x", styled.Text)
}

func TestMerge(t *testing.T) {
	parent := Style{Bold: true, Color: "red", Font: "mono"}

	merged := Merge(parent, Style{Italic: true, Color: "blue"})
	assert.True(t, merged.Bold)
	assert.True(t, merged.Italic)
	assert.Equal(t, "blue", merged.Color)
	assert.Equal(t, "mono", merged.Font)
}

func TestMerge_Reset(t *testing.T) {
	parent := Style{Bold: true, Color: "red"}
	merged := Merge(parent, Style{Reset: true, Italic: true})

	assert.False(t, merged.Bold)
	assert.Empty(t, merged.Color)
	assert.True(t, merged.Italic)
	assert.False(t, merged.Reset, "reset is consumed, not inherited")
}

func TestMerge_ColorOverridesGradient(t *testing.T) {
	parent := Style{GradientFrom: "red", GradientTo: "blue"}
	merged := Merge(parent, Style{Color: "green"})

	assert.Equal(t, "green", merged.Color)
	assert.Empty(t, merged.GradientFrom)
	assert.Empty(t, merged.GradientTo)
}

func TestIsColor(t *testing.T) {
	assert.True(t, IsColor("red"))
	assert.True(t, IsColor("DARK_AQUA"))
	assert.True(t, IsColor("#ff5500"))
	assert.False(t, IsColor("#ff550"))
	assert.False(t, IsColor("#zzzzzz"))
	assert.False(t, IsColor("notacolor"))
	assert.False(t, IsColor(""))
}
