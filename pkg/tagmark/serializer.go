// serializer.go emits canonical tag markup for a styled-text tree.
package tagmark

import (
	"strings"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

// tagSpec is one canonical tag wrapper derived from a node's style.
type tagSpec struct {
	name string
	args []string
}

// Serialize walks the tree depth-first and emits markup that parses back
// to an equal tree. Text leaves are escaped. A style attribute whose tag
// is not active in this engine is dropped from the output in lenient
// mode and is an error in strict mode; style loss is never silent policy.
func (e *Engine) Serialize(n *text.Node) (string, error) {
	var sb strings.Builder
	if err := e.serializeNode(n, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Engine) serializeNode(n *text.Node, sb *strings.Builder) error {
	if n == nil {
		return nil
	}

	tags := styleTags(n.Style)
	var opened []tagSpec
	for _, t := range tags {
		if !e.registry.IsActive(t.name) {
			if e.strict {
				return parseErr(ErrInvalidArgument, 0, t.name, "style has no active serializable tag")
			}
			continue
		}
		sb.WriteByte('<')
		sb.WriteString(t.name)
		for _, a := range t.args {
			sb.WriteByte(':')
			sb.WriteString(serializeArg(a))
		}
		sb.WriteByte('>')
		opened = append(opened, t)
	}

	if n.Text != "" {
		sb.WriteString(EscapeTokens(n.Text))
	}
	for _, c := range n.Children {
		if err := e.serializeNode(c, sb); err != nil {
			return err
		}
	}

	for i := len(opened) - 1; i >= 0; i-- {
		sb.WriteString("</")
		sb.WriteString(opened[i].name)
		sb.WriteByte('>')
	}
	return nil
}

// styleTags decomposes a style into canonical tag wrappers, outermost
// first. The order is fixed so serialization is deterministic.
func styleTags(s text.Style) []tagSpec {
	var tags []tagSpec
	if s.Reset {
		tags = append(tags, tagSpec{name: "reset"})
	}
	if s.GradientFrom != "" && s.GradientTo != "" {
		tags = append(tags, tagSpec{name: "gradient", args: []string{s.GradientFrom, s.GradientTo}})
	} else if s.Color != "" {
		tags = append(tags, tagSpec{name: "color", args: []string{s.Color}})
	}
	if s.Bold {
		tags = append(tags, tagSpec{name: "bold"})
	}
	if s.Italic {
		tags = append(tags, tagSpec{name: "italic"})
	}
	if s.Underlined {
		tags = append(tags, tagSpec{name: "underline"})
	}
	if s.Strikethrough {
		tags = append(tags, tagSpec{name: "strikethrough"})
	}
	if s.Obfuscated {
		tags = append(tags, tagSpec{name: "obfuscated"})
	}
	if s.Font != "" {
		tags = append(tags, tagSpec{name: "font", args: []string{s.Font}})
	}
	if s.Insertion != "" {
		tags = append(tags, tagSpec{name: "insert", args: []string{s.Insertion}})
	}
	if s.ClickAction != "" {
		tags = append(tags, tagSpec{name: "click", args: []string{s.ClickAction, s.ClickValue}})
	}
	if s.Hover != "" {
		tags = append(tags, tagSpec{name: "hover", args: []string{s.Hover}})
	}
	return tags
}

// serializeArg emits an argument so it lexes back to the same value.
// Delimiter characters are backslash-escaped; a leading quote is escaped
// so the lexer does not take the argument for a quoted one.
func serializeArg(a string) string {
	if a == "" {
		return a
	}
	needsEscape := strings.ContainsAny(a, ":>/\\")
	leadingQuote := a[0] == '\'' || a[0] == '"'
	if !needsEscape && !leadingQuote {
		return a
	}
	r := strings.NewReplacer(`\`, `\\`, ":", `\:`, ">", `\>`, "/", `\/`)
	out := r.Replace(a)
	if out[0] == '\'' || out[0] == '"' {
		out = `\` + out
	}
	return out
}
