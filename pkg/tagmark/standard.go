// standard.go registers the built-in tag vocabulary.
package tagmark

import (
	"fmt"
	"strings"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

// styleTransform is the shared implementation for tags that wrap their
// children in a single style layer.
type styleTransform struct {
	style text.Style
	name  string
	args  []string
}

func (t *styleTransform) Apply(children []*text.Node) *text.Node {
	return text.New(t.style, children...)
}

func (t *styleTransform) Tag() (string, []string) {
	return t.name, t.args
}

// resetTransform drops all inherited styling from its children. A
// resetting node serializes back as a <reset> wrapper.
type resetTransform struct{}

func (resetTransform) Apply(children []*text.Node) *text.Node {
	return text.New(text.Style{Reset: true}, children...)
}

// newlineTransform emits a literal line break; always self-closing.
type newlineTransform struct{}

func (newlineTransform) Apply([]*text.Node) *text.Node {
	return text.NewText("\n")
}

// clickActions are the accepted first arguments of <click:action:value>.
var clickActions = map[string]bool{
	"open_url":          true,
	"open_file":         true,
	"run_command":       true,
	"suggest_command":   true,
	"copy_to_clipboard": true,
	"change_page":       true,
}

func decorationFactory(name string, set func(*text.Style)) Factory {
	return func(args []string) (Transformation, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("takes no arguments, got %d", len(args))
		}
		var s text.Style
		set(&s)
		return &styleTransform{style: s, name: name}, nil
	}
}

func colorFactory(args []string) (Transformation, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one color argument, got %d", len(args))
	}
	c := strings.ToLower(args[0])
	if !text.IsColor(c) {
		return nil, fmt.Errorf("unknown color %q", args[0])
	}
	return &styleTransform{style: text.Style{Color: c}, name: "color", args: []string{c}}, nil
}

// colorNameFactory serves bare color tags like <red> or <#ff5500>.
func colorNameFactory(name string) Factory {
	return func(args []string) (Transformation, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("takes no arguments, got %d", len(args))
		}
		return &styleTransform{style: text.Style{Color: name}, name: "color", args: []string{name}}, nil
	}
}

func insertFactory(args []string) (Transformation, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one insertion payload, got %d arguments", len(args))
	}
	return &styleTransform{style: text.Style{Insertion: args[0]}, name: "insert", args: args}, nil
}

func clickFactory(args []string) (Transformation, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected action and value, got %d arguments", len(args))
	}
	action := strings.ToLower(args[0])
	if !clickActions[action] {
		return nil, fmt.Errorf("unknown click action %q", args[0])
	}
	return &styleTransform{
		style: text.Style{ClickAction: action, ClickValue: args[1]},
		name:  "click",
		args:  []string{action, args[1]},
	}, nil
}

func hoverFactory(args []string) (Transformation, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one hover text argument, got %d", len(args))
	}
	return &styleTransform{style: text.Style{Hover: args[0]}, name: "hover", args: args}, nil
}

func fontFactory(args []string) (Transformation, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one font name, got %d arguments", len(args))
	}
	return &styleTransform{style: text.Style{Font: args[0]}, name: "font", args: args}, nil
}

func gradientFactory(args []string) (Transformation, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected two color stops, got %d arguments", len(args))
	}
	from, to := strings.ToLower(args[0]), strings.ToLower(args[1])
	if !text.IsColor(from) {
		return nil, fmt.Errorf("unknown color %q", args[0])
	}
	if !text.IsColor(to) {
		return nil, fmt.Errorf("unknown color %q", args[1])
	}
	return &styleTransform{
		style: text.Style{GradientFrom: from, GradientTo: to},
		name:  "gradient",
		args:  []string{from, to},
	}, nil
}

func resetFactory(args []string) (Transformation, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("takes no arguments, got %d", len(args))
	}
	return resetTransform{}, nil
}

func newlineFactory(args []string) (Transformation, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("takes no arguments, got %d", len(args))
	}
	return newlineTransform{}, nil
}

// StandardRegistry returns a registry populated with the built-in tags.
// Aliases share a factory; the canonical name is what serialization emits.
func StandardRegistry() *Registry {
	r := NewRegistry()

	bold := decorationFactory("bold", func(s *text.Style) { s.Bold = true })
	italic := decorationFactory("italic", func(s *text.Style) { s.Italic = true })
	underline := decorationFactory("underline", func(s *text.Style) { s.Underlined = true })
	strike := decorationFactory("strikethrough", func(s *text.Style) { s.Strikethrough = true })
	obf := decorationFactory("obfuscated", func(s *text.Style) { s.Obfuscated = true })

	r.Register("bold", bold)
	r.Register("b", bold)
	r.Register("italic", italic)
	r.Register("i", italic)
	r.Register("em", italic)
	r.Register("underline", underline)
	r.Register("u", underline)
	r.Register("strikethrough", strike)
	r.Register("st", strike)
	r.Register("obfuscated", obf)
	r.Register("obf", obf)

	r.Register("color", colorFactory)
	r.Register("colour", colorFactory)
	r.Register("c", colorFactory)

	r.Register("insert", insertFactory)
	r.Register("click", clickFactory)
	r.Register("hover", hoverFactory)
	r.Register("font", fontFactory)
	r.Register("gradient", gradientFactory)
	r.Register("reset", resetFactory)
	r.Register("newline", newlineFactory)
	r.Register("br", newlineFactory)

	// Bare color names and #rrggbb literals act as color tags.
	r.RegisterFallback(func(name string) (Factory, bool) {
		if text.IsColor(name) {
			return colorNameFactory(name), true
		}
		return nil, false
	})

	return r
}
