// ansi.go renders styled trees to ANSI escaped strings for terminals.
package text

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// namedColors maps the color names accepted in markup to their RGB values.
var namedColors = map[string]string{
	"black":        "#000000",
	"dark_blue":    "#0000aa",
	"dark_green":   "#00aa00",
	"dark_aqua":    "#00aaaa",
	"dark_red":     "#aa0000",
	"dark_purple":  "#aa00aa",
	"gold":         "#ffaa00",
	"gray":         "#aaaaaa",
	"grey":         "#aaaaaa",
	"dark_gray":    "#555555",
	"dark_grey":    "#555555",
	"blue":         "#5555ff",
	"green":        "#55ff55",
	"aqua":         "#55ffff",
	"red":          "#ff5555",
	"light_purple": "#ff55ff",
	"yellow":       "#ffff55",
	"white":        "#ffffff",
}

// IsColor reports whether s is a recognized color: a known name or a
// "#rrggbb" literal.
func IsColor(s string) bool {
	if _, ok := namedColors[strings.ToLower(s)]; ok {
		return true
	}
	_, _, _, ok := parseHexColor(s)
	return ok
}

// Render renders the tree to a string with ANSI styling applied. Styles
// inherit top-down; interactive attributes (insertion, click, hover) have
// no visual form and render their children only. Respects color.NoColor.
func Render(n *Node) string {
	var sb strings.Builder
	render(n, Style{}, nil, &sb)
	return sb.String()
}

// gradientRun tracks per-rune progress through a gradient subtree.
type gradientRun struct {
	fr, fg, fb int
	tr, tg, tb int
	total      int
	index      int
}

func (g *gradientRun) at(i int) (int, int, int) {
	if g.total <= 1 {
		return g.fr, g.fg, g.fb
	}
	t := float64(i) / float64(g.total-1)
	lerp := func(a, b int) int { return a + int(t*float64(b-a)) }
	return lerp(g.fr, g.tr), lerp(g.fg, g.tg), lerp(g.fb, g.tb)
}

func render(n *Node, inherited Style, grad *gradientRun, sb *strings.Builder) {
	eff := Merge(inherited, n.Style)

	if n.Style.GradientFrom != "" && n.Style.GradientTo != "" {
		if fr, fg, fb, ok := resolveColor(n.Style.GradientFrom); ok {
			if tr, tg, tb, ok := resolveColor(n.Style.GradientTo); ok {
				grad = &gradientRun{
					fr: fr, fg: fg, fb: fb,
					tr: tr, tg: tg, tb: tb,
					total: utf8.RuneCountInString(n.Plain()),
				}
			}
		}
	}

	if n.Text != "" {
		writeStyled(n.Text, eff, grad, sb)
	}
	for _, c := range n.Children {
		render(c, eff, grad, sb)
	}
}

func writeStyled(s string, eff Style, grad *gradientRun, sb *strings.Builder) {
	attrs := decorationAttrs(eff)

	if grad != nil {
		// Per-rune coloring; decorations stay constant across the run.
		for _, r := range s {
			cr, cg, cb := grad.at(grad.index)
			grad.index++
			c := color.RGB(cr, cg, cb)
			c.Add(attrs...)
			sb.WriteString(c.Sprint(string(r)))
		}
		return
	}

	if r, g, b, ok := resolveColor(eff.Color); ok {
		c := color.RGB(r, g, b)
		c.Add(attrs...)
		sb.WriteString(c.Sprint(s))
		return
	}

	if len(attrs) == 0 {
		sb.WriteString(s)
		return
	}
	sb.WriteString(color.New(attrs...).Sprint(s))
}

func decorationAttrs(eff Style) []color.Attribute {
	var attrs []color.Attribute
	if eff.Bold {
		attrs = append(attrs, color.Bold)
	}
	if eff.Italic {
		attrs = append(attrs, color.Italic)
	}
	if eff.Underlined {
		attrs = append(attrs, color.Underline)
	}
	if eff.Strikethrough {
		attrs = append(attrs, color.CrossedOut)
	}
	if eff.Obfuscated {
		attrs = append(attrs, color.BlinkRapid)
	}
	return attrs
}

// resolveColor turns a color name or "#rrggbb" literal into RGB components.
func resolveColor(s string) (int, int, int, bool) {
	if s == "" {
		return 0, 0, 0, false
	}
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	return parseHexColor(s)
}

func parseHexColor(s string) (int, int, int, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
