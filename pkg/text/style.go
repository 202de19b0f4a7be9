// style.go defines the style attributes a tree node can carry.
package text

// Style holds the visual and interactive attributes of a node. The zero
// value is "no styling at all"; unset fields inherit from the enclosing
// node at render time. Style is a comparable value type so trees can be
// compared with ==.
type Style struct {
	Bold          bool `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic        bool `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underlined    bool `yaml:"underlined,omitempty" json:"underlined,omitempty"`
	Strikethrough bool `yaml:"strikethrough,omitempty" json:"strikethrough,omitempty"`
	Obfuscated    bool `yaml:"obfuscated,omitempty" json:"obfuscated,omitempty"`

	// Color is a named color ("red", "gold", ...) or a "#rrggbb" literal.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`

	// GradientFrom/GradientTo, when both set, color the subtree's text with
	// a per-rune linear gradient and take precedence over Color.
	GradientFrom string `yaml:"gradient_from,omitempty" json:"gradient_from,omitempty"`
	GradientTo   string `yaml:"gradient_to,omitempty" json:"gradient_to,omitempty"`

	Font string `yaml:"font,omitempty" json:"font,omitempty"`

	// Insertion is a payload attached to the text, offered to the host
	// application when the user interacts with it.
	Insertion string `yaml:"insertion,omitempty" json:"insertion,omitempty"`

	// ClickAction/ClickValue describe what happens on click, e.g.
	// action "open_url" with the URL as value.
	ClickAction string `yaml:"click_action,omitempty" json:"click_action,omitempty"`
	ClickValue  string `yaml:"click_value,omitempty" json:"click_value,omitempty"`

	// Hover is text shown when the node is hovered.
	Hover string `yaml:"hover,omitempty" json:"hover,omitempty"`

	// Reset stops style inheritance at this node.
	Reset bool `yaml:"reset,omitempty" json:"reset,omitempty"`
}

// IsZero reports whether no attribute is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge layers child on top of parent: boolean decorations accumulate,
// scalar fields take the child's value when set. A child with Reset set
// discards everything inherited.
func Merge(parent, child Style) Style {
	if child.Reset {
		out := child
		out.Reset = false
		return out
	}
	out := parent
	out.Bold = out.Bold || child.Bold
	out.Italic = out.Italic || child.Italic
	out.Underlined = out.Underlined || child.Underlined
	out.Strikethrough = out.Strikethrough || child.Strikethrough
	out.Obfuscated = out.Obfuscated || child.Obfuscated
	if child.Color != "" {
		out.Color = child.Color
	}
	if child.GradientFrom != "" && child.GradientTo != "" {
		out.GradientFrom = child.GradientFrom
		out.GradientTo = child.GradientTo
	} else if child.Color != "" {
		// An explicit color overrides an inherited gradient.
		out.GradientFrom, out.GradientTo = "", ""
	}
	if child.Font != "" {
		out.Font = child.Font
	}
	if child.Insertion != "" {
		out.Insertion = child.Insertion
	}
	if child.ClickAction != "" {
		out.ClickAction = child.ClickAction
		out.ClickValue = child.ClickValue
	}
	if child.Hover != "" {
		out.Hover = child.Hover
	}
	return out
}
