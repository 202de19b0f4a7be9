// Package text provides the styled-text tree that tag markup parses into.
package text

// Node is a node in a styled-text tree. A node is either a text leaf
// (Text set, no children) or a styled container. Styles inherit: a child
// without an explicit color renders with its nearest styled ancestor's
// color.
type Node struct {
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Style    Style   `yaml:"style,omitempty" json:"style,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// NewText creates a plain text leaf.
func NewText(s string) *Node {
	return &Node{Text: s}
}

// New creates a styled container with the given children.
func New(style Style, children ...*Node) *Node {
	return &Node{Style: style, Children: children}
}

// Append adds children to the node and returns it.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// WithStyle returns a copy of n carrying the given style.
func (n *Node) WithStyle(style Style) *Node {
	out := *n
	out.Style = style
	return &out
}

// IsLeaf reports whether n is a text leaf with no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Plain returns the concatenated text content of the subtree, in order,
// with all styling discarded.
func (n *Node) Plain() string {
	out := n.Text
	for _, c := range n.Children {
		out += c.Plain()
	}
	return out
}

// Equal reports structural equality of two trees: same text, same styles,
// same children in the same order. Nil nodes are equal only to nil.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Text != b.Text || a.Style != b.Style || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
