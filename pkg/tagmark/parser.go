// parser.go assembles the token stream into a styled-text tree.
package tagmark

import (
	"github.com/open-cli-collective/tagmark/pkg/text"
)

// stackFrame tracks one open tag awaiting its close.
type stackFrame struct {
	name     string
	t        Transformation
	children []*text.Node
	pos      int // byte offset of the open tag
}

// parseContext is the per-call parse state. It is allocated fresh for
// every Parse call and never shared, so a single engine is safe for
// concurrent use.
type parseContext struct {
	engine *Engine
	table  *placeholderTable
}

// Parse parses tag markup into a styled-text tree. The returned root is
// an unstyled container holding the top-level nodes in order.
//
// Options bind placeholders for this call only. In lenient engines (the
// default) unclosed and mismatched tags degrade to implicit closes and
// literal text; strict engines fail. Unknown placeholders and invalid
// tag arguments fail in both modes.
func (e *Engine) Parse(input string, opts ...ParseOption) (*text.Node, error) {
	table := &placeholderTable{}
	for _, opt := range opts {
		if err := opt(table); err != nil {
			return nil, err
		}
	}

	src := input
	if e.markdown {
		src = preprocessMarkdown(src, e.flavor)
	}
	src, err := substitutePositional(src, table.positional)
	if err != nil {
		return nil, err
	}

	ctx := &parseContext{engine: e, table: table}
	root := &text.Node{}
	if err := ctx.parseInto(root, src, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// parseInto parses src and appends the resulting nodes to parent's
// children. baseDepth carries nesting accumulated by placeholder
// re-entry, so substitution cannot evade the depth bound.
func (ctx *parseContext) parseInto(parent *text.Node, src string, baseDepth int) error {
	e := ctx.engine
	var stack []*stackFrame

	appendNode := func(n *text.Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, n)
			return
		}
		parent.Children = append(parent.Children, n)
	}

	appendText := func(s string) {
		if s == "" {
			return
		}
		// Merge adjacent plain leaves, as recovery can emit several in a row.
		siblings := &parent.Children
		if len(stack) > 0 {
			siblings = &stack[len(stack)-1].children
		}
		if n := len(*siblings); n > 0 {
			if last := (*siblings)[n-1]; last.IsLeaf() && last.Style.IsZero() && last.Text != "" {
				last.Text += s
				return
			}
		}
		appendNode(text.NewText(s))
	}

	closeTop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := top.t.Apply(top.children)
		appendNode(node)
	}

	for _, tok := range Tokenize(src) {
		switch tok.Kind {
		case TokenText:
			appendText(tok.Text)

		case TokenTagOpen:
			// Placeholder resolution comes first so placeholders can
			// shadow tag names. Only bare tags are placeholder references;
			// an argument list always means tag dispatch.
			if len(tok.Args) == 0 {
				if rep, ok := ctx.table.resolve(tok.Name); ok {
					if rep.fragment != nil {
						// Shallow copy so later text merging never mutates
						// the caller's fragment.
						cp := *rep.fragment
						appendNode(&cp)
						continue
					}
					depth := baseDepth + len(stack) + 1
					if depth > e.maxDepth {
						return parseErr(ErrMaxNestingExceeded, tok.Position, tok.Name, "")
					}
					holder := &text.Node{}
					if err := ctx.parseInto(holder, rep.literal, depth); err != nil {
						return err
					}
					for _, n := range holder.Children {
						appendNode(n)
					}
					continue
				}
			}

			factory, active := e.registry.Lookup(tok.Name)
			if !active {
				if e.registry.Knows(tok.Name) || e.unknownAsText {
					// Inactive or tolerated unknown tags stay verbatim.
					appendText(tok.Raw)
					continue
				}
				return parseErr(ErrUnknownPlaceholder, tok.Position, tok.Name,
					"not a bound placeholder or active tag")
			}

			t, err := factory(tok.Args)
			if err != nil {
				return parseErr(ErrInvalidArgument, tok.Position, tok.Name, err.Error())
			}
			if tok.SelfClosing {
				appendNode(t.Apply(nil))
				continue
			}
			if baseDepth+len(stack)+1 > e.maxDepth {
				return parseErr(ErrMaxNestingExceeded, tok.Position, tok.Name, "")
			}
			stack = append(stack, &stackFrame{name: tok.Name, t: t, pos: tok.Position})

		case TokenTagClose:
			match := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == tok.Name {
					match = i
					break
				}
			}
			if match == -1 {
				if e.strict {
					return parseErr(ErrMismatchedCloseTag, tok.Position, tok.Name, "no matching open tag")
				}
				appendText(tok.Raw)
				continue
			}
			if match != len(stack)-1 && e.strict {
				return parseErr(ErrMismatchedCloseTag, tok.Position, tok.Name,
					"closes <"+stack[len(stack)-1].name+"> implicitly")
			}
			// Implicitly close anything opened above the matching frame,
			// then the frame itself.
			for len(stack) > match {
				closeTop()
			}
		}
	}

	if len(stack) > 0 {
		if e.strict {
			first := stack[0]
			return parseErr(ErrUnclosedTag, first.pos, first.name, "still open at end of input")
		}
		for len(stack) > 0 {
			closeTop()
		}
	}
	return nil
}
