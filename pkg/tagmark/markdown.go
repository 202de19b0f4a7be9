// markdown.go rewrites markdown into tag markup before the main parse.
package tagmark

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Flavor selects the markdown dialect the preprocessor accepts.
type Flavor int

const (
	// FlavorGithub handles inline spans only: **bold**, *italic* or
	// _italic_, __underline__, ~~strikethrough~~, `code`, [text](url).
	FlavorGithub Flavor = iota
	// FlavorDocument runs a full markdown parse and flattens block
	// structure (headings, paragraphs, code blocks) into tag markup.
	FlavorDocument
)

// String returns the flavor's configuration name.
func (f Flavor) String() string {
	switch f {
	case FlavorGithub:
		return "github"
	case FlavorDocument:
		return "document"
	}
	return "unknown"
}

// ParseFlavor resolves a configuration name to a Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(s) {
	case "github", "inline", "":
		return FlavorGithub, nil
	case "document", "doc":
		return FlavorDocument, nil
	}
	return 0, fmt.Errorf("unknown markdown flavor %q", s)
}

// FromMarkdown rewrites markdown into equivalent tag markup without
// parsing the result. Tag syntax already present in the input passes
// through untouched.
func FromMarkdown(input string, flavor Flavor) string {
	return preprocessMarkdown(input, flavor)
}

// preprocessMarkdown is a pure text-to-text transform; its output is tag
// markup fed to the tokenizer.
func preprocessMarkdown(input string, flavor Flavor) string {
	if flavor == FlavorDocument {
		return markdownDocument(input)
	}
	return markdownInline(input)
}

// inlineSpans maps markers to their tag wrappers, longest marker first so
// ** is never read as two italics.
var inlineSpans = []struct {
	marker string
	open   string
	close  string
}{
	{"**", "<bold>", "</bold>"},
	{"__", "<underline>", "</underline>"},
	{"~~", "<strikethrough>", "</strikethrough>"},
	{"`", "<font:mono>", "</font>"},
	{"*", "<italic>", "</italic>"},
	{"_", "<italic>", "</italic>"},
}

func markdownInline(s string) string {
	var sb strings.Builder
	i := 0

scan:
	for i < len(s) {
		c := s[i]

		// A backslash before a markdown marker removes the marker's
		// meaning; any other escape (including \<) passes through for the
		// tag tokenizer to handle.
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			if strings.IndexByte("*_~`[", next) >= 0 {
				sb.WriteByte(next)
			} else {
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			i += 2
			continue
		}

		if c == '[' {
			if mid := strings.Index(s[i:], "]("); mid > 0 {
				if end := strings.IndexByte(s[i+mid+2:], ')'); end >= 0 {
					label := s[i+1 : i+mid]
					url := s[i+mid+2 : i+mid+2+end]
					sb.WriteString("<click:open_url:")
					sb.WriteString(serializeArg(url))
					sb.WriteString(">")
					sb.WriteString(markdownInline(label))
					sb.WriteString("</click>")
					i += mid + 2 + end + 1
					continue
				}
			}
		}

		for _, span := range inlineSpans {
			if !strings.HasPrefix(s[i:], span.marker) {
				continue
			}
			rest := s[i+len(span.marker):]
			j := strings.Index(rest, span.marker)
			if j <= 0 {
				continue // no closing marker, or empty span
			}
			inner := rest[:j]
			sb.WriteString(span.open)
			if span.marker == "`" {
				// Code spans are literal; protect any tag syntax inside.
				sb.WriteString(EscapeTokens(inner))
			} else {
				sb.WriteString(markdownInline(inner))
			}
			sb.WriteString(span.close)
			i += len(span.marker) + j + len(span.marker)
			continue scan
		}

		sb.WriteByte(c)
		i++
	}
	return sb.String()
}

// docParser is the shared goldmark instance for the document flavor.
var docParser = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

func markdownDocument(input string) string {
	source := []byte(input)
	doc := docParser.Parser().Parse(gmtext.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch v := n.(type) {
		case *ast.Heading:
			if entering {
				sb.WriteString("<bold>")
			} else {
				sb.WriteString("</bold>\n\n")
			}
		case *ast.Paragraph:
			if !entering {
				sb.WriteString("\n\n")
			}
		case *ast.TextBlock:
			if !entering {
				sb.WriteString("\n")
			}
		case *ast.ThematicBreak:
			if entering {
				sb.WriteString("\n")
			}
		case *ast.ListItem:
			if entering {
				sb.WriteString("- ")
			}
		case *ast.Emphasis:
			tag := "italic"
			if v.Level == 2 {
				tag = "bold"
			}
			if entering {
				sb.WriteString("<" + tag + ">")
			} else {
				sb.WriteString("</" + tag + ">")
			}
		case *extast.Strikethrough:
			if entering {
				sb.WriteString("<strikethrough>")
			} else {
				sb.WriteString("</strikethrough>")
			}
		case *ast.CodeSpan:
			if entering {
				sb.WriteString("<font:mono>")
			} else {
				sb.WriteString("</font>")
			}
		case *ast.Link:
			if entering {
				sb.WriteString("<click:open_url:" + serializeArg(string(v.Destination)) + ">")
			} else {
				sb.WriteString("</click>")
			}
		case *ast.AutoLink:
			if entering {
				url := string(v.URL(source))
				sb.WriteString("<click:open_url:" + serializeArg(url) + ">" + EscapeTokens(url) + "</click>")
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if entering {
				writeCodeBlock(&sb, v.Lines(), source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if entering {
				writeCodeBlock(&sb, v.Lines(), source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				sb.WriteString(EscapeTokens(string(v.Segment.Value(source))))
				if v.SoftLineBreak() || v.HardLineBreak() {
					sb.WriteString("\n")
				}
			}
		case *ast.String:
			if entering {
				sb.WriteString(EscapeTokens(string(v.Value)))
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(sb.String(), "\n")
}

func writeCodeBlock(sb *strings.Builder, lines *gmtext.Segments, source []byte) {
	sb.WriteString("<font:mono>")
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.WriteString(EscapeTokens(string(seg.Value(source))))
	}
	sb.WriteString("</font>\n\n")
}
