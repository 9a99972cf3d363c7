package post

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/sanitizer"
)

var markdown = goldmark.New()

// Heading returns the plain text of the first level-1 heading in the body,
// either ATX ("# Title") or setext ("Title\n====="). Empty if there is none.
func (p *Post) Heading() string {
	if len(p.Body) == 0 {
		return ""
	}

	doc := markdown.Parser().Parse(text.NewReader(p.Body))

	var heading *ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			heading = h
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if heading == nil {
		return ""
	}

	var buf bytes.Buffer
	inlineText(heading, p.Body, &buf)
	return sanitizer.PlainText(buf.String())
}

// inlineText writes the visible text of n's inline children. Raw HTML tags are
// skipped; the text between them is kept.
func inlineText(n ast.Node, src []byte, buf *bytes.Buffer) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.Label(src))
		case *ast.RawHTML:
		default:
			inlineText(c, src, buf)
		}
	}
}
