// Package mdscan extracts the document structure the generator needs:
// section headings with their text and line byte ranges. It is deliberately
// narrow — locating headings and nothing else.
package mdscan

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one section heading in a document.
type Heading struct {
	// Level is the heading level, 1-6.
	Level int

	// Text is the heading's inline text with formatting markers removed.
	Text string

	// LineStart is the byte offset of the start of the heading's first line.
	// -1 when the heading has no addressable source line (empty heading).
	LineStart int

	// LineEnd is the byte offset just past the heading's final line,
	// including its newline and, for setext headings, the underline.
	LineEnd int
}

// Headings parses content as GFM markdown and returns every heading in
// document order.
func Headings(content []byte) []Heading {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		out = append(out, headingAt(h, content))
		return ast.WalkSkipChildren, nil
	})

	return out
}

// FindHeading returns the first heading of any level whose text equals the
// given text exactly (case-sensitive).
func FindHeading(content []byte, text string) (Heading, bool) {
	for _, h := range Headings(content) {
		if h.Text == text {
			return h, true
		}
	}
	return Heading{}, false
}

// headingAt builds the Heading record for one goldmark heading node.
func headingAt(h *ast.Heading, content []byte) Heading {
	out := Heading{Level: h.Level, Text: headingText(h, content)}

	lines := h.Lines()
	if lines.Len() == 0 {
		out.LineStart, out.LineEnd = -1, -1
		return out
	}

	out.LineStart = lineStart(content, lines.At(0).Start)
	out.LineEnd = lineEnd(content, lines.At(lines.Len()-1).Stop)

	// Setext headings do not start with '#'; their underline is the next
	// line and belongs to the heading.
	if out.LineStart < len(content) && content[out.LineStart] != '#' {
		out.LineEnd = lineEnd(content, out.LineEnd)
	}

	return out
}

// headingText collects the heading's inline text, dropping formatting
// markers (emphasis, code span backticks) but keeping their content.
func headingText(h *ast.Heading, content []byte) string {
	var sb strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(content))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(content []byte, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}
	return bytes.LastIndexByte(content[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline of the line containing
// pos, or len(content) for the final unterminated line.
func lineEnd(content []byte, pos int) int {
	if pos >= len(content) {
		return len(content)
	}
	i := bytes.IndexByte(content[pos:], '\n')
	if i < 0 {
		return len(content)
	}
	return pos + i + 1
}
