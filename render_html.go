package compose

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

// HTMLRequest configures RenderHTML.
type HTMLRequest struct {
	Reader io.Reader
	Writer io.Writer
	Rules  Rules
}

// RenderHTML reads a whole document from Reader, tokenizes it and writes
// HTML to Writer according to Rules.
func RenderHTML(req HTMLRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render html: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render html: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render html: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	doc := BuildDocument(Tokenize(string(src)))
	var b strings.Builder
	hr := htmlRenderer{rules: req.Rules}
	hr.document(&b, doc)
	if _, err := io.WriteString(req.Writer, b.String()); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

type htmlRenderer struct {
	rules Rules
}

func (hr *htmlRenderer) document(b *strings.Builder, doc Document) {
	if hr.rules.Document {
		b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
		b.WriteString(`<meta charset="utf-8">` + "\n")
		for _, href := range hr.rules.Stylesheets {
			fmt.Fprintf(b, "<link rel=\"stylesheet\" href=%q>\n", href)
		}
		b.WriteString("</head>\n")
		if hr.rules.BodyClass != "" {
			fmt.Fprintf(b, "<body class=%q>\n", hr.rules.BodyClass)
		} else {
			b.WriteString("<body>\n")
		}
	}
	for _, node := range doc.Nodes {
		hr.node(b, node)
	}
	if hr.rules.Document {
		b.WriteString("</body>\n</html>\n")
	}
}

func (hr *htmlRenderer) node(b *strings.Builder, node Node) {
	switch node.Kind {
	case NodeHeading:
		hr.heading(b, node)
	case NodeList:
		b.WriteString("<ul>\n")
		for _, item := range node.Children {
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(item.Text))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	case NodeHorizontalRule:
		b.WriteString("<hr />\n")
	case NodeParagraph:
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(node.Text))
		b.WriteString("</p>\n")
	}
}

func (hr *htmlRenderer) heading(b *strings.Builder, node Node) {
	// Token levels are unbounded; HTML stops at h6.
	level := node.Level
	if level > 6 {
		level = 6
	}
	tag := "h" + strconv.Itoa(level)
	b.WriteString("<")
	b.WriteString(tag)
	if hr.rules.HeadingIDs {
		if slug := slugify(node.Text); slug != "" {
			fmt.Fprintf(b, " id=%q", hr.rules.HeadingIDPrefix+slug)
		}
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(node.Text))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

func slugify(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
