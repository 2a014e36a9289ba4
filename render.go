package compose

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultRuleWidth = 40
	defaultBullet    = "• "
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads a whole document from Reader, tokenizes it and writes
// themed terminal output to Writer. Width 0 disables wrapping.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	cfg := renderConfig{ruleWidth: defaultRuleWidth, bullet: defaultBullet}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	doc := BuildDocument(Tokenize(string(src)))
	tr := textRenderer{
		w:      req.Writer,
		width:  req.Width,
		styles: theme.Styles(),
		cfg:    cfg,
	}
	return tr.render(doc)
}

type textRenderer struct {
	w      io.Writer
	width  int
	styles Styles
	cfg    renderConfig
}

func (tr *textRenderer) render(doc Document) error {
	for _, node := range doc.Nodes {
		var err error
		switch node.Kind {
		case NodeHeading:
			err = tr.heading(node)
		case NodeList:
			err = tr.list(node)
		case NodeHorizontalRule:
			err = tr.rule()
		case NodeParagraph:
			err = tr.paragraph(node)
		}
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

func (tr *textRenderer) heading(node Node) error {
	idx := node.Level
	if idx > len(tr.styles.Heading) {
		idx = len(tr.styles.Heading)
	}
	line := strings.Repeat("#", node.Level)
	if node.Text != "" {
		line += " " + node.Text
	}
	return tr.writeStyled(tr.styles.Heading[idx-1], line+"\n")
}

func (tr *textRenderer) list(node Node) error {
	indent := ansi.PrintableRuneWidth(tr.cfg.bullet)
	for _, item := range node.Children {
		if err := tr.writeStyled(tr.styles.ListMarker, tr.cfg.bullet); err != nil {
			return err
		}
		text := item.Text
		if tr.width > indent {
			text = strings.ReplaceAll(
				wordwrap.String(text, tr.width-indent),
				"\n", "\n"+strings.Repeat(" ", indent),
			)
		}
		if err := tr.writeStyled(tr.styles.Text, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (tr *textRenderer) rule() error {
	width := tr.cfg.ruleWidth
	if tr.width > 0 && tr.width < width {
		width = tr.width
	}
	return tr.writeStyled(tr.styles.HorizontalRule, strings.Repeat("-", width)+"\n")
}

func (tr *textRenderer) paragraph(node Node) error {
	text := node.Text
	if tr.width > 0 {
		text = wordwrap.String(text, tr.width)
	}
	return tr.writeStyled(tr.styles.Text, text+"\n\n")
}

func (tr *textRenderer) writeStyled(st Style, text string) error {
	if st.Prefix == "" {
		_, err := io.WriteString(tr.w, text)
		return err
	}
	// Style line by line and close before each newline so color never
	// bleeds into the next line.
	var b strings.Builder
	b.Grow(len(text) + 2*(len(st.Prefix)+len(ansiReset)))
	rest := text
	for {
		line, tail, found := strings.Cut(rest, "\n")
		if line != "" {
			b.WriteString(st.Prefix)
			b.WriteString(line)
			b.WriteString(ansiReset)
		}
		if !found {
			break
		}
		b.WriteString("\n")
		rest = tail
	}
	_, err := io.WriteString(tr.w, b.String())
	return err
}
