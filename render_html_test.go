package compose

import (
	"bytes"
	"strings"
	"testing"
)

func renderHTML(t *testing.T, src string, rules Rules) string {
	t.Helper()
	var out bytes.Buffer
	err := RenderHTML(HTMLRequest{
		Reader: strings.NewReader(src),
		Writer: &out,
		Rules:  rules,
	})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	return out.String()
}

func TestRenderHTMLBasicNodes(t *testing.T) {
	out := renderHTML(t, "# Title\n- a\n- b\n---\ntext\n", Rules{})
	for _, want := range []string{
		"<h1>Title</h1>\n",
		"<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		"<hr />\n",
		"<p>text</p>\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "<body") {
		t.Fatalf("unexpected document wrapper in %q", out)
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	out := renderHTML(t, "# a<b\nx & y\n- <li>\n", Rules{})
	for _, want := range []string{"a&lt;b", "x &amp; y", "&lt;li&gt;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestRenderHTMLHeadingIDs(t *testing.T) {
	out := renderHTML(t, "## Getting Started!\n", Rules{HeadingIDs: true, HeadingIDPrefix: "doc-"})
	if !strings.Contains(out, `<h2 id="doc-getting-started">Getting Started!</h2>`) {
		t.Fatalf("missing heading id in %q", out)
	}
}

func TestRenderHTMLHeadingIDOmittedWhenEmpty(t *testing.T) {
	out := renderHTML(t, "# !!!\n", Rules{HeadingIDs: true})
	if strings.Contains(out, "id=") {
		t.Fatalf("unexpected id for unsluggable heading: %q", out)
	}
}

func TestRenderHTMLClampsHeadingTag(t *testing.T) {
	out := renderHTML(t, "######## deep\n", Rules{})
	if !strings.Contains(out, "<h6>deep</h6>") {
		t.Fatalf("expected h6 clamp in %q", out)
	}
}

func TestRenderHTMLDocumentWrapper(t *testing.T) {
	out := renderHTML(t, "# Title\n", Rules{
		Document:    true,
		Stylesheets: []string{"main.css", "print.css"},
		BodyClass:   "article",
	})
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<link rel="stylesheet" href="main.css">`,
		`<link rel="stylesheet" href="print.css">`,
		`<body class="article">`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestRenderHTMLNilReader(t *testing.T) {
	if err := RenderHTML(HTMLRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Getting Started!": "getting-started",
		"  A  B  ":         "a-b",
		"CamelCase":        "camelcase",
		"123 go":           "123-go",
		"!!!":              "",
		"":                 "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
