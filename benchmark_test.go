package compose

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func benchDocument() string {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("## Section heading\n")
		b.WriteString("A paragraph of ordinary prose that is long enough to wrap a few times at typical terminal widths.\n\n")
		b.WriteString("- first item\n- second item\n- third item\n")
		b.WriteString("---\n")
	}
	return b.String()
}

func BenchmarkTokenize(b *testing.B) {
	src := benchDocument()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(src)
	}
}

func BenchmarkBuildDocument(b *testing.B) {
	tokens := Tokenize(benchDocument())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildDocument(tokens)
	}
}

func BenchmarkRender(b *testing.B) {
	data := []byte(benchDocument())
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = Render(RenderRequest{
			Reader: reader,
			Writer: io.Discard,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	}
}

func BenchmarkRenderHTML(b *testing.B) {
	data := []byte(benchDocument())
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = RenderHTML(HTMLRequest{
			Reader: reader,
			Writer: io.Discard,
			Rules:  Rules{HeadingIDs: true},
		})
	}
}
