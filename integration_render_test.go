package compose

import (
	"strings"
	"testing"
)

func TestRenderWholeDocument(t *testing.T) {
	src := "# Notes\n\nIntro paragraph.\n\n- alpha\n- beta\n---\nClosing.\n"
	out := renderBoring(t, src, 0)
	want := "# Notes\n" +
		"Intro paragraph.\n\n" +
		"• alpha\n" +
		"• beta\n" +
		strings.Repeat("-", 40) + "\n" +
		"Closing.\n\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderAllTextSurvives(t *testing.T) {
	src := "## Heading words\nFirst paragraph text.\n\n- one thing\n- two thing\n---\nTail paragraph.\n"
	out := stripANSI(renderText(t, src, 0))
	for _, want := range []string{
		"Heading words",
		"First paragraph text.",
		"one thing",
		"two thing",
		"Tail paragraph.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in rendered output %q", want, out)
		}
	}
}
