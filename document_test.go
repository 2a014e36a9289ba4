package compose

import (
	"reflect"
	"testing"
)

func TestBuildDocumentGroupsListRuns(t *testing.T) {
	doc := BuildDocument(Tokenize("- a\n- b\n\nbetween\n\n- c\n"))
	want := []Node{
		{Kind: NodeList, Children: []Node{
			{Kind: NodeListItem, Text: "a"},
			{Kind: NodeListItem, Text: "b"},
		}},
		{Kind: NodeParagraph, Text: "between"},
		{Kind: NodeList, Children: []Node{
			{Kind: NodeListItem, Text: "c"},
		}},
	}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Fatalf("got %v, want %v", doc.Nodes, want)
	}
}

func TestBuildDocumentPreservesOrder(t *testing.T) {
	doc := BuildDocument(Tokenize("# Top\npara\n---\n- item\n"))
	want := []Node{
		{Kind: NodeHeading, Level: 1, Text: "Top"},
		{Kind: NodeParagraph, Text: "para"},
		{Kind: NodeHorizontalRule},
		{Kind: NodeList, Children: []Node{
			{Kind: NodeListItem, Text: "item"},
		}},
	}
	if !reflect.DeepEqual(doc.Nodes, want) {
		t.Fatalf("got %v, want %v", doc.Nodes, want)
	}
}

func TestBuildDocumentEmpty(t *testing.T) {
	doc := BuildDocument(nil)
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected empty document, got %v", doc.Nodes)
	}
}

func TestBuildDocumentKeepsHeadingLevel(t *testing.T) {
	doc := BuildDocument(Tokenize("######## deep\n"))
	if len(doc.Nodes) != 1 || doc.Nodes[0].Level != 8 {
		t.Fatalf("expected one level-8 heading, got %v", doc.Nodes)
	}
}
