package compose

// NodeKind classifies a document node.
type NodeKind uint8

const (
	// NodeHeading is a heading with its marker count in Level.
	NodeHeading NodeKind = iota + 1
	// NodeParagraph is a single paragraph line.
	NodeParagraph
	// NodeList is a contiguous run of list items; the items are Children.
	NodeList
	// NodeListItem is one item inside a NodeList.
	NodeListItem
	// NodeHorizontalRule is a thematic break with no payload.
	NodeHorizontalRule
)

// Node is one element of an assembled document. Only NodeList nodes carry
// Children.
type Node struct {
	Kind     NodeKind
	Level    int
	Text     string
	Children []Node
}

// Document is the assembled form of a token sequence.
type Document struct {
	Nodes []Node
}

// BuildDocument groups a flat token sequence into a document: consecutive
// list items collapse into one NodeList, everything else maps one to one
// in input order.
func BuildDocument(tokens []Token) Document {
	nodes := make([]Node, 0, len(tokens))
	for i := 0; i < len(tokens); {
		switch tok := tokens[i]; tok.Kind {
		case tokenListItem:
			var items []Node
			for i < len(tokens) && tokens[i].Kind == tokenListItem {
				items = append(items, Node{Kind: NodeListItem, Text: tokens[i].Text})
				i++
			}
			nodes = append(nodes, Node{Kind: NodeList, Children: items})
		case tokenHeading:
			nodes = append(nodes, Node{Kind: NodeHeading, Level: tok.Level, Text: tok.Text})
			i++
		case tokenHorizontalRule:
			nodes = append(nodes, Node{Kind: NodeHorizontalRule})
			i++
		default:
			nodes = append(nodes, Node{Kind: NodeParagraph, Text: tok.Text})
			i++
		}
	}
	return Document{Nodes: nodes}
}
