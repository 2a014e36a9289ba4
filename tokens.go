package compose

// Token is one classified unit of source text.
type Token struct {
	Kind  TokenKind
	Level int    // heading marker count, zero for other kinds
	Text  string // span content, never contains a newline
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and callers.
type TokenKind = tokenKind

const (
	tokenNone tokenKind = iota
	tokenHeading
	tokenListItem
	tokenHorizontalRule
	tokenParagraph
)

const (
	// TokenHeading represents a heading line introduced by one or more '#'.
	TokenHeading tokenKind = tokenHeading
	// TokenListItem represents a list item introduced by "- ".
	TokenListItem tokenKind = tokenListItem
	// TokenHorizontalRule represents a run of three or more '-'.
	TokenHorizontalRule tokenKind = tokenHorizontalRule
	// TokenParagraph represents any other non-empty line.
	TokenParagraph tokenKind = tokenParagraph
)
