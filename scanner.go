package compose

// Tokenize converts src into a flat sequence of structural tokens in one
// left-to-right pass with one character of lookahead and no backtracking.
// It never fails: every input, including the empty string, yields a
// (possibly empty) token sequence. Anything that does not satisfy a more
// specific rule falls through to the paragraph rule.
func Tokenize(src string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(src) {
		for _, match := range matchers {
			tok, next, ok := match(src, pos)
			if !ok {
				continue
			}
			if tok.Kind != tokenNone {
				tokens = append(tokens, tok)
			}
			pos = next
			break
		}
	}
	return tokens
}

// matchFunc inspects src at pos and either consumes a construct, returning
// its token (Kind tokenNone when the construct emits nothing) and the
// cursor position after it, or declines.
type matchFunc func(src string, pos int) (Token, int, bool)

// matchers is the fixed dispatch order. The first matcher that accepts
// wins, so precedence is heading > list item > rule > blank line >
// paragraph; matchParagraph accepts any remaining input, which guarantees
// the cursor advances every iteration.
var matchers = []matchFunc{
	matchHeading,
	matchListItem,
	matchHorizontalRule,
	matchNewline,
	matchParagraph,
}

func matchHeading(src string, pos int) (Token, int, bool) {
	if src[pos] != '#' {
		return Token{}, pos, false
	}
	level := 0
	for pos < len(src) && src[pos] == '#' {
		level++
		pos++
	}
	for pos < len(src) && src[pos] == ' ' {
		pos++
	}
	text, next := lineSpan(src, pos)
	return Token{Kind: tokenHeading, Level: level, Text: text}, next, true
}

func matchListItem(src string, pos int) (Token, int, bool) {
	if src[pos] != '-' || pos+1 >= len(src) || src[pos+1] != ' ' {
		return Token{}, pos, false
	}
	text, next := lineSpan(src, pos+2)
	return Token{Kind: tokenListItem, Text: text}, next, true
}

func matchHorizontalRule(src string, pos int) (Token, int, bool) {
	if pos+3 > len(src) || src[pos] != '-' || src[pos+1] != '-' || src[pos+2] != '-' {
		return Token{}, pos, false
	}
	next := pos + 3
	for next < len(src) && src[next] == '-' {
		next++
	}
	// Trailing non-dash characters on the same line are left for the next
	// iteration to classify.
	return Token{Kind: tokenHorizontalRule}, next, true
}

func matchNewline(src string, pos int) (Token, int, bool) {
	if src[pos] != '\n' {
		return Token{}, pos, false
	}
	return Token{}, pos + 1, true
}

func matchParagraph(src string, pos int) (Token, int, bool) {
	text, next := lineSpan(src, pos)
	if text == "" {
		return Token{}, next, true
	}
	return Token{Kind: tokenParagraph, Text: text}, next, true
}

// lineSpan returns the characters from pos up to, not including, the next
// newline or the end of src, and the cursor position at that boundary. The
// newline itself is consumed by matchNewline on the next iteration.
func lineSpan(src string, pos int) (string, int) {
	end := pos
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[pos:end], end
}
