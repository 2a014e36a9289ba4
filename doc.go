// Package compose turns a lightweight Markdown dialect into rendered output.
//
// The entry stage is a lexical scanner: Tokenize performs a single
// left-to-right pass over the source and emits a flat sequence of typed
// tokens, one per structural unit (heading, list item, horizontal rule,
// paragraph line). The scanner is total: any byte sequence tokenizes, and
// anything that does not match a more specific construct degrades to a
// paragraph.
//
// On top of the scanner, BuildDocument assembles the token sequence into a
// small document tree, and Render and RenderHTML produce ANSI terminal
// output and HTML respectively.
//
// Core properties:
//   - One pass, bounded one-character lookahead, no backtracking
//   - Fixed rule precedence: heading > list item > rule > blank line > paragraph
//   - No error outcomes from tokenization
//   - Theme-driven terminal styling via ANSI prefixes
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, text out.\n")
//	err := compose.Render(compose.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  compose.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package compose
