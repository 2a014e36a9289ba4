package compose

import (
	"sort"
	"strings"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the text renderer.
type Styles struct {
	Text           Style
	Heading        [6]Style
	ListMarker     Style
	HorizontalRule Style
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
)

func ansi256(color int) string {
	return "\x1b[38;5;" + itoa(color) + "m"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func headingStyles(colors [6]int) [6]Style {
	var out [6]Style
	for i, c := range colors {
		out[i] = style(ansiBold, ansi256(c))
	}
	return out
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Heading:        headingStyles([6]int{39, 45, 51, 87, 123, 159}),
		ListMarker:     style(ansi256(215)),
		HorizontalRule: style(ansiDim),
	}},
	"mono": theme{name: "mono", styles: Styles{
		Heading:        headingStyles([6]int{255, 252, 249, 246, 243, 240}),
		ListMarker:     style(ansiBold),
		HorizontalRule: style(ansiDim),
	}},
	"gruvbox": theme{name: "gruvbox", styles: Styles{
		Text:           style(ansi256(223)),
		Heading:        headingStyles([6]int{208, 214, 142, 109, 175, 108}),
		ListMarker:     style(ansi256(142)),
		HorizontalRule: style(ansi256(245)),
	}},
	"nord": theme{name: "nord", styles: Styles{
		Text:           style(ansi256(253)),
		Heading:        headingStyles([6]int{110, 111, 109, 150, 139, 180}),
		ListMarker:     style(ansi256(143)),
		HorizontalRule: style(ansi256(240)),
	}},
	"dracula": theme{name: "dracula", styles: Styles{
		Text:           style(ansi256(253)),
		Heading:        headingStyles([6]int{141, 117, 84, 212, 228, 215}),
		ListMarker:     style(ansi256(84)),
		HorizontalRule: style(ansi256(61)),
	}},
	"solarized-dark": theme{name: "solarized-dark", styles: Styles{
		Text:           style(ansi256(244)),
		Heading:        headingStyles([6]int{33, 37, 64, 136, 166, 125}),
		ListMarker:     style(ansi256(37)),
		HorizontalRule: style(ansi256(240)),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
