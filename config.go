package compose

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Rules holds HTML rendering rules.
type Rules struct {
	Document        bool     // wrap output in a full HTML document
	Stylesheets     []string // stylesheet HREFs for the document head
	BodyClass       string   // optional class for the body element
	HeadingIDs      bool     // emit slugified id attributes on headings
	HeadingIDPrefix string   // prefix prepended to heading ids
}

// Config holds build settings loaded from a config file.
type Config struct {
	Format    string // "text" or "html"
	Theme     string
	Width     int
	RuleWidth int
	Bullet    string
	HTML      Rules
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Format:    "text",
		Theme:     "default",
		RuleWidth: defaultRuleWidth,
		Bullet:    defaultBullet,
	}
}

// ParseConfig parses a line-oriented "key: value" config. Blank lines and
// lines starting with '#' are skipped; single or double quotes around a
// value are stripped. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return Config{}, fmt.Errorf("config: line %d: missing ':'", i+1)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = unquote(strings.TrimSpace(value))
		if err := cfg.set(key, value); err != nil {
			return Config{}, fmt.Errorf("config: line %d: %w", i+1, err)
		}
	}
	return cfg, nil
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(data)
}

func (c *Config) set(key, value string) error {
	switch key {
	case "format", "output":
		if value != "text" && value != "html" {
			return fmt.Errorf("format %q: expected text or html", value)
		}
		c.Format = value
	case "theme":
		c.Theme = value
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("width %q: expected non-negative integer", value)
		}
		c.Width = n
	case "rule-width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("rule-width %q: expected positive integer", value)
		}
		c.RuleWidth = n
	case "bullet":
		c.Bullet = value
	case "html-document":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("html-document %q: expected boolean", value)
		}
		c.HTML.Document = b
	case "stylesheet":
		c.HTML.Stylesheets = append(c.HTML.Stylesheets, value)
	case "body-class":
		c.HTML.BodyClass = value
	case "heading-ids":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("heading-ids %q: expected boolean", value)
		}
		c.HTML.HeadingIDs = b
	case "heading-id-prefix":
		c.HTML.HeadingIDPrefix = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
