package compose

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	ruleWidth int
	bullet    string
}

// WithRuleWidth sets the dash count used for horizontal rules.
func WithRuleWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		if width > 0 {
			cfg.ruleWidth = width
		}
	}
}

// WithBullet sets the marker prefix used for list items.
func WithBullet(bullet string) RenderOption {
	return func(cfg *renderConfig) {
		if bullet != "" {
			cfg.bullet = bullet
		}
	}
}
