package inspect

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

const maxIndent = 12

// Option configures [Serialize].
type Option func(*config)

type config struct {
	indent int
}

// WithIndent sets the spaces per nesting level, clamped to [0, 12].
func WithIndent(n int) Option {
	return func(c *config) {
		c.indent = max(0, min(n, maxIndent))
	}
}
