package rex

import (
	"strings"

	"github.com/coregx/rex/bracket"
)

// Config controls how a pattern is compiled and matched.
//
// The zero value is usable: every field falls back to its default. Flags
// mirror the engine's inline flags and apply to the whole pattern.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.CaseInsensitive = true
//	p, err := rex.CompileWithConfig(`key: {}`, config)
type Config struct {
	// CaseInsensitive makes matching case-insensitive, like the inline
	// flag (?i).
	// Default: false
	CaseInsensitive bool

	// Multiline makes ^ and $ match at line boundaries, like the inline
	// flag (?m).
	// Default: false
	Multiline bool

	// DotAll lets . match newlines, like the inline flag (?s). It also
	// lets bracket regions jumped by the mark span multiple lines when
	// Brackets is left nil.
	// Default: false
	DotAll bool

	// Mark is the token that stands for a balanced bracket region in the
	// pattern. The mark is recognized textually, even inside character
	// classes, so pick another mark when the literal text is needed.
	// Default: "{}"
	Mark string

	// Brackets is the set of pairs a region mark may jump. When nil, the
	// standard pairs ()[]{}  are used, crossing lines only if DotAll is
	// set.
	// Default: nil
	Brackets *bracket.Set

	// MaxSegments caps the number of segments the mark may split the
	// pattern into. Every contiguous segment range is compiled up front,
	// so the cap bounds compile work at roughly MaxSegments² patterns.
	// Default: 16
	MaxSegments int
}

// DefaultConfig returns a configuration with the standard mark and bracket
// pairs and all flags off.
func DefaultConfig() Config {
	return Config{
		Mark:        "{}",
		MaxSegments: 16,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if strings.Contains(c.Mark, "\n") {
		return &ConfigError{Field: "Mark", Message: "must not contain newlines"}
	}
	if c.MaxSegments < 0 {
		return &ConfigError{Field: "MaxSegments", Message: "must not be negative"}
	}
	return nil
}

// withDefaults fills unset fields with their defaults.
func (c Config) withDefaults() Config {
	if c.Mark == "" {
		c.Mark = "{}"
	}
	if c.MaxSegments == 0 {
		c.MaxSegments = 16
	}
	return c
}

// flagPrefix renders the enabled flags as an inline flag group, or "" when
// no flag is set.
func (c Config) flagPrefix() string {
	flags := ""
	if c.CaseInsensitive {
		flags += "i"
	}
	if c.Multiline {
		flags += "m"
	}
	if c.DotAll {
		flags += "s"
	}
	if flags == "" {
		return ""
	}
	return "(?" + flags + ")"
}

// brackets returns the configured bracket set, deriving the default set
// from the DotAll flag when none is given.
func (c Config) brackets() *bracket.Set {
	if c.Brackets != nil {
		return c.Brackets
	}
	pairs := bracket.DefaultPairs()
	if c.DotAll {
		for i := range pairs {
			pairs[i] = pairs[i].AcrossLines()
		}
	}
	return bracket.MustSet(pairs...)
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}

// An Option adjusts a Config when compiling through Wrap.
type Option func(*Config)

// CaseInsensitive makes matching case-insensitive.
func CaseInsensitive() Option {
	return func(c *Config) { c.CaseInsensitive = true }
}

// Multiline makes ^ and $ match at line boundaries.
func Multiline() Option {
	return func(c *Config) { c.Multiline = true }
}

// DotAll lets . match newlines and default bracket regions span lines.
func DotAll() Option {
	return func(c *Config) { c.DotAll = true }
}

// WithMark sets the token that marks a bracket region in the pattern.
func WithMark(mark string) Option {
	return func(c *Config) { c.Mark = mark }
}

// WithBrackets sets the pairs a region mark may jump.
func WithBrackets(set *bracket.Set) Option {
	return func(c *Config) { c.Brackets = set }
}

// WithMaxSegments caps the number of segments the mark may produce.
func WithMaxSegments(n int) Option {
	return func(c *Config) { c.MaxSegments = n }
}
