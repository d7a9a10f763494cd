package ignore

import "github.com/themetalleg/project-structure/internal/utils"

// Option configures a RuleSet during construction.
type Option func(*RuleSet)

// WithLogger sets the logger used for match tracing.
func WithLogger(logger utils.Logger) Option {
	return func(rs *RuleSet) {
		if logger != nil {
			rs.logger = logger
		}
	}
}

// WithExtraRules appends additional pattern lines after the loaded rules.
// They obey the same syntax as the rules file and are still evaluated before
// the built-in version-control exclusion.
func WithExtraRules(patterns []string) Option {
	return func(rs *RuleSet) {
		rs.extra = append(rs.extra, patterns...)
	}
}
