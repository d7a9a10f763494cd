// Package ignore compiles gitignore-style pattern lists into a path
// predicate.
//
// Matching is deliberately simpler than full gitignore resolution: rules are
// evaluated in order with first match winning, directory rules (trailing
// slash) match by exact segment equality anywhere in the path, and all other
// rules are shell globs matched against the whole slash-normalized relative
// path. Negation with a leading '!' is not supported; such a line is kept as
// a literal pattern, which in practice never matches a real path. This is a
// known limitation, not a bug.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/danwakefield/fnmatch"

	"github.com/themetalleg/project-structure/internal/utils"
)

// GitDirRule is always appended after any loaded rules so version-control
// metadata is excluded even when the rules source is empty or missing.
const GitDirRule = ".git/"

// RuleSet is an ordered, immutable collection of ignore rules.
type RuleSet struct {
	rules  []rule
	extra  []string
	logger utils.Logger
}

// rule is one compiled pattern line. Exactly one of dirName and glob is
// meaningful: a trailing-slash source line becomes a dirName rule, anything
// else a glob rule.
type rule struct {
	raw     string
	dirName string
	glob    string
}

func compileRule(line string) rule {
	if strings.HasSuffix(line, "/") {
		if name := strings.TrimRight(line, "/"); name != "" {
			return rule{raw: line, dirName: name}
		}
	}
	return rule{raw: line, glob: line}
}

// New builds a RuleSet from pattern lines. Blank lines and '#' comments are
// dropped, and the version-control exclusion is appended last.
func New(patterns []string, opts ...Option) *RuleSet {
	rs := &RuleSet{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(rs)
	}

	for _, line := range append(patterns, rs.extra...) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rs.rules = append(rs.rules, compileRule(line))
	}
	rs.rules = append(rs.rules, compileRule(GitDirRule))

	rs.logger.Debug("ignore: compiled %d rules", len(rs.rules))
	return rs
}

// Load reads pattern lines from a rules file and builds a RuleSet.
// When the file cannot be read, Load still returns a usable RuleSet holding
// only the built-in version-control exclusion, together with the error;
// the caller decides whether a missing rules source is fatal.
func Load(path string, opts ...Option) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(nil, opts...), fmt.Errorf("ignore: failed to open rules file '%s': %w", path, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		patterns = append(patterns, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return New(nil, opts...), fmt.Errorf("ignore: failed to read rules file '%s': %w", path, err)
	}

	return New(patterns, opts...), nil
}

// ShouldIgnore reports whether relPath matches any rule. The path is
// normalized to forward slashes before matching; rules are checked in order
// and the first match wins.
func (rs *RuleSet) ShouldIgnore(relPath string) bool {
	if rs == nil || relPath == "" || relPath == "." {
		return false
	}

	normalized := strings.ReplaceAll(relPath, "\\", "/")
	segments := strings.Split(normalized, "/")

	for _, r := range rs.rules {
		if r.dirName != "" {
			for _, segment := range segments {
				if segment == r.dirName {
					rs.logger.Debug("ignore: %q matched directory rule %q", normalized, r.raw)
					return true
				}
			}
			continue
		}
		if fnmatch.Match(r.glob, normalized, 0) {
			rs.logger.Debug("ignore: %q matched pattern %q", normalized, r.raw)
			return true
		}
	}
	return false
}

// Len returns the number of compiled rules, including the built-in
// version-control exclusion.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}
