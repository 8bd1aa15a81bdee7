// Package filter excludes files from directory operations by glob patterns
// matched against slash-separated paths relative to the input root.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME: * and ? cross directory
// separators, \ escapes the next character. "*.log" therefore excludes log
// files at any depth.
package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Excludes is a compiled set of exclusion patterns.
type Excludes struct {
	patterns []*regexp.Regexp
}

// New compiles the given patterns. Leading "./" is stripped so patterns match
// cleaned relative paths.
func New(patterns []string) (*Excludes, error) {
	excludes := &Excludes{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		expr, err := toRegexp(strings.TrimPrefix(pattern, "./"))
		if err != nil {
			return nil, err
		}

		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
		}

		excludes.patterns = append(excludes.patterns, compiled)
	}

	return excludes, nil
}

// Match reports whether the relative slash path hits any exclusion pattern.
func (e *Excludes) Match(rel string) bool {
	for _, re := range e.patterns {
		if re.MatchString(rel) {
			return true
		}
	}

	return false
}

// toRegexp converts one glob pattern to an anchored regexp string.
func toRegexp(pattern string) (string, error) {
	var buf strings.Builder

	buf.WriteString("^")

	for pos := 0; pos < len(pattern); pos++ {
		switch pattern[pos] {
		case '*':
			buf.WriteString(".*")
		case '?':
			buf.WriteString(".")
		case '\\':
			if pos+1 >= len(pattern) {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

			pos++

			buf.WriteString(regexp.QuoteMeta(string(pattern[pos])))
		default:
			buf.WriteString(regexp.QuoteMeta(string(pattern[pos])))
		}
	}

	buf.WriteString("$")

	return buf.String(), nil
}
