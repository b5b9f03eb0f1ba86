// Package filter decides which path segments are excluded from traversal.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern lists the build, VCS and dependency directories skipped when no pattern is supplied.
const DefaultPattern = `bin|obj|\.git|\.vs|\.vscode|\.idea|node_modules|packages|TestResults|dist|build|out`

const (
	anchoredPatternFormat = "(?i)^(?:%s)$"
	invalidPatternFormat  = "invalid filter pattern %q: %w"
	pathSegmentSeparator  = "/"
)

// ErrEmptyPattern is returned when the filter pattern has no content.
var ErrEmptyPattern = errors.New("filter pattern is empty")

// Filter matches whole path segments case-insensitively.
type Filter struct {
	pattern    string
	expression *regexp.Regexp
}

// New compiles a pipe-delimited alternation pattern into a Filter.
func New(pattern string) (*Filter, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyPattern
	}
	expression, compileError := regexp.Compile(fmt.Sprintf(anchoredPatternFormat, pattern))
	if compileError != nil {
		return nil, fmt.Errorf(invalidPatternFormat, pattern, compileError)
	}
	return &Filter{pattern: pattern, expression: expression}, nil
}

// IsIgnored reports whether a single path segment matches the filter.
func (filter *Filter) IsIgnored(segmentName string) bool {
	if filter == nil {
		return false
	}
	return filter.expression.MatchString(segmentName)
}

// IsPathIgnored reports whether any segment of a relative path matches the filter.
// Both forward and backward slashes separate segments.
func (filter *Filter) IsPathIgnored(relativePath string) bool {
	normalizedPath := strings.ReplaceAll(relativePath, "\\", pathSegmentSeparator)
	for _, segment := range strings.Split(normalizedPath, pathSegmentSeparator) {
		if segment == "" || segment == "." {
			continue
		}
		if filter.IsIgnored(segment) {
			return true
		}
	}
	return false
}

// Pattern returns the source pattern the filter was built from.
func (filter *Filter) Pattern() string {
	if filter == nil {
		return ""
	}
	return filter.pattern
}
