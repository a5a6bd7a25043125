package scan

import (
	"path/filepath"
	"strings"

	"github.com/conneroisu/fileheader/internal/errors"
)

// MatchAll returns a predicate that accepts every path.
func MatchAll() func(string) bool {
	return func(string) bool { return true }
}

// NewPredicate builds a path predicate from include and exclude
// pattern lists. A path is accepted when at least one include pattern
// matches it (an empty include list accepts everything) and no exclude
// pattern matches. Patterns use filepath.Match syntax and are tried
// against the full path, its base name, and each path segment, so an
// exclude of ".git" drops every file under a .git directory. Malformed
// patterns are rejected up front.
func NewPredicate(include, exclude []string) (func(string) bool, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, errors.NewValidationError("pattern", pattern+": "+err.Error())
		}
	}

	return func(path string) bool {
		if len(include) > 0 && !matchesAny(include, path) {
			return false
		}

		return !matchesAny(exclude, path)
	}, nil
}

func matchesAny(patterns []string, path string) bool {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		for _, segment := range segments {
			if ok, _ := filepath.Match(pattern, segment); ok {
				return true
			}
		}
	}

	return false
}
