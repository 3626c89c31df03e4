package rules

import (
	"strings"

	"github.com/arthur-debert/codemerge/pkg/types"
)

// Rule maps a filename matcher to a category
type Rule struct {
	// Match is an exact filename, or a suffix when it starts with '.'
	Match    string
	Category types.Category
}

// IsSuffix reports whether the rule matches by suffix
func (r Rule) IsSuffix() bool {
	return strings.HasPrefix(r.Match, ".")
}

// Matches reports whether filename satisfies the rule
func (r Rule) Matches(filename string) bool {
	if r.IsSuffix() {
		return strings.HasSuffix(filename, r.Match)
	}
	return filename == r.Match
}
