package rules

import (
	"strings"

	"github.com/arthur-debert/codemerge/pkg/types"
)

// Classifier maps filenames to categories. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	rules     []Rule
	dotfileOK [types.CategoryCount]bool
}

// NewClassifier builds a classifier. Extra rules take precedence over the
// built-in table; hidden lists the dotfile-permitted categories.
func NewClassifier(extra []Rule, hidden []types.Category) *Classifier {
	defaults := DefaultRules()
	c := &Classifier{
		rules: make([]Rule, 0, len(extra)+len(defaults)),
	}
	c.rules = append(c.rules, extra...)
	c.rules = append(c.rules, defaults...)

	for _, cat := range hidden {
		if cat.Valid() {
			c.dotfileOK[cat] = true
		}
	}
	return c
}

// NewDefaultClassifier uses the built-in table and hidden policy
func NewDefaultClassifier() *Classifier {
	return NewClassifier(nil, DefaultHidden)
}

// Classify returns the category of filename, or types.Unclassified.
// The hidden-file policy is not applied; see Eligible.
func (c *Classifier) Classify(filename string) types.Category {
	for _, rule := range c.rules {
		if rule.Matches(filename) {
			return rule.Category
		}
	}
	if hasAnySuffix(filename, headerExtensions) {
		return types.CategoryHeader
	}
	if hasAnySuffix(filename, sourceExtensions) {
		return types.CategorySource
	}
	return types.Unclassified
}

// Eligible classifies filename and applies the hidden-file policy
func (c *Classifier) Eligible(filename string) (types.Category, bool) {
	cat := c.Classify(filename)
	if cat == types.Unclassified {
		return cat, false
	}
	if strings.HasPrefix(filename, ".") && !c.dotfileOK[cat] {
		return cat, false
	}
	return cat, true
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
