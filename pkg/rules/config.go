package rules

import (
	"github.com/arthur-debert/codemerge/pkg/config"
	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/types"
)

// FromConfig builds a classifier from configured rules and hidden policy
func FromConfig(cfg *config.Config) (*Classifier, error) {
	logger := logging.GetLogger("rules.config")

	extra, err := convertRules(cfg.Rules)
	if err != nil {
		return nil, err
	}

	hidden, err := cfg.HiddenCategories()
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("extraRules", len(extra)).
		Int("hiddenCategories", len(hidden)).
		Msg("Building classifier")

	return NewClassifier(extra, hidden), nil
}

func convertRules(in []config.Rule) ([]Rule, error) {
	out := make([]Rule, 0, len(in))
	for i, r := range in {
		if r.Match == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "rule %d has empty match", i)
		}
		cat, err := types.ParseCategory(r.Category)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "rule %d (%s)", i, r.Match)
		}
		out = append(out, Rule{Match: r.Match, Category: cat})
	}
	return out, nil
}
