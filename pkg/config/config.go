package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/types"
)

// Progress modes
const (
	ProgressAuto  = "auto"
	ProgressBar   = "bar"
	ProgressPterm = "pterm"
	ProgressNone  = "none"
)

// Config is the effective configuration for one run
type Config struct {
	Output   string   `koanf:"output" toml:"output"`
	Banner   string   `koanf:"banner" toml:"banner"`
	Progress string   `koanf:"progress" toml:"progress"`
	Dedupe   bool     `koanf:"dedupe" toml:"dedupe"`
	Workers  int      `koanf:"workers" toml:"workers"`
	MaxFiles int      `koanf:"max_files" toml:"max_files"`
	Exclude  []string `koanf:"exclude" toml:"exclude"`
	Hidden   Hidden   `koanf:"hidden" toml:"hidden"`
	Rules    []Rule   `koanf:"rules" toml:"rules,omitempty"`
}

// Hidden configures the dotfile policy
type Hidden struct {
	Allow []string `koanf:"allow" toml:"allow"`
}

// Rule is a user-supplied classification rule
type Rule struct {
	Match    string `koanf:"match" toml:"match"`
	Category string `koanf:"category" toml:"category"`
}

// Validate checks the configuration for values the pipeline cannot use
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New(errors.ErrConfigValid, "output must not be empty")
	}

	switch c.Progress {
	case ProgressAuto, ProgressBar, ProgressPterm, ProgressNone:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown progress mode %q", c.Progress).
			WithDetail("allowed", []string{ProgressAuto, ProgressBar, ProgressPterm, ProgressNone})
	}

	if c.Workers < 1 {
		return errors.Newf(errors.ErrConfigValid, "workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxFiles < 0 {
		return errors.Newf(errors.ErrConfigValid, "max_files must not be negative, got %d", c.MaxFiles)
	}

	for _, name := range c.Exclude {
		if name == "" || strings.ContainsRune(name, '/') {
			return errors.Newf(errors.ErrConfigValid, "exclude entry %q must be a bare directory name", name)
		}
	}

	if _, err := c.HiddenCategories(); err != nil {
		return err
	}

	for i, rule := range c.Rules {
		if rule.Match == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d has empty match", i)
		}
		if _, err := types.ParseCategory(rule.Category); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "rule %d (%s)", i, rule.Match)
		}
	}

	return nil
}

// HiddenCategories parses the dotfile-permitted category names
func (c *Config) HiddenCategories() ([]types.Category, error) {
	out := make([]types.Category, 0, len(c.Hidden.Allow))
	for _, name := range c.Hidden.Allow {
		cat, err := types.ParseCategory(name)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid hidden.allow entry")
		}
		out = append(out, cat)
	}
	return out, nil
}

// String renders a one-line summary for debug logs
func (c *Config) String() string {
	return fmt.Sprintf("output=%s progress=%s dedupe=%t workers=%d max_files=%d exclude=%d rules=%d",
		c.Output, c.Progress, c.Dedupe, c.Workers, c.MaxFiles, len(c.Exclude), len(c.Rules))
}
