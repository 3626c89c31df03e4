package rules

import (
	"testing"

	"github.com/arthur-debert/codemerge/pkg/config"
	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Hidden: config.Hidden{Allow: []string{"meson"}},
		Rules: []config.Rule{
			{Match: ".gn", Category: "ninja"},
			{Match: "Kbuild", Category: "make"},
			{Match: ".wrap", Category: "meson"},
		},
	}

	c, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, types.CategoryNinja, c.Classify("BUILD.gn"))
	assert.Equal(t, types.CategoryMake, c.Classify("Kbuild"))
	assert.Equal(t, types.CategoryMake, c.Classify("Makefile"))

	cat, ok := c.Eligible(".wrap")
	assert.Equal(t, types.CategoryMeson, cat)
	assert.True(t, ok, "meson dotfiles are allowed")

	_, ok = c.Eligible(".mk")
	assert.False(t, ok, "make is not in this hidden policy")
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"unknown rule category", &config.Config{Rules: []config.Rule{{Match: "x", Category: "gradle"}}}},
		{"empty match", &config.Config{Rules: []config.Rule{{Category: "make"}}}},
		{"unknown hidden category", &config.Config{Hidden: config.Hidden{Allow: []string{"gradle"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}
