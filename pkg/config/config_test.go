package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Root: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "merged.txt", cfg.Output)
	assert.Equal(t, ProgressAuto, cfg.Progress)
	assert.False(t, cfg.Dedupe)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 0, cfg.MaxFiles)
	assert.Contains(t, cfg.Exclude, "build")
	assert.Contains(t, cfg.Exclude, "vendor")
	assert.Contains(t, cfg.Exclude, "node_modules")
	assert.Empty(t, cfg.Rules)

	hidden, err := cfg.HiddenCategories()
	require.NoError(t, err)
	assert.Equal(t, []types.Category{
		types.CategoryMake, types.CategoryMeson, types.CategoryCMake,
		types.CategoryBazel, types.CategoryQMake,
	}, hidden)
}

func TestLoadLayering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".codemerge.toml"), `
output = "project.txt"
workers = 2
exclude = ["third_party"]

[[rules]]
match = ".gn"
category = "ninja"
`)
	explicit := filepath.Join(t.TempDir(), "explicit.toml")
	writeFile(t, explicit, `
workers = 3
progress = "bar"
`)

	t.Run("project file overrides defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{Root: root})
		require.NoError(t, err)
		assert.Equal(t, "project.txt", cfg.Output)
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, []string{"third_party"}, cfg.Exclude)
		require.Len(t, cfg.Rules, 1)
		assert.Equal(t, Rule{Match: ".gn", Category: "ninja"}, cfg.Rules[0])
	})

	t.Run("explicit file overrides project", func(t *testing.T) {
		cfg, err := Load(LoadOptions{Root: root, ConfigFile: explicit})
		require.NoError(t, err)
		assert.Equal(t, "project.txt", cfg.Output)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, ProgressBar, cfg.Progress)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		t.Setenv("CODEMERGE_WORKERS", "4")
		t.Setenv("CODEMERGE_DEDUPE", "true")
		t.Setenv("CODEMERGE_HIDDEN__ALLOW", "make,cmake")
		cfg, err := Load(LoadOptions{Root: root, ConfigFile: explicit})
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Workers)
		assert.True(t, cfg.Dedupe)
		assert.Equal(t, []string{"make", "cmake"}, cfg.Hidden.Allow)
	})

	t.Run("flags override everything", func(t *testing.T) {
		t.Setenv("CODEMERGE_OUTPUT", "env.txt")
		cfg, err := Load(LoadOptions{
			Root:      root,
			Overrides: map[string]interface{}{"output": "flag.txt", "progress": "none"},
		})
		require.NoError(t, err)
		assert.Equal(t, "flag.txt", cfg.Output)
		assert.Equal(t, ProgressNone, cfg.Progress)
	})
}

func TestLoadSecondProjectName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "codemerge.toml"), `output = "plain.txt"`)

	cfg, err := Load(LoadOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, "plain.txt", cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{Root: t.TempDir(), ConfigFile: "/does/not/exist.toml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".codemerge.toml"), `output = [`)
		_, err := Load(LoadOptions{Root: root})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(LoadOptions{
			Root:      t.TempDir(),
			Overrides: map[string]interface{}{"progress": "fancy"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Output:   "merged.txt",
			Progress: ProgressAuto,
			Workers:  1,
			Exclude:  []string{"build"},
			Hidden:   Hidden{Allow: []string{"make"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output", func(c *Config) { c.Output = " " }},
		{"bad progress", func(c *Config) { c.Progress = "spinner" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative max files", func(c *Config) { c.MaxFiles = -1 }},
		{"exclude with slash", func(c *Config) { c.Exclude = []string{"a/b"} }},
		{"unknown hidden category", func(c *Config) { c.Hidden.Allow = []string{"gradle"} }},
		{"rule without match", func(c *Config) { c.Rules = []Rule{{Category: "make"}} }},
		{"rule with bad category", func(c *Config) { c.Rules = []Rule{{Match: "x", Category: "gradle"}} }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestMarshal(t *testing.T) {
	cfg, err := Load(LoadOptions{Root: t.TempDir()})
	require.NoError(t, err)

	out, err := Marshal(cfg)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "output = 'merged.txt'")
	assert.Contains(t, text, "[hidden]")
	assert.NotContains(t, text, "rules")
}
