package core

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/codemerge/pkg/collector"
	"github.com/arthur-debert/codemerge/pkg/config"
	"github.com/arthur-debert/codemerge/pkg/filesystem"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/rules"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/arthur-debert/codemerge/pkg/walker"
)

// CommonOptions are shared by every pipeline entry point
type CommonOptions struct {
	// Root is the directory to scan; empty means the working directory.
	Root string

	// ConfigFile is an explicit configuration file.
	ConfigFile string

	// Overrides holds command-line configuration values.
	Overrides map[string]interface{}

	// FS replaces the OS filesystem, mostly for tests.
	FS types.FS
}

func (o CommonOptions) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}

func (o CommonOptions) fs() types.FS {
	if o.FS == nil {
		return filesystem.NewOS()
	}
	return o.FS
}

func (o CommonOptions) load() (*config.Config, error) {
	return config.Load(config.LoadOptions{
		Root:       o.root(),
		ConfigFile: o.ConfigFile,
		Overrides:  o.Overrides,
	})
}

// collect walks root with the configured classifier and returns the filled
// collector
func collect(ctx context.Context, fsys types.FS, cfg *config.Config, root string) (*collector.Collector, *walker.Result, error) {
	logger := logging.GetLogger("core.collect")

	classifier, err := rules.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	coll := collector.New(collector.Options{
		Dedupe: cfg.Dedupe,
		Limit:  cfg.MaxFiles,
	})

	w := walker.New(fsys, classifier, coll, walker.Options{
		Exclude: cfg.Exclude,
		Workers: cfg.Workers,
	})

	result, err := w.Walk(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().
		Str("root", root).
		Int("files", coll.Total()).
		Int("problems", len(result.Problems)).
		Msg("Collection complete")

	return coll, result, nil
}

func absRoot(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}
