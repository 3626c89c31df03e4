package core

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/merge"
	"github.com/arthur-debert/codemerge/pkg/progress"
	"github.com/arthur-debert/codemerge/pkg/types"
)

// VersionPlaceholder in the banner is replaced by the running version
const VersionPlaceholder = "{version}"

// MergeOptions defines the options for Merge.
type MergeOptions struct {
	CommonOptions

	// Version is substituted into the banner.
	Version string

	// ProgressOut receives the progress display; nil means stdout.
	ProgressOut io.Writer
}

// Merge walks the tree and writes every collected file into the configured
// output, replacing any previous content. Recoverable walk problems are
// logged and counted; everything else aborts the run.
func Merge(ctx context.Context, opts MergeOptions) (*types.MergeResult, error) {
	logger := logging.GetLogger("core.merge")
	defer logging.LogOperationStart(logger, "merge")()

	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}

	fsys := opts.fs()
	root := opts.root()

	coll, walked, err := collect(ctx, fsys, cfg, root)
	if err != nil {
		return nil, err
	}

	collections := withoutPath(coll.Sorted(), outputIdentity(fsys, cfg.Output))

	f, err := merge.CreateOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	progressOut := opts.ProgressOut
	if progressOut == nil {
		progressOut = os.Stdout
	}

	buffered := bufio.NewWriterSize(f, merge.BufferSize)
	writer := merge.NewWriter(fsys, buffered, merge.Options{
		Banner:   ExpandBanner(cfg.Banner, opts.Version),
		Reporter: progress.New(cfg.Progress, progressOut),
	})

	stats, err := writer.Write(ctx, collections)
	if flushErr := buffered.Flush(); err == nil && flushErr != nil {
		err = errors.Wrapf(flushErr, errors.ErrCopy, "cannot flush %s", cfg.Output)
	}
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = errors.Wrapf(closeErr, errors.ErrCopy, "cannot close %s", cfg.Output)
	}
	if err != nil {
		return nil, err
	}

	result := &types.MergeResult{
		Root:      absRoot(root),
		Output:    cfg.Output,
		Processed: stats.Processed,
		Written:   stats.Written,
		Skipped:   stats.Skipped,
		Problems:  len(walked.Problems),
	}

	logger.Info().
		Str("output", result.Output).
		Int("processed", result.Processed).
		Int("written", result.Written).
		Int("problems", result.Problems).
		Msg("Merge finished")

	return result, nil
}

// ExpandBanner substitutes the version placeholder
func ExpandBanner(banner, version string) string {
	if version == "" {
		version = "dev"
	}
	return strings.ReplaceAll(banner, VersionPlaceholder, version)
}

// outputIdentity returns the canonical path the output file has or will
// have, so a previous run's output is never merged into the next one.
func outputIdentity(fsys types.FS, output string) string {
	abs, err := filepath.Abs(output)
	if err != nil {
		return output
	}
	if real, err := fsys.Realpath(abs); err == nil {
		return real
	}
	dir, err := fsys.Realpath(filepath.Dir(abs))
	if err != nil {
		return abs
	}
	return filepath.Join(dir, filepath.Base(abs))
}

func withoutPath(collections [][]string, path string) [][]string {
	logger := logging.GetLogger("core.merge")
	for i, paths := range collections {
		kept := paths[:0]
		for _, p := range paths {
			if p == path {
				logger.Debug().
					Str("path", p).
					Msg("Leaving output file out of the merge")
				continue
			}
			kept = append(kept, p)
		}
		collections[i] = kept
	}
	return collections
}
