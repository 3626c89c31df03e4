package walker

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/rules"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MaxPathLength is the default limit on constructed paths, in bytes
const MaxPathLength = 4096

// Sink receives classified canonical paths
type Sink interface {
	Add(cat types.Category, path string) error
}

// Options configures a Walker
type Options struct {
	// Exclude lists directory basenames pruned at any depth.
	Exclude []string

	// Workers above 1 walks subdirectories concurrently.
	Workers int

	// MaxPathLength overrides the default path limit when positive.
	MaxPathLength int
}

// Problem is a recoverable per-entry failure
type Problem struct {
	Path string
	Err  error
}

// Result summarizes a walk
type Result struct {
	Registered int
	Problems   []Problem
}

// Walker walks directory trees. A Walker holds no per-walk state and can be
// reused.
type Walker struct {
	fs         types.FS
	classifier *rules.Classifier
	sink       Sink
	exclude    map[string]struct{}
	workers    int
	maxPath    int
	logger     zerolog.Logger
}

// New creates a walker
func New(fsys types.FS, classifier *rules.Classifier, sink Sink, opts Options) *Walker {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	maxPath := opts.MaxPathLength
	if maxPath <= 0 {
		maxPath = MaxPathLength
	}

	return &Walker{
		fs:         fsys,
		classifier: classifier,
		sink:       sink,
		exclude:    exclude,
		workers:    workers,
		maxPath:    maxPath,
		logger:     logging.GetLogger("walker"),
	}
}

// run is the state of a single Walk call
type run struct {
	*Walker
	group *errgroup.Group

	mu         sync.Mutex
	problems   []Problem
	registered int
}

// Walk enumerates root and registers every eligible file with the sink
func (w *Walker) Walk(ctx context.Context, root string) (*Result, error) {
	done := logging.LogOperationStart(w.logger, "walk")
	defer done()

	r := &run{Walker: w}

	var err error
	if w.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(w.workers)
		r.group = g
		g.Go(func() error { return r.walkDir(gctx, root, "", true) })
		err = g.Wait()
	} else {
		err = r.walkDir(ctx, root, "", true)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(r.problems, func(i, j int) bool {
		return r.problems[i].Path < r.problems[j].Path
	})

	w.logger.Info().
		Str("root", root).
		Int("registered", r.registered).
		Int("problems", len(r.problems)).
		Msg("Walk complete")

	return &Result{Registered: r.registered, Problems: r.problems}, nil
}

// Excluded reports whether any component of the root-relative path is in
// the exclusion set
func (w *Walker) Excluded(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if _, ok := w.exclude[part]; ok {
			return true
		}
	}
	return false
}

func (r *run) walkDir(ctx context.Context, dir, rel string, isRoot bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		if isRoot {
			return errors.Wrapf(err, errors.ErrTraversal, "cannot read %s", dir).
				WithDetail("path", dir)
		}
		r.problem(dir, errors.Wrap(err, errors.ErrAccess, "cannot read directory"))
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}
		if r.Excluded(entryRel) {
			r.logger.Debug().Str("path", entryRel).Msg("Excluded")
			continue
		}

		full := filepath.Join(dir, name)
		if len(full) >= r.maxPath {
			r.problem(full, errors.Newf(errors.ErrPathTooLong,
				"path of %d bytes exceeds limit of %d", len(full), r.maxPath))
			continue
		}

		if err := r.visit(ctx, dir, name, full, entryRel); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) visit(ctx context.Context, dir, name, full, rel string) error {
	info, err := r.fs.Lstat(full)
	if err != nil {
		r.problem(full, errors.Wrap(err, errors.ErrAccess, "cannot stat entry"))
		return nil
	}

	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return r.visitSymlink(dir, name, full)
	case mode.IsDir():
		return r.descend(ctx, full, rel)
	case mode.IsRegular():
		return r.register(name, full)
	default:
		r.logger.Trace().Str("path", full).Str("mode", mode.String()).Msg("Ignoring special file")
		return nil
	}
}

func (r *run) visitSymlink(dir, name, full string) error {
	target, err := r.fs.Readlink(full)
	if err != nil {
		r.problem(full, errors.Wrap(err, errors.ErrAccess, "cannot read link"))
		return nil
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}

	info, err := r.fs.Stat(target)
	if err != nil {
		r.problem(full, errors.Wrap(err, errors.ErrAccess, "cannot resolve link").
			WithDetail("target", target))
		return nil
	}

	if info.IsDir() {
		r.logger.Debug().Str("link", full).Str("target", target).Msg("Not following directory link")
		return nil
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	return r.register(name, target)
}

func (r *run) descend(ctx context.Context, dir, rel string) error {
	if r.group != nil && r.group.TryGo(func() error { return r.walkDir(ctx, dir, rel, false) }) {
		return nil
	}
	return r.walkDir(ctx, dir, rel, false)
}

// register classifies by name and adds the canonical form of path
func (r *run) register(name, path string) error {
	cat, ok := r.classifier.Eligible(name)
	if !ok {
		return nil
	}

	canonical, err := r.fs.Realpath(path)
	if err != nil {
		r.problem(path, errors.Wrap(err, errors.ErrAccess, "cannot resolve path"))
		return nil
	}

	if err := r.sink.Add(cat, canonical); err != nil {
		if !errors.IsFatal(err) {
			r.problem(canonical, err)
			return nil
		}
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return errors.Wrap(err, errors.ErrAllocation, "cannot register file")
		}
		return err
	}

	r.mu.Lock()
	r.registered++
	r.mu.Unlock()

	r.logger.Trace().Str("path", canonical).Str("category", cat.String()).Msg("Registered")
	return nil
}

func (r *run) problem(path string, err error) {
	r.logger.Warn().Err(err).Str("path", path).Msg("Skipping entry")

	r.mu.Lock()
	r.problems = append(r.problems, Problem{Path: path, Err: err})
	r.mu.Unlock()
}
