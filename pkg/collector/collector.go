// Package collector accumulates classified paths per category and hands
// them to the merge writer in a deterministic order.
package collector

import (
	"sort"
	"sync"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/types"
)

const initialCapacity = 16

// Options configures a Collector
type Options struct {
	// Dedupe drops a canonical path that was already registered.
	Dedupe bool

	// Limit caps the total number of paths; 0 means unlimited.
	Limit int
}

// Collector holds one growable path list per category. It is safe for
// concurrent use.
type Collector struct {
	mu    sync.Mutex
	opts  Options
	lists [types.CategoryCount][]string
	seen  map[string]struct{}
	total int
}

// New creates an empty collector
func New(opts Options) *Collector {
	c := &Collector{opts: opts}
	if opts.Dedupe {
		c.seen = make(map[string]struct{})
	}
	return c
}

// Add appends path to the category's list. Registering the same path twice
// keeps both entries unless Dedupe is set.
func (c *Collector) Add(cat types.Category, path string) error {
	if !cat.Valid() {
		return errors.Newf(errors.ErrInternal, "cannot collect %s into %s", path, cat)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen != nil {
		if _, dup := c.seen[path]; dup {
			return nil
		}
	}

	if c.opts.Limit > 0 && c.total >= c.opts.Limit {
		return errors.Newf(errors.ErrAllocation, "file limit of %d reached", c.opts.Limit).
			WithDetail("path", path)
	}

	if c.lists[cat] == nil {
		c.lists[cat] = make([]string, 0, initialCapacity)
	}
	c.lists[cat] = append(c.lists[cat], path)
	c.total++

	if c.seen != nil {
		c.seen[path] = struct{}{}
	}
	return nil
}

// Total returns the number of collected paths across all categories
func (c *Collector) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Sorted returns every category's paths in byte order, indexed by category
func (c *Collector) Sorted() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]string, types.CategoryCount)
	for i, list := range c.lists {
		sorted := make([]string, len(list))
		copy(sorted, list)
		sort.Strings(sorted)
		out[i] = sorted
	}
	return out
}

// Records flattens Sorted into category-then-path order
func (c *Collector) Records() []types.FileRecord {
	sorted := c.Sorted()
	var out []types.FileRecord
	for i, list := range sorted {
		for _, p := range list {
			out = append(out, types.FileRecord{Path: p, Category: types.Category(i)})
		}
	}
	return out
}
