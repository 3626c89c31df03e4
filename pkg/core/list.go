package core

import (
	"context"

	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/types"
)

// ListOptions defines the options for List.
type ListOptions struct {
	CommonOptions
}

// List classifies the tree without writing anything and returns the files a
// merge would include, grouped in merge order.
func List(ctx context.Context, opts ListOptions) (*types.ListResult, error) {
	logger := logging.GetLogger("core.list")
	defer logging.LogOperationStart(logger, "list")()

	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}

	coll, walked, err := collect(ctx, opts.fs(), cfg, opts.root())
	if err != nil {
		return nil, err
	}

	return &types.ListResult{
		Root:     absRoot(opts.root()),
		Total:    coll.Total(),
		Groups:   types.Groups(coll.Records()),
		Problems: len(walked.Problems),
	}, nil
}
