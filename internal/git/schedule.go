package git

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CloneAll runs the clone pipeline for every repository with at most
// parallel pipelines in flight: completion of any one clone immediately
// admits the next queued one. A failed pipeline never cancels its
// siblings; all failures are collected and surfaced together after every
// pipeline has finished.
func CloneAll(ctx context.Context, opts CloneOptions, repos []CloneInfo, parallel int) error {
	if parallel <= 0 {
		return fmt.Errorf("parallel count must be greater than 0, got %d", parallel)
	}

	errs := make([]error, len(repos))

	g := new(errgroup.Group)
	g.SetLimit(parallel)

	for i, info := range repos {
		g.Go(func() error {
			if err := Clone(ctx, opts, info); err != nil {
				errs[i] = fmt.Errorf("%s: %w", info.FullName, err)
			}
			return nil // collected above, siblings keep running
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
