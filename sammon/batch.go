package sammon

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one independent mapping request for MapAll.
type Job struct {
	Points [][]float64
	Scalar float64
}

// MapAll maps every job concurrently, at most limit at a time (limit ≤ 0 ⇒
// unbounded). Each call is still single-threaded; parallelism is across
// jobs only.
//
// Every job runs with a copy of opts whose two streams are private:
// job k seeds are deriveSeed(parent, k), where parent is the configured
// seed, or one draw from InitRand/PairRand taken before any goroutine
// starts. Results are therefore independent of limit and scheduling.
// OnImprove and Logger are shared and must be safe for concurrent use;
// the logger gets a "job" attribute.
//
// The first failing job cancels the rest; its error is returned and the
// results are discarded.
func MapAll(ctx context.Context, jobs []Job, opts Options, limit int) ([]*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, sammonErrorf("MapAll", err)
	}

	var (
		initParent = parentSeed(opts.InitRand, opts.InitSeed, initStream)
		pairParent = parentSeed(opts.PairRand, opts.PairSeed, pairStream)
		out        = make([]*Result, len(jobs))
	)

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for k := range jobs {
		jo := jobOptions(opts, initParent, pairParent, k)
		if opts.Logger != nil {
			jo.Logger = opts.Logger.With("job", k)
		}
		g.Go(func() error {
			res, err := Map(gctx, jobs[k].Points, jobs[k].Scalar, jo)
			if err != nil {
				return fmt.Errorf("sammon.MapAll: job %d: %w", k, err)
			}
			out[k] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
