package runner

import (
	"context"

	"go.trai.ch/blastrunner/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// RunBlastpBatch runs jobs with at most cfg.Search.Parallelism concurrent blastp processes.
//
// Results are returned in job order. The first failure cancels the jobs that have not
// started yet and is returned; their slots in the result slice stay nil.
func (r *Runner) RunBlastpBatch(ctx context.Context, cfg *domain.Config, jobs []domain.SearchJob) ([]*domain.SearchResult, error) {
	if len(jobs) == 0 {
		return nil, domain.ErrNoQueries
	}

	results := make([]*domain.SearchResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Search.Parallelism, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.RunBlastp(gctx, cfg, job)
			results[i] = res
			return err
		})
	}

	err := g.Wait()
	return results, err
}
