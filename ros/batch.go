package ros

import (
	"context"
	"fmt"
	"sync"

	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EstimateGroups runs Estimate on every group (e.g. one per parameter and
// location) concurrently. Groups share nothing, a failing group does not
// stop the others: its error is combined into the returned error and the
// successful results are still returned.
func EstimateGroups(ctx context.Context, groups map[string][]model.Observation,
	opts ...Option) (map[string]*Result, error) {
	logger := utils.GetLogger(ctx)

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results = make(map[string]*Result, len(groups))
		errs    error
	)

	eg := errgroup.Group{}
	eg.SetLimit(cfg.workers)
	for name, obs := range groups {
		name, obs := name, obs
		eg.Go(func() error {
			res, err := estimateGroup(ctx, name, obs, cfg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("group %s: %w", name, err))
				return nil
			}
			results[name] = res
			return nil
		})
	}
	_ = eg.Wait()

	if errs != nil {
		logger.Error("some groups failed", zap.Int("failed", len(multierr.Errors(errs))),
			zap.Int("groups", len(groups)), zap.Error(errs))
	}
	return results, errs
}

func estimateGroup(ctx context.Context, name string, obs []model.Observation, cfg *config) (res *Result, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("estimateGroup recover panic error!", zap.Any("err", r),
				zap.String("group", name), zap.String("panic info", utils.GetPanicInfo()))
			res, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return estimate(ctx, obs, cfg)
}
