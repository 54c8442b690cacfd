package ros

import (
	"context"

	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// SortObservations returns a sorted copy of obs, ascending by value with
// non-detects ahead of detects at the same value. Equal rows keep their input
// order.
//
// A non-detect holding the largest value means a detection limit sits above
// every detected value. That single row is dropped and returned as dropped.
func SortObservations(ctx context.Context, obs []model.Observation) (sorted []model.Observation, dropped *model.Observation) {
	sorted = make([]model.Observation, len(obs))
	copy(sorted, obs)

	slices.SortStableFunc(sorted, func(a, b model.Observation) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	if len(sorted) == 0 {
		return sorted, nil
	}

	last := sorted[len(sorted)-1]
	if last.Censored {
		logger := utils.GetLogger(ctx)
		logger.Warn("max result is censored, dropping it",
			zap.Float64("detectionLimit", last.Value), zap.Int("count", len(sorted)))
		sorted = sorted[:len(sorted)-1]
		return sorted, &last
	}
	return sorted, nil
}
