package ros

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultBootstrapIterations = 1500
	DefaultBootstrapAlpha      = 0.05

	bootstrapSeed = 0
)

// Statistic reduces a sample to one number.
type Statistic func(values []float64) float64

func meanStatistic(values []float64) float64 {
	return stat.Mean(values, nil)
}

func medianStatistic(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return percentile(sorted, 0.5)
}

// logMeanStatistic is NaN when any value is not positive.
func logMeanStatistic(values []float64) float64 {
	var sum float64
	for _, v := range values {
		if !(v > 0) {
			return math.NaN()
		}
		sum += math.Log(v)
	}
	return sum / float64(len(values))
}

// BootstrapCI is the percentile bootstrap confidence interval of statistic
// over values: values are resampled with replacement iterations times and
// the alpha/2 and 1-alpha/2 percentiles of the resampled statistics are
// returned. The same seed gives the same interval.
func BootstrapCI(values []float64, statistic Statistic, iterations int, alpha float64, seed uint64) ([2]float64, error) {
	nan := [2]float64{math.NaN(), math.NaN()}
	if len(values) == 0 {
		return nan, fmt.Errorf("%w: bootstrap of no values", common.ErrorInvalidValue)
	}
	if iterations < 1 || !(alpha > 0 && alpha < 1) {
		return nan, fmt.Errorf("%w: bootstrap iterations %d, alpha %v", common.ErrorInvalidArgument, iterations, alpha)
	}

	rng := rand.New(rand.NewSource(seed))
	resample := make([]float64, len(values))
	stats := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		for j := range resample {
			resample[j] = values[rng.Intn(len(values))]
		}
		s := statistic(resample)
		if math.IsNaN(s) {
			return nan, nil
		}
		stats = append(stats, s)
	}

	slices.Sort(stats)
	return [2]float64{percentile(stats, alpha/2), percentile(stats, 1-alpha/2)}, nil
}
