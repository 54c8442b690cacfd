package kde

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/model"
	"github.com/uyouii/wq-algorithms/utils"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
)

// KDEUnivariate is a gaussian kernel density of non-negative
// concentrations. The density and cdf are computed on first use.
type KDEUnivariate struct {
	// Endog holds the values ascending, Weights follows the same order.
	Endog   []float64
	Weights []float64

	cfg     *config
	density []model.DensityPoint
	cdf     []model.DensityPoint
	grid    []float64
	bw      float64
	fitted  bool
	kernel  *GaussianKernel
}

func NewKDEUnivariate(endog []float64, opts ...Option) (*KDEUnivariate, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	weights := cfg.weights
	if len(weights) == 0 {
		weights = initOnes(len(endog))
	} else if len(weights) != len(endog) {
		return nil, fmt.Errorf("%w: %d values but %d weights", common.ErrorInvalidValue, len(endog), len(weights))
	}
	for _, v := range endog {
		if !utils.IsFinite(v) || v < 0 {
			return nil, fmt.Errorf("%w: concentration %v", common.ErrorInvalidValue, v)
		}
	}

	endog, weights = sortWeighted(endog, weights)
	if cfg.clipZScore > 0 && len(endog) > 1 {
		mean, std := stat.MeanStdDev(endog, nil)
		endog, weights = clip(endog, weights, &model.Clip{
			Lower: math.Max(mean-std*cfg.clipZScore, 0),
			Upper: mean + std*cfg.clipZScore,
		})
	}
	if cfg.clip != nil {
		endog, weights = clip(endog, weights, cfg.clip)
	}

	if len(endog) < MinPointCnt {
		return nil, fmt.Errorf("%w: %d values, need at least %d", common.ErrorInvalidValue, len(endog), MinPointCnt)
	}
	if floats.Sum(weights) == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", common.ErrorInvalidValue)
	}

	bw := cfg.bandWidth.BandWidth(endog) * cfg.bwAdjust
	if !(bw > 0) || math.IsInf(bw, 0) {
		return nil, fmt.Errorf("%w: bandwidth %v, values have no spread", common.ErrorInvalidValue, bw)
	}

	kernel := NewGaussianKernel()
	kernel.SetH(bw)
	kernel.SetWeights(weights)

	return &KDEUnivariate{
		Endog:   endog,
		Weights: weights,
		cfg:     cfg,
		bw:      bw,
		kernel:  kernel,
	}, nil
}

func (kde *KDEUnivariate) BandWidth() float64 {
	return kde.bw
}

// Kdensity evaluates the density on an evenly spaced grid.
func (kde *KDEUnivariate) Kdensity() []model.DensityPoint {
	if kde.fitted {
		return kde.density
	}

	gridSize := kde.cfg.gridSize
	if gridSize == 0 {
		gridSize = utils.IntMax(len(kde.Endog), MinGridSize)
	}
	a := math.Max(floats.Min(kde.Endog)-kde.cfg.cut*kde.bw, 0)
	b := floats.Max(kde.Endog) + kde.cfg.cut*kde.bw
	grid := make([]float64, gridSize)
	floats.Span(grid, a, b)

	q := floats.Sum(kde.Weights)
	shapes := make([]float64, len(kde.Endog))
	res := make([]model.DensityPoint, 0, len(grid))
	for _, x := range grid {
		for j, xj := range kde.Endog {
			shapes[j] = kde.kernel.Shape((xj - x) / kde.bw)
		}
		res = append(res, model.DensityPoint{
			X:     x,
			Value: floats.Dot(shapes, kde.Weights) / (q * kde.bw),
		})
	}

	kde.density = res
	kde.grid = grid
	kde.fitted = true
	return res
}

// Cdf integrates the density from zero up to every grid point. Mass the
// kernels put below zero is not counted, so the last value can be slightly
// under one.
func (kde *KDEUnivariate) Cdf() []model.DensityPoint {
	if !kde.fitted {
		kde.Kdensity()
	}
	if len(kde.cdf) > 0 {
		return kde.cdf
	}

	f := func(x float64) float64 {
		return kde.kernel.Density(kde.Endog, x)
	}

	res := make([]model.DensityPoint, 0, len(kde.grid))
	var cumSum float64
	lower := 0.0
	for _, upper := range kde.grid {
		if upper > lower {
			cumSum += quad.Fixed(f, lower, upper, quadPoints, nil, 0)
		}
		res = append(res, model.DensityPoint{
			X:     upper,
			Value: cumSum,
		})
		lower = upper
	}

	kde.cdf = res
	return res
}

// Quantile inverts the cdf by linear interpolation between grid points.
// Probabilities beyond the ends of the cdf give the first or last grid point.
func (kde *KDEUnivariate) Quantile(p float64) (*model.QuantileValue, error) {
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%w: quantile %v must be between 0 and 1", common.ErrorInvalidArgument, p)
	}

	cdf := kde.Cdf()
	if p <= cdf[0].Value {
		return &model.QuantileValue{Quantile: p, Value: cdf[0].X}, nil
	}
	last := cdf[len(cdf)-1]
	if p >= last.Value {
		return &model.QuantileValue{Quantile: p, Value: last.X}, nil
	}

	i, _ := slices.BinarySearchFunc(cdf, p, func(point model.DensityPoint, target float64) int {
		if point.Value <= target {
			return -1
		}
		return 1
	})
	lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
	upperX, upperP := cdf[i].X, cdf[i].Value
	return &model.QuantileValue{
		Quantile: p,
		Value:    lowerX + (upperX-lowerX)*(p-lowerP)/(upperP-lowerP),
	}, nil
}

func sortWeighted(x, weights []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case x[a] < x[b]:
			return -1
		case x[a] > x[b]:
			return 1
		}
		return 0
	})

	resX, resWeights := make([]float64, len(x)), make([]float64, len(x))
	for i, j := range idx {
		resX[i], resWeights[i] = x[j], weights[j]
	}
	return resX, resWeights
}

func clip(x, weights []float64, bounds *model.Clip) ([]float64, []float64) {
	resX, resWeights := []float64{}, []float64{}
	for i := range x {
		if x[i] >= bounds.Lower && x[i] <= bounds.Upper {
			resX = append(resX, x[i])
			resWeights = append(resWeights, weights[i])
		}
	}
	return resX, resWeights
}

func initOnes(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 1
	}
	return res
}
