package numutils

import (
	"fmt"
	"math"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/internal/options"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Axis selects which variables of a line fit get transformed.
type Axis int

const (
	AxisNone Axis = 0
	AxisX    Axis = 1
	AxisY    Axis = 2
	AxisBoth Axis = 3
)

// ParseAxis accepts "x", "y", "both" and "" (none).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "":
		return AxisNone, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "both":
		return AxisBoth, nil
	}
	return AxisNone, fmt.Errorf("%w: axis %q must be one of x, y, both or empty", common.ErrorInvalidArgument, s)
}

func (a Axis) hasX() bool { return a == AxisX || a == AxisBoth }
func (a Axis) hasY() bool { return a == AxisY || a == AxisBoth }

type fitLineConfig struct {
	xhat     []float64
	fitProbs Axis
	fitLogs  Axis
	dist     distuv.Quantiler
	cdf      func(float64) float64
}

type FitLineOption = options.Option[*fitLineConfig]

// WithXHat sets where the fitted line is evaluated, [min(x), max(x)] by
// default.
func WithXHat(xhat []float64) FitLineOption {
	return options.NoError(func(c *fitLineConfig) {
		c.xhat = append([]float64(nil), xhat...)
	})
}

// WithFitProbs puts the selected variables on a probability scale. Those
// variables are percentages.
func WithFitProbs(axis Axis) FitLineOption {
	return options.New(func(c *fitLineConfig) error {
		if axis < AxisNone || axis > AxisBoth {
			return fmt.Errorf("%w: fit probs axis %d", common.ErrorInvalidArgument, axis)
		}
		c.fitProbs = axis
		return nil
	})
}

// WithFitLogs takes the natural log of the selected variables.
func WithFitLogs(axis Axis) FitLineOption {
	return options.New(func(c *fitLineConfig) error {
		if axis < AxisNone || axis > AxisBoth {
			return fmt.Errorf("%w: fit logs axis %d", common.ErrorInvalidArgument, axis)
		}
		c.fitLogs = axis
		return nil
	})
}

type LineFit struct {
	XHat      []float64 `json:"xhat"`
	YHat      []float64 `json:"yhat"`
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	RSquared  float64   `json:"r_squared"`
}

// FitLine fits a least squares line to x and y after the requested
// probability and log transforms and returns the line evaluated at xhat,
// mapped back to the input scales.
func FitLine(x, y []float64, opts ...FitLineOption) (*LineFit, error) {
	cfg := &fitLineConfig{
		dist: distuv.UnitNormal,
		cdf:  distuv.UnitNormal.CDF,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if len(x) != len(y) || len(x) < 2 {
		return nil, fmt.Errorf("%w: fit needs matching x and y with 2 or more points, got %d and %d",
			common.ErrorInvalidValue, len(x), len(y))
	}

	xhat := cfg.xhat
	if xhat == nil {
		xhat = []float64{floats.Min(x), floats.Max(x)}
	}
	x = append([]float64(nil), x...)
	y = append([]float64(nil), y...)
	xhat = append([]float64(nil), xhat...)

	if cfg.fitProbs.hasX() {
		mapInPlace(x, cfg.ppf)
		mapInPlace(xhat, cfg.ppf)
	}
	if cfg.fitProbs.hasY() {
		mapInPlace(y, cfg.ppf)
	}
	if cfg.fitLogs.hasX() {
		mapInPlace(x, math.Log)
	}
	if cfg.fitLogs.hasY() {
		mapInPlace(y, math.Log)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	res := &LineFit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
	}

	yhat := EstimateFromLineParams(xhat, slope, intercept, cfg.fitLogs.hasX(), cfg.fitLogs.hasY())
	if cfg.fitProbs.hasY() {
		mapInPlace(yhat, cfg.percentCDF)
	}
	if cfg.fitProbs.hasX() {
		mapInPlace(xhat, cfg.percentCDF)
	}
	res.XHat, res.YHat = xhat, yhat
	return res, nil
}

func (c *fitLineConfig) ppf(percent float64) float64 {
	return c.dist.Quantile(percent / 100)
}

func (c *fitLineConfig) percentCDF(z float64) float64 {
	return 100 * c.cdf(z)
}

// EstimateFromLineParams evaluates a fitted line at x. xlog and ylog say
// whether the fit was made on log(x) and log(y).
func EstimateFromLineParams(x []float64, slope, intercept float64, xlog, ylog bool) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		switch {
		case ylog && xlog:
			res[i] = math.Exp(intercept) * math.Pow(v, slope)
		case ylog:
			res[i] = math.Exp(intercept) * math.Pow(math.Exp(slope), v)
		case xlog:
			res[i] = slope*math.Log(v) + intercept
		default:
			res[i] = slope*v + intercept
		}
	}
	return res
}

func mapInPlace(values []float64, fn func(float64) float64) {
	for i := range values {
		values[i] = fn(values[i])
	}
}
