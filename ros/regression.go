package ros

import (
	"fmt"

	"github.com/uyouii/wq-algorithms/common"
	"github.com/uyouii/wq-algorithms/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

type Fit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// FitOLS fits y = intercept + slope*x by least squares. A fit that can not
// be determined (too few points, constant x, non-finite data) returns
// common.ErrorSingularFit.
func FitOLS(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("%w: %d x values but %d y values", common.ErrorInvalidValue, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: %d points", common.ErrorSingularFit, n)
	}
	for i := range x {
		if !utils.IsFinite(x[i]) || !utils.IsFinite(y[i]) {
			return Fit{}, fmt.Errorf("%w: non-finite point %d (%v, %v)", common.ErrorSingularFit, i, x[i], y[i])
		}
	}

	if floats.Min(x) == floats.Max(x) {
		return Fit{}, fmt.Errorf("%w: all x values equal %v", common.ErrorSingularFit, x[0])
	}

	design := mat.NewDense(n, 2, nil)
	for i := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, x[i])
	}
	response := mat.NewVecDense(n, append([]float64(nil), y...))

	var params mat.VecDense
	if err := params.SolveVec(design, response); err != nil {
		return Fit{}, fmt.Errorf("%w: %v", common.ErrorSingularFit, err)
	}

	fit := Fit{
		Intercept: params.AtVec(0),
		Slope:     params.AtVec(1),
	}
	if !utils.IsFinite(fit.Intercept) || !utils.IsFinite(fit.Slope) {
		return Fit{}, fmt.Errorf("%w: non-finite parameters", common.ErrorSingularFit)
	}
	fit.RSquared = stat.RSquared(x, y, nil, fit.Intercept, fit.Slope)
	return fit, nil
}
